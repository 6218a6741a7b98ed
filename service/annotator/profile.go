package annotator

import (
	"context"
	"fmt"

	"github.com/AnatomicMaps/BG-models/service/meta"
)

// Profile customises annotation generation from a YAML document:
//
//	cavities:
//	  kidney: "0002113"
//	annotateFlows: true
//
// Cavity entries overlay the default vocabulary; unmentioned compartments
// keep their defaults.
type Profile struct {
	Cavities      map[string]string `yaml:"cavities" json:"cavities,omitempty"`
	AnnotateFlows bool              `yaml:"annotateFlows" json:"annotateFlows,omitempty"`
}

// LoadProfile loads a profile from the specified URL.
func LoadProfile(ctx context.Context, metaService *meta.Service, URL string) (*Profile, error) {
	profile := &Profile{}
	if err := metaService.Load(ctx, URL, profile); err != nil {
		return nil, fmt.Errorf("failed to load annotation profile from %s: %w", URL, err)
	}
	return profile, nil
}

// Options translates the profile into service options.
func (p *Profile) Options() []Option {
	return []Option{
		WithVocabulary(DefaultVocabulary().Merge(&Vocabulary{Cavities: p.Cavities})),
		WithFlowAnnotations(p.AnnotateFlows),
	}
}

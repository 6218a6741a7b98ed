package cellml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Metadata id suffixes used by the bond-graph cardiovascular models to tag
// physiological quantities.
const (
	volumeSuffix   = ".blood.volume"
	pressureSuffix = ".blood.pressure"
	flowSuffix     = ".blood.flow"
)

// IDSet groups the metadata ids of a model by the physiological quantity
// they identify.
type IDSet struct {
	Volumes   []string `json:"volumes,omitempty"`
	Pressures []string `json:"pressures,omitempty"`
	Flows     []string `json:"flows,omitempty"`
	Unknown   []string `json:"unknown,omitempty"`
}

// Empty reports whether the set holds no classified ids.
func (s *IDSet) Empty() bool {
	return len(s.Volumes)+len(s.Pressures)+len(s.Flows) == 0
}

// CollectMetadataIDs walks the raw document and returns every cmeta:id
// attribute value, in document order.  The walk is attribute based so ids on
// elements this package does not model structurally (connections, units,
// math) are still found.
func CollectMetadataIDs(encoded []byte) ([]string, error) {
	var ids []string
	decoder := xml.NewDecoder(bytes.NewReader(encoded))
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return ids, nil
		}
		if err != nil {
			return nil, err
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Space == MetadataNamespace && attr.Name.Local == "id" {
				ids = append(ids, attr.Value)
			}
		}
	}
}

// ClassifyMetadataIDs splits metadata ids by their quantity suffix.  Ids that
// match none of the known suffixes are reported under Unknown rather than
// silently dropped.
func ClassifyMetadataIDs(ids []string) *IDSet {
	set := &IDSet{}
	for _, id := range ids {
		switch {
		case strings.HasSuffix(id, volumeSuffix):
			set.Volumes = append(set.Volumes, id)
		case strings.HasSuffix(id, pressureSuffix):
			set.Pressures = append(set.Pressures, id)
		case strings.HasSuffix(id, flowSuffix):
			set.Flows = append(set.Flows, id)
		default:
			set.Unknown = append(set.Unknown, id)
		}
	}
	return set
}

// Compartment returns the compartment abbreviation of a metadata id, the
// part before the first dot (for example "lv" in "lv.blood.pressure").
func Compartment(id string) string {
	if index := strings.IndexByte(id, '.'); index > 0 {
		return id[:index]
	}
	return id
}

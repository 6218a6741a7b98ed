package annotator

// Namespaces of the annotation vocabulary.
const (
	OMEXLibraryNamespace = "http://omex-library.org/"
	LocalNamespace       = "http://omex-library.org/annotations.ttl#"
	BQBiolNamespace      = "http://biomodels.net/biology-qualifiers/"
	UberonNamespace      = "http://purl.obolibrary.org/obo/UBERON_"
	OPBNamespace         = "http://bhi.washington.edu/OPB#"
)

// Ontology of Physics for Biology terms for the quantities this repository
// annotates.
const (
	// OPB:00154 = fluid volume
	volumeTerm = "OPB_00154"
	// OPB:00509 = fluid pressure
	pressureTerm = "OPB_00509"
	// OPB:00593 = fluid flow rate
	flowTerm = "OPB_00593"
)

// UBERON:0000178 = Blood: a fluid composed of blood plasma and erythrocytes.
const bloodTerm = "0000178"

// fallbackCavityTerm is UBERON:0001062, anatomical entity; used when a
// compartment abbreviation is not in the vocabulary.
const fallbackCavityTerm = "0001062"

// Vocabulary maps the compartment abbreviations used in cmeta:id values to
// UBERON terms.  The zero value is unusable; start from DefaultVocabulary and
// override entries through a YAML profile when the model introduces new
// compartments.
type Vocabulary struct {
	Cavities map[string]string `yaml:"cavities" json:"cavities"`
}

// DefaultVocabulary returns the compartment table of the bond-graph
// cardiovascular models.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Cavities: map[string]string{
			"lv":          "0016514", // luminal space of the left ventricle of the heart
			"rv":          "0016509", // luminal space of the right ventricle of the heart
			"la":          "0016513", // luminal space of the left atrium of the heart
			"ra":          "0016522", // luminal space of the right atrium of the heart
			"pa":          "0002012", // pulmonary artery
			"lung":        "0000102", // lung vasculature
			"pulm-vein":   "0002016", // pulmonary vein
			"brain":       "0008998", // vasculature of brain
			"brain-vein":  "2005031", // dorsal longitudinal vein
			"aa":          "0001496", // ascending aorta
			"celiac":      "0001640", // celiac artery
			"sup-mes":     "0001182", // superior mesenteric artery
			"stomach":     "0000945", // stomach
			"spleen":      "0036301", // vasculature of spleen
			"pancreas":    "0001264", // pancreas
			"intestine":   "0000160", // intestine
			"colon":       "0001155", // colon
			"portal-vein": "0002017", // portal vein
			"liver":       "0006877", // vasculature of liver
		},
	}
}

// CavityURI resolves a compartment abbreviation to a UBERON URI.  Unknown
// abbreviations fall back to the generic anatomical entity term; ok reports
// whether the abbreviation was in the table.
func (v *Vocabulary) CavityURI(abbreviation string) (uri string, ok bool) {
	if term, found := v.Cavities[abbreviation]; found {
		return UberonNamespace + term, true
	}
	return UberonNamespace + fallbackCavityTerm, false
}

// Merge overlays entries of another vocabulary, keeping existing entries that
// the overlay does not mention.
func (v *Vocabulary) Merge(overlay *Vocabulary) *Vocabulary {
	if overlay == nil || len(overlay.Cavities) == 0 {
		return v
	}
	merged := &Vocabulary{Cavities: make(map[string]string, len(v.Cavities))}
	for abbreviation, term := range v.Cavities {
		merged.Cavities[abbreviation] = term
	}
	for abbreviation, term := range overlay.Cavities {
		merged.Cavities[abbreviation] = term
	}
	return merged
}

package domain

// Tier classifies how reliable a candidate term is.
type Tier string

const (
	// TierHigh marks terms matched against the curated reference lexicon.
	TierHigh Tier = "high"
	// TierMedium marks terms discovered statistically above the frequency threshold.
	TierMedium Tier = "medium"
)

// ExtractionSource records which strategy produced a candidate.
type ExtractionSource string

const (
	SourceCurated     ExtractionSource = "curated"
	SourceStatistical ExtractionSource = "statistical"
	SourceBoth        ExtractionSource = "both"
)

// CandidateTerm is one discovered terminology candidate with its evidence.
// Frequency counts distinct documents containing the term, not raw occurrences.
type CandidateTerm struct {
	EN        string           `yaml:"en" json:"en"`
	ETHints   []string         `yaml:"et_hints,omitempty" json:"et_hints,omitempty"`
	Tier      Tier             `yaml:"tier" json:"tier"`
	Source    ExtractionSource `yaml:"source" json:"source"`
	Category  string           `yaml:"category,omitempty" json:"category,omitempty"`
	Frequency int              `yaml:"frequency" json:"frequency"`
	Samples   []DocumentRef    `yaml:"samples,omitempty" json:"samples,omitempty"`
}

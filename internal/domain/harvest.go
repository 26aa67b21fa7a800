package domain

import "time"

// HarvestState is the durable watermark record for one endpoint. It is the
// only entity the pipeline persists, and it is mutated only after a fully
// successful harvest-and-extract cycle for that endpoint.
type HarvestState struct {
	LastRun         time.Time `json:"last_run"`
	LastHarvestDate string    `json:"last_harvest_date"`
	Sets            []string  `json:"sets"`
	TotalRecords    int64     `json:"total_records"`
}

// EndpointResult summarizes one endpoint's part of a run. From is the
// effective start date the endpoint was harvested with, which differs per
// endpoint on incremental runs.
type EndpointResult struct {
	Endpoint  string `yaml:"endpoint"`
	From      string `yaml:"from,omitempty"`
	Harvested int    `yaml:"harvested"`
	Documents int    `yaml:"documents"`
	Failed    bool   `yaml:"failed,omitempty"`
	Reason    string `yaml:"reason,omitempty"`
}

// RunOutcome is the overall result tier of a pipeline run.
type RunOutcome int

const (
	// RunSucceeded means every endpoint harvested without error.
	RunSucceeded RunOutcome = iota
	// RunPartial means at least one endpoint failed but usable data was produced.
	RunPartial
	// RunFailed means no endpoint produced usable data.
	RunFailed
)

func (o RunOutcome) String() string {
	switch o {
	case RunSucceeded:
		return "succeeded"
	case RunPartial:
		return "partial"
	default:
		return "failed"
	}
}

// RunStats holds statistics about one pipeline run.
type RunStats struct {
	From      string           `yaml:"from"`
	Until     string           `yaml:"until"`
	Documents int              `yaml:"documents"`
	Results   []EndpointResult `yaml:"endpoints"`
	Outcome   RunOutcome       `yaml:"-"`
	Duration  time.Duration    `yaml:"-"`
}

// Report is the structured candidate-term report written after a run.
// Section ordering is deterministic: frequency descending, then the English
// form ascending.
type Report struct {
	GeneratedAt time.Time       `yaml:"generated_at"`
	Stats       RunStats        `yaml:"run"`
	NewHigh     []CandidateTerm `yaml:"new_high_confidence"`
	NewMedium   []CandidateTerm `yaml:"new_medium_confidence"`
	Confirmed   []CandidateTerm `yaml:"confirmed_existing"`
}

// Package report turns the candidate map of a run into the reviewable
// report artifact. Output ordering is deterministic so consecutive runs
// over the same corpus produce identical files.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"term_harvester/internal/domain"
)

// TermIndex answers whether a term is already covered by the published
// glossary.
type TermIndex interface {
	Contains(term string) bool
}

type Reporter struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// Build partitions candidates into new high confidence, new medium
// confidence and confirmed sections. A candidate already in the glossary is
// confirmation evidence regardless of its tier.
func (r *Reporter) Build(candidates map[string]*domain.CandidateTerm, known TermIndex, stats domain.RunStats) *domain.Report {
	rep := &domain.Report{
		GeneratedAt: time.Now().UTC(),
		Stats:       stats,
	}

	for key, cand := range candidates {
		switch {
		case known.Contains(key):
			rep.Confirmed = append(rep.Confirmed, *cand)
		case cand.Tier == domain.TierHigh:
			rep.NewHigh = append(rep.NewHigh, *cand)
		default:
			rep.NewMedium = append(rep.NewMedium, *cand)
		}
	}

	sortTerms(rep.NewHigh)
	sortTerms(rep.NewMedium)
	sortTerms(rep.Confirmed)

	r.logger.Info("report built",
		"new_high", len(rep.NewHigh),
		"new_medium", len(rep.NewMedium),
		"confirmed", len(rep.Confirmed),
	)

	return rep
}

// sortTerms orders by frequency descending, then English form ascending.
func sortTerms(terms []domain.CandidateTerm) {
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Frequency != terms[j].Frequency {
			return terms[i].Frequency > terms[j].Frequency
		}
		return terms[i].EN < terms[j].EN
	})
}

// Write stores the report as YAML, creating parent directories as needed.
func (r *Reporter) Write(path string, rep *domain.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	r.logger.Info("report written", "path", path)
	return nil
}

// WriteSummary prints the short human-readable digest shown at the end of a
// run.
func (r *Reporter) WriteSummary(w io.Writer, rep *domain.Report) {
	fmt.Fprintf(w, "Run %s: %d documents from %d endpoint(s) [%s .. %s]\n",
		rep.Stats.Outcome, rep.Stats.Documents, len(rep.Stats.Results),
		rep.Stats.From, rep.Stats.Until)

	for _, res := range rep.Stats.Results {
		if res.Failed {
			fmt.Fprintf(w, "  %-10s FAILED: %s\n", res.Endpoint, res.Reason)
			continue
		}
		fmt.Fprintf(w, "  %-10s %d harvested, %d usable\n", res.Endpoint, res.Harvested, res.Documents)
	}

	fmt.Fprintf(w, "Candidates: %d new high confidence, %d new medium confidence, %d confirmed\n",
		len(rep.NewHigh), len(rep.NewMedium), len(rep.Confirmed))

	for i, term := range rep.NewHigh {
		if i >= 10 {
			fmt.Fprintf(w, "  ... and %d more\n", len(rep.NewHigh)-i)
			break
		}
		fmt.Fprintf(w, "  + %s (%d)\n", term.EN, term.Frequency)
	}
}

// Package promote moves reviewed candidate terms from a run report into the
// glossary file as minimal entries. Existing glossary entries are read as
// raw maps so fields this tool knows nothing about survive the round trip.
package promote

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"term_harvester/internal/domain"
)

// Promoter appends selected candidates to the glossary.
type Promoter struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Promoter {
	return &Promoter{logger: logger}
}

// Result counts what a promotion did.
type Result struct {
	Added   int
	Skipped int
}

// Promote appends the selected candidates from a report to the glossary at
// termsPath. A candidate is selected by its English form; with an empty
// selection every new high confidence term is taken. Candidates without an
// Estonian hint are skipped, as are terms the glossary already has.
func (p *Promoter) Promote(reportPath, termsPath string, selection []string) (*Result, error) {
	rep, err := loadReport(reportPath)
	if err != nil {
		return nil, err
	}

	entries, existing, err := loadEntries(termsPath)
	if err != nil {
		return nil, err
	}

	candidates := pickCandidates(rep, selection)
	if len(selection) > 0 && len(candidates) < len(selection) {
		return nil, fmt.Errorf("report %s does not contain all selected terms", reportPath)
	}

	res := &Result{}
	for _, cand := range candidates {
		key := strings.ToLower(cand.EN)
		if _, ok := existing[key]; ok {
			p.logger.Debug("already in glossary", "term", cand.EN)
			res.Skipped++
			continue
		}
		if len(cand.ETHints) == 0 {
			p.logger.Warn("no Estonian translation, skipping", "term", cand.EN)
			res.Skipped++
			continue
		}

		entry := map[string]any{
			"en": cand.EN,
			"et": cand.ETHints[0],
			"alt": map[string]any{
				"et": cand.ETHints[1:],
				"en": []string{},
			},
		}
		entries = append(entries, entry)
		existing[key] = struct{}{}
		res.Added++
	}

	if res.Added > 0 {
		if err := writeEntries(termsPath, entries); err != nil {
			return nil, err
		}
	}

	p.logger.Info("promotion finished",
		"added", res.Added,
		"skipped", res.Skipped,
		"total", len(entries),
	)

	return res, nil
}

func loadReport(path string) (*domain.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var rep domain.Report
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &rep, nil
}

func loadEntries(path string) ([]map[string]any, map[string]struct{}, error) {
	existing := make(map[string]struct{})

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, existing, nil
		}
		return nil, nil, fmt.Errorf("read glossary: %w", err)
	}

	var entries []map[string]any
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, nil, fmt.Errorf("parse glossary: %w", err)
	}

	for _, entry := range entries {
		if en, ok := entry["en"].(string); ok {
			existing[strings.ToLower(strings.TrimSpace(en))] = struct{}{}
		}
	}
	return entries, existing, nil
}

// pickCandidates resolves the selection against the report. Medium
// confidence and confirmed terms can be promoted only by naming them.
func pickCandidates(rep *domain.Report, selection []string) []domain.CandidateTerm {
	if len(selection) == 0 {
		return rep.NewHigh
	}

	wanted := make(map[string]struct{}, len(selection))
	for _, s := range selection {
		wanted[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	var picked []domain.CandidateTerm
	for _, section := range [][]domain.CandidateTerm{rep.NewHigh, rep.NewMedium, rep.Confirmed} {
		for _, cand := range section {
			if _, ok := wanted[strings.ToLower(cand.EN)]; ok {
				picked = append(picked, cand)
			}
		}
	}
	return picked
}

func writeEntries(path string, entries []map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create glossary directory: %w", err)
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode glossary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write glossary: %w", err)
	}
	return nil
}

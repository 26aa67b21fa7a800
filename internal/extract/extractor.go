// Package extract discovers terminology candidates in harvested documents.
// Two strategies run over every document: curated lexicon matching, which is
// high confidence on its own, and statistical phrase extraction, which needs
// a minimum number of distinct documents before a phrase is trusted.
package extract

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"term_harvester/internal/domain"
	"term_harvester/internal/lexicon"
)

// Config holds extraction tuning knobs.
type Config struct {
	// MinFrequency is the minimum number of distinct documents a
	// statistically discovered phrase must appear in.
	MinFrequency int
	// SampleLimit caps the provenance references kept per candidate.
	SampleLimit int
	// Workers is the number of parallel extraction partitions.
	Workers int
}

// tally counts distinct documents for one phrase within a partition.
type tally struct {
	count   int
	samples []domain.DocumentRef
}

// partial is one partition's intermediate result.
type partial struct {
	curated map[string]*tally
	stat    map[string]*tally
}

// Extractor runs both strategies and merges their findings.
type Extractor struct {
	matcher      *CuratedMatcher
	etHints      map[string]struct{}
	minFrequency int
	sampleLimit  int
	workers      int
	logger       *slog.Logger
}

// New builds an extractor over the curated lexicon.
func New(cfg Config, logger *slog.Logger) *Extractor {
	terms := lexicon.Terms()

	hints := make(map[string]struct{})
	for _, term := range terms {
		for _, hint := range term.ET {
			hints[strings.ToLower(hint)] = struct{}{}
		}
	}

	if cfg.MinFrequency <= 0 {
		cfg.MinFrequency = 3
	}
	if cfg.SampleLimit <= 0 {
		cfg.SampleLimit = 3
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}

	return &Extractor{
		matcher:      NewCuratedMatcher(terms),
		etHints:      hints,
		minFrequency: cfg.MinFrequency,
		sampleLimit:  cfg.SampleLimit,
		workers:      cfg.Workers,
		logger:       logger,
	}
}

// Extract produces the candidate map for one run, keyed by the lowercased
// English form. Frequencies count distinct documents. Documents are split
// into contiguous partitions processed in parallel and merged in partition
// order, so the result is deterministic for a given input order.
func (e *Extractor) Extract(ctx context.Context, docs []*domain.DocumentRecord) (map[string]*domain.CandidateTerm, error) {
	partials := make([]partial, e.workers)
	chunks := splitChunks(len(docs), e.workers)

	g, ctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			part, err := e.extractPartition(ctx, docs[chunk[0]:chunk[1]])
			if err != nil {
				return err
			}
			partials[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	curated := make(map[string]*tally)
	stat := make(map[string]*tally)
	for _, part := range partials {
		e.mergeTallies(curated, part.curated)
		e.mergeTallies(stat, part.stat)
	}

	candidates := make(map[string]*domain.CandidateTerm)

	for key, t := range curated {
		term, _ := e.matcher.Term(key)
		source := domain.SourceCurated
		if _, alsoStat := stat[key]; alsoStat {
			source = domain.SourceBoth
		}
		candidates[key] = &domain.CandidateTerm{
			EN:        term.EN,
			ETHints:   term.ET,
			Tier:      domain.TierHigh,
			Source:    source,
			Category:  term.Category,
			Frequency: t.count,
			Samples:   t.samples,
		}
	}

	for key, t := range stat {
		if _, isCurated := curated[key]; isCurated {
			continue
		}
		// Estonian equivalents of known terms are not new discoveries.
		if _, isHint := e.etHints[key]; isHint {
			continue
		}
		if t.count < e.minFrequency {
			continue
		}
		candidates[key] = &domain.CandidateTerm{
			EN:        key,
			Tier:      domain.TierMedium,
			Source:    domain.SourceStatistical,
			Frequency: t.count,
			Samples:   t.samples,
		}
	}

	e.logger.Info("extraction complete",
		"documents", len(docs),
		"curated_terms", len(curated),
		"candidates", len(candidates),
	)

	return candidates, nil
}

func (e *Extractor) extractPartition(ctx context.Context, docs []*domain.DocumentRecord) (partial, error) {
	part := partial{
		curated: make(map[string]*tally),
		stat:    make(map[string]*tally),
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return partial{}, err
		}

		for key := range e.matcher.Match(doc) {
			e.record(part.curated, key, doc)
		}

		phrases := make(map[string]struct{})
		if doc.AbstractEN != "" {
			english, err := englishPhrases(doc.AbstractEN)
			if err != nil {
				e.logger.Warn("skipping statistical extraction for document",
					"identifier", doc.Identifier,
					"error", err,
				)
			} else {
				for p := range english {
					phrases[p] = struct{}{}
				}
			}
		}
		if doc.AbstractET != "" {
			for p := range estonianPhrases(doc.AbstractET) {
				phrases[p] = struct{}{}
			}
		}
		for p := range phrases {
			e.record(part.stat, p, doc)
		}
	}

	return part, nil
}

func (e *Extractor) record(tallies map[string]*tally, key string, doc *domain.DocumentRecord) {
	t, ok := tallies[key]
	if !ok {
		t = &tally{}
		tallies[key] = t
	}
	t.count++
	if len(t.samples) < e.sampleLimit {
		t.samples = append(t.samples, doc.Ref())
	}
}

func (e *Extractor) mergeTallies(dst, src map[string]*tally) {
	for key, t := range src {
		existing, ok := dst[key]
		if !ok {
			dst[key] = t
			continue
		}
		existing.count += t.count
		for _, ref := range t.samples {
			if len(existing.samples) >= e.sampleLimit {
				break
			}
			existing.samples = append(existing.samples, ref)
		}
	}
}

// splitChunks divides n items into at most k contiguous [start, end) ranges.
func splitChunks(n, k int) [][2]int {
	if k > n {
		k = n
	}
	chunks := make([][2]int, 0, k)
	for i := 0; i < k; i++ {
		start := i * n / k
		end := (i + 1) * n / k
		if start < end {
			chunks = append(chunks, [2]int{start, end})
		}
	}
	return chunks
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"term_harvester/internal/domain"
)

// ErrPartialRun means at least one endpoint failed but the run still
// produced a report from the remaining endpoints.
var ErrPartialRun = errors.New("some endpoints failed")

// ErrRunFailed means no endpoint produced any usable data.
var ErrRunFailed = errors.New("all endpoints failed")

// Config holds the service-level knobs.
type Config struct {
	// DefaultFromDate bounds the first harvest of an endpoint.
	DefaultFromDate string
	// ReportPath is where the run report is written.
	ReportPath string
}

// RunOptions selects what one run covers.
type RunOptions struct {
	// From overrides the incremental watermark for every endpoint.
	From string
	// Until bounds the window; empty means today.
	Until string
	// Full ignores watermarks and cached set lists.
	Full bool
	// Endpoints limits the run to the named endpoint keys.
	Endpoints []string
}

// RunResult is the outcome of one pipeline run.
type RunResult struct {
	Report  *domain.Report
	Outcome domain.RunOutcome
}

// endpointHarvest is the per-endpoint intermediate collected before
// extraction.
type endpointHarvest struct {
	result domain.EndpointResult
	docs   []*domain.DocumentRecord
	sets   []string
}

// HarvestService drives the full pipeline: harvest every endpoint, extract
// candidate terms, write the report and finally commit watermarks. A
// watermark is committed only for endpoints that harvested cleanly and only
// after the report exists, so a crash anywhere re-harvests rather than
// losing records.
type HarvestService struct {
	clients   map[string]ProtocolClient
	order     []string
	parser    RecordParser
	store     WatermarkStore
	extractor TermExtractor
	glossary  Glossary
	reporter  ReportWriter
	publisher Publisher
	logger    *slog.Logger
	cfg       Config
}

// NewHarvestService wires the pipeline. Clients are kept in the given order
// so reports list endpoints deterministically. publisher may be nil.
func NewHarvestService(
	clients []ProtocolClient,
	parser RecordParser,
	store WatermarkStore,
	extractor TermExtractor,
	glossary Glossary,
	reporter ReportWriter,
	publisher Publisher,
	logger *slog.Logger,
	cfg Config,
) *HarvestService {
	byKey := make(map[string]ProtocolClient, len(clients))
	order := make([]string, 0, len(clients))
	for _, c := range clients {
		byKey[c.Endpoint()] = c
		order = append(order, c.Endpoint())
	}

	return &HarvestService{
		clients:   byKey,
		order:     order,
		parser:    parser,
		store:     store,
		extractor: extractor,
		glossary:  glossary,
		reporter:  reporter,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// Run executes one pipeline cycle. It returns ErrPartialRun when some
// endpoints failed, ErrRunFailed when none produced data, and any other
// error for fatal pipeline failures.
func (s *HarvestService) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	startTime := time.Now()

	until := opts.Until
	if until == "" {
		until = time.Now().UTC().Format("2006-01-02")
	}

	keys, err := s.selectEndpoints(opts.Endpoints)
	if err != nil {
		return nil, err
	}

	s.logger.Info("starting run",
		"endpoints", keys,
		"until", until,
		"full", opts.Full,
	)

	harvests := make([]endpointHarvest, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			harvests[i] = s.harvestEndpoint(gctx, s.clients[key], opts, until)
			return nil
		})
	}
	// Endpoint failures are isolated into their results; only context
	// cancellation surfaces here.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var docs []*domain.DocumentRecord
	failed := 0
	results := make([]domain.EndpointResult, len(harvests))
	for i, h := range harvests {
		results[i] = h.result
		docs = append(docs, h.docs...)
		if h.result.Failed {
			failed++
		}
	}

	if failed == len(harvests) && len(docs) == 0 {
		return &RunResult{Outcome: domain.RunFailed}, ErrRunFailed
	}

	candidates, err := s.extractor.Extract(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("extract terms: %w", err)
	}

	outcome := domain.RunSucceeded
	if failed > 0 {
		outcome = domain.RunPartial
	}

	stats := domain.RunStats{
		From:      opts.From,
		Until:     until,
		Documents: len(docs),
		Results:   results,
		Outcome:   outcome,
		Duration:  time.Since(startTime),
	}

	rep := s.reporter.Build(candidates, s.glossary, stats)
	if err := s.reporter.Write(s.cfg.ReportPath, rep); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	s.publishNew(ctx, rep)

	// Commit watermarks last and only for clean endpoints. Failed ones
	// keep their old watermark and are re-harvested next run.
	for i, key := range keys {
		h := harvests[i]
		if h.result.Failed {
			continue
		}
		if err := s.commitWatermark(ctx, key, until, h); err != nil {
			s.logger.Error("failed to commit watermark",
				"endpoint", key,
				"error", err,
			)
			results[i].Failed = true
			results[i].Reason = fmt.Sprintf("commit watermark: %v", err)
			outcome = domain.RunPartial
		}
	}

	s.logger.Info("run completed",
		"outcome", outcome.String(),
		"documents", len(docs),
		"new_high", len(rep.NewHigh),
		"new_medium", len(rep.NewMedium),
		"confirmed", len(rep.Confirmed),
		"duration", time.Since(startTime),
	)

	result := &RunResult{Report: rep, Outcome: outcome}
	if outcome == domain.RunPartial {
		return result, ErrPartialRun
	}
	return result, nil
}

func (s *HarvestService) selectEndpoints(filter []string) ([]string, error) {
	if len(filter) == 0 {
		return s.order, nil
	}
	keys := make([]string, 0, len(filter))
	for _, key := range filter {
		if _, ok := s.clients[key]; !ok {
			return nil, fmt.Errorf("unknown endpoint %q", key)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *HarvestService) harvestEndpoint(ctx context.Context, client ProtocolClient, opts RunOptions, until string) endpointHarvest {
	key := client.Endpoint()
	h := endpointHarvest{result: domain.EndpointResult{Endpoint: key}}

	fail := func(stage string, err error) endpointHarvest {
		s.logger.Error("endpoint harvest failed",
			"endpoint", key,
			"stage", stage,
			"error", err,
		)
		h.result.Failed = true
		h.result.Reason = fmt.Sprintf("%s: %v", stage, err)
		return h
	}

	state, err := s.store.Get(ctx, key)
	if err != nil {
		return fail("load watermark", err)
	}

	// The watermark date is reused as the next lower bound. The overlap
	// on the boundary day is deliberate: re-seeing a record is harmless,
	// missing one is not.
	from := opts.From
	if from == "" {
		if !opts.Full && state.LastHarvestDate != "" {
			from = state.LastHarvestDate
		} else {
			from = s.cfg.DefaultFromDate
		}
	}
	h.result.From = from

	sets := state.Sets
	if opts.Full || len(sets) == 0 {
		sets, err = client.DiscoverSets(ctx)
		if err != nil {
			return fail("discover sets", err)
		}
	}
	h.sets = sets

	for rec, err := range client.Records(ctx, sets, from, until) {
		if err != nil {
			// Records already parsed from earlier pages stay in the
			// run; the watermark is not advanced so the window is
			// re-harvested next time.
			return fail("harvest records", err)
		}
		h.result.Harvested++
		if doc, ok := s.parser.Parse(rec, key); ok {
			h.docs = append(h.docs, doc)
		}
	}
	h.result.Documents = len(h.docs)

	s.logger.Info("endpoint harvested",
		"endpoint", key,
		"from", from,
		"harvested", h.result.Harvested,
		"documents", h.result.Documents,
	)

	return h
}

func (s *HarvestService) commitWatermark(ctx context.Context, endpoint, until string, h endpointHarvest) error {
	state, err := s.store.Get(ctx, endpoint)
	if err != nil {
		return err
	}

	state.LastRun = time.Now().UTC()
	state.LastHarvestDate = until
	state.Sets = h.sets
	state.TotalRecords += int64(h.result.Harvested)

	return s.store.Update(ctx, endpoint, state)
}

// publishNew forwards newly discovered candidates. Queue trouble is logged
// and never fails the run.
func (s *HarvestService) publishNew(ctx context.Context, rep *domain.Report) {
	if s.publisher == nil {
		return
	}

	published := 0
	for _, section := range [][]domain.CandidateTerm{rep.NewHigh, rep.NewMedium} {
		for i := range section {
			if err := s.publisher.Publish(ctx, &section[i]); err != nil {
				s.logger.Warn("failed to publish candidate",
					"term", section[i].EN,
					"error", err,
				)
				continue
			}
			published++
		}
	}

	if published > 0 {
		s.logger.Info("published candidates", "count", published)
	}
}

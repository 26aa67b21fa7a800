package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"iter"

	"term_harvester/internal/domain"
	"term_harvester/internal/oai"
	"term_harvester/internal/report"
)

// ProtocolClient harvests one OAI-PMH endpoint.
type ProtocolClient interface {
	Endpoint() string
	DiscoverSets(ctx context.Context) ([]string, error)
	Records(ctx context.Context, sets []string, from, until string) iter.Seq2[oai.Record, error]
}

// RecordParser maps raw records to domain documents. The bool reports
// whether the record was usable.
type RecordParser interface {
	Parse(rec oai.Record, endpoint string) (*domain.DocumentRecord, bool)
}

// WatermarkStore persists per-endpoint harvest watermarks.
type WatermarkStore interface {
	Get(ctx context.Context, endpoint string) (*domain.HarvestState, error)
	Update(ctx context.Context, endpoint string, state *domain.HarvestState) error
}

// TermExtractor produces the candidate map for one run's documents.
type TermExtractor interface {
	Extract(ctx context.Context, docs []*domain.DocumentRecord) (map[string]*domain.CandidateTerm, error)
}

// Glossary answers whether a term is already published.
type Glossary interface {
	Contains(term string) bool
}

// ReportWriter builds and stores the run report.
type ReportWriter interface {
	Build(candidates map[string]*domain.CandidateTerm, known report.TermIndex, stats domain.RunStats) *domain.Report
	Write(path string, rep *domain.Report) error
}

// Publisher forwards newly discovered candidates to a message queue.
type Publisher interface {
	Publish(ctx context.Context, term *domain.CandidateTerm) error
	Close() error
}

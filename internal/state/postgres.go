package state

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"term_harvester/internal/domain"
)

// PostgresStore keeps watermarks in a harvest_state table, one row per
// endpoint. It is the backend of choice when several deployments share the
// same harvesting schedule.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type harvestStateRow struct {
	Endpoint        string         `db:"endpoint"`
	LastRun         time.Time      `db:"last_run"`
	LastHarvestDate string         `db:"last_harvest_date"`
	Sets            pq.StringArray `db:"sets"`
	TotalRecords    int64          `db:"total_records"`
}

func (s *PostgresStore) Get(ctx context.Context, endpoint string) (*domain.HarvestState, error) {
	var row harvestStateRow
	query := `
		SELECT endpoint, last_run, last_harvest_date, sets, total_records
		FROM harvest_state
		WHERE endpoint = $1`

	err := s.db.GetContext(ctx, &row, query, endpoint)
	if errors.Is(err, sql.ErrNoRows) {
		// Return empty state for new endpoints
		return &domain.HarvestState{}, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.HarvestState{
		LastRun:         row.LastRun,
		LastHarvestDate: row.LastHarvestDate,
		Sets:            []string(row.Sets),
		TotalRecords:    row.TotalRecords,
	}, nil
}

func (s *PostgresStore) Update(ctx context.Context, endpoint string, state *domain.HarvestState) error {
	query := `
		INSERT INTO harvest_state (endpoint, last_run, last_harvest_date, sets, total_records)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (endpoint) DO UPDATE SET
			last_run = EXCLUDED.last_run,
			last_harvest_date = EXCLUDED.last_harvest_date,
			sets = EXCLUDED.sets,
			total_records = EXCLUDED.total_records`

	sets := pq.StringArray(state.Sets)
	if sets == nil {
		sets = pq.StringArray{}
	}

	_, err := s.db.ExecContext(ctx, query,
		endpoint,
		state.LastRun,
		state.LastHarvestDate,
		sets,
		state.TotalRecords,
	)
	return err
}

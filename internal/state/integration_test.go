//go:build integration

package state

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"term_harvester/internal/domain"
)

type PostgresStateSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresStateSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_harvest_state.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresStateSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresStateSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM harvest_state")
}

func TestPostgresStateSuite(t *testing.T) {
	suite.Run(t, new(PostgresStateSuite))
}

func (s *PostgresStateSuite) TestGetNewEndpoint() {
	store := NewPostgresStore(s.db)

	st, err := store.Get(s.ctx, "ut")
	s.NoError(err)
	s.NotNil(st)
	s.True(st.LastRun.IsZero())
	s.Empty(st.LastHarvestDate)
	s.Equal(int64(0), st.TotalRecords)
}

func (s *PostgresStateSuite) TestUpdateAndGet() {
	store := NewPostgresStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	err := store.Update(s.ctx, "ut", &domain.HarvestState{
		LastRun:         now,
		LastHarvestDate: "2026-08-20",
		Sets:            []string{"col_10", "col_12"},
		TotalRecords:    42,
	})
	s.NoError(err)

	st, err := store.Get(s.ctx, "ut")
	s.NoError(err)
	s.Equal("2026-08-20", st.LastHarvestDate)
	s.Equal([]string{"col_10", "col_12"}, st.Sets)
	s.Equal(int64(42), st.TotalRecords)
	s.WithinDuration(now, st.LastRun, time.Second)
}

func (s *PostgresStateSuite) TestUpdateExisting() {
	store := NewPostgresStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	err := store.Update(s.ctx, "taltech", &domain.HarvestState{
		LastRun:         now,
		LastHarvestDate: "2026-01-01",
		TotalRecords:    10,
	})
	s.NoError(err)

	err = store.Update(s.ctx, "taltech", &domain.HarvestState{
		LastRun:         now,
		LastHarvestDate: "2026-02-02",
		Sets:            []string{"col_7"},
		TotalRecords:    25,
	})
	s.NoError(err)

	st, err := store.Get(s.ctx, "taltech")
	s.NoError(err)
	s.Equal("2026-02-02", st.LastHarvestDate)
	s.Equal([]string{"col_7"}, st.Sets)
	s.Equal(int64(25), st.TotalRecords)
}

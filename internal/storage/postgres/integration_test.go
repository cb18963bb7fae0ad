//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Sovexe/helldivers2-data-pipeline/internal/domain"
	"github.com/Sovexe/helldivers2-data-pipeline/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
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

	s.Require().NoError(NewSchemaManager(db).EnsureSchema(s.ctx))
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	for _, table := range []string{"war_status", "war_info", "war_news", "war_campaign", "war_major_orders", "planets"} {
		_, _ = s.db.ExecContext(s.ctx, "DELETE FROM "+table)
	}
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) TestEnsureSchema_Idempotent() {
	mgr := NewSchemaManager(s.db)

	// schema already exists from SetupSuite; repeating must be a no-op
	s.NoError(mgr.EnsureSchema(s.ctx))
	s.NoError(mgr.EnsureSchema(s.ctx))
}

func (s *PostgresIntegrationSuite) TestPlanetStatus_UpsertUpdatesInPlace() {
	store := NewPlanetStatusStore(s.db)

	first := []domain.PlanetStatus{
		{PlanetIndex: 5, Owner: utils.Ptr(1), Health: utils.Ptr(int64(100)), WarID: utils.Ptr(801)},
		{PlanetIndex: 6, Owner: utils.Ptr(2), Health: utils.Ptr(int64(50000))},
	}
	s.Require().NoError(store.UpsertBatch(s.ctx, first))

	// second sighting of planet 5 with decayed health
	second := []domain.PlanetStatus{
		{PlanetIndex: 5, Owner: utils.Ptr(1), Health: utils.Ptr(int64(80)), WarID: utils.Ptr(801)},
	}
	s.Require().NoError(store.UpsertBatch(s.ctx, second))

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM war_status"))
	s.Equal(2, count)

	var health int64
	s.Require().NoError(s.db.GetContext(s.ctx, &health, "SELECT health FROM war_status WHERE planet_index = 5"))
	s.Equal(int64(80), health)

	// planet 6 untouched
	s.Require().NoError(s.db.GetContext(s.ctx, &health, "SELECT health FROM war_status WHERE planet_index = 6"))
	s.Equal(int64(50000), health)
}

func (s *PostgresIntegrationSuite) TestPlanetStatus_Idempotent() {
	store := NewPlanetStatusStore(s.db)

	rows := []domain.PlanetStatus{
		{PlanetIndex: 1, Owner: utils.Ptr(2), Health: utils.Ptr(int64(9000)), WarID: utils.Ptr(801), Time: utils.Ptr(int64(100))},
	}
	s.Require().NoError(store.UpsertBatch(s.ctx, rows))
	s.Require().NoError(store.UpsertBatch(s.ctx, rows))

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM war_status"))
	s.Equal(1, count)

	var owner, warID int
	s.Require().NoError(s.db.GetContext(s.ctx, &owner, "SELECT owner FROM war_status WHERE planet_index = 1"))
	s.Require().NoError(s.db.GetContext(s.ctx, &warID, "SELECT war_id FROM war_status WHERE planet_index = 1"))
	s.Equal(2, owner)
	s.Equal(801, warID)
}

func (s *PostgresIntegrationSuite) TestPlanetInfo_NullPositionAndWaypoints() {
	store := NewPlanetInfoStore(s.db)

	rows := []domain.PlanetInfo{
		{PlanetIndex: 3, Waypoints: []int64{4, 5, 4}},
	}
	s.Require().NoError(store.UpsertBatch(s.ctx, rows))

	var posX, posY *float64
	row := s.db.QueryRowxContext(s.ctx, "SELECT position_x, position_y FROM war_info WHERE planet_index = 3")
	s.Require().NoError(row.Scan(&posX, &posY))
	s.Nil(posX)
	s.Nil(posY)

	var waypoints pq.Int64Array
	s.Require().NoError(s.db.GetContext(s.ctx, &waypoints, "SELECT waypoints FROM war_info WHERE planet_index = 3"))
	s.Equal(pq.Int64Array{4, 5, 4}, waypoints)
}

func (s *PostgresIntegrationSuite) TestNews_InsertOnly() {
	store := NewNewsStore(s.db)

	s.Require().NoError(store.InsertBatch(s.ctx, []domain.NewsItem{
		{ID: 42, Published: utils.Ptr(int64(5000)), Message: utils.Ptr("original dispatch")},
	}))

	// same id, different message: must not overwrite
	s.Require().NoError(store.InsertBatch(s.ctx, []domain.NewsItem{
		{ID: 42, Published: utils.Ptr(int64(6000)), Message: utils.Ptr("rewritten dispatch")},
	}))

	var message string
	s.Require().NoError(s.db.GetContext(s.ctx, &message, "SELECT message FROM war_news WHERE id = 42"))
	s.Equal("original dispatch", message)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM war_news"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestMajorOrder_TasksRoundTrip() {
	store := NewMajorOrderStore(s.db)

	tasks := types.JSONText(`[{"type": 11, "values": [1, 1, 34]}]`)
	rows := []domain.MajorOrder{
		{
			ID32:         2089553466,
			Progress:     []int64{1, 0},
			ExpiresIn:    utils.Ptr(int64(432000)),
			SettingType:  utils.Ptr(4),
			Tasks:        tasks,
			RewardType:   utils.Ptr(1),
			RewardAmount: utils.Ptr(int64(45)),
		},
	}
	s.Require().NoError(store.UpsertBatch(s.ctx, rows))

	var stored types.JSONText
	s.Require().NoError(s.db.GetContext(s.ctx, &stored, "SELECT setting_tasks FROM war_major_orders WHERE id32 = 2089553466"))
	s.JSONEq(string(tasks), string(stored))

	// re-ingest with new progress updates in place
	rows[0].Progress = []int64{1, 1}
	s.Require().NoError(store.UpsertBatch(s.ctx, rows))

	var progress pq.Int64Array
	s.Require().NoError(s.db.GetContext(s.ctx, &progress, "SELECT progress FROM war_major_orders WHERE id32 = 2089553466"))
	s.Equal(pq.Int64Array{1, 1}, progress)
}

func (s *PostgresIntegrationSuite) TestPlanet_NullEnvironmentals() {
	store := NewPlanetStore(s.db)

	rows := []domain.Planet{
		{PlanetIndex: 0, Name: utils.Ptr("Super Earth"), Sector: utils.Ptr("Sol")},
	}
	s.Require().NoError(store.UpsertBatch(s.ctx, rows))

	var env *string
	row := s.db.QueryRowxContext(s.ctx, "SELECT environmentals FROM planets WHERE planet_index = 0")
	s.Require().NoError(row.Scan(&env))
	s.Nil(env)
}

func (s *PostgresIntegrationSuite) TestTransaction_RollbackLeavesNothing() {
	tm := NewTransactionManager(s.db)
	campaigns := NewCampaignStore(s.db)
	majorOrders := NewMajorOrderStore(s.db)

	err := tm.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if err := campaigns.UpsertBatch(txCtx, []domain.Campaign{
			{PlanetIndex: 34, Name: utils.Ptr("Hellmire")},
		}); err != nil {
			return err
		}
		// the major-order phase fails after campaigns were written: the
		// tasks blob is not valid json, so the jsonb insert errors
		return majorOrders.UpsertBatch(txCtx, []domain.MajorOrder{
			{ID32: 1, Tasks: types.JSONText(`{broken`)},
		})
	})
	s.Error(err)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM war_campaign"))
	s.Equal(0, count, "rolled-back campaign rows must not be visible")
}

func (s *PostgresIntegrationSuite) TestTransaction_CommitSpansStores() {
	tm := NewTransactionManager(s.db)
	statuses := NewPlanetStatusStore(s.db)
	news := NewNewsStore(s.db)

	err := tm.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if err := statuses.UpsertBatch(txCtx, []domain.PlanetStatus{{PlanetIndex: 1}}); err != nil {
			return err
		}
		return news.InsertBatch(txCtx, []domain.NewsItem{{ID: 7, Message: utils.Ptr("dispatch")}})
	})
	s.Require().NoError(err)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM war_status"))
	s.Equal(1, count)
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM war_news"))
	s.Equal(1, count)
}

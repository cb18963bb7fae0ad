package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sovexe/helldivers2-data-pipeline/internal/domain"
)

// Stores groups the schema manager and the per-relation write stores a run
// touches. All of them must honor the transaction carried by ctx.
type Stores struct {
	Schema      SchemaManager
	Statuses    PlanetStatusStore
	Infos       PlanetInfoStore
	News        NewsStore
	Campaigns   CampaignStore
	MajorOrders MajorOrderStore
	Planets     PlanetStore
}

// SyncService runs the fetch→normalize→upsert pipeline. It provides no
// run-level mutual exclusion; if invocations overlap, transaction isolation
// in Postgres decides and the last commit wins per key.
type SyncService struct {
	source    Source
	stores    Stores
	txManager TransactionManager
	publisher Publisher
	history   HistoryIngester
	logger    *slog.Logger
}

func NewSyncService(
	source Source,
	stores Stores,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *SyncService {
	return &SyncService{
		source:    source,
		stores:    stores,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("component", "sync"),
	}
}

// WithHistoryIngester wires the optional history extension; it runs after a
// committed run, once per planet in the planets directory.
func (s *SyncService) WithHistoryIngester(h HistoryIngester) *SyncService {
	s.history = h
	return s
}

// snapshot holds whatever one run managed to fetch and normalize.
type snapshot struct {
	statuses    []domain.PlanetStatus
	infos       []domain.PlanetInfo
	news        []domain.NewsItem
	campaigns   []domain.Campaign
	majorOrders []domain.MajorOrder
	planets     []domain.Planet

	failed []string
}

func (sn *snapshot) rows() int {
	return len(sn.statuses) + len(sn.infos) + len(sn.news) +
		len(sn.campaigns) + len(sn.majorOrders) + len(sn.planets)
}

// Run executes one full pipeline cycle. Fetch failures shrink the run;
// schema or upsert failures roll the whole run back and nothing is
// persisted.
func (s *SyncService) Run(ctx context.Context) (*domain.RunStats, error) {
	start := time.Now()
	s.logger.Info("starting run", "source_name", s.source.Name())

	snap := s.fetchAll(ctx)

	stats := &domain.RunStats{
		Source:           s.source.Name(),
		ResourcesFetched: resourceCount - len(snap.failed),
		ResourcesFailed:  len(snap.failed),
		FailedResources:  snap.failed,
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.stores.Schema.EnsureSchema(txCtx); err != nil {
			return err
		}
		if err := s.stores.Statuses.UpsertBatch(txCtx, snap.statuses); err != nil {
			return fmt.Errorf("upsert planet statuses: %w", err)
		}
		if err := s.stores.Infos.UpsertBatch(txCtx, snap.infos); err != nil {
			return fmt.Errorf("upsert planet infos: %w", err)
		}
		if err := s.stores.News.InsertBatch(txCtx, snap.news); err != nil {
			return fmt.Errorf("insert news: %w", err)
		}
		if err := s.stores.Campaigns.UpsertBatch(txCtx, snap.campaigns); err != nil {
			return fmt.Errorf("upsert campaigns: %w", err)
		}
		if err := s.stores.MajorOrders.UpsertBatch(txCtx, snap.majorOrders); err != nil {
			return fmt.Errorf("upsert major orders: %w", err)
		}
		if err := s.stores.Planets.UpsertBatch(txCtx, snap.planets); err != nil {
			return fmt.Errorf("upsert planets: %w", err)
		}
		return nil
	})

	stats.Duration = time.Since(start)

	if err != nil {
		stats.Outcome = domain.RunFailed
		s.logger.Error("run rolled back", "error", err)
		return stats, fmt.Errorf("sync transaction: %w", err)
	}

	stats.RowsUpserted = snap.rows()
	if stats.ResourcesFailed > 0 {
		stats.Outcome = domain.RunPartial
	} else {
		stats.Outcome = domain.RunSuccess
	}

	s.logger.Info("run committed",
		"outcome", stats.Outcome,
		"resources_fetched", stats.ResourcesFetched,
		"resources_failed", stats.ResourcesFailed,
		"rows", stats.RowsUpserted,
		"duration", stats.Duration,
	)

	if s.publisher != nil {
		if err := s.publisher.PublishRunSummary(ctx, stats); err != nil {
			s.logger.Warn("failed to publish run summary", "error", err)
		}
	}

	s.ingestHistory(ctx, snap)

	return stats, nil
}

const resourceCount = 6

// fetchAll fans out over the six resources. Each is attempted exactly once;
// a failure is recorded and the remaining resources still run.
func (s *SyncService) fetchAll(ctx context.Context) *snapshot {
	snap := &snapshot{}

	resources := []struct {
		key   string
		fetch func(context.Context) (int, error)
	}{
		{domain.ResourceStatus, func(ctx context.Context) (int, error) {
			rows, err := s.source.FetchWarStatus(ctx)
			snap.statuses = rows
			return len(rows), err
		}},
		{domain.ResourceInfo, func(ctx context.Context) (int, error) {
			rows, err := s.source.FetchWarInfo(ctx)
			snap.infos = rows
			return len(rows), err
		}},
		{domain.ResourceNews, func(ctx context.Context) (int, error) {
			rows, err := s.source.FetchNews(ctx)
			snap.news = rows
			return len(rows), err
		}},
		{domain.ResourceCampaign, func(ctx context.Context) (int, error) {
			rows, err := s.source.FetchCampaigns(ctx)
			snap.campaigns = rows
			return len(rows), err
		}},
		{domain.ResourceMajorOrders, func(ctx context.Context) (int, error) {
			rows, err := s.source.FetchMajorOrders(ctx)
			snap.majorOrders = rows
			return len(rows), err
		}},
		{domain.ResourcePlanets, func(ctx context.Context) (int, error) {
			rows, err := s.source.FetchPlanets(ctx)
			snap.planets = rows
			return len(rows), err
		}},
	}

	for _, r := range resources {
		rows, err := r.fetch(ctx)
		if err != nil {
			s.logger.Warn("resource fetch failed", "resource", r.key, "error", err)
			snap.failed = append(snap.failed, r.key)
			continue
		}
		s.logger.Debug("resource fetched", "resource", r.key, "rows", rows)
	}

	return snap
}

func (s *SyncService) ingestHistory(ctx context.Context, snap *snapshot) {
	if s.history == nil {
		return
	}

	for _, planet := range snap.planets {
		if err := s.history.IngestHistory(ctx, planet.PlanetIndex); err != nil {
			s.logger.Warn("history ingestion failed",
				"planet_index", planet.PlanetIndex,
				"error", err,
			)
		}
	}
}

package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/Sovexe/helldivers2-data-pipeline/internal/domain"
)

// Source fetches and normalizes the six upstream resources. Each method is
// one independent resource; a failure in one never implies anything about
// the others.
type Source interface {
	Name() string
	FetchWarStatus(ctx context.Context) ([]domain.PlanetStatus, error)
	FetchWarInfo(ctx context.Context) ([]domain.PlanetInfo, error)
	FetchNews(ctx context.Context) ([]domain.NewsItem, error)
	FetchCampaigns(ctx context.Context) ([]domain.Campaign, error)
	FetchMajorOrders(ctx context.Context) ([]domain.MajorOrder, error)
	FetchPlanets(ctx context.Context) ([]domain.Planet, error)
}

type SchemaManager interface {
	EnsureSchema(ctx context.Context) error
}

type PlanetStatusStore interface {
	UpsertBatch(ctx context.Context, rows []domain.PlanetStatus) error
}

type PlanetInfoStore interface {
	UpsertBatch(ctx context.Context, rows []domain.PlanetInfo) error
}

type NewsStore interface {
	InsertBatch(ctx context.Context, rows []domain.NewsItem) error
}

type CampaignStore interface {
	UpsertBatch(ctx context.Context, rows []domain.Campaign) error
}

type MajorOrderStore interface {
	UpsertBatch(ctx context.Context, rows []domain.MajorOrder) error
}

type PlanetStore interface {
	UpsertBatch(ctx context.Context, rows []domain.Planet) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishRunSummary(ctx context.Context, stats *domain.RunStats) error
	Close() error
}

// HistoryIngester is the extension point for per-planet time-series
// ingestion against the upstream history endpoint. No implementation ships;
// the coordinator only calls it when one is wired in.
type HistoryIngester interface {
	IngestHistory(ctx context.Context, planetIndex int) error
}

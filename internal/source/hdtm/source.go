package hdtm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Sovexe/helldivers2-data-pipeline/internal/domain"
)

const (
	SourceID   = "hdtm"
	SourceName = "Helldivers Training Manual"
)

// Config holds source configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Source fetches and normalizes the war-state resources. Each resource is a
// single GET with a bounded timeout; there is no retry within a run, the
// next run is the retry.
type Source struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// New creates a new Training Manual source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger.With("source", SourceID),
	}
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchWarStatus fetches war/status and returns one row per planet with the
// envelope context merged in.
func (s *Source) FetchWarStatus(ctx context.Context) ([]domain.PlanetStatus, error) {
	var resp WarStatusResponse
	if err := s.get(ctx, "war/status", &resp); err != nil {
		return nil, err
	}
	return s.transformStatus(&resp), nil
}

// FetchWarInfo fetches war/info and returns one row per planet.
func (s *Source) FetchWarInfo(ctx context.Context) ([]domain.PlanetInfo, error) {
	var resp WarInfoResponse
	if err := s.get(ctx, "war/info", &resp); err != nil {
		return nil, err
	}
	return s.transformInfo(&resp), nil
}

// FetchNews fetches war/news.
func (s *Source) FetchNews(ctx context.Context) ([]domain.NewsItem, error) {
	var entries []NewsEntry
	if err := s.get(ctx, "war/news", &entries); err != nil {
		return nil, err
	}
	return s.transformNews(entries), nil
}

// FetchCampaigns fetches war/campaign.
func (s *Source) FetchCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var entries []CampaignEntry
	if err := s.get(ctx, "war/campaign", &entries); err != nil {
		return nil, err
	}
	return s.transformCampaigns(entries), nil
}

// FetchMajorOrders fetches war/major-orders.
func (s *Source) FetchMajorOrders(ctx context.Context) ([]domain.MajorOrder, error) {
	var entries []MajorOrderEntry
	if err := s.get(ctx, "war/major-orders", &entries); err != nil {
		return nil, err
	}
	return s.transformMajorOrders(entries), nil
}

// FetchPlanets fetches the planets directory, a map keyed by planet index.
func (s *Source) FetchPlanets(ctx context.Context) ([]domain.Planet, error) {
	var entries map[string]PlanetEntry
	if err := s.get(ctx, "planets", &entries); err != nil {
		return nil, err
	}
	return s.transformPlanets(entries), nil
}

func (s *Source) get(ctx context.Context, path string, out any) error {
	url := s.baseURL + "/" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "HD2DataPipeline/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("fetch failed", "url", url, "error", err)
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("fetch failed", "url", url, "status", resp.StatusCode)
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		s.logger.Warn("fetch failed", "url", url, "error", err)
		return fmt.Errorf("decode response: %w", err)
	}

	s.logger.Info("fetched resource", "url", url)
	return nil
}

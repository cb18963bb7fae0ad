package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Sovexe/helldivers2-data-pipeline/internal/domain"
)

type CampaignStore struct {
	db *sqlx.DB
}

func NewCampaignStore(db *sqlx.DB) *CampaignStore {
	return &CampaignStore{db: db}
}

func (s *CampaignStore) UpsertBatch(ctx context.Context, rows []domain.Campaign) error {
	if len(rows) == 0 {
		return nil
	}

	query := `
		INSERT INTO war_campaign (
			planet_index, name, faction, players, health, max_health,
			percentage, defense, major_order, biome_slug, biome_description,
			expire_date_time
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		ON CONFLICT (planet_index) DO UPDATE SET
			name = EXCLUDED.name,
			faction = EXCLUDED.faction,
			players = EXCLUDED.players,
			health = EXCLUDED.health,
			max_health = EXCLUDED.max_health,
			percentage = EXCLUDED.percentage,
			defense = EXCLUDED.defense,
			major_order = EXCLUDED.major_order,
			biome_slug = EXCLUDED.biome_slug,
			biome_description = EXCLUDED.biome_description,
			expire_date_time = EXCLUDED.expire_date_time`

	exec := GetExecutor(ctx, s.db)
	for _, row := range rows {
		_, err := exec.ExecContext(ctx, query,
			row.PlanetIndex,
			row.Name,
			row.Faction,
			row.Players,
			row.Health,
			row.MaxHealth,
			row.Percentage,
			row.Defense,
			row.MajorOrder,
			row.BiomeSlug,
			row.BiomeDescription,
			row.ExpireDateTime,
		)
		if err != nil {
			return fmt.Errorf("upsert war_campaign planet %d: %w", row.PlanetIndex, err)
		}
	}

	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Sovexe/helldivers2-data-pipeline/internal/domain"
)

type PlanetStore struct {
	db *sqlx.DB
}

func NewPlanetStore(db *sqlx.DB) *PlanetStore {
	return &PlanetStore{db: db}
}

func (s *PlanetStore) UpsertBatch(ctx context.Context, rows []domain.Planet) error {
	if len(rows) == 0 {
		return nil
	}

	query := `
		INSERT INTO planets (
			planet_index, name, sector, biome_slug, biome_description,
			environmentals
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (planet_index) DO UPDATE SET
			name = EXCLUDED.name,
			sector = EXCLUDED.sector,
			biome_slug = EXCLUDED.biome_slug,
			biome_description = EXCLUDED.biome_description,
			environmentals = EXCLUDED.environmentals`

	exec := GetExecutor(ctx, s.db)
	for _, row := range rows {
		_, err := exec.ExecContext(ctx, query,
			row.PlanetIndex,
			row.Name,
			row.Sector,
			row.BiomeSlug,
			row.BiomeDescription,
			jsonArg(row.Environmentals),
		)
		if err != nil {
			return fmt.Errorf("upsert planets planet %d: %w", row.PlanetIndex, err)
		}
	}

	return nil
}

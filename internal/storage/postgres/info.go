package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Sovexe/helldivers2-data-pipeline/internal/domain"
)

type PlanetInfoStore struct {
	db *sqlx.DB
}

func NewPlanetInfoStore(db *sqlx.DB) *PlanetInfoStore {
	return &PlanetInfoStore{db: db}
}

func (s *PlanetInfoStore) UpsertBatch(ctx context.Context, rows []domain.PlanetInfo) error {
	if len(rows) == 0 {
		return nil
	}

	query := `
		INSERT INTO war_info (
			planet_index, settings_hash, position_x, position_y, waypoints,
			sector, max_health, disabled, initial_owner, war_id,
			start_date, end_date, minimum_client_version
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		ON CONFLICT (planet_index) DO UPDATE SET
			settings_hash = EXCLUDED.settings_hash,
			position_x = EXCLUDED.position_x,
			position_y = EXCLUDED.position_y,
			waypoints = EXCLUDED.waypoints,
			sector = EXCLUDED.sector,
			max_health = EXCLUDED.max_health,
			disabled = EXCLUDED.disabled,
			initial_owner = EXCLUDED.initial_owner,
			war_id = EXCLUDED.war_id,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			minimum_client_version = EXCLUDED.minimum_client_version`

	exec := GetExecutor(ctx, s.db)
	for _, row := range rows {
		_, err := exec.ExecContext(ctx, query,
			row.PlanetIndex,
			row.SettingsHash,
			row.PositionX,
			row.PositionY,
			pq.Array(row.Waypoints),
			row.Sector,
			row.MaxHealth,
			row.Disabled,
			row.InitialOwner,
			row.WarID,
			row.StartDate,
			row.EndDate,
			row.MinimumClientVersion,
		)
		if err != nil {
			return fmt.Errorf("upsert war_info planet %d: %w", row.PlanetIndex, err)
		}
	}

	return nil
}

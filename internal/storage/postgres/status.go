package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Sovexe/helldivers2-data-pipeline/internal/domain"
)

type PlanetStatusStore struct {
	db *sqlx.DB
}

func NewPlanetStatusStore(db *sqlx.DB) *PlanetStatusStore {
	return &PlanetStatusStore{db: db}
}

// UpsertBatch writes the rows in normalized order, replacing the full
// non-key column set on conflict.
func (s *PlanetStatusStore) UpsertBatch(ctx context.Context, rows []domain.PlanetStatus) error {
	if len(rows) == 0 {
		return nil
	}

	query := `
		INSERT INTO war_status (
			planet_index, owner, health, regen_per_second, players,
			war_id, time, impact_multiplier, story_beat_id32
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (planet_index) DO UPDATE SET
			owner = EXCLUDED.owner,
			health = EXCLUDED.health,
			regen_per_second = EXCLUDED.regen_per_second,
			players = EXCLUDED.players,
			war_id = EXCLUDED.war_id,
			time = EXCLUDED.time,
			impact_multiplier = EXCLUDED.impact_multiplier,
			story_beat_id32 = EXCLUDED.story_beat_id32`

	exec := GetExecutor(ctx, s.db)
	for _, row := range rows {
		_, err := exec.ExecContext(ctx, query,
			row.PlanetIndex,
			row.Owner,
			row.Health,
			row.RegenPerSecond,
			row.Players,
			row.WarID,
			row.Time,
			row.ImpactMultiplier,
			row.StoryBeatID32,
		)
		if err != nil {
			return fmt.Errorf("upsert war_status planet %d: %w", row.PlanetIndex, err)
		}
	}

	return nil
}

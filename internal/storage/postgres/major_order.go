package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"

	"github.com/Sovexe/helldivers2-data-pipeline/internal/domain"
)

type MajorOrderStore struct {
	db *sqlx.DB
}

func NewMajorOrderStore(db *sqlx.DB) *MajorOrderStore {
	return &MajorOrderStore{db: db}
}

func (s *MajorOrderStore) UpsertBatch(ctx context.Context, rows []domain.MajorOrder) error {
	if len(rows) == 0 {
		return nil
	}

	query := `
		INSERT INTO war_major_orders (
			id32, progress, expires_in, setting_type, setting_override_title,
			setting_override_brief, setting_task_description, setting_tasks,
			setting_reward_type, setting_reward_id32, setting_reward_amount,
			setting_flags
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		ON CONFLICT (id32) DO UPDATE SET
			progress = EXCLUDED.progress,
			expires_in = EXCLUDED.expires_in,
			setting_type = EXCLUDED.setting_type,
			setting_override_title = EXCLUDED.setting_override_title,
			setting_override_brief = EXCLUDED.setting_override_brief,
			setting_task_description = EXCLUDED.setting_task_description,
			setting_tasks = EXCLUDED.setting_tasks,
			setting_reward_type = EXCLUDED.setting_reward_type,
			setting_reward_id32 = EXCLUDED.setting_reward_id32,
			setting_reward_amount = EXCLUDED.setting_reward_amount,
			setting_flags = EXCLUDED.setting_flags`

	exec := GetExecutor(ctx, s.db)
	for _, row := range rows {
		_, err := exec.ExecContext(ctx, query,
			row.ID32,
			pq.Array(row.Progress),
			row.ExpiresIn,
			row.SettingType,
			row.OverrideTitle,
			row.OverrideBrief,
			row.TaskDescription,
			jsonArg(row.Tasks),
			row.RewardType,
			row.RewardID32,
			row.RewardAmount,
			row.Flags,
		)
		if err != nil {
			return fmt.Errorf("upsert war_major_orders order %d: %w", row.ID32, err)
		}
	}

	return nil
}

// jsonArg converts an opaque blob to a text parameter the driver sends as
// jsonb input. A nil blob becomes SQL NULL.
func jsonArg(j types.JSONText) interface{} {
	if j == nil {
		return nil
	}
	return string(j)
}

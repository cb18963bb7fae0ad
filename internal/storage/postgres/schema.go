package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DDL for the six war-state relations. Primary keys are the feed's natural
// identifiers; nothing is generated locally. id32 and settings_hash values
// are unsigned 32-bit on the wire, so they get BIGINT columns.
const schema = `
CREATE TABLE IF NOT EXISTS war_status (
    planet_index      INTEGER PRIMARY KEY,
    owner             INTEGER,
    health            BIGINT,
    regen_per_second  DOUBLE PRECISION,
    players           INTEGER,
    war_id            INTEGER,
    time              BIGINT,
    impact_multiplier DOUBLE PRECISION,
    story_beat_id32   BIGINT
);

CREATE TABLE IF NOT EXISTS war_info (
    planet_index           INTEGER PRIMARY KEY,
    settings_hash          BIGINT,
    position_x             DOUBLE PRECISION,
    position_y             DOUBLE PRECISION,
    waypoints              BIGINT[],
    sector                 INTEGER,
    max_health             BIGINT,
    disabled               BOOLEAN,
    initial_owner          INTEGER,
    war_id                 INTEGER,
    start_date             BIGINT,
    end_date               BIGINT,
    minimum_client_version VARCHAR
);

CREATE TABLE IF NOT EXISTS war_news (
    id        INTEGER PRIMARY KEY,
    published BIGINT,
    type      INTEGER,
    tag_ids   BIGINT[],
    message   TEXT
);

CREATE TABLE IF NOT EXISTS war_campaign (
    planet_index      INTEGER PRIMARY KEY,
    name              VARCHAR,
    faction           VARCHAR,
    players           INTEGER,
    health            BIGINT,
    max_health        BIGINT,
    percentage        DOUBLE PRECISION,
    defense           BOOLEAN,
    major_order       BOOLEAN,
    biome_slug        VARCHAR,
    biome_description TEXT,
    expire_date_time  TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS war_major_orders (
    id32                     BIGINT PRIMARY KEY,
    progress                 BIGINT[],
    expires_in               BIGINT,
    setting_type             INTEGER,
    setting_override_title   VARCHAR,
    setting_override_brief   TEXT,
    setting_task_description TEXT,
    setting_tasks            JSONB,
    setting_reward_type      INTEGER,
    setting_reward_id32      BIGINT,
    setting_reward_amount    BIGINT,
    setting_flags            INTEGER
);

CREATE TABLE IF NOT EXISTS planets (
    planet_index      INTEGER PRIMARY KEY,
    name              VARCHAR,
    sector            VARCHAR,
    biome_slug        VARCHAR,
    biome_description TEXT,
    environmentals    JSONB
);
`

// SchemaManager creates the target relations when they are missing. Safe to
// run on every sync; existing tables are never altered.
type SchemaManager struct {
	db *sqlx.DB
}

func NewSchemaManager(db *sqlx.DB) *SchemaManager {
	return &SchemaManager{db: db}
}

func (m *SchemaManager) EnsureSchema(ctx context.Context) error {
	if _, err := GetExecutor(ctx, m.db).ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

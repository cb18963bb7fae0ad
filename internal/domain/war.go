package domain

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Resource keys for the upstream endpoints. They show up in logs, run stats
// and the published run summary.
const (
	ResourceStatus      = "status"
	ResourceInfo        = "info"
	ResourceNews        = "news"
	ResourceCampaign    = "campaign"
	ResourceMajorOrders = "major_orders"
	ResourcePlanets     = "planets"
)

// PlanetStatus is one row of war_status: the per-planet slice of the war
// status envelope, with the envelope context (war id, feed time, impact
// multiplier, story beat) merged in.
type PlanetStatus struct {
	PlanetIndex      int
	Owner            *int
	Health           *int64
	RegenPerSecond   *float64
	Players          *int
	WarID            *int
	Time             *int64
	ImpactMultiplier *float64
	StoryBeatID32    *int64
}

// PlanetInfo is one row of war_info. Waypoints is an ordered list; order and
// duplicates come straight from the feed.
type PlanetInfo struct {
	PlanetIndex          int
	SettingsHash         *int64
	PositionX            *float64
	PositionY            *float64
	Waypoints            []int64
	Sector               *int
	MaxHealth            *int64
	Disabled             *bool
	InitialOwner         *int
	WarID                *int
	StartDate            *int64
	EndDate              *int64
	MinimumClientVersion *string
}

// NewsItem is one row of war_news. Rows are insert-only: once an id is
// stored its content never changes, whatever later payloads say.
type NewsItem struct {
	ID        int
	Published *int64
	Type      *int
	TagIDs    []int64
	Message   *string
}

// Campaign is one row of war_campaign with the biome sub-object flattened.
type Campaign struct {
	PlanetIndex      int
	Name             *string
	Faction          *string
	Players          *int
	Health           *int64
	MaxHealth        *int64
	Percentage       *float64
	Defense          *bool
	MajorOrder       *bool
	BiomeSlug        *string
	BiomeDescription *string
	ExpireDateTime   *time.Time
}

// MajorOrder is one row of war_major_orders with the setting and reward
// sub-objects flattened. Tasks keeps the feed's arbitrarily nested task list
// as an opaque JSON blob.
type MajorOrder struct {
	ID32            int64
	Progress        []int64
	ExpiresIn       *int64
	SettingType     *int
	OverrideTitle   *string
	OverrideBrief   *string
	TaskDescription *string
	Tasks           types.JSONText
	RewardType      *int
	RewardID32      *int64
	RewardAmount    *int64
	Flags           *int
}

// Planet is one row of planets, the static planet directory.
type Planet struct {
	PlanetIndex      int
	Name             *string
	Sector           *string
	BiomeSlug        *string
	BiomeDescription *string
	Environmentals   types.JSONText
}

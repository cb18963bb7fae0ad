package hdtm

import "encoding/json"

// Raw API shapes for the Helldivers Training Manual war endpoints. Optional
// fields are pointers so a missing field and an explicit null both come out
// as nil; the feed does not distinguish them and neither do we.

type WarStatusResponse struct {
	WarID            *int                `json:"warId"`
	Time             *int64              `json:"time"`
	ImpactMultiplier *float64            `json:"impactMultiplier"`
	StoryBeatID32    *int64              `json:"storyBeatId32"`
	PlanetStatus     []PlanetStatusEntry `json:"planetStatus"`
}

type PlanetStatusEntry struct {
	Index          *int     `json:"index"`
	Owner          *int     `json:"owner"`
	Health         *int64   `json:"health"`
	RegenPerSecond *float64 `json:"regenPerSecond"`
	Players        *int     `json:"players"`
}

type WarInfoResponse struct {
	WarID                *int              `json:"warId"`
	StartDate            *int64            `json:"startDate"`
	EndDate              *int64            `json:"endDate"`
	MinimumClientVersion *string           `json:"minimumClientVersion"`
	PlanetInfos          []PlanetInfoEntry `json:"planetInfos"`
}

type PlanetInfoEntry struct {
	Index        *int      `json:"index"`
	SettingsHash *int64    `json:"settingsHash"`
	Position     *Position `json:"position"`
	Waypoints    []int64   `json:"waypoints"`
	Sector       *int      `json:"sector"`
	MaxHealth    *int64    `json:"maxHealth"`
	Disabled     *bool     `json:"disabled"`
	InitialOwner *int      `json:"initialOwner"`
}

type Position struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type NewsEntry struct {
	ID        *int    `json:"id"`
	Published *int64  `json:"published"`
	Type      *int    `json:"type"`
	TagIDs    []int64 `json:"tagIds"`
	Message   *string `json:"message"`
}

type CampaignEntry struct {
	PlanetIndex    *int     `json:"planetIndex"`
	Name           *string  `json:"name"`
	Faction        *string  `json:"faction"`
	Players        *int     `json:"players"`
	Health         *int64   `json:"health"`
	MaxHealth      *int64   `json:"maxHealth"`
	Percentage     *float64 `json:"percentage"`
	Defense        *bool    `json:"defense"`
	MajorOrder     *bool    `json:"majorOrder"`
	Biome          *Biome   `json:"biome"`
	ExpireDateTime *float64 `json:"expireDateTime"`
}

type Biome struct {
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

type MajorOrderEntry struct {
	ID32      *int64             `json:"id32"`
	Progress  []int64            `json:"progress"`
	ExpiresIn *int64             `json:"expiresIn"`
	Setting   *MajorOrderSetting `json:"setting"`
}

// MajorOrderSetting flattens into prefixed columns except Tasks, whose shape
// varies per order type and is stored as-is.
type MajorOrderSetting struct {
	Type            *int            `json:"type"`
	OverrideTitle   *string         `json:"overrideTitle"`
	OverrideBrief   *string         `json:"overrideBrief"`
	TaskDescription *string         `json:"taskDescription"`
	Tasks           json.RawMessage `json:"tasks"`
	Reward          *Reward         `json:"reward"`
	Flags           *int            `json:"flags"`
}

type Reward struct {
	Type   *int   `json:"type"`
	ID32   *int64 `json:"id32"`
	Amount *int64 `json:"amount"`
}

// PlanetEntry is one value of the planets directory, which is keyed by
// planet index rather than shipped as a list.
type PlanetEntry struct {
	Name           *string         `json:"name"`
	Sector         *string         `json:"sector"`
	Biome          *Biome          `json:"biome"`
	Environmentals json.RawMessage `json:"environmentals"`
}

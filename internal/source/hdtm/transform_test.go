package hdtm

import (
	"encoding/json"
	"log/slog"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sovexe/helldivers2-data-pipeline/testdata/utils"
)

func newTestSource(t *testing.T) *Source {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(Config{BaseURL: "http://example.test", Timeout: time.Second}, logger)
}

func TestTransformStatus_MergesEnvelopeContext(t *testing.T) {
	s := newTestSource(t)

	resp := &WarStatusResponse{
		WarID:            utils.Ptr(801),
		Time:             utils.Ptr(int64(100)),
		ImpactMultiplier: utils.Ptr(0.015),
		StoryBeatID32:    utils.Ptr(int64(2150584347)),
		PlanetStatus: []PlanetStatusEntry{
			{Index: utils.Ptr(1), Owner: utils.Ptr(2), Health: utils.Ptr(int64(9000))},
			{Index: utils.Ptr(5), Owner: utils.Ptr(1)},
		},
	}

	rows := s.transformStatus(resp)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].PlanetIndex)
	require.NotNil(t, rows[0].Owner)
	assert.Equal(t, 2, *rows[0].Owner)
	require.NotNil(t, rows[0].Health)
	assert.Equal(t, int64(9000), *rows[0].Health)

	// envelope context lands on every row
	for _, row := range rows {
		require.NotNil(t, row.WarID)
		assert.Equal(t, 801, *row.WarID)
		require.NotNil(t, row.Time)
		assert.Equal(t, int64(100), *row.Time)
		require.NotNil(t, row.ImpactMultiplier)
		assert.Equal(t, 0.015, *row.ImpactMultiplier)
	}

	// optional fields stay nil, no defaults invented
	assert.Nil(t, rows[1].Health)
	assert.Nil(t, rows[1].RegenPerSecond)
}

func TestTransformStatus_DropsRowsWithoutIndex(t *testing.T) {
	s := newTestSource(t)

	resp := &WarStatusResponse{
		PlanetStatus: []PlanetStatusEntry{
			{Owner: utils.Ptr(2)},
			{Index: utils.Ptr(7)},
		},
	}

	rows := s.transformStatus(resp)
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].PlanetIndex)
	assert.Nil(t, rows[0].WarID)
}

func TestTransformInfo_FlattensPosition(t *testing.T) {
	s := newTestSource(t)

	resp := &WarInfoResponse{
		WarID:                utils.Ptr(801),
		StartDate:            utils.Ptr(int64(1706040313)),
		EndDate:              utils.Ptr(int64(1833653095)),
		MinimumClientVersion: utils.Ptr("0.3.0"),
		PlanetInfos: []PlanetInfoEntry{
			{
				Index:        utils.Ptr(1),
				SettingsHash: utils.Ptr(int64(2188275761)),
				Position:     &Position{X: utils.Ptr(0.5), Y: utils.Ptr(-0.25)},
				Waypoints:    []int64{2, 3, 2},
			},
			{
				Index: utils.Ptr(2),
				// no position object at all
			},
		},
	}

	rows := s.transformInfo(resp)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].PositionX)
	assert.Equal(t, 0.5, *rows[0].PositionX)
	require.NotNil(t, rows[0].PositionY)
	assert.Equal(t, -0.25, *rows[0].PositionY)
	assert.Equal(t, []int64{2, 3, 2}, rows[0].Waypoints, "waypoint order and duplicates preserved")

	assert.Nil(t, rows[1].PositionX)
	assert.Nil(t, rows[1].PositionY)
	assert.Empty(t, rows[1].Waypoints)

	require.NotNil(t, rows[1].MinimumClientVersion)
	assert.Equal(t, "0.3.0", *rows[1].MinimumClientVersion)
}

func TestTransformNews(t *testing.T) {
	s := newTestSource(t)

	entries := []NewsEntry{
		{ID: utils.Ptr(42), Published: utils.Ptr(int64(5000)), Type: utils.Ptr(0), TagIDs: []int64{3401}, Message: utils.Ptr("LIBERTY DAY")},
		{Message: utils.Ptr("no id, dropped")},
	}

	rows := s.transformNews(entries)
	require.Len(t, rows, 1)
	assert.Equal(t, 42, rows[0].ID)
	assert.Equal(t, []int64{3401}, rows[0].TagIDs)
	require.NotNil(t, rows[0].Message)
	assert.Equal(t, "LIBERTY DAY", *rows[0].Message)
}

func TestTransformCampaigns_FlattensBiomeAndExpiry(t *testing.T) {
	s := newTestSource(t)

	entries := []CampaignEntry{
		{
			PlanetIndex:    utils.Ptr(34),
			Name:           utils.Ptr("Hellmire"),
			Faction:        utils.Ptr("Terminids"),
			Defense:        utils.Ptr(false),
			Biome:          &Biome{Slug: utils.Ptr("desolate"), Description: utils.Ptr("A desolate wasteland.")},
			ExpireDateTime: utils.Ptr(float64(1717200000)),
		},
		{
			PlanetIndex: utils.Ptr(35),
			// no biome, no expiry
		},
	}

	rows := s.transformCampaigns(entries)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].BiomeSlug)
	assert.Equal(t, "desolate", *rows[0].BiomeSlug)
	require.NotNil(t, rows[0].ExpireDateTime)
	assert.Equal(t, time.Unix(1717200000, 0).UTC(), *rows[0].ExpireDateTime)

	assert.Nil(t, rows[1].BiomeSlug)
	assert.Nil(t, rows[1].BiomeDescription)
	assert.Nil(t, rows[1].ExpireDateTime)
}

func TestTransformMajorOrders_FlattensSettingAndReward(t *testing.T) {
	s := newTestSource(t)

	tasks := json.RawMessage(`[{"type":11,"values":[1,1,34]}]`)
	entries := []MajorOrderEntry{
		{
			ID32:      utils.Ptr(int64(2089553466)),
			Progress:  []int64{1, 0, 0},
			ExpiresIn: utils.Ptr(int64(432000)),
			Setting: &MajorOrderSetting{
				Type:            utils.Ptr(4),
				OverrideTitle:   utils.Ptr("MAJOR ORDER"),
				OverrideBrief:   utils.Ptr("Liberate the listed planets."),
				TaskDescription: utils.Ptr("Liberate planets"),
				Tasks:           tasks,
				Reward:          &Reward{Type: utils.Ptr(1), ID32: utils.Ptr(int64(897894480)), Amount: utils.Ptr(int64(45))},
				Flags:           utils.Ptr(1),
			},
		},
		{
			ID32: utils.Ptr(int64(12345)),
			// no setting at all
		},
	}

	rows := s.transformMajorOrders(entries)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(2089553466), rows[0].ID32)
	assert.Equal(t, []int64{1, 0, 0}, rows[0].Progress)
	require.NotNil(t, rows[0].RewardAmount)
	assert.Equal(t, int64(45), *rows[0].RewardAmount)
	assert.JSONEq(t, string(tasks), string(rows[0].Tasks))

	assert.Nil(t, rows[1].SettingType)
	assert.Nil(t, rows[1].RewardType)
	assert.Nil(t, rows[1].Tasks)
}

func TestTransformPlanets_ParsesMapKeys(t *testing.T) {
	s := newTestSource(t)

	entries := map[string]PlanetEntry{
		"0": {
			Name:           utils.Ptr("Super Earth"),
			Sector:         utils.Ptr("Sol"),
			Biome:          &Biome{Slug: utils.Ptr("supercolony")},
			Environmentals: json.RawMessage(`[{"name":"None","description":"Quite pleasant."}]`),
		},
		"64": {Name: utils.Ptr("Meridia")},
		"not-a-number": {Name: utils.Ptr("dropped")},
	}

	rows := s.transformPlanets(entries)
	require.Len(t, rows, 2)

	sort.Slice(rows, func(i, j int) bool { return rows[i].PlanetIndex < rows[j].PlanetIndex })

	assert.Equal(t, 0, rows[0].PlanetIndex)
	require.NotNil(t, rows[0].Name)
	assert.Equal(t, "Super Earth", *rows[0].Name)
	require.NotNil(t, rows[0].BiomeSlug)
	assert.Equal(t, "supercolony", *rows[0].BiomeSlug)
	assert.NotNil(t, rows[0].Environmentals)

	assert.Equal(t, 64, rows[1].PlanetIndex)
	assert.Nil(t, rows[1].BiomeSlug)
	assert.Nil(t, rows[1].Environmentals)
}

func TestTransformStatus_EmptyEnvelope(t *testing.T) {
	s := newTestSource(t)
	assert.Empty(t, s.transformStatus(&WarStatusResponse{}))
}

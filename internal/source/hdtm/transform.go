package hdtm

import (
	"strconv"
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/Sovexe/helldivers2-data-pipeline/internal/domain"
)

// Transforms map raw API shapes onto flat row records. Rows without their
// natural key are dropped and logged; every other missing field passes
// through as nil.

func (s *Source) transformStatus(resp *WarStatusResponse) []domain.PlanetStatus {
	rows := make([]domain.PlanetStatus, 0, len(resp.PlanetStatus))

	for _, e := range resp.PlanetStatus {
		if e.Index == nil {
			s.logger.Warn("dropping planet status without index")
			continue
		}

		rows = append(rows, domain.PlanetStatus{
			PlanetIndex:      *e.Index,
			Owner:            e.Owner,
			Health:           e.Health,
			RegenPerSecond:   e.RegenPerSecond,
			Players:          e.Players,
			WarID:            resp.WarID,
			Time:             resp.Time,
			ImpactMultiplier: resp.ImpactMultiplier,
			StoryBeatID32:    resp.StoryBeatID32,
		})
	}

	return rows
}

func (s *Source) transformInfo(resp *WarInfoResponse) []domain.PlanetInfo {
	rows := make([]domain.PlanetInfo, 0, len(resp.PlanetInfos))

	for _, e := range resp.PlanetInfos {
		if e.Index == nil {
			s.logger.Warn("dropping planet info without index")
			continue
		}

		row := domain.PlanetInfo{
			PlanetIndex:          *e.Index,
			SettingsHash:         e.SettingsHash,
			Waypoints:            e.Waypoints,
			Sector:               e.Sector,
			MaxHealth:            e.MaxHealth,
			Disabled:             e.Disabled,
			InitialOwner:         e.InitialOwner,
			WarID:                resp.WarID,
			StartDate:            resp.StartDate,
			EndDate:              resp.EndDate,
			MinimumClientVersion: resp.MinimumClientVersion,
		}

		if e.Position != nil {
			row.PositionX = e.Position.X
			row.PositionY = e.Position.Y
		}

		rows = append(rows, row)
	}

	return rows
}

func (s *Source) transformNews(entries []NewsEntry) []domain.NewsItem {
	rows := make([]domain.NewsItem, 0, len(entries))

	for _, e := range entries {
		if e.ID == nil {
			s.logger.Warn("dropping news item without id")
			continue
		}

		rows = append(rows, domain.NewsItem{
			ID:        *e.ID,
			Published: e.Published,
			Type:      e.Type,
			TagIDs:    e.TagIDs,
			Message:   e.Message,
		})
	}

	return rows
}

func (s *Source) transformCampaigns(entries []CampaignEntry) []domain.Campaign {
	rows := make([]domain.Campaign, 0, len(entries))

	for _, e := range entries {
		if e.PlanetIndex == nil {
			s.logger.Warn("dropping campaign without planet index")
			continue
		}

		row := domain.Campaign{
			PlanetIndex:    *e.PlanetIndex,
			Name:           e.Name,
			Faction:        e.Faction,
			Players:        e.Players,
			Health:         e.Health,
			MaxHealth:      e.MaxHealth,
			Percentage:     e.Percentage,
			Defense:        e.Defense,
			MajorOrder:     e.MajorOrder,
			ExpireDateTime: epochToTime(e.ExpireDateTime),
		}

		if e.Biome != nil {
			row.BiomeSlug = e.Biome.Slug
			row.BiomeDescription = e.Biome.Description
		}

		rows = append(rows, row)
	}

	return rows
}

func (s *Source) transformMajorOrders(entries []MajorOrderEntry) []domain.MajorOrder {
	rows := make([]domain.MajorOrder, 0, len(entries))

	for _, e := range entries {
		if e.ID32 == nil {
			s.logger.Warn("dropping major order without id32")
			continue
		}

		row := domain.MajorOrder{
			ID32:      *e.ID32,
			Progress:  e.Progress,
			ExpiresIn: e.ExpiresIn,
		}

		if setting := e.Setting; setting != nil {
			row.SettingType = setting.Type
			row.OverrideTitle = setting.OverrideTitle
			row.OverrideBrief = setting.OverrideBrief
			row.TaskDescription = setting.TaskDescription
			row.Flags = setting.Flags
			if setting.Tasks != nil {
				row.Tasks = types.JSONText(setting.Tasks)
			}
			if setting.Reward != nil {
				row.RewardType = setting.Reward.Type
				row.RewardID32 = setting.Reward.ID32
				row.RewardAmount = setting.Reward.Amount
			}
		}

		rows = append(rows, row)
	}

	return rows
}

func (s *Source) transformPlanets(entries map[string]PlanetEntry) []domain.Planet {
	rows := make([]domain.Planet, 0, len(entries))

	for key, e := range entries {
		index, err := strconv.Atoi(key)
		if err != nil {
			s.logger.Warn("dropping planet with unparseable index", "key", key)
			continue
		}

		row := domain.Planet{
			PlanetIndex: index,
			Name:        e.Name,
			Sector:      e.Sector,
		}

		if e.Biome != nil {
			row.BiomeSlug = e.Biome.Slug
			row.BiomeDescription = e.Biome.Description
		}
		if e.Environmentals != nil {
			row.Environmentals = types.JSONText(e.Environmentals)
		}

		rows = append(rows, row)
	}

	return rows
}

func epochToTime(sec *float64) *time.Time {
	if sec == nil {
		return nil
	}
	t := time.Unix(int64(*sec), 0).UTC()
	return &t
}

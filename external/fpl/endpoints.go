package fpl

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fpl-cli/internal/domain/dreamteam"
	"github.com/riskibarqy/fpl-cli/internal/domain/fixture"
	"github.com/riskibarqy/fpl-cli/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-cli/internal/domain/live"
	"github.com/riskibarqy/fpl-cli/internal/domain/manager"
	"github.com/riskibarqy/fpl-cli/internal/domain/player"
	"github.com/riskibarqy/fpl-cli/internal/domain/season"
	"github.com/riskibarqy/fpl-cli/internal/domain/summary"
	"github.com/riskibarqy/fpl-cli/internal/domain/team"
)

const (
	pathBootstrapStatic = "/bootstrap-static/"
	pathFixtures        = "/fixtures/"
)

func liveEventPath(eventID int64) string {
	return fmt.Sprintf("/event/%d/live/", eventID)
}

func elementSummaryPath(elementID int64) string {
	return fmt.Sprintf("/element-summary/%d/", elementID)
}

func managerPicksPath(managerID, eventID int64) string {
	return fmt.Sprintf("/entry/%d/event/%d/picks/", managerID, eventID)
}

func dreamTeamPath(eventID int64) string {
	return fmt.Sprintf("/dream-team/%d/", eventID)
}

func (c *Client) FetchSeasonSnapshot(ctx context.Context) (season.Snapshot, error) {
	var payload bootstrapEnvelope
	if err := c.doJSON(ctx, pathBootstrapStatic, &payload); err != nil {
		return season.Snapshot{}, err
	}

	out := season.Snapshot{
		Events:   make([]gameweek.Event, 0, len(payload.Events)),
		Elements: make([]player.Element, 0, len(payload.Elements)),
		Teams:    make([]team.Team, 0, len(payload.Teams)),
	}
	for i, item := range payload.Events {
		if item.ID <= 0 {
			return season.Snapshot{}, missingField(pathBootstrapStatic, "events", i, "id")
		}
		out.Events = append(out.Events, gameweek.Event{
			ID:           item.ID,
			Name:         strings.TrimSpace(item.Name),
			IsCurrent:    item.IsCurrent,
			IsNext:       item.IsNext,
			Finished:     item.Finished,
			DeadlineTime: item.DeadlineTime.Or(""),
		})
	}
	for i, item := range payload.Elements {
		if item.ID <= 0 {
			return season.Snapshot{}, missingField(pathBootstrapStatic, "elements", i, "id")
		}
		out.Elements = append(out.Elements, player.Element{
			ID:                item.ID,
			WebName:           strings.TrimSpace(item.WebName),
			Position:          player.Position(item.ElementType),
			TeamID:            item.Team,
			NowCost:           item.NowCost,
			SelectedByPercent: string(item.SelectedByPercent),
			Form:              string(item.Form),
			TotalPoints:       item.TotalPoints,
			News:              strings.TrimSpace(item.News.Or("")),
		})
	}
	for i, item := range payload.Teams {
		if item.ID <= 0 {
			return season.Snapshot{}, missingField(pathBootstrapStatic, "teams", i, "id")
		}
		out.Teams = append(out.Teams, team.Team{
			ID:        item.ID,
			Name:      strings.TrimSpace(item.Name),
			ShortName: strings.TrimSpace(item.ShortName),
			Strength:  item.Strength,
		})
	}

	return out, nil
}

func (c *Client) FetchFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	var payload []fixturePayload
	if err := c.doJSON(ctx, pathFixtures, &payload); err != nil {
		return nil, err
	}

	out := make([]fixture.Fixture, 0, len(payload))
	for i, item := range payload {
		if item.ID <= 0 {
			return nil, missingField(pathFixtures, "fixtures", i, "id")
		}
		out = append(out, fixture.Fixture{
			ID:          item.ID,
			EventID:     item.Event.Ptr(),
			KickoffTime: item.KickoffTime.Ptr(),
			HomeTeamID:  item.TeamH,
			AwayTeamID:  item.TeamA,
			Finished:    item.Finished.Or(false),
		})
	}
	return out, nil
}

func (c *Client) FetchLive(ctx context.Context, eventID int64) (live.Snapshot, error) {
	path := liveEventPath(eventID)
	var payload liveEnvelope
	if err := c.doJSON(ctx, path, &payload); err != nil {
		return live.Snapshot{}, err
	}

	out := live.Snapshot{Elements: make([]live.Element, 0, len(payload.Elements))}
	for i, item := range payload.Elements {
		if item.ID <= 0 {
			return live.Snapshot{}, missingField(path, "elements", i, "id")
		}
		explains := make([]live.Explain, 0, len(item.Explain))
		for _, explain := range item.Explain {
			stats := make([]live.ExplainStat, 0, len(explain.Stats))
			for _, stat := range explain.Stats {
				stats = append(stats, live.ExplainStat{
					Identifier: stat.Identifier,
					Points:     stat.Points,
					Value:      stat.Value,
				})
			}
			explains = append(explains, live.Explain{FixtureID: explain.Fixture, Stats: stats})
		}
		out.Elements = append(out.Elements, live.Element{
			ID:      item.ID,
			Stats:   mapLiveStats(item.Stats),
			Explain: explains,
		})
	}
	return out, nil
}

func (c *Client) FetchPlayerSummary(ctx context.Context, elementID int64) (summary.PlayerSummary, error) {
	path := elementSummaryPath(elementID)
	var payload summaryEnvelope
	if err := c.doJSON(ctx, path, &payload); err != nil {
		return summary.PlayerSummary{}, err
	}

	out := summary.PlayerSummary{History: make([]summary.History, 0, len(payload.History))}
	for _, item := range payload.History {
		out.History = append(out.History, summary.History{
			Element:       item.Element,
			Fixture:       item.Fixture,
			OpponentTeam:  item.OpponentTeam,
			Round:         item.Round,
			WasHome:       item.WasHome,
			KickoffTime:   item.KickoffTime.Or(""),
			TotalPoints:   item.TotalPoints,
			Minutes:       item.Minutes,
			GoalsScored:   item.GoalsScored,
			Assists:       item.Assists,
			CleanSheets:   item.CleanSheets,
			GoalsConceded: item.GoalsConceded,
			Bonus:         item.Bonus,
		})
	}
	return out, nil
}

func (c *Client) FetchManagerPicks(ctx context.Context, managerID, eventID int64) (manager.Picks, error) {
	path := managerPicksPath(managerID, eventID)
	var payload picksEnvelope
	if err := c.doJSON(ctx, path, &payload); err != nil {
		return manager.Picks{}, err
	}

	out := manager.Picks{
		ActiveChip: payload.ActiveChip.Or(""),
		Picks:      make([]manager.Pick, 0, len(payload.Picks)),
	}
	for i, item := range payload.Picks {
		if item.Element <= 0 {
			return manager.Picks{}, missingField(path, "picks", i, "element")
		}
		out.Picks = append(out.Picks, manager.Pick{
			Element:       item.Element,
			Position:      item.Position,
			Multiplier:    item.Multiplier,
			IsCaptain:     item.IsCaptain,
			IsViceCaptain: item.IsViceCaptain,
		})
	}
	return out, nil
}

func (c *Client) FetchDreamTeam(ctx context.Context, eventID int64) (dreamteam.DreamTeam, error) {
	path := dreamTeamPath(eventID)
	var payload dreamTeamEnvelope
	if err := c.doJSON(ctx, path, &payload); err != nil {
		return dreamteam.DreamTeam{}, err
	}

	out := dreamteam.DreamTeam{Team: make([]dreamteam.Entry, 0, len(payload.Team))}
	if payload.TopPlayer.Set && payload.TopPlayer.Value.ID > 0 {
		out.TopPlayer = &dreamteam.Entry{
			Element: payload.TopPlayer.Value.ID,
			Points:  payload.TopPlayer.Value.Points,
		}
	}
	for i, item := range payload.Team {
		if item.Element <= 0 {
			return dreamteam.DreamTeam{}, missingField(path, "team", i, "element")
		}
		out.Team = append(out.Team, dreamteam.Entry{
			Element:  item.Element,
			Points:   item.Points,
			Position: item.Position,
		})
	}
	return out, nil
}

func mapLiveStats(src liveStatsPayload) live.Stats {
	return live.Stats{
		Minutes:         src.Minutes,
		GoalsScored:     src.GoalsScored,
		Assists:         src.Assists,
		CleanSheets:     src.CleanSheets,
		GoalsConceded:   src.GoalsConceded,
		OwnGoals:        src.OwnGoals,
		PenaltiesSaved:  src.PenaltiesSaved,
		PenaltiesMissed: src.PenaltiesMissed,
		YellowCards:     src.YellowCards,
		RedCards:        src.RedCards,
		Saves:           src.Saves,
		Bonus:           src.Bonus,
		BPS:             src.BPS,
		TotalPoints:     src.TotalPoints,
	}
}

func missingField(path, collection string, index int, field string) error {
	return crerr.Wrapf(ErrDecode, "decode %s: %s[%d] missing required field %q", path, collection, index, field)
}

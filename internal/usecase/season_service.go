package usecase

import (
	"context"

	"github.com/riskibarqy/fpl-cli/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-cli/internal/domain/season"
	"github.com/riskibarqy/fpl-cli/internal/domain/team"
)

// SeasonService serves views backed only by the season snapshot.
type SeasonService struct {
	provider DataProvider
}

func NewSeasonService(provider DataProvider) *SeasonService {
	return &SeasonService{provider: provider}
}

func (s *SeasonService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ListTeams")
	defer span.End()

	snapshot, err := fetchSnapshot(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	return snapshot.Teams, nil
}

// GameweekRow is one event with its resolved display status.
type GameweekRow struct {
	ID       int64
	Name     string
	Status   gameweek.Status
	Deadline string
}

func (s *SeasonService) ListGameweeks(ctx context.Context) ([]GameweekRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ListGameweeks")
	defer span.End()

	snapshot, err := fetchSnapshot(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	out := make([]GameweekRow, 0, len(snapshot.Events))
	for _, event := range snapshot.Events {
		out = append(out, GameweekRow{
			ID:       event.ID,
			Name:     event.Name,
			Status:   event.Status(),
			Deadline: event.DeadlineTime,
		})
	}

	return out, nil
}

func fetchSnapshot(ctx context.Context, provider DataProvider) (season.Snapshot, error) {
	return fetchStep(ctx, "season snapshot", provider.FetchSeasonSnapshot)
}

package usecase

import (
	"context"
	"sort"

	"github.com/riskibarqy/fpl-cli/internal/domain/fixture"
	"github.com/riskibarqy/fpl-cli/internal/domain/gameweek"
)

// FixtureRow is an upcoming fixture with team names attached.
type FixtureRow struct {
	ID          int64
	KickoffTime string
	HomeTeam    string
	AwayTeam    string
}

type FixtureService struct {
	provider DataProvider
}

func NewFixtureService(provider DataProvider) *FixtureService {
	return &FixtureService{provider: provider}
}

// ListUpcoming returns the unfinished fixtures of the next event ordered by
// kickoff. Without a next event the fixtures list is never fetched.
func (s *FixtureService) ListUpcoming(ctx context.Context) ([]FixtureRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListUpcoming")
	defer span.End()

	snapshot, err := fetchSnapshot(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	nextEventID, ok := gameweek.NextEventID(snapshot.Events)
	if !ok {
		return []FixtureRow{}, nil
	}

	fixtures, err := fetchStep(ctx, "fixtures", s.provider.FetchFixtures)
	if err != nil {
		return nil, err
	}

	upcoming := UpcomingFixtures(fixtures, nextEventID)
	teams := TeamNameIndex(snapshot.Teams)
	out := make([]FixtureRow, 0, len(upcoming))
	for _, item := range upcoming {
		out = append(out, FixtureRow{
			ID:          item.ID,
			KickoffTime: *item.KickoffTime,
			HomeTeam:    teams.Lookup(item.HomeTeamID),
			AwayTeam:    teams.Lookup(item.AwayTeamID),
		})
	}

	return out, nil
}

// UpcomingFixtures keeps unfinished fixtures of the event that have a kickoff
// time, ordered by kickoff ascending. ISO-8601 strings compare lexicographically.
func UpcomingFixtures(fixtures []fixture.Fixture, eventID int64) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(fixtures))
	for _, item := range fixtures {
		if !item.InEvent(eventID) || item.Finished || item.KickoffTime == nil {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].KickoffTime < *out[j].KickoffTime
	})
	return out
}

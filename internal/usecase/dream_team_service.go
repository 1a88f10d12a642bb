package usecase

import (
	"context"
	"sort"

	"github.com/riskibarqy/fpl-cli/internal/domain/dreamteam"
)

// DreamTeamRow is one dream team entry with its player name.
type DreamTeamRow struct {
	ID       int64
	Name     string
	Points   int
	Position int
}

type DreamTeamService struct {
	provider DataProvider
}

func NewDreamTeamService(provider DataProvider) *DreamTeamService {
	return &DreamTeamService{provider: provider}
}

// ListDreamTeam returns the best XI ordered by points descending.
func (s *DreamTeamService) ListDreamTeam(ctx context.Context, eventID int64) ([]DreamTeamRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DreamTeamService.ListDreamTeam")
	defer span.End()

	if err := validateID("event id", eventID); err != nil {
		return nil, err
	}

	snapshot, err := fetchSnapshot(ctx, s.provider)
	if err != nil {
		return nil, err
	}
	team, err := fetchStep(ctx, "dream team", func(ctx context.Context) (dreamteam.DreamTeam, error) {
		return s.provider.FetchDreamTeam(ctx, eventID)
	})
	if err != nil {
		return nil, err
	}

	names := PlayerNameIndex(snapshot.Elements)
	out := make([]DreamTeamRow, 0, len(team.Team))
	for _, entry := range team.Team {
		out = append(out, DreamTeamRow{
			ID:       entry.Element,
			Name:     names.Lookup(entry.Element),
			Points:   entry.Points,
			Position: entry.Position,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})

	return out, nil
}

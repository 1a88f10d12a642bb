package usecase

import (
	"context"

	"github.com/riskibarqy/fpl-cli/internal/domain/live"
	"github.com/riskibarqy/fpl-cli/internal/domain/manager"
)

// PickRow is a manager pick joined with the player name and live points.
type PickRow struct {
	ID            int64
	Name          string
	Position      int
	IsCaptain     bool
	IsViceCaptain bool
	Points        int
}

type PickService struct {
	provider DataProvider
}

func NewPickService(provider DataProvider) *PickService {
	return &PickService{provider: provider}
}

// ListPicks keeps the manager's pick order. Picks without a live entry score 0.
func (s *PickService) ListPicks(ctx context.Context, managerID, eventID int64) ([]PickRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.ListPicks")
	defer span.End()

	if err := validateID("manager id", managerID); err != nil {
		return nil, err
	}
	if err := validateID("event id", eventID); err != nil {
		return nil, err
	}

	snapshot, err := fetchSnapshot(ctx, s.provider)
	if err != nil {
		return nil, err
	}
	liveSnapshot, err := fetchStep(ctx, "live event", func(ctx context.Context) (live.Snapshot, error) {
		return s.provider.FetchLive(ctx, eventID)
	})
	if err != nil {
		return nil, err
	}
	picks, err := fetchStep(ctx, "manager picks", func(ctx context.Context) (manager.Picks, error) {
		return s.provider.FetchManagerPicks(ctx, managerID, eventID)
	})
	if err != nil {
		return nil, err
	}

	names := PlayerNameIndex(snapshot.Elements)
	points := LivePointsIndex(liveSnapshot)
	out := make([]PickRow, 0, len(picks.Picks))
	for _, pick := range picks.Picks {
		out = append(out, PickRow{
			ID:            pick.Element,
			Name:          names.Lookup(pick.Element),
			Position:      pick.Position,
			IsCaptain:     pick.IsCaptain,
			IsViceCaptain: pick.IsViceCaptain,
			Points:        points[pick.Element],
		})
	}

	return out, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-cli/internal/domain/dreamteam"
	"github.com/riskibarqy/fpl-cli/internal/domain/fixture"
	"github.com/riskibarqy/fpl-cli/internal/domain/live"
	"github.com/riskibarqy/fpl-cli/internal/domain/manager"
	"github.com/riskibarqy/fpl-cli/internal/domain/season"
	"github.com/riskibarqy/fpl-cli/internal/domain/summary"
)

// DataProvider is the remote read-only data source. Every call is one GET.
type DataProvider interface {
	FetchSeasonSnapshot(ctx context.Context) (season.Snapshot, error)
	FetchFixtures(ctx context.Context) ([]fixture.Fixture, error)
	FetchLive(ctx context.Context, eventID int64) (live.Snapshot, error)
	FetchPlayerSummary(ctx context.Context, elementID int64) (summary.PlayerSummary, error)
	FetchManagerPicks(ctx context.Context, managerID, eventID int64) (manager.Picks, error)
	FetchDreamTeam(ctx context.Context, eventID int64) (dreamteam.DreamTeam, error)
}

// fetchStep runs one fetch of a sequential pipeline. A failure is wrapped with
// ErrDependencyUnavailable and the step name; callers return it immediately so
// later steps never run.
func fetchStep[T any](ctx context.Context, name string, fetch func(context.Context) (T, error)) (T, error) {
	out, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, name, err)
	}
	return out, nil
}

func validateID(name string, value int64) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidInput, name)
	}
	return nil
}

package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fpl-cli/internal/domain/live"
	"github.com/riskibarqy/fpl-cli/internal/domain/scoring"
)

// LiveRow is one element's live score for an event with its per-category
// breakdown.
type LiveRow struct {
	ID          int64
	Name        string
	TotalPoints int
	Breakdown   scoring.Breakdown
}

type LiveService struct {
	provider DataProvider
	catalog  scoring.Catalog
}

func NewLiveService(provider DataProvider, catalog scoring.Catalog) *LiveService {
	return &LiveService{
		provider: provider,
		catalog:  catalog,
	}
}

func (s *LiveService) Catalog() scoring.Catalog {
	return s.catalog
}

// ListLive orders elements by live total descending, keeps the first limit
// and computes a breakdown for each kept row.
func (s *LiveService) ListLive(ctx context.Context, eventID int64, limit int) ([]LiveRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveService.ListLive")
	defer span.End()

	if err := validateID("event id", eventID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be greater than zero", ErrInvalidInput)
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

	elements := make([]live.Element, len(liveSnapshot.Elements))
	copy(elements, liveSnapshot.Elements)
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].Stats.TotalPoints > elements[j].Stats.TotalPoints
	})
	elements = Truncate(elements, limit)

	names := PlayerNameIndex(snapshot.Elements)
	out := make([]LiveRow, 0, len(elements))
	for _, item := range elements {
		out = append(out, LiveRow{
			ID:          item.ID,
			Name:        names.Lookup(item.ID),
			TotalPoints: item.Stats.TotalPoints,
			Breakdown:   scoring.Calculate(s.catalog, item.Explain),
		})
	}

	return out, nil
}

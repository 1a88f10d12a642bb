package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fpl-cli/internal/domain/player"
	"github.com/riskibarqy/fpl-cli/internal/domain/summary"
)

// PlayerQuery selects and orders the player view. A nil Position or nil
// TeamName disables that filter.
type PlayerQuery struct {
	Sort     SortKey
	Position *player.Position
	TeamName *string
	Limit    int
}

// PlayerRow is an element with its team name attached.
type PlayerRow struct {
	Element  player.Element
	TeamName string
}

type PlayerService struct {
	provider DataProvider
}

func NewPlayerService(provider DataProvider) *PlayerService {
	return &PlayerService{provider: provider}
}

func (s *PlayerService) ListPlayers(ctx context.Context, query PlayerQuery) ([]PlayerRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	if query.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be greater than zero", ErrInvalidInput)
	}
	if query.Position != nil && !query.Position.Valid() {
		return nil, fmt.Errorf("%w: unknown position code %d", ErrInvalidInput, int(*query.Position))
	}
	sortKey, err := ParseSortKey(string(query.Sort))
	if err != nil {
		return nil, err
	}

	snapshot, err := fetchSnapshot(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	filter := PlayerFilter{Position: query.Position}
	if query.TeamName != nil {
		filter.TeamIDs = FindTeamIDsByName(snapshot.Teams, strings.TrimSpace(*query.TeamName))
	}

	elements := FilterPlayers(snapshot.Elements, filter)
	SortPlayers(elements, sortKey)
	elements = Truncate(elements, query.Limit)

	teams := TeamNameIndex(snapshot.Teams)
	out := make([]PlayerRow, 0, len(elements))
	for _, item := range elements {
		out = append(out, PlayerRow{
			Element:  item,
			TeamName: teams.Lookup(item.TeamID),
		})
	}

	return out, nil
}

// Summary returns the per-fixture history of one player in upstream order.
func (s *PlayerService) Summary(ctx context.Context, elementID int64) ([]summary.History, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Summary")
	defer span.End()

	if err := validateID("player id", elementID); err != nil {
		return nil, err
	}

	result, err := fetchStep(ctx, "player summary", func(ctx context.Context) (summary.PlayerSummary, error) {
		return s.provider.FetchPlayerSummary(ctx, elementID)
	})
	if err != nil {
		return nil, err
	}

	return result.History, nil
}

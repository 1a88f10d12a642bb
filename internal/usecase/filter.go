package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/fpl-cli/internal/domain/player"
)

// SortKey selects the descending comparator for the player view.
type SortKey string

const (
	SortByCost       SortKey = "cost"
	SortBySelectedBy SortKey = "selected-by"
	SortByForm       SortKey = "form"
	SortByPoints     SortKey = "points"
)

const DefaultLimit = 20

func ParseSortKey(raw string) (SortKey, error) {
	switch value := SortKey(strings.ToLower(strings.TrimSpace(raw))); value {
	case "":
		return SortByPoints, nil
	case SortByCost, SortBySelectedBy, SortByForm, SortByPoints:
		return value, nil
	default:
		return "", fmt.Errorf("%w: invalid sort %q: valid values are cost, selected-by, form, points", ErrInvalidInput, raw)
	}
}

// PlayerFilter is conjunctive. A nil Position or nil TeamIDs means that
// filter is off; an empty non-nil TeamIDs matches nothing.
type PlayerFilter struct {
	Position *player.Position
	TeamIDs  map[int64]struct{}
}

func (f PlayerFilter) Match(element player.Element) bool {
	if f.Position != nil && element.Position != *f.Position {
		return false
	}
	if f.TeamIDs != nil {
		if _, ok := f.TeamIDs[element.TeamID]; !ok {
			return false
		}
	}
	return true
}

func FilterPlayers(elements []player.Element, filter PlayerFilter) []player.Element {
	out := make([]player.Element, 0, len(elements))
	for _, item := range elements {
		if filter.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

// SortPlayers orders in place, descending by key. Ties keep input order.
func SortPlayers(elements []player.Element, key SortKey) {
	switch key {
	case SortByCost:
		sort.SliceStable(elements, func(i, j int) bool {
			return elements[i].NowCost > elements[j].NowCost
		})
	case SortBySelectedBy:
		sort.SliceStable(elements, func(i, j int) bool {
			return elements[i].SelectedBy().GreaterThan(elements[j].SelectedBy())
		})
	case SortByForm:
		sort.SliceStable(elements, func(i, j int) bool {
			return elements[i].FormValue().GreaterThan(elements[j].FormValue())
		})
	default:
		sort.SliceStable(elements, func(i, j int) bool {
			return elements[i].TotalPoints > elements[j].TotalPoints
		})
	}
}

// Truncate keeps at most limit items. A non-positive limit keeps nothing.
func Truncate[T any](items []T, limit int) []T {
	if limit <= 0 {
		return items[:0]
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

package usecase

import (
	"strings"

	"github.com/riskibarqy/fpl-cli/internal/domain/live"
	"github.com/riskibarqy/fpl-cli/internal/domain/player"
	"github.com/riskibarqy/fpl-cli/internal/domain/team"
)

// UnknownName is shown for ids missing from the season snapshot.
const UnknownName = "Unknown"

// NameIndex maps an entity id to its display name.
type NameIndex map[int64]string

// Lookup resolves an id, falling back to UnknownName.
func (idx NameIndex) Lookup(id int64) string {
	if name, ok := idx[id]; ok {
		return name
	}
	return UnknownName
}

func TeamNameIndex(teams []team.Team) NameIndex {
	out := make(NameIndex, len(teams))
	for _, item := range teams {
		out[item.ID] = item.Name
	}
	return out
}

func PlayerNameIndex(elements []player.Element) NameIndex {
	out := make(NameIndex, len(elements))
	for _, item := range elements {
		out[item.ID] = item.WebName
	}
	return out
}

// LivePointsIndex maps element id to live total points for the event.
func LivePointsIndex(snapshot live.Snapshot) map[int64]int {
	out := make(map[int64]int, len(snapshot.Elements))
	for _, item := range snapshot.Elements {
		out[item.ID] = item.Stats.TotalPoints
	}
	return out
}

// FindTeamIDsByName returns teams whose full name or short code contains the
// query, case-insensitively. An empty query matches nothing.
func FindTeamIDsByName(teams []team.Team, query string) map[int64]struct{} {
	out := make(map[int64]struct{})
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return out
	}
	for _, item := range teams {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.ShortName), needle) {
			out[item.ID] = struct{}{}
		}
	}
	return out
}

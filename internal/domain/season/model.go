package season

import (
	"github.com/riskibarqy/fpl-cli/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-cli/internal/domain/player"
	"github.com/riskibarqy/fpl-cli/internal/domain/team"
)

// Snapshot is the season-wide reference data, immutable for one command.
type Snapshot struct {
	Events   []gameweek.Event
	Elements []player.Element
	Teams    []team.Team
}

package fpl

import (
	"bytes"
	"strconv"

	sonic "github.com/bytedance/sonic"
)

// optional decodes fields the upstream sometimes omits, nulls, or sends with
// a different scalar type. Any of those leaves Set=false instead of failing
// the whole payload.
type optional[T any] struct {
	Value T
	Set   bool
}

func (o *optional[T]) UnmarshalJSON(data []byte) error {
	var zero T
	o.Value = zero
	o.Set = false

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var value T
	if err := sonic.Unmarshal(trimmed, &value); err != nil {
		return nil
	}
	o.Value = value
	o.Set = true
	return nil
}

func (o optional[T]) Or(fallback T) T {
	if !o.Set {
		return fallback
	}
	return o.Value
}

func (o optional[T]) Ptr() *T {
	if !o.Set {
		return nil
	}
	value := o.Value
	return &value
}

// decimalText keeps a decimal as its text form whether it arrives as a JSON
// string or a JSON number. Anything else decodes as empty.
type decimalText string

func (d *decimalText) UnmarshalJSON(data []byte) error {
	*d = ""
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '"' {
		var text string
		if err := sonic.Unmarshal(trimmed, &text); err != nil {
			return nil
		}
		*d = decimalText(text)
		return nil
	}
	if _, err := strconv.ParseFloat(string(trimmed), 64); err == nil {
		*d = decimalText(trimmed)
	}
	return nil
}

type bootstrapEnvelope struct {
	Events   []eventPayload   `json:"events"`
	Elements []elementPayload `json:"elements"`
	Teams    []teamPayload    `json:"teams"`
}

type eventPayload struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	IsCurrent    bool             `json:"is_current"`
	IsNext       bool             `json:"is_next"`
	Finished     bool             `json:"finished"`
	DeadlineTime optional[string] `json:"deadline_time"`
}

type elementPayload struct {
	ID                int64            `json:"id"`
	WebName           string           `json:"web_name"`
	ElementType       int              `json:"element_type"`
	Team              int64            `json:"team"`
	NowCost           int64            `json:"now_cost"`
	SelectedByPercent decimalText      `json:"selected_by_percent"`
	Form              decimalText      `json:"form"`
	TotalPoints       int64            `json:"total_points"`
	News              optional[string] `json:"news"`
}

type teamPayload struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Strength  int    `json:"strength"`
}

type fixturePayload struct {
	ID          int64            `json:"id"`
	Event       optional[int64]  `json:"event"`
	KickoffTime optional[string] `json:"kickoff_time"`
	TeamH       int64            `json:"team_h"`
	TeamA       int64            `json:"team_a"`
	Finished    optional[bool]   `json:"finished"`
}

type liveEnvelope struct {
	Elements []liveElementPayload `json:"elements"`
}

type liveElementPayload struct {
	ID      int64                `json:"id"`
	Stats   liveStatsPayload     `json:"stats"`
	Explain []liveExplainPayload `json:"explain"`
}

type liveStatsPayload struct {
	Minutes         int `json:"minutes"`
	GoalsScored     int `json:"goals_scored"`
	Assists         int `json:"assists"`
	CleanSheets     int `json:"clean_sheets"`
	GoalsConceded   int `json:"goals_conceded"`
	OwnGoals        int `json:"own_goals"`
	PenaltiesSaved  int `json:"penalties_saved"`
	PenaltiesMissed int `json:"penalties_missed"`
	YellowCards     int `json:"yellow_cards"`
	RedCards        int `json:"red_cards"`
	Saves           int `json:"saves"`
	Bonus           int `json:"bonus"`
	BPS             int `json:"bps"`
	TotalPoints     int `json:"total_points"`
}

type liveExplainPayload struct {
	Fixture int64                `json:"fixture"`
	Stats   []explainStatPayload `json:"stats"`
}

type explainStatPayload struct {
	Identifier string `json:"identifier"`
	Points     int    `json:"points"`
	Value      int    `json:"value"`
}

type picksEnvelope struct {
	ActiveChip optional[string] `json:"active_chip"`
	Picks      []pickPayload    `json:"picks"`
}

type pickPayload struct {
	Element       int64 `json:"element"`
	Position      int   `json:"position"`
	Multiplier    int   `json:"multiplier"`
	IsCaptain     bool  `json:"is_captain"`
	IsViceCaptain bool  `json:"is_vice_captain"`
}

type summaryEnvelope struct {
	History []historyPayload `json:"history"`
}

type historyPayload struct {
	Element       int64            `json:"element"`
	Fixture       int64            `json:"fixture"`
	OpponentTeam  int64            `json:"opponent_team"`
	Round         int              `json:"round"`
	WasHome       bool             `json:"was_home"`
	KickoffTime   optional[string] `json:"kickoff_time"`
	TotalPoints   int              `json:"total_points"`
	Minutes       int              `json:"minutes"`
	GoalsScored   int              `json:"goals_scored"`
	Assists       int              `json:"assists"`
	CleanSheets   int              `json:"clean_sheets"`
	GoalsConceded int              `json:"goals_conceded"`
	Bonus         int              `json:"bonus"`
}

type dreamTeamEnvelope struct {
	TopPlayer optional[topPlayerPayload] `json:"top_player"`
	Team      []dreamEntryPayload        `json:"team"`
}

type topPlayerPayload struct {
	ID     int64 `json:"id"`
	Points int   `json:"points"`
}

type dreamEntryPayload struct {
	Element  int64 `json:"element"`
	Points   int   `json:"points"`
	Position int   `json:"position"`
}

package player

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Position is the upstream element_type code.
type Position int

const (
	PositionUnknown    Position = 0
	PositionGoalkeeper Position = 1
	PositionDefender   Position = 2
	PositionMidfielder Position = 3
	PositionForward    Position = 4
)

const UnknownPositionLabel = "N/A"

var positionLabels = map[Position]string{
	PositionGoalkeeper: "GKP",
	PositionDefender:   "DEF",
	PositionMidfielder: "MID",
	PositionForward:    "FWD",
}

var positionAliases = map[string]Position{
	"gkp":        PositionGoalkeeper,
	"gk":         PositionGoalkeeper,
	"goalkeeper": PositionGoalkeeper,
	"def":        PositionDefender,
	"defender":   PositionDefender,
	"mid":        PositionMidfielder,
	"midfielder": PositionMidfielder,
	"fwd":        PositionForward,
	"forward":    PositionForward,
}

// Label returns the short display label, or N/A for codes outside 1..4.
func (p Position) Label() string {
	if label, ok := positionLabels[p]; ok {
		return label
	}
	return UnknownPositionLabel
}

func (p Position) Valid() bool {
	_, ok := positionLabels[p]
	return ok
}

// ParsePosition accepts short labels and long names, case-insensitively.
func ParsePosition(raw string) (Position, error) {
	if pos, ok := positionAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return pos, nil
	}
	return PositionUnknown, fmt.Errorf("invalid position %q: valid values are GKP, DEF, MID, FWD", raw)
}

// Element is a player entity from the season snapshot. SelectedByPercent and
// Form keep the upstream string encoding.
type Element struct {
	ID                int64
	WebName           string
	Position          Position
	TeamID            int64
	NowCost           int64
	SelectedByPercent string
	Form              string
	TotalPoints       int64
	News              string
}

// SelectedBy parses SelectedByPercent, treating malformed input as zero.
func (e Element) SelectedBy() decimal.Decimal {
	return ParseDecimalOrZero(e.SelectedByPercent)
}

// FormValue parses Form, treating malformed input as zero.
func (e Element) FormValue() decimal.Decimal {
	return ParseDecimalOrZero(e.Form)
}

func ParseDecimalOrZero(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return value
}

package cli

import (
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/fpl-cli/internal/domain/scoring"
	"github.com/riskibarqy/fpl-cli/internal/domain/summary"
	"github.com/riskibarqy/fpl-cli/internal/domain/team"
	"github.com/riskibarqy/fpl-cli/internal/usecase"
)

const kickoffLayout = "2006-01-02 15:04 UTC"

var kickoffInputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

var (
	teamWidths          = []int{4, 20, 8, 8}
	gameweekWidths      = []int{4, 16, 12, 20}
	fixtureWidths       = []int{4, 20, 20, 20}
	playerWidths        = []int{4, 20, 4, 16, 8, 8, 8, 8, 30}
	pickWidths          = []int{4, 20, 4, 4, 4, 4}
	playerSummaryWidths = []int{3, 3, 4, 2, 2}
	dreamTeamWidths     = []int{4, 20, 12}
	liveLeadWidths      = []int{4, 20, 8}
)

const liveCategoryWidth = 4

// table buffers fixed-width rows. Cells are left-justified and padded to the
// column width; longer cells are kept whole.
type table struct {
	widths []int
	buf    *bytebufferpool.ByteBuffer
}

func newTable(widths []int, header ...string) *table {
	t := &table{widths: widths, buf: bytebufferpool.Get()}
	t.row(header...)
	return t
}

func (t *table) row(cells ...string) {
	for i, cell := range cells {
		if i > 0 {
			_ = t.buf.WriteByte(' ')
		}
		_, _ = t.buf.WriteString(cell)
		if i < len(t.widths) {
			if pad := t.widths[i] - utf8.RuneCountInString(cell); pad > 0 {
				_, _ = t.buf.WriteString(strings.Repeat(" ", pad))
			}
		}
	}
	_ = t.buf.WriteByte('\n')
}

// flush writes the whole table at once and releases the buffer.
func (t *table) flush(w io.Writer) error {
	defer bytebufferpool.Put(t.buf)
	_, err := w.Write(t.buf.B)
	return err
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func yesNo(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}

// FormatCost renders tenths of a currency unit with one decimal place.
func FormatCost(raw int64) string {
	return decimal.New(raw, -1).StringFixed(1)
}

// FormatKickoff renders an ISO-8601 kickoff in UTC, or the raw value when it
// does not parse.
func FormatKickoff(raw string) string {
	for _, layout := range kickoffInputLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC().Format(kickoffLayout)
		}
	}
	return raw
}

func RenderTeams(w io.Writer, teams []team.Team) error {
	t := newTable(teamWidths, "ID", "Name", "Short", "Strength")
	for _, item := range teams {
		t.row(itoa(item.ID), item.Name, item.ShortName, strconv.Itoa(item.Strength))
	}
	return t.flush(w)
}

func RenderGameweeks(w io.Writer, rows []usecase.GameweekRow) error {
	t := newTable(gameweekWidths, "ID", "Name", "Status", "Deadline")
	for _, row := range rows {
		t.row(itoa(row.ID), row.Name, string(row.Status), row.Deadline)
	}
	return t.flush(w)
}

func RenderFixtures(w io.Writer, rows []usecase.FixtureRow) error {
	t := newTable(fixtureWidths, "ID", "Kickoff Time", "Home", "Away")
	for _, row := range rows {
		t.row(itoa(row.ID), FormatKickoff(row.KickoffTime), row.HomeTeam, row.AwayTeam)
	}
	return t.flush(w)
}

func RenderPlayers(w io.Writer, rows []usecase.PlayerRow) error {
	t := newTable(playerWidths, "ID", "Name", "Pos", "Team", "Cost", "Selected", "Form", "Points", "News")
	for _, row := range rows {
		item := row.Element
		t.row(
			itoa(item.ID),
			item.WebName,
			item.Position.Label(),
			row.TeamName,
			FormatCost(item.NowCost),
			item.SelectedByPercent,
			item.Form,
			itoa(item.TotalPoints),
			item.News,
		)
	}
	return t.flush(w)
}

// RenderLive prints one breakdown column per catalog category, in catalog order.
func RenderLive(w io.Writer, catalog scoring.Catalog, rows []usecase.LiveRow) error {
	widths := make([]int, 0, len(liveLeadWidths)+catalog.Len())
	widths = append(widths, liveLeadWidths...)
	header := []string{"ID", "Name", "Total"}
	for _, label := range catalog.Labels() {
		widths = append(widths, liveCategoryWidth)
		header = append(header, label)
	}

	t := newTable(widths, header...)
	for _, row := range rows {
		cells := make([]string, 0, len(widths))
		cells = append(cells, itoa(row.ID), row.Name, strconv.Itoa(row.TotalPoints))
		for _, value := range row.Breakdown.Values() {
			cells = append(cells, strconv.Itoa(value))
		}
		t.row(cells...)
	}
	return t.flush(w)
}

func RenderPicks(w io.Writer, rows []usecase.PickRow) error {
	t := newTable(pickWidths, "ID", "Name", "Pos", "C", "VC", "Pts")
	for _, row := range rows {
		t.row(
			itoa(row.ID),
			row.Name,
			strconv.Itoa(row.Position),
			yesNo(row.IsCaptain),
			yesNo(row.IsViceCaptain),
			strconv.Itoa(row.Points),
		)
	}
	return t.flush(w)
}

func RenderPlayerSummary(w io.Writer, rows []summary.History) error {
	t := newTable(playerSummaryWidths, "GW", "Pts", "Min", "G", "A")
	for _, row := range rows {
		t.row(
			strconv.Itoa(row.Round),
			strconv.Itoa(row.TotalPoints),
			strconv.Itoa(row.Minutes),
			strconv.Itoa(row.GoalsScored),
			strconv.Itoa(row.Assists),
		)
	}
	return t.flush(w)
}

func RenderDreamTeam(w io.Writer, rows []usecase.DreamTeamRow) error {
	t := newTable(dreamTeamWidths, "ID", "Name", "Points")
	for _, row := range rows {
		t.row(itoa(row.ID), row.Name, strconv.Itoa(row.Points))
	}
	return t.flush(w)
}

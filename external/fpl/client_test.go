package fpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fpl-cli/internal/domain/player"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL + "/api/",
		UserAgent:  "fpl-cli-test",
	})
}

func TestClientFetchSeasonSnapshot_MapsTypedRecords(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/api/bootstrap-static/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("user-agent"); got != "fpl-cli-test" {
			t.Errorf("unexpected user-agent: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"events": [
				{"id": 1, "name": "Gameweek 1", "is_current": true, "is_next": false, "finished": true, "deadline_time": "2024-08-16T17:30:00Z"},
				{"id": 2, "name": "Gameweek 2", "is_current": false, "is_next": true, "finished": false, "deadline_time": null}
			],
			"elements": [
				{"id": 328, "web_name": "Salah", "element_type": 3, "team": 12, "now_cost": 125, "selected_by_percent": "45.3", "form": "8.0", "total_points": 211, "news": ""},
				{"id": 401, "web_name": "Haaland", "element_type": 4, "team": 13, "now_cost": 150, "selected_by_percent": 60.1, "form": "", "total_points": 190, "news": null},
				{"id": 402, "web_name": "Foden", "element_type": 3, "team": 13, "now_cost": 95, "selected_by_percent": "12.0", "form": "3.1", "total_points": 90}
			],
			"teams": [
				{"id": 12, "name": "Liverpool", "short_name": "LIV", "strength": 5, "unknown_field": true}
			]
		}`))
	})

	snapshot, err := client.FetchSeasonSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Events, 2)
	assert.Equal(t, "2024-08-16T17:30:00Z", snapshot.Events[0].DeadlineTime)
	assert.Equal(t, "", snapshot.Events[1].DeadlineTime)
	assert.True(t, snapshot.Events[1].IsNext)

	require.Len(t, snapshot.Elements, 3)
	salah := snapshot.Elements[0]
	assert.Equal(t, player.PositionMidfielder, salah.Position)
	assert.Equal(t, int64(125), salah.NowCost)
	assert.Equal(t, "45.3", salah.SelectedByPercent)
	assert.Equal(t, "60.1", snapshot.Elements[1].SelectedByPercent)
	assert.Equal(t, "", snapshot.Elements[1].News)
	assert.Equal(t, "", snapshot.Elements[2].News)

	require.Len(t, snapshot.Teams, 1)
	assert.Equal(t, "LIV", snapshot.Teams[0].ShortName)
}

func TestClientFetchFixtures_OptionalFields(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/fixtures/", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id": 1, "event": 2, "kickoff_time": "2024-01-02T12:00:00Z", "team_h": 1, "team_a": 2, "finished": false},
			{"id": 2, "event": null, "kickoff_time": null, "team_h": 3, "team_a": 4, "finished": false},
			{"id": 3, "event": 2, "kickoff_time": "2024-01-02T15:00:00Z", "team_h": 5, "team_a": 6}
		]`))
	})

	fixtures, err := client.FetchFixtures(context.Background())
	require.NoError(t, err)
	require.Len(t, fixtures, 3)

	require.NotNil(t, fixtures[0].EventID)
	assert.Equal(t, int64(2), *fixtures[0].EventID)
	assert.Equal(t, int64(1), fixtures[0].HomeTeamID)
	assert.Equal(t, int64(2), fixtures[0].AwayTeamID)

	assert.Nil(t, fixtures[1].EventID)
	assert.Nil(t, fixtures[1].KickoffTime)
	assert.False(t, fixtures[2].Finished)
}

func TestClientFetchLive_MapsExplainRecords(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/event/7/live/", r.URL.Path)
		_, _ = w.Write([]byte(`{"elements": [
			{"id": 328, "stats": {"minutes": 90, "total_points": 13, "goals_scored": 1},
			 "explain": [
				{"fixture": 61, "stats": [{"identifier": "minutes", "points": 2, "value": 90}, {"identifier": "goals_scored", "points": 5, "value": 1}]},
				{"fixture": 70, "stats": [{"identifier": "bonus", "points": 3, "value": 3}]}
			 ]}
		]}`))
	})

	snapshot, err := client.FetchLive(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, snapshot.Elements, 1)

	el := snapshot.Elements[0]
	assert.Equal(t, 13, el.Stats.TotalPoints)
	require.Len(t, el.Explain, 2)
	assert.Equal(t, int64(70), el.Explain[1].FixtureID)
	assert.Equal(t, "goals_scored", el.Explain[0].Stats[1].Identifier)
}

func TestClientFetchManagerPicksAndDreamTeam(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/entry/99/event/3/picks/":
			_, _ = w.Write([]byte(`{"active_chip": null, "picks": [
				{"element": 328, "position": 1, "multiplier": 2, "is_captain": true, "is_vice_captain": false}
			]}`))
		case "/api/dream-team/3/":
			_, _ = w.Write([]byte(`{"top_player": {"id": 328, "points": 20}, "team": [
				{"element": 1, "points": 9, "position": 1},
				{"element": 328, "points": 20, "position": 2}
			]}`))
		case "/api/element-summary/328/":
			_, _ = w.Write([]byte(`{"fixtures": [], "history": [
				{"element": 328, "fixture": 1, "round": 1, "total_points": 14, "minutes": 90, "goals_scored": 1, "assists": 2}
			]}`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	picks, err := client.FetchManagerPicks(context.Background(), 99, 3)
	require.NoError(t, err)
	require.Len(t, picks.Picks, 1)
	assert.True(t, picks.Picks[0].IsCaptain)
	assert.Equal(t, "", picks.ActiveChip)

	team, err := client.FetchDreamTeam(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, team.TopPlayer)
	assert.Equal(t, 20, team.TopPlayer.Points)
	require.Len(t, team.Team, 2)

	history, err := client.FetchPlayerSummary(context.Background(), 328)
	require.NoError(t, err)
	require.Len(t, history.History, 1)
	assert.Equal(t, 2, history.History[0].Assists)
}

func TestClientErrors(t *testing.T) {
	t.Parallel()

	t.Run("non 2xx status is not retried", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("maintenance"))
		})

		_, err := client.FetchSeasonSnapshot(context.Background())
		require.Error(t, err)
		assert.True(t, crerr.Is(err, ErrStatus), "expected ErrStatus, got %v", err)
		assert.Contains(t, err.Error(), "status=503")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("mistyped required field fails decode", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"elements": [{"id": "not-a-number"}]}`))
		})

		_, err := client.FetchSeasonSnapshot(context.Background())
		require.Error(t, err)
		assert.True(t, crerr.Is(err, ErrDecode), "expected ErrDecode, got %v", err)
	})

	t.Run("missing required id fails decode", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"picks": [{"position": 1}]}`))
		})

		_, err := client.FetchManagerPicks(context.Background(), 1, 1)
		require.Error(t, err)
		assert.True(t, crerr.Is(err, ErrDecode))
		assert.Contains(t, err.Error(), `picks[0] missing required field "element"`)
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		baseURL := srv.URL
		srv.Close()

		client := NewClient(ClientConfig{BaseURL: baseURL})
		_, err := client.FetchFixtures(context.Background())
		require.Error(t, err)
		assert.True(t, crerr.Is(err, ErrTransport), "expected ErrTransport, got %v", err)
	})
}

func TestOptional_Decoding(t *testing.T) {
	t.Parallel()

	var value optional[int64]
	require.NoError(t, value.UnmarshalJSON([]byte(`"abc"`)))
	assert.False(t, value.Set)
	assert.Nil(t, value.Ptr())

	require.NoError(t, value.UnmarshalJSON([]byte(`12`)))
	assert.True(t, value.Set)
	assert.Equal(t, int64(12), *value.Ptr())

	require.NoError(t, value.UnmarshalJSON([]byte(`null`)))
	assert.False(t, value.Set)
	assert.Equal(t, int64(7), value.Or(7))

	var text decimalText
	require.NoError(t, text.UnmarshalJSON([]byte(`{"nested": 1}`)))
	assert.Equal(t, decimalText(""), text)
	require.NoError(t, text.UnmarshalJSON([]byte(`4.5`)))
	assert.Equal(t, decimalText("4.5"), text)
}

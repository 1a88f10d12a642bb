package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-cli/internal/domain/dreamteam"
	"github.com/riskibarqy/fpl-cli/internal/domain/fixture"
	"github.com/riskibarqy/fpl-cli/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-cli/internal/domain/live"
	"github.com/riskibarqy/fpl-cli/internal/domain/manager"
	"github.com/riskibarqy/fpl-cli/internal/domain/player"
	"github.com/riskibarqy/fpl-cli/internal/domain/scoring"
	"github.com/riskibarqy/fpl-cli/internal/domain/season"
	"github.com/riskibarqy/fpl-cli/internal/domain/summary"
	usecasemock "github.com/riskibarqy/fpl-cli/internal/mocks/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func testSnapshot() season.Snapshot {
	return season.Snapshot{
		Events: []gameweek.Event{
			{ID: 1, Name: "Gameweek 1", Finished: true},
			{ID: 2, Name: "Gameweek 2", IsCurrent: true},
			{ID: 3, Name: "Gameweek 3", IsNext: true},
		},
		Elements: []player.Element{
			{ID: 10, WebName: "Raya", Position: player.PositionGoalkeeper, TeamID: 1, NowCost: 55, TotalPoints: 40},
			{ID: 11, WebName: "Saka", Position: player.PositionMidfielder, TeamID: 1, NowCost: 100, TotalPoints: 80},
			{ID: 12, WebName: "Haaland", Position: player.PositionForward, TeamID: 2, NowCost: 150, TotalPoints: 120},
			{ID: 13, WebName: "Fernandes", Position: player.PositionMidfielder, TeamID: 3, NowCost: 85, TotalPoints: 80},
		},
		Teams: testTeams,
	}
}

func TestSeasonService_ListGameweeks_ResolvesStatus(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewDataProvider(t)
	provider.On("FetchSeasonSnapshot", mock.Anything).Return(testSnapshot(), nil).Once()

	rows, err := NewSeasonService(provider).ListGameweeks(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, gameweek.StatusFinished, rows[0].Status)
	assert.Equal(t, gameweek.StatusCurrent, rows[1].Status)
	assert.Equal(t, gameweek.StatusNext, rows[2].Status)
}

func TestSeasonService_ListTeams_FetchFailure(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewDataProvider(t)
	provider.On("FetchSeasonSnapshot", mock.Anything).Return(season.Snapshot{}, errors.New("connection refused")).Once()

	_, err := NewSeasonService(provider).ListTeams(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestFixtureService_ListUpcoming_NextEventOnly(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewDataProvider(t)
	provider.On("FetchSeasonSnapshot", mock.Anything).Return(season.Snapshot{
		Events: []gameweek.Event{{ID: 1, IsNext: false}, {ID: 2, IsNext: true}},
		Teams:  testTeams,
	}, nil).Once()
	provider.On("FetchFixtures", mock.Anything).Return([]fixture.Fixture{
		{ID: 100, EventID: ptr(int64(2)), KickoffTime: ptr("2024-01-02T12:00Z"), HomeTeamID: 1, AwayTeamID: 2},
		{ID: 101, EventID: ptr(int64(2)), KickoffTime: ptr("2024-01-01T12:00Z"), HomeTeamID: 3, AwayTeamID: 1, Finished: true},
		{ID: 102, EventID: ptr(int64(1)), KickoffTime: ptr("2023-12-30T12:00Z"), HomeTeamID: 2, AwayTeamID: 3},
	}, nil).Once()

	rows, err := NewFixtureService(provider).ListUpcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, FixtureRow{
		ID:          100,
		KickoffTime: "2024-01-02T12:00Z",
		HomeTeam:    "Arsenal",
		AwayTeam:    "Manchester City",
	}, rows[0])
}

func TestFixtureService_ListUpcoming_NoNextEventSkipsFixtures(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewDataProvider(t)
	provider.On("FetchSeasonSnapshot", mock.Anything).Return(season.Snapshot{
		Events: []gameweek.Event{{ID: 38, IsCurrent: true}},
	}, nil).Once()

	rows, err := NewFixtureService(provider).ListUpcoming(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
	provider.AssertNotCalled(t, "FetchFixtures", mock.Anything)
}

func TestUpcomingFixtures_OrdersByKickoffAndSkipsUnscheduled(t *testing.T) {
	t.Parallel()

	got := UpcomingFixtures([]fixture.Fixture{
		{ID: 1, EventID: ptr(int64(5)), KickoffTime: ptr("2024-03-02T17:30:00Z")},
		{ID: 2, EventID: ptr(int64(5)), KickoffTime: ptr("2024-03-02T15:00:00Z")},
		{ID: 3, EventID: ptr(int64(5))},
		{ID: 4, KickoffTime: ptr("2024-03-01T15:00:00Z")},
		{ID: 5, EventID: ptr(int64(5)), KickoffTime: ptr("2024-03-02T15:00:00Z")},
	}, 5)

	ids := make([]int64, 0, len(got))
	for _, item := range got {
		ids = append(ids, item.ID)
	}
	assertIDs(t, ids, []int64{2, 5, 1})
}

func TestPlayerService_ListPlayers_FilterSortTruncate(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewDataProvider(t)
	provider.On("FetchSeasonSnapshot", mock.Anything).Return(testSnapshot(), nil).Once()

	mid := player.PositionMidfielder
	rows, err := NewPlayerService(provider).ListPlayers(context.Background(), PlayerQuery{
		Sort:     SortByPoints,
		Position: &mid,
		Limit:    1,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(11), rows[0].Element.ID)
	assert.Equal(t, "Arsenal", rows[0].TeamName)
}

func TestPlayerService_ListPlayers_TeamFilter(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewDataProvider(t)
	provider.On("FetchSeasonSnapshot", mock.Anything).Return(testSnapshot(), nil).Twice()
	service := NewPlayerService(provider)

	rows, err := service.ListPlayers(context.Background(), PlayerQuery{TeamName: ptr("man"), Limit: DefaultLimit})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(12), rows[0].Element.ID)
	assert.Equal(t, "Manchester United", rows[1].TeamName)

	rows, err = service.ListPlayers(context.Background(), PlayerQuery{TeamName: ptr(""), Limit: DefaultLimit})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPlayerService_ListPlayers_InvalidInput(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(usecasemock.NewDataProvider(t))
	cases := []PlayerQuery{
		{Limit: 0},
		{Limit: 5, Sort: "price"},
		{Limit: 5, Position: ptr(player.Position(7))},
	}
	for _, query := range cases {
		if _, err := service.ListPlayers(context.Background(), query); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", query, err)
		}
	}
}

func TestPlayerService_Summary(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewDataProvider(t)
	provider.On("FetchPlayerSummary", mock.Anything, int64(12)).Return(summary.PlayerSummary{
		History: []summary.History{{Round: 1, TotalPoints: 13}, {Round: 2, TotalPoints: 2}},
	}, nil).Once()

	rows, err := NewPlayerService(provider).Summary(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Round)

	_, err = NewPlayerService(provider).Summary(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLiveService_ListLive_SortsThenTruncates(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewDataProvider(t)
	provider.On("FetchSeasonSnapshot", mock.Anything).Return(testSnapshot(), nil).Once()
	provider.On("FetchLive", mock.Anything, int64(2)).Return(live.Snapshot{Elements: []live.Element{
		{ID: 10, Stats: live.Stats{TotalPoints: 2}},
		{ID: 12, Stats: live.Stats{TotalPoints: 13}, Explain: []live.Explain{
			{FixtureID: 1, Stats: []live.ExplainStat{
				{Identifier: scoring.Minutes, Points: 2, Value: 90},
				{Identifier: scoring.GoalsScored, Points: 8, Value: 2},
				{Identifier: scoring.Bonus, Points: 3, Value: 3},
			}},
		}},
		{ID: 99, Stats: live.Stats{TotalPoints: 13}},
		{ID: 11, Stats: live.Stats{TotalPoints: 6}},
	}}, nil).Once()

	rows, err := NewLiveService(provider, scoring.CatalogV1).ListLive(context.Background(), 2, 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(12), rows[0].ID)
	assert.Equal(t, "Haaland", rows[0].Name)
	assert.Equal(t, 8, rows[0].Breakdown.Points(scoring.GoalsScored))
	assert.Equal(t, int64(99), rows[1].ID)
	assert.Equal(t, UnknownName, rows[1].Name)
	assert.True(t, rows[1].Breakdown.IsZero())
	assert.Equal(t, int64(11), rows[2].ID)
}

func TestLiveService_ListLive_SnapshotFailureAborts(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewDataProvider(t)
	provider.On("FetchSeasonSnapshot", mock.Anything).Return(season.Snapshot{}, errors.New("timeout")).Once()

	_, err := NewLiveService(provider, scoring.CatalogV1).ListLive(context.Background(), 2, 20)
	require.ErrorIs(t, err, ErrDependencyUnavailable)
	provider.AssertNotCalled(t, "FetchLive", mock.Anything, mock.Anything)
}

func TestPickService_ListPicks_MissingLiveEntryScoresZero(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewDataProvider(t)
	provider.On("FetchSeasonSnapshot", mock.Anything).Return(testSnapshot(), nil).Once()
	provider.On("FetchLive", mock.Anything, int64(2)).Return(live.Snapshot{Elements: []live.Element{
		{ID: 12, Stats: live.Stats{TotalPoints: 13}},
	}}, nil).Once()
	provider.On("FetchManagerPicks", mock.Anything, int64(4242), int64(2)).Return(manager.Picks{Picks: []manager.Pick{
		{Element: 12, Position: 1, Multiplier: 2, IsCaptain: true},
		{Element: 10, Position: 2, Multiplier: 1, IsViceCaptain: true},
		{Element: 77, Position: 3, Multiplier: 1},
	}}, nil).Once()

	rows, err := NewPickService(provider).ListPicks(context.Background(), 4242, 2)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, PickRow{ID: 12, Name: "Haaland", Position: 1, IsCaptain: true, Points: 13}, rows[0])
	assert.Equal(t, 0, rows[1].Points)
	assert.True(t, rows[1].IsViceCaptain)
	assert.Equal(t, UnknownName, rows[2].Name)
	assert.Equal(t, 0, rows[2].Points)
}

func TestPickService_ListPicks_LiveFailureSkipsPicks(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewDataProvider(t)
	provider.On("FetchSeasonSnapshot", mock.Anything).Return(testSnapshot(), nil).Once()
	provider.On("FetchLive", mock.Anything, int64(2)).Return(live.Snapshot{}, errors.New("status 503")).Once()

	_, err := NewPickService(provider).ListPicks(context.Background(), 4242, 2)
	require.ErrorIs(t, err, ErrDependencyUnavailable)
	assert.Contains(t, err.Error(), "live event")
	provider.AssertNotCalled(t, "FetchManagerPicks", mock.Anything, mock.Anything, mock.Anything)
}

func TestDreamTeamService_ListDreamTeam_OrdersByPoints(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewDataProvider(t)
	provider.On("FetchSeasonSnapshot", mock.Anything).Return(testSnapshot(), nil).Once()
	provider.On("FetchDreamTeam", mock.Anything, int64(2)).Return(dreamteam.DreamTeam{
		TopPlayer: &dreamteam.Entry{Element: 12, Points: 20},
		Team: []dreamteam.Entry{
			{Element: 10, Points: 6, Position: 1},
			{Element: 12, Points: 20, Position: 11},
			{Element: 11, Points: 9, Position: 7},
			{Element: 13, Points: 9, Position: 8},
		},
	}, nil).Once()

	rows, err := NewDreamTeamService(provider).ListDreamTeam(context.Background(), 2)
	require.NoError(t, err)

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	assertIDs(t, ids, []int64{12, 11, 13, 10})
	assert.Equal(t, "Haaland", rows[0].Name)
}

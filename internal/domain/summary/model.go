package summary

// PlayerSummary is the per-fixture history of one player this season.
type PlayerSummary struct {
	History []History
}

// History is one fixture played.
type History struct {
	Element       int64
	Fixture       int64
	OpponentTeam  int64
	Round         int
	WasHome       bool
	KickoffTime   string
	TotalPoints   int
	Minutes       int
	GoalsScored   int
	Assists       int
	CleanSheets   int
	GoalsConceded int
	Bonus         int
}

package live

// Snapshot holds live scoring for every element that featured in one event.
type Snapshot struct {
	Elements []Element
}

type Element struct {
	ID      int64
	Stats   Stats
	Explain []Explain
}

// Stats are the aggregate raw counts for one element in one event.
type Stats struct {
	Minutes         int
	GoalsScored     int
	Assists         int
	CleanSheets     int
	GoalsConceded   int
	OwnGoals        int
	PenaltiesSaved  int
	PenaltiesMissed int
	YellowCards     int
	RedCards        int
	Saves           int
	Bonus           int
	BPS             int
	TotalPoints     int
}

// Explain is the points breakdown of one fixture.
type Explain struct {
	FixtureID int64
	Stats     []ExplainStat
}

// ExplainStat is the contribution of one scoring category in one fixture.
type ExplainStat struct {
	Identifier string
	Points     int
	Value      int
}

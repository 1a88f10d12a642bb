package fixture

// Fixture is one match. EventID and KickoffTime are nil for fixtures that
// have not been scheduled into a gameweek yet.
type Fixture struct {
	ID          int64
	EventID     *int64
	KickoffTime *string
	HomeTeamID  int64
	AwayTeamID  int64
	Finished    bool
}

// InEvent reports whether the fixture is scheduled in the given event.
func (f Fixture) InEvent(eventID int64) bool {
	return f.EventID != nil && *f.EventID == eventID
}

package team

// Team is a real football club from the season snapshot.
type Team struct {
	ID        int64
	Name      string
	ShortName string
	Strength  int
}

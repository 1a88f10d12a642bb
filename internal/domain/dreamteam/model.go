package dreamteam

// DreamTeam is the best XI of one event plus its top scorer.
type DreamTeam struct {
	TopPlayer *Entry
	Team      []Entry
}

type Entry struct {
	Element  int64
	Points   int
	Position int
}

package manager

// Picks is a manager's lineup for one event.
type Picks struct {
	ActiveChip string
	Picks      []Pick
}

type Pick struct {
	Element       int64
	Position      int
	Multiplier    int
	IsCaptain     bool
	IsViceCaptain bool
}

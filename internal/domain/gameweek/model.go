package gameweek

// Status is the display state of a gameweek.
type Status string

const (
	StatusCurrent  Status = "Current"
	StatusNext     Status = "Next"
	StatusFinished Status = "Finished"
	StatusUpcoming Status = "Upcoming"
)

// Event is one scheduled round of fixtures with a transfer deadline.
type Event struct {
	ID           int64
	Name         string
	IsCurrent    bool
	IsNext       bool
	Finished     bool
	DeadlineTime string
}

// Status resolves the flags with priority current > next > finished > upcoming.
func (e Event) Status() Status {
	switch {
	case e.IsCurrent:
		return StatusCurrent
	case e.IsNext:
		return StatusNext
	case e.Finished:
		return StatusFinished
	default:
		return StatusUpcoming
	}
}

// NextEventID returns the id of the first event flagged as next.
func NextEventID(events []Event) (int64, bool) {
	for _, event := range events {
		if event.IsNext {
			return event.ID, true
		}
	}
	return 0, false
}

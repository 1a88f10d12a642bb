package gameweek

import "testing"

func TestEventStatus_Priority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event Event
		want  Status
	}{
		{name: "current wins over everything", event: Event{IsCurrent: true, IsNext: true, Finished: true}, want: StatusCurrent},
		{name: "next wins over finished", event: Event{IsNext: true, Finished: true}, want: StatusNext},
		{name: "finished", event: Event{Finished: true}, want: StatusFinished},
		{name: "upcoming fallback", event: Event{}, want: StatusUpcoming},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.event.Status(); got != tc.want {
				t.Fatalf("status mismatch: got=%s want=%s", got, tc.want)
			}
		})
	}
}

func TestNextEventID(t *testing.T) {
	t.Parallel()

	id, ok := NextEventID([]Event{{ID: 1}, {ID: 2, IsNext: true}, {ID: 3, IsNext: true}})
	if !ok || id != 2 {
		t.Fatalf("unexpected next event: id=%d ok=%v", id, ok)
	}

	if _, ok := NextEventID([]Event{{ID: 1, Finished: true}}); ok {
		t.Fatalf("expected no next event")
	}
	if _, ok := NextEventID(nil); ok {
		t.Fatalf("expected no next event for empty season")
	}
}

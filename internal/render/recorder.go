package render

// Event is one recorded repaint: the cell at (X, Y) was set to State.
type Event struct {
	X, Y  int
	State uint8
}

// Recorder is an in-memory surface for tests and headless tools. It records
// every paint call in order and never fails.
type Recorder struct {
	Events []Event
}

// Paint appends the repaint event.
func (r *Recorder) Paint(x, y int, state uint8) error {
	r.Events = append(r.Events, Event{X: x, Y: y, State: state})
	return nil
}

// Reset drops the recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

package scores

import "time"

// Navigator tracks the currently selected calendar day. It is mutated only
// through Forward and never persisted across restarts.
type Navigator struct {
	current time.Time
}

func NewNavigator(now time.Time) *Navigator {
	year, month, day := now.Date()

	return &Navigator{current: time.Date(year, month, day, 0, 0, 0, 0, now.Location())}
}

func (n *Navigator) Current() time.Time {
	return n.current
}

// Forward moves the selected day by delta days and returns the new date.
// Month and year rollover is plain time.AddDate arithmetic.
func (n *Navigator) Forward(delta int) time.Time {
	n.current = n.current.AddDate(0, 0, delta)

	return n.current
}

package play

import "time"

// timerTickMsg is sent every second to drive the countdown.
type timerTickMsg time.Time

// feedbackDoneMsg ends the answer feedback window. Seq ties it to the
// submission that scheduled it, so an early dismissal cannot be advanced
// a second time when the stale timer fires.
type feedbackDoneMsg struct {
	Seq int
}

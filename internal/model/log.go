package model

import "time"

// Log is the full ordered event sequence. Events are only ever appended;
// the whole log is the unit of persistence.
type Log []Event

// Running reports whether tracking is currently active, i.e. the last
// event is a Start. An empty log is stopped.
func (l Log) Running() bool {
	return len(l) > 0 && l[len(l)-1].IsStart()
}

// Last returns the final event, or nil for an empty log.
func (l Log) Last() *Event {
	if len(l) == 0 {
		return nil
	}
	return &l[len(l)-1]
}

// Start appends a Start event if the log is empty or the last event is a
// Stop. A Start while already running is absorbed as a no-op. Reports
// whether an event was appended.
func (l *Log) Start(description *string, at time.Time) bool {
	if l.Running() {
		return false
	}
	*l = append(*l, NewStart(description, at))
	return true
}

// Stop appends a Stop event if the log is empty or the last event is a
// Start. Note that a Stop on an empty log is appended, so a log may begin
// with a Stop. Reports whether an event was appended.
func (l *Log) Stop(description *string, at time.Time) bool {
	if last := l.Last(); last != nil && last.IsStop() {
		return false
	}
	*l = append(*l, NewStop(description, at))
	return true
}

// Continue appends a Start event at the given time if the last event is a
// Stop, reusing the description of the most recent Start found by
// scanning backward past the contiguous trailing Stops. If no prior Start
// exists, or tracking is already running, nothing is appended. The empty
// log is reported separately so the caller can advise the user.
func (l *Log) Continue(at time.Time) (appended, empty bool) {
	if len(*l) == 0 {
		return false, true
	}
	if l.Running() {
		return false, false
	}
	for i := len(*l) - 1; i >= 0; i-- {
		if ev := (*l)[i]; ev.IsStart() {
			*l = append(*l, NewStart(ev.Description, at))
			return true, false
		}
	}
	return false, false
}

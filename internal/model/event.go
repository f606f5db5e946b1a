package model

import (
	"fmt"
	"time"
)

// Kind discriminates the two event variants.
type Kind string

const (
	KindStart Kind = "start"
	KindStop  Kind = "stop"
)

// Event represents a single tracking event: a Start or Stop with an
// optional description and an absolute instant stored in UTC.
type Event struct {
	Kind        Kind      `json:"kind"`
	Description *string   `json:"description"`
	Time        time.Time `json:"time"`
}

// NewStart builds a Start event. The instant is normalised to UTC.
func NewStart(description *string, at time.Time) Event {
	return Event{Kind: KindStart, Description: description, Time: at.UTC()}
}

// NewStop builds a Stop event. The instant is normalised to UTC.
func NewStop(description *string, at time.Time) Event {
	return Event{Kind: KindStop, Description: description, Time: at.UTC()}
}

// IsStart reports whether the event is a Start.
func (e Event) IsStart() bool {
	return e.Kind == KindStart
}

// IsStop reports whether the event is a Stop.
func (e Event) IsStop() bool {
	return e.Kind == KindStop
}

// String renders a debug representation, one line per event, used by the
// list command.
func (e Event) String() string {
	desc := "-"
	if e.Description != nil {
		desc = fmt.Sprintf("%q", *e.Description)
	}
	return fmt.Sprintf("%-5s %s %s", e.Kind, e.Time.Format(time.RFC3339), desc)
}

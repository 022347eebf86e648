package domain

import "time"

// HistoryEvent is one entry of a merge request's audit trail.
type HistoryEvent struct {
	ID             int64     `json:"id" db:"id"`
	MergeRequestID int64     `json:"merge_request_id" db:"merge_request_id"`
	Actor          UserID    `json:"actor" db:"actor"`
	What           string    `json:"what" db:"what"`
	At             time.Time `json:"at" db:"at"`
}

// HistoryLog is the insert-only audit trail of one merge request.
// Callers outside this package can read it but never change or remove entries.
type HistoryLog struct {
	events []HistoryEvent
	saved  int
}

// Len returns the number of events.
func (l *HistoryLog) Len() int {
	return len(l.events)
}

// Events returns a copy of the trail in insertion order.
func (l *HistoryLog) Events() []HistoryEvent {
	out := make([]HistoryEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Pending returns events appended since the last persist.
func (l *HistoryLog) Pending() []HistoryEvent {
	out := make([]HistoryEvent, len(l.events)-l.saved)
	copy(out, l.events[l.saved:])
	return out
}

func (l *HistoryLog) append(actor UserID, what string, at time.Time) {
	l.events = append(l.events, HistoryEvent{Actor: actor, What: what, At: at})
}

// markSaved stamps the request id on every event and assigns ids, in order, to the
// events that were pending.
func (l *HistoryLog) markSaved(mergeRequestID int64, ids []int64) {
	for i := range l.events {
		l.events[i].MergeRequestID = mergeRequestID
	}
	for i, id := range ids {
		if l.saved+i < len(l.events) {
			l.events[l.saved+i].ID = id
		}
	}
	l.saved = len(l.events)
}

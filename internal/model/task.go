package model

import "time"

// Task represents a single study obligation.
//
// ID and Title must be non-empty before a Task enters the store; producing a
// Task that violates this is a caller error, not something the model recovers
// from. Only the calendar-day part of DueDate is significant for day/month
// bucketing; the time of day is retained but not matched on.
type Task struct {
	ID           string     // opaque stable identifier, unique within the store
	Title        string     // non-empty
	Description  string     // free text, may be empty
	DueDate      time.Time  // calendar date-time the task is due
	ReminderTime *time.Time // optional alert time, independent of DueDate
	IsCompleted  bool
}

// Same reports whether other is the same task, by identity.
func (t Task) Same(other Task) bool {
	return t.ID == other.ID
}

// Package codec maps tasks to and from their stored record form: a
// string-keyed JSON object with RFC3339 date-times and a nullable reminder.
package codec

import (
	"fmt"
	"time"

	"study-task-tracker/internal/model"
	"study-task-tracker/internal/task"
)

// TimeFormat is the wire format for date-time fields. RFC3339 is both
// human-sortable and parseable back to the same instant at second resolution.
const TimeFormat = time.RFC3339

// Record is the serializable form of one task. Required fields are pointers
// so a missing key can be told apart from a zero value after unmarshaling.
type Record struct {
	ID           *string `json:"id"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	DueDate      *string `json:"dueDate"`
	ReminderTime *string `json:"reminderTime"`
	IsCompleted  *bool   `json:"isCompleted,omitempty"`
}

// Encode produces the record form of a task. Sub-second precision is dropped;
// Decode drops it the same way, so the round trip is stable.
func Encode(t model.Task) Record {
	due := t.DueDate.Format(TimeFormat)
	rec := Record{
		ID:          &t.ID,
		Title:       &t.Title,
		Description: &t.Description,
		DueDate:     &due,
		IsCompleted: &t.IsCompleted,
	}
	if t.ReminderTime != nil {
		s := t.ReminderTime.Format(TimeFormat)
		rec.ReminderTime = &s
	}
	return rec
}

// Decode is the inverse of Encode. A nil/absent reminderTime maps to no
// reminder and an absent isCompleted defaults to false; any other missing or
// unparseable field is a *task.MalformedRecordError.
func Decode(rec Record) (model.Task, error) {
	if rec.ID == nil || *rec.ID == "" {
		return model.Task{}, &task.MalformedRecordError{Field: "id", Reason: "is missing"}
	}
	if rec.Title == nil || *rec.Title == "" {
		return model.Task{}, &task.MalformedRecordError{Field: "title", Reason: "is missing"}
	}
	if rec.Description == nil {
		return model.Task{}, &task.MalformedRecordError{Field: "description", Reason: "is missing"}
	}
	if rec.DueDate == nil {
		return model.Task{}, &task.MalformedRecordError{Field: "dueDate", Reason: "is missing"}
	}

	due, err := time.Parse(TimeFormat, *rec.DueDate)
	if err != nil {
		return model.Task{}, &task.MalformedRecordError{
			Field:  "dueDate",
			Reason: fmt.Sprintf("is not a valid timestamp: %v", err),
		}
	}

	t := model.Task{
		ID:          *rec.ID,
		Title:       *rec.Title,
		Description: *rec.Description,
		DueDate:     due,
	}

	if rec.ReminderTime != nil {
		reminder, err := time.Parse(TimeFormat, *rec.ReminderTime)
		if err != nil {
			return model.Task{}, &task.MalformedRecordError{
				Field:  "reminderTime",
				Reason: fmt.Sprintf("is not a valid timestamp: %v", err),
			}
		}
		t.ReminderTime = &reminder
	}

	if rec.IsCompleted != nil {
		t.IsCompleted = *rec.IsCompleted
	}

	return t, nil
}

// EncodeAll encodes a collection, preserving element order.
func EncodeAll(tasks []model.Task) []Record {
	records := make([]Record, len(tasks))
	for i, t := range tasks {
		records[i] = Encode(t)
	}
	return records
}

// DecodeAll decodes a record sequence, preserving element order. The first
// malformed record aborts the whole decode.
func DecodeAll(records []Record) ([]model.Task, error) {
	tasks := make([]model.Task, len(records))
	for i, rec := range records {
		t, err := Decode(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		tasks[i] = t
	}
	return tasks, nil
}

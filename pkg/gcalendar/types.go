package gcalendar

import "time"

// StudyEventRequest is the input for exporting a study task as a calendar event.
type StudyEventRequest struct {
	CalendarID   string
	Title        string
	Notes        string
	DueDate      time.Time
	ReminderTime *time.Time // optional popup reminder
	Timezone     string     // e.g. "Europe/Berlin"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	Notes     string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}

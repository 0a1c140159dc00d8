package task

// Persistence keys used by the store against the blob-store collaborator.
const (
	// KeyTasks holds the JSON-encoded array of task records.
	KeyTasks = "tasks"
	// KeyReminderEnabled holds the reminder preference flag.
	KeyReminderEnabled = "reminder_enabled"
)

// ReminderLookaheadMinutes is the fixed look-ahead window: a reminder is due
// when it lies between now and this many whole minutes ahead, inclusive.
const ReminderLookaheadMinutes = 5

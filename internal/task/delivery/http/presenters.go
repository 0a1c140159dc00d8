package http

import (
	"time"

	"study-task-tracker/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Title        string     `json:"title"         binding:"required,min=1,max=255"`
	Description  string     `json:"description"   binding:"max=2000"`
	DueDate      time.Time  `json:"due_date"      binding:"required"`
	ReminderTime *time.Time `json:"reminder_time"`
}

func (r createReq) toTask(id string) model.Task {
	return model.Task{
		ID:           id,
		Title:        r.Title,
		Description:  r.Description,
		DueDate:      r.DueDate,
		ReminderTime: r.ReminderTime,
	}
}

type updateReq struct {
	ID           string     `json:"-"` // populated from URI param
	Title        string     `json:"title"         binding:"required,min=1,max=255"`
	Description  string     `json:"description"   binding:"max=2000"`
	DueDate      time.Time  `json:"due_date"      binding:"required"`
	ReminderTime *time.Time `json:"reminder_time"`
	IsCompleted  bool       `json:"is_completed"`
}

func (r updateReq) toTask() model.Task {
	return model.Task{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		DueDate:      r.DueDate,
		ReminderTime: r.ReminderTime,
		IsCompleted:  r.IsCompleted,
	}
}

type reminderPrefReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// --- Response DTOs ---

type taskResp struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DueDate      time.Time  `json:"due_date"`
	ReminderTime *time.Time `json:"reminder_time"`
	IsCompleted  bool       `json:"is_completed"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		DueDate:      t.DueDate,
		ReminderTime: t.ReminderTime,
		IsCompleted:  t.IsCompleted,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func newListResp(tasks []model.Task) listResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return listResp{Tasks: out, Count: len(out)}
}

type monthMarksResp struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Days  []int `json:"days"`
}

type reminderResp struct {
	Task *taskResp `json:"task"` // null when nothing is due
}

type reminderPrefResp struct {
	Enabled bool `json:"enabled"`
}

package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"study-task-tracker/internal/task/usecase"
	"study-task-tracker/pkg/response"
)

// Create godoc
// @Summary     Create a study task
// @Description Creates a task with a due date and optional reminder time. The server mints the task ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t := req.toTask(uuid.NewString())
	if err := h.uc.Add(ctx, t); err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// List godoc
// @Summary     List all tasks
// @Description Returns every task in store order.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newListResp(h.uc.Tasks(ctx)))
}

// Update godoc
// @Summary     Replace a task
// @Description Whole-record replacement keyed by ID. Unknown IDs are reported as not found; nothing is inserted.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Replacement record"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	// The store treats an unknown ID as a no-op; the HTTP surface reports
	// it so an editing client is not left believing the write landed.
	if !h.taskExists(ctx, req.ID) {
		response.NotFound(c, "task not found")
		return
	}

	t := req.toTask()
	if err := h.uc.Update(ctx, t); err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Description Deletes by ID. Deleting an unknown ID succeeds.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.Remove(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Remove: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": id})
}

// Today godoc
// @Summary     Today view
// @Description Tasks due on the given day (default today), incomplete before completed.
// @Tags        Views
// @Produce     json
// @Param       date query string false "Day to show, YYYY-MM-DD"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/views/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processDateParam(c, "date")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks := h.uc.TasksForDay(ctx, date)
	response.OK(c, newListResp(usecase.SortForDisplay(tasks)))
}

// MonthMarks godoc
// @Summary     Calendar month marks
// @Description Day-of-month numbers with at least one task due, for calendar-dot rendering.
// @Tags        Views
// @Produce     json
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Success     200 {object} monthMarksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/views/calendar/{year}/{month} [GET]
func (h *handler) MonthMarks(c *gin.Context) {
	ctx := c.Request.Context()

	year, month, err := h.processMonthParams(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	days := h.uc.DatesWithTasksInMonth(ctx, year, month)
	response.OK(c, monthMarksResp{Year: year, Month: int(month), Days: days})
}

// DayView godoc
// @Summary     Calendar cell selection
// @Description Tasks due on a selected calendar day.
// @Tags        Views
// @Produce     json
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Param       day   path int true "Day of month"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/views/calendar/{year}/{month}/{day} [GET]
func (h *handler) DayView(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processDayParams(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks := h.uc.TasksForDate(ctx, date)
	response.OK(c, newListResp(usecase.SortForDisplay(tasks)))
}

// DueReminder godoc
// @Summary     Poll for a due reminder
// @Description Returns the first incomplete task whose reminder falls in the look-ahead window, or null. Returns null without scanning when reminders are disabled.
// @Tags        Reminders
// @Produce     json
// @Success     200 {object} reminderResp
// @Router      /api/v1/reminders/due [GET]
func (h *handler) DueReminder(c *gin.Context) {
	ctx := c.Request.Context()

	enabled, err := h.uc.IsReminderEnabled(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.IsReminderEnabled: %v", err)
		h.mapError(c, err)
		return
	}
	if !enabled {
		// Gate here, not in the evaluator.
		response.OK(c, reminderResp{})
		return
	}

	due := h.uc.FindDueReminder(ctx, time.Now())
	if due == nil {
		response.OK(c, reminderResp{})
		return
	}
	resp := newTaskResp(*due)
	response.OK(c, reminderResp{Task: &resp})
}

// GetReminderPreference godoc
// @Summary     Read the reminder preference
// @Tags        Reminders
// @Produce     json
// @Success     200 {object} reminderPrefResp
// @Router      /api/v1/reminders/preference [GET]
func (h *handler) GetReminderPreference(c *gin.Context) {
	ctx := c.Request.Context()

	enabled, err := h.uc.IsReminderEnabled(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.IsReminderEnabled: %v", err)
		h.mapError(c, err)
		return
	}
	response.OK(c, reminderPrefResp{Enabled: enabled})
}

// SetReminderPreference godoc
// @Summary     Write the reminder preference
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       body body reminderPrefReq true "Preference"
// @Success     200 {object} reminderPrefResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/reminders/preference [PUT]
func (h *handler) SetReminderPreference(c *gin.Context) {
	ctx := c.Request.Context()

	var req reminderPrefReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SetReminderEnabled(ctx, *req.Enabled); err != nil {
		h.l.Errorf(ctx, "uc.SetReminderEnabled: %v", err)
		h.mapError(c, err)
		return
	}
	response.OK(c, reminderPrefResp{Enabled: *req.Enabled})
}

// taskExists reports whether the snapshot holds a task with the given ID.
func (h *handler) taskExists(ctx context.Context, id string) bool {
	for _, t := range h.uc.Tasks(ctx) {
		if t.ID == id {
			return true
		}
	}
	return false
}

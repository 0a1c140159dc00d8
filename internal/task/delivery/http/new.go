package http

import (
	"github.com/gin-gonic/gin"

	"study-task-tracker/internal/task"
	pkgLog "study-task-tracker/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Today(c *gin.Context)
	MonthMarks(c *gin.Context)
	DayView(c *gin.Context)
	DueReminder(c *gin.Context)
	GetReminderPreference(c *gin.Context)
	SetReminderPreference(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}

	views := rg.Group("/views")
	{
		views.GET("/today", h.Today)
		views.GET("/calendar/:year/:month", h.MonthMarks)
		views.GET("/calendar/:year/:month/:day", h.DayView)
	}

	reminders := rg.Group("/reminders")
	{
		reminders.GET("/due", h.DueReminder)
		reminders.GET("/preference", h.GetReminderPreference)
		reminders.PUT("/preference", h.SetReminderPreference)
	}
}

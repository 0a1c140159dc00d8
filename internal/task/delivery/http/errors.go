package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-task-tracker/internal/task"
	"study-task-tracker/pkg/response"
)

// mapError translates domain errors into HTTP responses. Precondition
// violations are the caller's fault; storage failures are ours.
func (h *handler) mapError(c *gin.Context, err error) {
	if errors.Is(err, task.ErrPrecondition) {
		response.Error(c, err, nil)
		return
	}
	response.InternalError(c, err)
}

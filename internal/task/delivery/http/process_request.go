package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"study-task-tracker/pkg/dateutil"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update task request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, fmt.Errorf("task id is required")
	}
	return req, nil
}

// processDateParam parses a "YYYY-MM-DD" date from the given query parameter,
// defaulting to today when absent.
func (h *handler) processDateParam(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: expected YYYY-MM-DD", name, raw)
	}
	return date, nil
}

// processDayParams parses year, month and day URI params into a calendar day.
// The day must exist in the given month; February 29 outside a leap year is
// rejected rather than normalized forward.
func (h *handler) processDayParams(c *gin.Context) (time.Time, error) {
	year, month, err := h.processMonthParams(c)
	if err != nil {
		return time.Time{}, err
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 || day > dateutil.DaysInMonth(year, month) {
		return time.Time{}, fmt.Errorf("invalid day %q for %d-%02d", c.Param("day"), year, int(month))
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local), nil
}

// processMonthParams parses year and month URI params.
func (h *handler) processMonthParams(c *gin.Context) (int, time.Month, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		return 0, 0, fmt.Errorf("invalid year %q", c.Param("year"))
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %q", c.Param("month"))
	}
	return year, time.Month(month), nil
}

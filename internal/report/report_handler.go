package report

import (
	"net/http"
	"strconv"
	"time"

	"hazri/internal/shared/apperror"
	"hazri/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Summary serves GET /teachers/:id/summary?month=&year=&all=.
// Month and year default to the current month.
func (h *Handler) Summary(c *gin.Context) {
	id := c.Param("id")

	role := c.GetString("role")
	if role != "admin" && c.GetString("teacher_id") != id {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "You may only view your own summary", nil)
		return
	}

	now := time.Now().UTC()
	month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	allMonths := c.Query("all") == "true"

	resp, err := h.service.MonthlySummary(c.Request.Context(), id, month, year, allMonths)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

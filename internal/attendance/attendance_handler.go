package attendance

import (
	"net/http"

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
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Reconcile(c *gin.Context) {
	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http reconcile attendance validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	// Teachers submit for themselves only. An omitted reference is
	// filled from the session; a mismatched one is rejected.
	role := c.GetString("role")
	if role != "admin" {
		own := c.GetString("teacher_id")
		ref := req.Teacher
		if ref == "" {
			ref = req.TeacherID
		}
		if ref == "" {
			req.Teacher = own
		} else if ref != own {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "You may only record your own attendance", nil)
			return
		}
	}

	resp, created, err := h.service.Reconcile(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	role := c.GetString("role")
	teacherID := c.Query("teacherId")
	if role != "admin" {
		teacherID = c.GetString("teacher_id")
	}

	var (
		resp []AttendanceResponse
		err  error
	)
	if teacherID != "" {
		resp, err = h.service.GetAllByTeacher(ctx, teacherID)
	} else {
		resp, err = h.service.GetAll(ctx)
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	role := c.GetString("role")
	if role != "admin" && resp.TeacherID != c.GetString("teacher_id") {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "You may only view your own attendance", nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	role := c.GetString("role")
	actorTeacherID := c.GetString("teacher_id")

	if err := h.service.Delete(c.Request.Context(), id, actorTeacherID, role == "admin"); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

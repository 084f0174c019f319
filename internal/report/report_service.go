package report

import (
	"context"
	"errors"
	"time"

	"hazri/internal/attendance"
	reporterrors "hazri/internal/report/errors"
	"hazri/internal/teacher"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	MonthlySummary(ctx context.Context, teacherID string, month, year int, allMonths bool) (MonthlySummary, error)
}

type service struct {
	teacherRepo    teacher.Repository
	attendanceRepo attendance.Repository
	weekend        WeekendConfig
	logger         *zap.Logger
}

func NewService(
	teacherRepo teacher.Repository,
	attendanceRepo attendance.Repository,
	weekend WeekendConfig,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		teacherRepo:    teacherRepo,
		attendanceRepo: attendanceRepo,
		weekend:        weekend,
		logger:         l,
	}
}

func (s *service) MonthlySummary(ctx context.Context, teacherID string, month, year int, allMonths bool) (MonthlySummary, error) {
	if !allMonths {
		if month < 1 || month > 12 {
			return MonthlySummary{}, reporterrors.ErrInvalidMonth
		}
		if year < 1000 || year > 9999 {
			return MonthlySummary{}, reporterrors.ErrInvalidYear
		}
	}

	t, err := s.teacherRepo.FindByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MonthlySummary{}, reporterrors.ErrTeacherNotFound
		}
		s.logger.Error("summary teacher lookup failed", zap.String("teacher_id", teacherID), zap.Error(err))
		return MonthlySummary{}, err
	}

	var records []attendance.Attendance
	if allMonths {
		records, err = s.attendanceRepo.FindAllByTeacher(ctx, teacherID)
	} else {
		from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		records, err = s.attendanceRepo.FindByTeacherAndRange(ctx, teacherID, from, from.AddDate(0, 1, 0))
	}
	if err != nil {
		// The dashboard shows zeroed figures rather than an error page
		// when the store is unreachable.
		s.logger.Warn("summary degraded to zeroed stats",
			zap.String("teacher_id", teacherID),
			zap.Error(err),
		)
		records = nil
	}

	summary := Summarize(records, s.weekend, t.MonthlySalary, time.Month(month), year, allMonths)
	summary.TeacherID = t.ID.String()
	summary.TeacherName = t.Name

	return summary, nil
}

package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	attendanceerrors "hazri/internal/attendance/errors"
	"hazri/internal/events"
	"hazri/internal/messaging/kafka"
	"hazri/internal/shared/contextutil"
	"hazri/internal/shared/timeutil"
	"hazri/internal/teacher"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	// Reconcile creates or updates the record for (teacher, date). The
	// returned bool reports whether a new record was created.
	Reconcile(ctx context.Context, req ReconcileRequest) (AttendanceResponse, bool, error)
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	GetAllByTeacher(ctx context.Context, teacherID string) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	Delete(ctx context.Context, id, actorTeacherID string, callerMayDelete bool) error
}

type service struct {
	db          *sql.DB
	repo        Repository
	teacherRepo teacher.Repository
	outbox      kafka.OutboxRepository
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, teacherRepo teacher.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, teacherRepo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	teacherRepo teacher.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		teacherRepo: teacherRepo,
		outbox:      outboxRepo,
		logger:      l,
	}
}

func (s *service) Reconcile(ctx context.Context, req ReconcileRequest) (AttendanceResponse, bool, error) {
	rid := contextutil.GetRequestID(ctx)
	in := resolveAliases(req)

	if err := validateInput(in); err != nil {
		return AttendanceResponse{}, false, err
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return AttendanceResponse{}, false, attendanceerrors.ErrInvalidDate
	}
	status := strings.ToLower(strings.TrimSpace(in.Status))

	s.logger.Debug("reconcile attendance requested",
		zap.String("request_id", rid),
		zap.String("teacher_id", in.TeacherRef),
		zap.String("date", in.Date),
		zap.String("status", status),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("reconcile attendance begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := s.teacherRepo.WithTx(tx).FindByID(ctx, in.TeacherRef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, false, attendanceerrors.ErrTeacherNotFound
		}
		s.logger.Error("reconcile attendance teacher lookup failed", zap.Error(err))
		return AttendanceResponse{}, false, err
	}

	existing, err := qtx.FindByTeacherAndDate(ctx, in.TeacherRef, date)
	created := false
	var record *Attendance
	switch {
	case err == nil:
		record = existing
	case errors.Is(err, gorm.ErrRecordNotFound):
		created = true
		record = &Attendance{
			ID:        uuid.New(),
			TeacherID: t.ID,
			Date:      date,
		}
	default:
		s.logger.Error("reconcile attendance lookup failed", zap.Error(err))
		return AttendanceResponse{}, false, err
	}

	// Merge: absent input fields keep their stored values, so a
	// check-out-only resubmission never erases the morning check-in.
	record.Status = status
	if in.TimeIn != nil {
		record.CheckIn = strPtrOrNil(*in.TimeIn)
	}
	if in.TimeOut != nil {
		record.CheckOut = strPtrOrNil(*in.TimeOut)
	}
	if in.Comment != nil {
		record.Comment = strPtrOrNil(strings.TrimSpace(*in.Comment))
	}

	s.recompute(record, t)

	if created {
		err = qtx.Create(ctx, record)
	} else {
		err = qtx.Update(ctx, record)
	}
	if err != nil {
		s.logger.Error("reconcile attendance persist failed",
			zap.String("teacher_id", t.ID.String()),
			zap.String("date", in.Date),
			zap.Error(err),
		)
		return AttendanceResponse{}, false, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.AttendanceReconciledEvent{
			EventType:       "attendance_reconciled",
			RequestID:       rid,
			AttendanceID:    record.ID.String(),
			TeacherID:       t.ID.String(),
			Date:            in.Date,
			Status:          record.Status,
			WorkHours:       record.WorkHours,
			SalaryDeduction: record.SalaryDeduction,
			Created:         created,
			OccurredAt:      time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal attendance event failed", zap.String("request_id", rid), zap.Error(err))
			return AttendanceResponse{}, false, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "attendance",
			AggregateID:   record.ID.String(),
			EventType:     event.EventType,
			Topic:         events.AttendanceReconciledTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("reconcile attendance outbox persist failed",
				zap.String("attendance_id", record.ID.String()),
				zap.Error(err),
			)
			return AttendanceResponse{}, false, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("reconcile attendance commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, false, err
	}

	s.logger.Info("reconcile attendance success",
		zap.String("request_id", rid),
		zap.String("attendance_id", record.ID.String()),
		zap.String("teacher_id", t.ID.String()),
		zap.String("date", in.Date),
		zap.Bool("created", created),
	)

	return mapToResponse(*record), created, nil
}

// recompute re-derives every figure from the merged record; stored
// work hours and deductions are never trusted across edits.
func (s *service) recompute(record *Attendance, t *teacher.Teacher) {
	checkIn := strValue(record.CheckIn)
	checkOut := strValue(record.CheckOut)

	record.WorkHours = 0
	if checkIn != "" && checkOut != "" {
		record.WorkHours = timeutil.WorkHours(checkIn, checkOut)
	}

	record.SalaryDeduction = timeutil.Round2(
		ComputeDeduction(record.Status, t.MonthlySalary, checkIn, t.WorkStartTime),
	)

	record.IsLate = record.Status == StatusPresent &&
		checkIn != "" &&
		timeutil.ToMinutes(checkIn) > timeutil.ToMinutes(t.WorkStartTime)

	expected := timeutil.WorkHours(t.WorkStartTime, t.WorkEndTime)
	record.IsShortDay = record.WorkHours > 0 && record.WorkHours < expected
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		// Listing is fail-soft, same as the teacher roster.
		s.logger.Warn("get all attendance degraded to empty list", zap.Error(err))
		return []AttendanceResponse{}, nil
	}
	return mapToListResponse(records), nil
}

func (s *service) GetAllByTeacher(ctx context.Context, teacherID string) ([]AttendanceResponse, error) {
	records, err := s.repo.FindAllByTeacher(ctx, teacherID)
	if err != nil {
		s.logger.Warn("get teacher attendance degraded to empty list",
			zap.String("teacher_id", teacherID),
			zap.Error(err),
		)
		return []AttendanceResponse{}, nil
	}
	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*record), nil
}

func (s *service) Delete(ctx context.Context, id, actorTeacherID string, callerMayDelete bool) error {
	if _, err := uuid.Parse(id); err != nil {
		return attendanceerrors.ErrInvalidAttendanceID
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if !callerMayDelete && record.TeacherID.String() != actorTeacherID {
		return attendanceerrors.ErrNotRecordOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete attendance failed", zap.String("attendance_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete attendance success", zap.String("attendance_id", id))
	return nil
}

func validateInput(in canonicalInput) error {
	if strings.TrimSpace(in.TeacherRef) == "" {
		return attendanceerrors.ErrTeacherRefRequired
	}
	if _, err := uuid.Parse(in.TeacherRef); err != nil {
		return attendanceerrors.ErrTeacherNotFound
	}
	if strings.TrimSpace(in.Date) == "" {
		return attendanceerrors.ErrDateRequired
	}
	status := strings.ToLower(strings.TrimSpace(in.Status))
	if status == "" {
		return attendanceerrors.ErrStatusRequired
	}
	if !validStatus(status) {
		return attendanceerrors.ErrInvalidStatus
	}
	if in.TimeIn != nil && *in.TimeIn != "" && !clockPattern.MatchString(*in.TimeIn) {
		return attendanceerrors.ErrInvalidTime
	}
	if in.TimeOut != nil && *in.TimeOut != "" && !clockPattern.MatchString(*in.TimeOut) {
		return attendanceerrors.ErrInvalidTime
	}
	return nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	teacherID := a.TeacherID.String()
	return AttendanceResponse{
		ID:              a.ID.String(),
		Teacher:         teacherID,
		TeacherID:       teacherID,
		Date:            a.Date.Format("2006-01-02"),
		Status:          a.Status,
		CheckIn:         a.CheckIn,
		TimeIn:          a.CheckIn,
		CheckOut:        a.CheckOut,
		TimeOut:         a.CheckOut,
		WorkHours:       a.WorkHours,
		SalaryDeduction: a.SalaryDeduction,
		Comment:         a.Comment,
		Comments:        a.Comment,
		Notes:           a.Comment,
		IsLate:          a.IsLate,
		IsShortDay:      a.IsShortDay,
	}
}

func mapToListResponse(records []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(records))
	for i, a := range records {
		res[i] = mapToResponse(a)
	}
	return res
}

func strPtrOrNil(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func strValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

package teacher

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"hazri/internal/events"
	"hazri/internal/messaging/kafka"
	"hazri/internal/shared/contextutil"
	"hazri/internal/shared/counter"
	teachererrors "hazri/internal/teacher/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const TeacherOptionsKey = "teachers:options"

var (
	grNumberPattern = regexp.MustCompile(`^\d{5}$`)
	clockPattern    = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

//go:generate mockgen -source=teacher_service.go -destination=mock/teacher_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTeacherRequest) (TeacherResponse, error)
	GetAll(ctx context.Context) ([]TeacherResponse, error)
	GetOptions(ctx context.Context) ([]TeacherOption, error)
	GetByID(ctx context.Context, id string) (TeacherResponse, error)
	Update(ctx context.Context, id string, req UpdateTeacherRequest) (TeacherResponse, error)
	Delete(ctx context.Context, id string) error
	ChangePassword(ctx context.Context, id string, req ChangePasswordRequest) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counterRepo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("teacher.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("teacher.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateTeacherRequest) (TeacherResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create teacher requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("username", req.Username),
		zap.String("gr_number", req.GrNumber),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create teacher begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TeacherResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	username := strings.ToLower(strings.TrimSpace(req.Username))
	grNumber := strings.TrimSpace(req.GrNumber)
	if username == "" && grNumber == "" {
		return TeacherResponse{}, teachererrors.ErrLoginIdentifierRequired
	}
	if grNumber != "" && !grNumberPattern.MatchString(grNumber) {
		return TeacherResponse{}, teachererrors.ErrInvalidGrNumber
	}

	// Username-only teachers still get a GR number drawn from the
	// atomic counter so every record has the 5-digit lookup key.
	if grNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "gr_number")
		if err != nil {
			s.logger.Error("create teacher generate gr number failed", zap.Error(err))
			return TeacherResponse{}, err
		}
		grNumber = fmt.Sprintf("%05d", nextVal)
	}

	workStart, workEnd, err := resolveWorkingHours(req.WorkingHours)
	if err != nil {
		return TeacherResponse{}, err
	}

	jamiaType, err := resolveJamiaType(req.Designation, req.JamiaType)
	if err != nil {
		return TeacherResponse{}, err
	}

	joiningDate := time.Now().UTC()
	if req.JoiningDate != "" {
		joiningDate, err = time.Parse("2006-01-02", req.JoiningDate)
		if err != nil {
			return TeacherResponse{}, teachererrors.ErrInvalidJoiningDate
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return TeacherResponse{}, err
	}

	phone := mirrorPhone(req.PhoneNumber, req.ContactNumber)
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	t := &Teacher{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.Name),
		Username:      strPtr(username),
		GrNumber:      strPtr(grNumber),
		Email:         strPtr(strings.ToLower(strings.TrimSpace(req.Email))),
		Password:      string(hashed),
		PhoneNumber:   phone,
		ContactNumber: phone,
		MonthlySalary: coerceSalary(req.MonthlySalary),
		Designation:   strings.TrimSpace(req.Designation),
		JamiaType:     jamiaType,
		WorkStartTime: workStart,
		WorkEndTime:   workEnd,
		Active:        active,
		JoiningDate:   joiningDate,
	}

	if err := qtx.Create(ctx, t); err != nil {
		s.logger.Error("create teacher persist failed", zap.Error(err))
		return TeacherResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.TeacherCreatedEvent{
			EventType:  "teacher_created",
			RequestID:  rid,
			TeacherID:  t.ID.String(),
			Name:       t.Name,
			GrNumber:   grNumber,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal teacher event failed", zap.String("request_id", rid), zap.Error(err))
			return TeacherResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "teacher",
			AggregateID:   t.ID.String(),
			EventType:     event.EventType,
			Topic:         events.TeacherCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create teacher outbox persist failed",
				zap.String("teacher_id", t.ID.String()),
				zap.Error(err),
			)
			return TeacherResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create teacher commit failed", zap.String("request_id", rid), zap.Error(err))
		return TeacherResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create teacher success",
		zap.String("request_id", rid),
		zap.String("teacher_id", t.ID.String()),
		zap.String("gr_number", grNumber),
	)

	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context) ([]TeacherResponse, error) {
	s.logger.Debug("get all teachers requested")
	teachers, err := s.repo.FindAll(ctx)
	if err != nil {
		// Dashboard listing is fail-soft: an unreachable store shows an
		// empty roster instead of a broken page.
		s.logger.Warn("get all teachers degraded to empty list", zap.Error(err))
		return []TeacherResponse{}, nil
	}

	return mapToListResponse(teachers), nil
}

func (s *service) GetOptions(ctx context.Context) ([]TeacherOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, TeacherOptionsKey).Result(); err == nil {
			var resp []TeacherOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight keeps a stampede of attendance-form loads from
	// hammering the store when the cache is cold.
	v, err, _ := s.sf.Do(TeacherOptionsKey, func() (interface{}, error) {
		teachers, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]TeacherOption, len(teachers))
		for i, t := range teachers {
			resp[i] = TeacherOption{
				ID:          t.ID.String(),
				Name:        t.Name,
				GrNumber:    strValue(t.GrNumber),
				Designation: t.Designation,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, TeacherOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]TeacherOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TeacherResponse, error) {
	s.logger.Debug("get teacher by id requested", zap.String("teacher_id", id))
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get teacher by id failed", zap.Error(err))
		return TeacherResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTeacherRequest) (TeacherResponse, error) {
	s.logger.Debug("update teacher requested", zap.String("teacher_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update teacher begin tx failed", zap.Error(err))
		return TeacherResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update teacher fetch existing failed", zap.Error(err))
		return TeacherResponse{}, mapRepositoryError(err)
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	grNumber := strings.TrimSpace(req.GrNumber)
	if username == "" && grNumber == "" {
		return TeacherResponse{}, teachererrors.ErrLoginIdentifierRequired
	}
	if grNumber != "" && !grNumberPattern.MatchString(grNumber) {
		return TeacherResponse{}, teachererrors.ErrInvalidGrNumber
	}

	workStart, workEnd, err := resolveWorkingHours(req.WorkingHours)
	if err != nil {
		return TeacherResponse{}, err
	}

	jamiaType, err := resolveJamiaType(req.Designation, req.JamiaType)
	if err != nil {
		return TeacherResponse{}, err
	}

	if req.JoiningDate != "" {
		joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
		if err != nil {
			return TeacherResponse{}, teachererrors.ErrInvalidJoiningDate
		}
		t.JoiningDate = joiningDate
	}

	phone := mirrorPhone(req.PhoneNumber, req.ContactNumber)

	t.Name = strings.TrimSpace(req.Name)
	t.Username = strPtr(username)
	t.GrNumber = strPtr(grNumber)
	t.Email = strPtr(strings.ToLower(strings.TrimSpace(req.Email)))
	t.PhoneNumber = phone
	t.ContactNumber = phone
	t.MonthlySalary = coerceSalary(req.MonthlySalary)
	t.Designation = strings.TrimSpace(req.Designation)
	t.JamiaType = jamiaType
	t.WorkStartTime = workStart
	t.WorkEndTime = workEnd
	if req.Active != nil {
		t.Active = *req.Active
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return TeacherResponse{}, err
		}
		t.Password = string(hashed)
	}

	if err := qtx.Update(ctx, t); err != nil {
		s.logger.Error("update teacher persist failed", zap.Error(err))
		return TeacherResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update teacher commit failed", zap.Error(err))
		return TeacherResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update teacher success", zap.String("teacher_id", id))

	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete teacher requested", zap.String("teacher_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete teacher begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Hard delete without cascading to attendance; orphaned rows are
	// tolerated and resolved defensively on read.
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete teacher failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete teacher commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete teacher success", zap.String("teacher_id", id))
	return nil
}

func (s *service) ChangePassword(ctx context.Context, id string, req ChangePasswordRequest) error {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(t.Password), []byte(req.CurrentPassword)); err != nil {
		return teachererrors.ErrWrongCurrentPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hashed)); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("change password success", zap.String("teacher_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, TeacherOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate teacher options cache",
			zap.Error(err),
			zap.String("key", TeacherOptionsKey),
		)
	}
}

func resolveWorkingHours(wh *WorkingHours) (string, string, error) {
	start, end := DefaultStartTime, DefaultEndTime
	if wh != nil {
		if wh.StartTime != "" {
			start = wh.StartTime
		}
		if wh.EndTime != "" {
			end = wh.EndTime
		}
	}
	if !clockPattern.MatchString(start) || !clockPattern.MatchString(end) {
		return "", "", teachererrors.ErrInvalidWorkingHours
	}
	return start, end, nil
}

// resolveJamiaType enforces the designation coupling: only the Jamia
// designation carries a sub-classification, everything else forces it
// empty.
func resolveJamiaType(designation, jamiaType string) (string, error) {
	if strings.TrimSpace(designation) == DesignationJamia {
		jamiaType = strings.TrimSpace(jamiaType)
		if jamiaType == "" {
			return "", teachererrors.ErrJamiaTypeRequired
		}
		return jamiaType, nil
	}
	return "", nil
}

// coerceSalary maps missing or malformed salaries to 0 so derived
// figures stay finite and non-negative.
func coerceSalary(v *float64) float64 {
	if v == nil {
		return 0
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return 0
	}
	return *v
}

func mirrorPhone(phoneNumber, contactNumber string) string {
	phone := strings.TrimSpace(phoneNumber)
	if phone == "" {
		phone = strings.TrimSpace(contactNumber)
	}
	return phone
}

func mapToResponse(t Teacher) TeacherResponse {
	return TeacherResponse{
		ID:            t.ID.String(),
		Name:          t.Name,
		Username:      strValue(t.Username),
		GrNumber:      strValue(t.GrNumber),
		Email:         strValue(t.Email),
		PhoneNumber:   t.PhoneNumber,
		ContactNumber: t.ContactNumber,
		MonthlySalary: t.MonthlySalary,
		Designation:   t.Designation,
		JamiaType:     t.JamiaType,
		WorkingHours: WorkingHours{
			StartTime: t.WorkStartTime,
			EndTime:   t.WorkEndTime,
		},
		Active:      t.Active,
		JoiningDate: t.JoiningDate.Format("2006-01-02"),
	}
}

func mapToListResponse(teachers []Teacher) []TeacherResponse {
	res := make([]TeacherResponse, len(teachers))
	for i, t := range teachers {
		res[i] = mapToResponse(t)
	}
	return res
}

func strPtr(v string) *string {
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

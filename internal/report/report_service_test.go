package report_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"hazri/internal/attendance"
	"hazri/internal/report"
	reporterrors "hazri/internal/report/errors"
	"hazri/internal/teacher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeTeacherRepo struct {
	findByIDFn func(ctx context.Context, id string) (*teacher.Teacher, error)
}

func (f *fakeTeacherRepo) WithTx(tx *sql.Tx) teacher.Repository { return f }

func (f *fakeTeacherRepo) Create(ctx context.Context, t *teacher.Teacher) error { return nil }

func (f *fakeTeacherRepo) FindAll(ctx context.Context) ([]teacher.Teacher, error) { return nil, nil }

func (f *fakeTeacherRepo) FindOptions(ctx context.Context) ([]teacher.Teacher, error) {
	return nil, nil
}

func (f *fakeTeacherRepo) FindByID(ctx context.Context, id string) (*teacher.Teacher, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeTeacherRepo) FindByLogin(ctx context.Context, login string) (*teacher.Teacher, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTeacherRepo) Update(ctx context.Context, t *teacher.Teacher) error { return nil }

func (f *fakeTeacherRepo) UpdatePassword(ctx context.Context, id, hash string) error { return nil }

func (f *fakeTeacherRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeAttendanceRepo struct {
	findAllByTeacherFn func(ctx context.Context, teacherID string) ([]attendance.Attendance, error)
	rangeErr           error
	rangeRecords       []attendance.Attendance
}

func (f *fakeAttendanceRepo) WithTx(tx *sql.Tx) attendance.Repository { return f }

func (f *fakeAttendanceRepo) Create(ctx context.Context, a *attendance.Attendance) error { return nil }

func (f *fakeAttendanceRepo) Update(ctx context.Context, a *attendance.Attendance) error { return nil }

func (f *fakeAttendanceRepo) FindByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) FindByTeacherAndDate(ctx context.Context, teacherID string, date time.Time) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) FindAll(ctx context.Context) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) FindAllByTeacher(ctx context.Context, teacherID string) ([]attendance.Attendance, error) {
	if f.findAllByTeacherFn != nil {
		return f.findAllByTeacherFn(ctx, teacherID)
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) FindByTeacherAndRange(ctx context.Context, teacherID string, from, to time.Time) ([]attendance.Attendance, error) {
	return f.rangeRecords, f.rangeErr
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }

func TestMonthlySummary(t *testing.T) {
	teacherID := uuid.New()
	repoTeacher := &fakeTeacherRepo{
		findByIDFn: func(ctx context.Context, id string) (*teacher.Teacher, error) {
			return &teacher.Teacher{ID: teacherID, Name: "Ahmed Raza", MonthlySalary: 30000}, nil
		},
	}

	t.Run("success", func(t *testing.T) {
		repoAtt := &fakeAttendanceRepo{
			rangeRecords: []attendance.Attendance{
				record(day(2026, 3, 2), attendance.StatusPresent, 8, 0),
				record(day(2026, 3, 3), attendance.StatusAbsent, 0, 1000),
			},
		}
		svc := report.NewService(repoTeacher, repoAtt, report.DefaultWeekend(), zap.NewNop())

		s, err := svc.MonthlySummary(context.Background(), teacherID.String(), 3, 2026, false)
		assert.NoError(t, err)
		assert.Equal(t, "Ahmed Raza", s.TeacherName)
		assert.Equal(t, 2, s.TotalRecords)
		assert.InDelta(t, 29000, s.FinalSalary, 0.0001)
	})

	t.Run("storage failure degrades to zeroed stats", func(t *testing.T) {
		repoAtt := &fakeAttendanceRepo{rangeErr: errors.New("connection refused")}
		svc := report.NewService(repoTeacher, repoAtt, report.DefaultWeekend(), zap.NewNop())

		s, err := svc.MonthlySummary(context.Background(), teacherID.String(), 3, 2026, false)
		assert.NoError(t, err)
		assert.Zero(t, s.TotalRecords)
		assert.Zero(t, s.TotalDeductions)
		assert.InDelta(t, 30000, s.FinalSalary, 0.0001)
	})

	t.Run("negative unknown teacher", func(t *testing.T) {
		repo := &fakeTeacherRepo{
			findByIDFn: func(ctx context.Context, id string) (*teacher.Teacher, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := report.NewService(repo, &fakeAttendanceRepo{}, report.DefaultWeekend(), zap.NewNop())

		_, err := svc.MonthlySummary(context.Background(), uuid.NewString(), 3, 2026, false)
		assert.ErrorIs(t, err, reporterrors.ErrTeacherNotFound)
	})

	t.Run("negative month out of range", func(t *testing.T) {
		svc := report.NewService(repoTeacher, &fakeAttendanceRepo{}, report.DefaultWeekend(), zap.NewNop())

		_, err := svc.MonthlySummary(context.Background(), teacherID.String(), 13, 2026, false)
		assert.ErrorIs(t, err, reporterrors.ErrInvalidMonth)
	})
}

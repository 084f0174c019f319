package teacher_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"hazri/internal/teacher"
	teachererrors "hazri/internal/teacher/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	createFn         func(ctx context.Context, t *teacher.Teacher) error
	findAllFn        func(ctx context.Context) ([]teacher.Teacher, error)
	findOptionsFn    func(ctx context.Context) ([]teacher.Teacher, error)
	findByIDFn       func(ctx context.Context, id string) (*teacher.Teacher, error)
	updateFn         func(ctx context.Context, t *teacher.Teacher) error
	updatePasswordFn func(ctx context.Context, id, hash string) error
	deleteFn         func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) teacher.Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, t *teacher.Teacher) error {
	return f.createFn(ctx, t)
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]teacher.Teacher, error) {
	return f.findAllFn(ctx)
}

func (f *fakeRepo) FindOptions(ctx context.Context) ([]teacher.Teacher, error) {
	if f.findOptionsFn != nil {
		return f.findOptionsFn(ctx)
	}
	return nil, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*teacher.Teacher, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeRepo) FindByLogin(ctx context.Context, login string) (*teacher.Teacher, error) {
	return nil, nil
}

func (f *fakeRepo) Update(ctx context.Context, t *teacher.Teacher) error {
	return f.updateFn(ctx, t)
}

func (f *fakeRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	return f.updatePasswordFn(ctx, id, hash)
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeCounter struct {
	next int64
	err  error
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.next++
	return f.next, nil
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func floatPtr(v float64) *float64 { return &v }

func validCreateRequest() teacher.CreateTeacherRequest {
	return teacher.CreateTeacherRequest{
		Name:          "Ahmed Raza",
		Username:      "ahmed",
		Password:      "s3cret",
		Designation:   "Teacher",
		MonthlySalary: floatPtr(30000),
	}
}

func TestCreate(t *testing.T) {
	t.Run("success with defaults", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		expectTx(t, mock, true)

		var stored *teacher.Teacher
		repo := &fakeRepo{
			createFn: func(ctx context.Context, tc *teacher.Teacher) error {
				stored = tc
				return nil
			},
		}

		svc := teacher.NewService(db, repo, &fakeCounter{}, nil, zap.NewNop())
		resp, err := svc.Create(context.Background(), validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, "08:00", resp.WorkingHours.StartTime)
		assert.Equal(t, "16:00", resp.WorkingHours.EndTime)
		assert.True(t, resp.Active)
		assert.NotNil(t, stored)
		// Passwords are stored hashed only.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("generates gr number when absent", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		expectTx(t, mock, true)

		repo := &fakeRepo{
			createFn: func(ctx context.Context, tc *teacher.Teacher) error { return nil },
		}

		svc := teacher.NewService(db, repo, &fakeCounter{next: 41}, nil, zap.NewNop())
		resp, err := svc.Create(context.Background(), validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, "00042", resp.GrNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("phone and contact mirror each other", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		expectTx(t, mock, true)

		repo := &fakeRepo{
			createFn: func(ctx context.Context, tc *teacher.Teacher) error { return nil },
		}
		svc := teacher.NewService(db, repo, &fakeCounter{}, nil, zap.NewNop())

		req := validCreateRequest()
		req.ContactNumber = "0300-1234567"
		resp, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "0300-1234567", resp.PhoneNumber)
		assert.Equal(t, resp.PhoneNumber, resp.ContactNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed salaries coerce to zero", func(t *testing.T) {
		for _, salary := range []*float64{nil, floatPtr(-5000), floatPtr(math.NaN()), floatPtr(math.Inf(1))} {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			expectTx(t, mock, true)

			repo := &fakeRepo{
				createFn: func(ctx context.Context, tc *teacher.Teacher) error { return nil },
			}
			svc := teacher.NewService(db, repo, &fakeCounter{}, nil, zap.NewNop())

			req := validCreateRequest()
			req.MonthlySalary = salary
			resp, err := svc.Create(context.Background(), req)

			assert.NoError(t, err)
			assert.Zero(t, resp.MonthlySalary)
			db.Close()
		}
	})

	t.Run("jamia designation requires a type", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		expectTx(t, mock, false)

		svc := teacher.NewService(db, &fakeRepo{}, &fakeCounter{}, nil, zap.NewNop())

		req := validCreateRequest()
		req.Designation = "Jamia"
		_, err = svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, teachererrors.ErrJamiaTypeRequired)
	})

	t.Run("non-jamia designation clears the type", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		expectTx(t, mock, true)

		repo := &fakeRepo{
			createFn: func(ctx context.Context, tc *teacher.Teacher) error { return nil },
		}
		svc := teacher.NewService(db, repo, &fakeCounter{}, nil, zap.NewNop())

		req := validCreateRequest()
		req.JamiaType = "Hifz"
		resp, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Empty(t, resp.JamiaType)
	})

	t.Run("negative gr number must be five digits", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		expectTx(t, mock, false)

		svc := teacher.NewService(db, &fakeRepo{}, &fakeCounter{}, nil, zap.NewNop())

		req := validCreateRequest()
		req.GrNumber = "1234"
		_, err = svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, teachererrors.ErrInvalidGrNumber)
	})

	t.Run("negative needs username or gr number", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		expectTx(t, mock, false)

		svc := teacher.NewService(db, &fakeRepo{}, &fakeCounter{}, nil, zap.NewNop())

		req := validCreateRequest()
		req.Username = ""
		_, err = svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, teachererrors.ErrLoginIdentifierRequired)
	})

	t.Run("negative malformed working hours", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		expectTx(t, mock, false)

		svc := teacher.NewService(db, &fakeRepo{}, &fakeCounter{}, nil, zap.NewNop())

		req := validCreateRequest()
		req.WorkingHours = &teacher.WorkingHours{StartTime: "8am", EndTime: "16:00"}
		_, err = svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, teachererrors.ErrInvalidWorkingHours)
	})

	t.Run("negative duplicate username maps to conflict", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		expectTx(t, mock, false)

		repo := &fakeRepo{
			createFn: func(ctx context.Context, tc *teacher.Teacher) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_teachers_username"}
			},
		}
		svc := teacher.NewService(db, repo, &fakeCounter{}, nil, zap.NewNop())

		_, err = svc.Create(context.Background(), validCreateRequest())
		assert.ErrorIs(t, err, teachererrors.ErrUsernameAlreadyExists)
	})
}

func TestGetOptions(t *testing.T) {
	id := uuid.New()
	gr := "00007"
	options := []teacher.TeacherOption{
		{ID: id.String(), Name: "Ahmed Raza", GrNumber: gr, Designation: "Teacher"},
	}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		rdb, rmock := redismock.NewClientMock()
		cached, err := json.Marshal(options)
		assert.NoError(t, err)
		rmock.ExpectGet(teacher.TeacherOptionsKey).SetVal(string(cached))

		repo := &fakeRepo{
			findOptionsFn: func(ctx context.Context) ([]teacher.Teacher, error) {
				t.Fatal("repository must not be hit on a cache hit")
				return nil, nil
			},
		}
		svc := teacher.NewService(db, repo, &fakeCounter{}, rdb, zap.NewNop())

		resp, err := svc.GetOptions(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, options, resp)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		rdb, rmock := redismock.NewClientMock()
		cached, err := json.Marshal(options)
		assert.NoError(t, err)
		rmock.ExpectGet(teacher.TeacherOptionsKey).RedisNil()
		rmock.ExpectSet(teacher.TeacherOptionsKey, cached, time.Hour).SetVal("OK")

		repo := &fakeRepo{
			findOptionsFn: func(ctx context.Context) ([]teacher.Teacher, error) {
				return []teacher.Teacher{
					{ID: id, Name: "Ahmed Raza", GrNumber: &gr, Designation: "Teacher"},
				}, nil
			},
		}
		svc := teacher.NewService(db, repo, &fakeCounter{}, rdb, zap.NewNop())

		resp, err := svc.GetOptions(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, options, resp)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})
}

func TestGetAll(t *testing.T) {
	t.Run("degrades to empty list on storage failure", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeRepo{
			findAllFn: func(ctx context.Context) ([]teacher.Teacher, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := teacher.NewService(db, repo, &fakeCounter{}, nil, zap.NewNop())

		resp, err := svc.GetAll(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, resp)
		assert.NotNil(t, resp)
	})
}

func TestChangePassword(t *testing.T) {
	id := uuid.New()
	current, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	assert.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		updated := ""
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, tid string) (*teacher.Teacher, error) {
				return &teacher.Teacher{ID: id, Password: string(current)}, nil
			},
			updatePasswordFn: func(ctx context.Context, tid, hash string) error {
				updated = hash
				return nil
			},
		}
		svc := teacher.NewService(db, repo, &fakeCounter{}, nil, zap.NewNop())

		err = svc.ChangePassword(context.Background(), id.String(), teacher.ChangePasswordRequest{
			CurrentPassword: "old-pass",
			NewPassword:     "new-pass",
		})

		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated), []byte("new-pass")))
	})

	t.Run("negative wrong current password", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, tid string) (*teacher.Teacher, error) {
				return &teacher.Teacher{ID: id, Password: string(current)}, nil
			},
		}
		svc := teacher.NewService(db, repo, &fakeCounter{}, nil, zap.NewNop())

		err = svc.ChangePassword(context.Background(), id.String(), teacher.ChangePasswordRequest{
			CurrentPassword: "guess",
			NewPassword:     "new-pass",
		})

		assert.ErrorIs(t, err, teachererrors.ErrWrongCurrentPassword)
	})
}

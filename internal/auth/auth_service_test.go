package auth_test

import (
	"context"
	"database/sql"
	"testing"

	"hazri/internal/auth"
	autherrors "hazri/internal/auth/errors"
	"hazri/internal/teacher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	findByUsernameFn func(ctx context.Context, username string) (*auth.User, error)
	findByIDFn       func(ctx context.Context, id string) (*auth.User, error)
	updatePasswordFn func(ctx context.Context, id, hash string) error
}

func (f *fakeUserRepo) WithTx(tx *sql.Tx) auth.Repository { return f }

func (f *fakeUserRepo) Create(ctx context.Context, u *auth.User) error { return nil }

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	return f.findByUsernameFn(ctx, username)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*auth.User, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	if f.updatePasswordFn != nil {
		return f.updatePasswordFn(ctx, id, hash)
	}
	return nil
}

type fakeTeacherRepo struct {
	findByLoginFn    func(ctx context.Context, login string) (*teacher.Teacher, error)
	findByIDFn       func(ctx context.Context, id string) (*teacher.Teacher, error)
	updatePasswordFn func(ctx context.Context, id, hash string) error
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
	return f.findByLoginFn(ctx, login)
}

func (f *fakeTeacherRepo) Update(ctx context.Context, t *teacher.Teacher) error { return nil }

func (f *fakeTeacherRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	if f.updatePasswordFn != nil {
		return f.updatePasswordFn(ctx, id, hash)
	}
	return nil
}

func (f *fakeTeacherRepo) Delete(ctx context.Context, id string) error { return nil }

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	adminID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := &fakeUserRepo{
			findByUsernameFn: func(ctx context.Context, username string) (*auth.User, error) {
				return &auth.User{ID: adminID, Username: username, Password: hash(t, "s3cret"), Role: "admin"}, nil
			},
		}

		svc := auth.NewService(repo, &fakeTeacherRepo{}, zap.NewNop())
		resp, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "s3cret"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "admin", resp.User.Role)
	})

	t.Run("negative unknown user and wrong password are indistinguishable", func(t *testing.T) {
		unknownRepo := &fakeUserRepo{
			findByUsernameFn: func(ctx context.Context, username string) (*auth.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		wrongPassRepo := &fakeUserRepo{
			findByUsernameFn: func(ctx context.Context, username string) (*auth.User, error) {
				return &auth.User{ID: adminID, Username: username, Password: hash(t, "other"), Role: "admin"}, nil
			},
		}

		svc := auth.NewService(unknownRepo, &fakeTeacherRepo{}, zap.NewNop())
		_, errUnknown := svc.Login(context.Background(), auth.LoginRequest{Username: "nobody", Password: "x"})

		svc = auth.NewService(wrongPassRepo, &fakeTeacherRepo{}, zap.NewNop())
		_, errWrong := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "x"})

		assert.ErrorIs(t, errUnknown, autherrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, autherrors.ErrInvalidCredentials)
	})
}

func TestTeacherLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	teacherID := uuid.New()
	username := "arif"

	t.Run("success sets teacher claims", func(t *testing.T) {
		repo := &fakeTeacherRepo{
			findByLoginFn: func(ctx context.Context, login string) (*teacher.Teacher, error) {
				return &teacher.Teacher{ID: teacherID, Name: "Arif", Username: &username, Password: hash(t, "s3cret")}, nil
			},
		}

		svc := auth.NewService(&fakeUserRepo{}, repo, zap.NewNop())
		resp, err := svc.TeacherLogin(context.Background(), auth.TeacherLoginRequest{Login: "arif", Password: "s3cret"})

		assert.NoError(t, err)
		assert.Equal(t, "teacher", resp.User.Role)
		assert.Equal(t, teacherID.String(), resp.User.TeacherID)
	})

	t.Run("negative unknown account is reported as such", func(t *testing.T) {
		repo := &fakeTeacherRepo{
			findByLoginFn: func(ctx context.Context, login string) (*teacher.Teacher, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := auth.NewService(&fakeUserRepo{}, repo, zap.NewNop())
		_, err := svc.TeacherLogin(context.Background(), auth.TeacherLoginRequest{Login: "99999", Password: "x"})

		assert.ErrorIs(t, err, autherrors.ErrTeacherNotFound)
	})

	t.Run("negative wrong password is reported as such", func(t *testing.T) {
		repo := &fakeTeacherRepo{
			findByLoginFn: func(ctx context.Context, login string) (*teacher.Teacher, error) {
				return &teacher.Teacher{ID: teacherID, Username: &username, Password: hash(t, "other")}, nil
			},
		}

		svc := auth.NewService(&fakeUserRepo{}, repo, zap.NewNop())
		_, err := svc.TeacherLogin(context.Background(), auth.TeacherLoginRequest{Login: "arif", Password: "x"})

		assert.ErrorIs(t, err, autherrors.ErrWrongPassword)
	})

	t.Run("legacy plaintext password is accepted and rehashed", func(t *testing.T) {
		rehashed := ""
		repo := &fakeTeacherRepo{
			findByLoginFn: func(ctx context.Context, login string) (*teacher.Teacher, error) {
				return &teacher.Teacher{ID: teacherID, Username: &username, Password: "plain-old-password"}, nil
			},
			updatePasswordFn: func(ctx context.Context, id, hash string) error {
				rehashed = hash
				return nil
			},
		}

		svc := auth.NewService(&fakeUserRepo{}, repo, zap.NewNop())
		resp, err := svc.TeacherLogin(context.Background(), auth.TeacherLoginRequest{Login: "arif", Password: "plain-old-password"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, rehashed)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(rehashed), []byte("plain-old-password")))
	})
}

func TestRefresh(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	adminID := uuid.New()

	repo := &fakeUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*auth.User, error) {
			return &auth.User{ID: adminID, Username: username, Password: hash(t, "s3cret"), Role: "admin"}, nil
		},
		findByIDFn: func(ctx context.Context, id string) (*auth.User, error) {
			return &auth.User{ID: adminID, Username: "admin", Role: "admin"}, nil
		},
	}
	svc := auth.NewService(repo, &fakeTeacherRepo{}, zap.NewNop())

	login, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "s3cret"})
	assert.NoError(t, err)

	t.Run("refresh token issues a new pair", func(t *testing.T) {
		resp, err := svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: login.RefreshToken})
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("negative access token is not a refresh token", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: login.AccessToken})
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("negative garbage token", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: "not-a-token"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"os"
	"strings"
	"time"

	autherrors "hazri/internal/auth/errors"
	"hazri/internal/shared/contextutil"
	"hazri/internal/teacher"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	TeacherLogin(ctx context.Context, req TeacherLoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (LoginResponse, error)
	GetMe(ctx context.Context, userID, role string) (UserInfo, error)
}

type service struct {
	repo        Repository
	teacherRepo teacher.Repository
	logger      *zap.Logger
}

func NewService(repo Repository, teacherRepo teacher.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		repo:        repo,
		teacherRepo: teacherRepo,
		logger:      l,
	}
}

// Login authenticates an admin account. A missing user and a wrong
// password produce the same error.
func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	username := strings.ToLower(strings.TrimSpace(req.Username))

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("admin login unknown user", zap.String("request_id", rid), zap.String("username", username))
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("admin login lookup failed", zap.String("request_id", rid), zap.Error(err))
		return LoginResponse{}, err
	}

	if !s.verifyPassword(ctx, u.Password, req.Password, func(hash string) error {
		return s.repo.UpdatePassword(ctx, u.ID.String(), hash)
	}) {
		s.logger.Warn("admin login wrong password", zap.String("request_id", rid), zap.String("username", username))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	resp, err := s.buildTokens(u.ID.String(), u.Role, "", UserInfo{
		ID:       u.ID.String(),
		Username: u.Username,
		Role:     u.Role,
	})
	if err != nil {
		return LoginResponse{}, err
	}

	s.logger.Info("admin login success", zap.String("request_id", rid), zap.String("user_id", u.ID.String()))
	return resp, nil
}

// TeacherLogin authenticates against the teacher table by username or
// GR number. Unlike the admin path it reports unknown accounts and
// wrong passwords separately.
func (s *service) TeacherLogin(ctx context.Context, req TeacherLoginRequest) (LoginResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	login := strings.ToLower(strings.TrimSpace(req.Login))

	t, err := s.teacherRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("teacher login unknown account", zap.String("request_id", rid), zap.String("login", login))
			return LoginResponse{}, autherrors.ErrTeacherNotFound
		}
		s.logger.Error("teacher login lookup failed", zap.String("request_id", rid), zap.Error(err))
		return LoginResponse{}, err
	}

	if !s.verifyPassword(ctx, t.Password, req.Password, func(hash string) error {
		return s.teacherRepo.UpdatePassword(ctx, t.ID.String(), hash)
	}) {
		s.logger.Warn("teacher login wrong password", zap.String("request_id", rid), zap.String("teacher_id", t.ID.String()))
		return LoginResponse{}, autherrors.ErrWrongPassword
	}

	resp, err := s.buildTokens(t.ID.String(), "teacher", t.ID.String(), UserInfo{
		ID:        t.ID.String(),
		Username:  teacherUsername(t),
		Role:      "teacher",
		TeacherID: t.ID.String(),
		Name:      t.Name,
	})
	if err != nil {
		return LoginResponse{}, err
	}

	s.logger.Info("teacher login success", zap.String("request_id", rid), zap.String("teacher_id", t.ID.String()))
	return resp, nil
}

// verifyPassword checks a bcrypt hash, falling back to a constant-time
// plaintext comparison for rows imported before hashing was enforced.
// Legacy matches are rehashed in place so the fallback shrinks over
// time.
func (s *service) verifyPassword(ctx context.Context, stored, provided string, rehash func(hash string) error) bool {
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(provided)) == nil {
		return true
	}

	if !strings.HasPrefix(stored, "$2") &&
		subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) == 1 {
		if hashed, err := bcrypt.GenerateFromPassword([]byte(provided), bcrypt.DefaultCost); err == nil {
			if err := rehash(string(hashed)); err != nil {
				s.logger.Warn("legacy password rehash failed", zap.Error(err))
			}
		}
		return true
	}

	return false
}

func (s *service) Refresh(ctx context.Context, req RefreshRequest) (LoginResponse, error) {
	claims, err := parseToken(req.RefreshToken)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	teacherID, _ := claims["teacher_id"].(string)
	if userID == "" || role == "" {
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}

	info, err := s.GetMe(ctx, userID, role)
	if err != nil {
		return LoginResponse{}, err
	}

	return s.buildTokens(userID, role, teacherID, info)
}

func (s *service) GetMe(ctx context.Context, userID, role string) (UserInfo, error) {
	if role == "teacher" {
		t, err := s.teacherRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return UserInfo{}, autherrors.ErrUserNotFound
			}
			return UserInfo{}, err
		}
		return UserInfo{
			ID:        t.ID.String(),
			Username:  teacherUsername(t),
			Role:      "teacher",
			TeacherID: t.ID.String(),
			Name:      t.Name,
		}, nil
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserInfo{}, autherrors.ErrUserNotFound
		}
		return UserInfo{}, err
	}
	return UserInfo{
		ID:       u.ID.String(),
		Username: u.Username,
		Role:     u.Role,
	}, nil
}

func (s *service) buildTokens(userID, role, teacherID string, info UserInfo) (LoginResponse, error) {
	access, err := signToken(userID, role, teacherID, "access", accessTokenTTL)
	if err != nil {
		s.logger.Error("sign access token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := signToken(userID, role, teacherID, "refresh", refreshTokenTTL)
	if err != nil {
		s.logger.Error("sign refresh token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
		User:         info,
	}, nil
}

func signToken(userID, role, teacherID, typ string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    userID,
		"role":       role,
		"teacher_id": teacherID,
		"typ":        typ,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, autherrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

func teacherUsername(t *teacher.Teacher) string {
	if t.Username != nil && *t.Username != "" {
		return *t.Username
	}
	if t.GrNumber != nil {
		return *t.GrNumber
	}
	return ""
}

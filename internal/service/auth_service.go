package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/pizza-store/internal/auth"
	"github.com/spec-kit/pizza-store/internal/domain"
	"github.com/spec-kit/pizza-store/internal/repository"
	"github.com/spec-kit/pizza-store/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(users repository.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// Register creates a new account via self-registration. The role is
// always customer; favorite items start out unset.
func (s *AuthService) Register(ctx context.Context, login, password, phoneNum string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, util.NewValidationError("login must not be empty")
	}
	if password == "" {
		return nil, util.NewValidationError("password must not be empty")
	}

	if _, err := s.users.GetByLogin(ctx, login); err == nil {
		return nil, util.NewValidationError("login already taken")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("register: lookup failed", zap.String("login", login), zap.Error(err))
		return nil, util.NewStorageFailure(err)
	}

	user := &domain.User{
		Login:    login,
		Password: password,
		Role:     domain.RoleCustomer,
		PhoneNum: strings.TrimSpace(phoneNum),
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("register: insert failed", zap.String("login", login), zap.Error(err))
		return nil, util.NewStorageFailure(err)
	}

	s.logger.Info("user registered", zap.String("login", login))
	return user, nil
}

// Login authenticates by exact credential match and resolves the
// stored role once for the lifetime of the returned session.
func (s *AuthService) Login(ctx context.Context, login, password string) (*auth.Session, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, util.NewValidationError("login must not be empty")
	}

	ok, err := s.users.ExistsByCredentials(ctx, login, password)
	if err != nil {
		s.logger.Error("login: credential check failed", zap.String("login", login), zap.Error(err))
		return nil, util.NewStorageFailure(err)
	}
	if !ok {
		return nil, util.NewUnauthorized("invalid username or password")
	}

	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		s.logger.Error("login: role resolution failed", zap.String("login", login), zap.Error(err))
		return nil, util.NewStorageFailure(err)
	}

	sess := auth.NewSession(user.Login, user.Role)
	s.logger.Info("session started",
		zap.String("session", sess.ID),
		zap.String("login", sess.Login),
		zap.String("role", string(sess.Role)),
	)
	return sess, nil
}

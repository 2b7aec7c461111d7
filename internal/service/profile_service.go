package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/pizza-store/internal/auth"
	"github.com/spec-kit/pizza-store/internal/domain"
	"github.com/spec-kit/pizza-store/internal/repository"
	"github.com/spec-kit/pizza-store/pkg/util"
)

// ProfileService implements profile viewing and the role-gated
// attribute update engine.
type ProfileService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewProfileService builds the service.
func NewProfileService(users repository.UserRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{users: users, logger: logger}
}

// View returns the profile stored under login. Viewing carries no
// authorization gate: any session that knows a login may inspect it.
func (s *ProfileService) View(ctx context.Context, login string) (*domain.User, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("user")
		}
		s.logger.Error("view profile failed", zap.String("login", login), zap.Error(err))
		return nil, util.NewStorageFailure(err)
	}
	return user, nil
}

// UpdateField overwrites one field of one record on behalf of the
// session. The target must exist, and the session's role must permit
// the mutation; both checks run before any statement reaches storage.
// Re-applying the same value is a no-op success.
func (s *ProfileService) UpdateField(ctx context.Context, sess *auth.Session, targetLogin string, field domain.UserField, value string) error {
	if sess == nil {
		return util.NewUnauthorized("not logged in")
	}

	if _, err := s.users.GetByLogin(ctx, targetLogin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("user")
		}
		s.logger.Error("update: target lookup failed", zap.String("target", targetLogin), zap.Error(err))
		return util.NewStorageFailure(err)
	}

	if !auth.CanMutate(sess.Role, field, sess.IsSelf(targetLogin)) {
		s.logger.Warn("update refused",
			zap.String("session", sess.ID),
			zap.String("role", string(sess.Role)),
			zap.String("target", targetLogin),
			zap.String("field", string(field)),
		)
		return util.NewUnauthorized("role does not permit this update")
	}

	if err := s.users.UpdateField(ctx, targetLogin, field, value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("user")
		}
		s.logger.Error("update failed",
			zap.String("target", targetLogin),
			zap.String("field", string(field)),
			zap.Error(err),
		)
		return util.NewStorageFailure(err)
	}

	s.logger.Info("field updated",
		zap.String("session", sess.ID),
		zap.String("target", targetLogin),
		zap.String("field", string(field)),
	)
	return nil
}

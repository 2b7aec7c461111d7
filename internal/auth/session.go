package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/pizza-store/internal/domain"
)

// Session pairs an authenticated login with the role resolved from
// storage at login time. It lives in process memory for the duration
// of one interactive run and is the sole input to authorization
// decisions; a role changed by a manager mid-session takes effect at
// the target's next login.
type Session struct {
	ID        string
	Login     string
	Role      domain.Role
	StartedAt time.Time
}

// NewSession creates a session for a freshly authenticated login.
func NewSession(login string, role domain.Role) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Login:     login,
		Role:      role,
		StartedAt: time.Now(),
	}
}

// IsSelf reports whether the session owner is the target login.
func (s *Session) IsSelf(targetLogin string) bool {
	return s != nil && s.Login == targetLogin
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/pizza-store/internal/domain"
	"github.com/spec-kit/pizza-store/pkg/util"
)

func newAuthService(repo *fakeUserRepo) *AuthService {
	return NewAuthService(repo, zap.NewNop())
}

func TestRegister_AlwaysCustomer(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), "alice", "pw1", "111")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.Nil(t, user.FavoriteItems)

	stored, err := repo.GetByLogin(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, stored.Role)
}

func TestRegister_Validation(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "   ", "pw", "111")
	assert.True(t, util.IsValidation(err))

	_, err = svc.Register(context.Background(), "alice", "", "111")
	assert.True(t, util.IsValidation(err))
}

func TestRegister_DuplicateLogin(t *testing.T) {
	repo := newFakeUserRepo(&domain.User{Login: "alice", Password: "pw1", Role: domain.RoleCustomer})
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), "alice", "other", "222")
	assert.True(t, util.IsValidation(err))
}

func TestLogin_ExactCredentialMatch(t *testing.T) {
	repo := newFakeUserRepo(&domain.User{Login: "alice", Password: "pw1", Role: domain.RoleCustomer})
	svc := newAuthService(repo)

	sess, err := svc.Login(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.Login)
	assert.Equal(t, domain.RoleCustomer, sess.Role)
	assert.NotEmpty(t, sess.ID)

	_, err = svc.Login(context.Background(), "alice", "PW1")
	assert.True(t, util.IsUnauthorized(err), "credentials compare exactly")

	_, err = svc.Login(context.Background(), "nobody", "pw1")
	assert.True(t, util.IsUnauthorized(err))
}

func TestLogin_RoleResolvedOncePerSession(t *testing.T) {
	repo := newFakeUserRepo(&domain.User{Login: "carol", Password: "pw3", Role: domain.ParseRole("  Manager ")})
	svc := newAuthService(repo)
	ctx := context.Background()

	sess, err := svc.Login(ctx, "carol", "pw3")
	require.NoError(t, err)
	assert.True(t, sess.Role.IsManager())

	// a later role change does not touch the live session
	require.NoError(t, repo.UpdateField(ctx, "carol", domain.FieldRole, "customer"))
	assert.True(t, sess.Role.IsManager())
}

func TestLogin_StorageFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.lookupErr = errors.New("db down")
	svc := newAuthService(repo)

	_, err := svc.Login(context.Background(), "alice", "pw1")
	assert.True(t, util.IsStorageFailure(err))
}

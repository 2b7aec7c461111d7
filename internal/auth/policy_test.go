package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/pizza-store/internal/domain"
)

var allFields = []domain.UserField{
	domain.FieldPhoneNum,
	domain.FieldPassword,
	domain.FieldFavoriteItems,
	domain.FieldLogin,
	domain.FieldRole,
}

func TestCanMutate_ManagerMayMutateEverything(t *testing.T) {
	for _, field := range allFields {
		assert.True(t, CanMutate(domain.RoleManager, field, true), "field=%s self", field)
		assert.True(t, CanMutate(domain.RoleManager, field, false), "field=%s other", field)
	}
}

func TestCanMutate_NonManagerOnSelf(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleCustomer, domain.RoleDriver, domain.Role("admin")} {
		assert.True(t, CanMutate(role, domain.FieldPhoneNum, true))
		assert.True(t, CanMutate(role, domain.FieldPassword, true))
		assert.True(t, CanMutate(role, domain.FieldFavoriteItems, true))
		assert.False(t, CanMutate(role, domain.FieldLogin, true), "role=%s", role)
		assert.False(t, CanMutate(role, domain.FieldRole, true), "role=%s", role)
	}
}

func TestCanMutate_NonManagerOnOthers(t *testing.T) {
	for _, field := range allFields {
		assert.False(t, CanMutate(domain.RoleCustomer, field, false), "field=%s", field)
		assert.False(t, CanMutate(domain.RoleDriver, field, false), "field=%s", field)
	}
}

func TestMutableFields(t *testing.T) {
	assert.Len(t, MutableFields(domain.RoleManager, false), 5)
	assert.Len(t, MutableFields(domain.RoleCustomer, true), 3)
	assert.Empty(t, MutableFields(domain.RoleCustomer, false))
	assert.Empty(t, MutableFields(domain.RoleDriver, false))
}

func TestSession(t *testing.T) {
	sess := NewSession("alice", domain.RoleCustomer)
	assert.NotEmpty(t, sess.ID)
	assert.True(t, sess.IsSelf("alice"))
	assert.False(t, sess.IsSelf("bob"))

	var nilSess *Session
	assert.False(t, nilSess.IsSelf("alice"))
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pizza-store/internal/domain"
)

func TestColumnForField_Whitelist(t *testing.T) {
	cases := map[domain.UserField]string{
		domain.FieldPhoneNum:      "phoneNum",
		domain.FieldPassword:      "password",
		domain.FieldFavoriteItems: "favoriteItems",
		domain.FieldLogin:         "login",
		domain.FieldRole:          "role",
	}
	for field, want := range cases {
		col, err := ColumnForField(field)
		require.NoError(t, err)
		assert.Equal(t, want, col)
	}
}

func TestColumnForField_RejectsUnknown(t *testing.T) {
	_, err := ColumnForField(domain.UserField("login; DROP TABLE users"))
	require.Error(t, err)

	_, err = ColumnForField(domain.UserField(""))
	require.Error(t, err)
}

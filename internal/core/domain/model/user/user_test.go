package user_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid_user", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "alice", user.Client)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "alice", u.Name())
		assert.Equal(t, user.Client, u.Role())
	})

	t.Run("empty_name", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", user.Owner)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "bob", user.UnknownRole)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_id", func(t *testing.T) {
		var id kernel.UUID
		_, err := user.NewUser(id, "bob", user.Owner)
		require.Error(t, err)
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("nil_user_is_invalid", func(t *testing.T) {
		var u *user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		u := &user.User{}
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestRole(t *testing.T) {
	t.Run("string_representations", func(t *testing.T) {
		assert.Equal(t, "Client", user.Client.String())
		assert.Equal(t, "Owner", user.Owner.String())
		assert.Equal(t, "Delivery", user.Delivery.String())
		assert.Equal(t, "Unknown", user.UnknownRole.String())
		assert.Equal(t, "Unknown", user.Role(42).String())
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, user.Client.Validate())
		require.NoError(t, user.Owner.Validate())
		require.NoError(t, user.Delivery.Validate())
		require.Error(t, user.UnknownRole.Validate())
		require.Error(t, user.Role(42).Validate())
	})

	t.Run("from_string", func(t *testing.T) {
		role, err := user.RoleFromString("Delivery")
		require.NoError(t, err)
		assert.Equal(t, user.Delivery, role)

		_, err = user.RoleFromString("Admin")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

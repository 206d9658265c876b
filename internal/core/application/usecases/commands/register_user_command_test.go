package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand_ValidInput(t *testing.T) {
	// Arrange
	userID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewRegisterUserCommand(userID, "Alice", user.Client)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, "Alice", cmd.Name())
	assert.Equal(t, user.Client, cmd.Role())
	assert.NoError(t, cmd.Validate())
}

func TestNewRegisterUserCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		userID   kernel.UUID
		userName string
		role     user.Role
	}{
		{
			name:     "zero user id",
			userID:   kernel.UUID{},
			userName: "Alice",
			role:     user.Client,
		},
		{
			name:     "empty name",
			userID:   kernel.NewUUID(),
			userName: "",
			role:     user.Owner,
		},
		{
			name:     "unknown role",
			userID:   kernel.NewUUID(),
			userName: "Alice",
			role:     user.UnknownRole,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewRegisterUserCommand(tc.userID, tc.userName, tc.role)
			require.Error(t, err)
		})
	}
}

func TestNewRegisterUserCommand_EmptyNameError(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "", user.Client)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRegisterUserCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.RegisterUserCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
}

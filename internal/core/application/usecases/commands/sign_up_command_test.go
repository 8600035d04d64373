package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignUpCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewSignUpCommand(id, "Ada", "ada@example.com", "", "")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.UserID())
	assert.Equal(t, "Ada", cmd.Name())
	assert.Equal(t, "ada@example.com", cmd.Email())
	assert.Empty(t, cmd.Phone())
}

func TestNewSignUpCommand_PhoneOnly(t *testing.T) {
	cmd, err := commands.NewSignUpCommand(kernel.NewUUID(), "Ada", "", "+2348012345678", "")
	require.NoError(t, err)
	assert.Equal(t, "+2348012345678", cmd.Phone())
}

func TestNewSignUpCommand_InvalidUserID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewSignUpCommand(invalidID, "Ada", "ada@example.com", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewSignUpCommand_EmptyName(t *testing.T) {
	_, err := commands.NewSignUpCommand(kernel.NewUUID(), "", "ada@example.com", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSignUpCommand_NoContact(t *testing.T) {
	_, err := commands.NewSignUpCommand(kernel.NewUUID(), "Ada", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, "alice", "books", decimal.NewFromInt(3), 1, "Moscow", "Kazan")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "alice", cmd.Login())
	assert.Equal(t, "books", cmd.Description())
	assert.True(t, cmd.Weight().Equal(decimal.NewFromInt(3)))
	assert.Equal(t, int64(1), cmd.OrderTypeID())
	assert.Equal(t, "Moscow", cmd.CityFrom())
	assert.Equal(t, "Kazan", cmd.CityTo())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, "alice", "books", decimal.NewFromInt(3), 1, "Moscow", "Kazan")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyLogin(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", "books", decimal.NewFromInt(3), 1, "Moscow", "Kazan")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLoginIsRequired)
}

func TestNewCreateOrderCommand_EmptyDescription(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", "", decimal.NewFromInt(3), 1, "Moscow", "Kazan")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDescriptionIsRequired)
}

func TestNewCreateOrderCommand_InvalidWeight(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", "books", decimal.Zero, 1, "Moscow", "Kazan")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrWeightIsInvalid)
}

func TestNewCreateOrderCommand_MissingCity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", "books", decimal.NewFromInt(3), 1, "Moscow", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCityIsRequired)
}

func TestCreateOrderCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.CreateOrderCommand // zero-value command
	err := cmd.Validate()
	require.Error(t, err)
	assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, err)
}

package queries_test

import (
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUserOrdersQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetUserOrdersQuery("alice", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", query.Login())
	assert.Equal(t, order.Unknown, query.StatusFilter())
}

func TestNewGetUserOrdersQuery_WithStatusFilter(t *testing.T) {
	query, err := queries.NewGetUserOrdersQuery("alice", "SHIPPED")
	require.NoError(t, err)
	assert.Equal(t, order.Shipped, query.StatusFilter())
}

func TestNewGetUserOrdersQuery_EmptyLogin(t *testing.T) {
	_, err := queries.NewGetUserOrdersQuery("", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrQueryLoginIsRequired)
}

func TestNewGetUserOrdersQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewGetUserOrdersQuery("alice", "TELEPORTED")
	require.Error(t, err)
}

func TestGetUserOrdersQuery_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var query queries.GetUserOrdersQuery // zero-value query
	err := query.Validate()
	require.Error(t, err)
	assert.Equal(t, queries.ErrGetUserOrdersQueryIsNotConstructed, err)
}

func TestNewGetUserPaymentsQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetUserPaymentsQuery("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", query.Login())
}

func TestNewGetUserPaymentsQuery_EmptyLogin(t *testing.T) {
	_, err := queries.NewGetUserPaymentsQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrQueryLoginIsRequired)
}

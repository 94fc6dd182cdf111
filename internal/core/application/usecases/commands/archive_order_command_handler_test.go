package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReceivedOrder(t *testing.T) *order.Order {
	t.Helper()

	ord := newDeliveredOrder(t)
	require.NoError(t, ord.Receive())
	return ord
}

func TestArchiveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ord := newReceivedOrder(t)
	cmd, _ := commands.NewArchiveOrderCommand(ord.ID())

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", ctx, ord.ID()).Return(ord, nil).Once()
	repo.On("Update", ctx, ord).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &stubPublisher{}

	h := commands.NewArchiveOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Archived, ord.Status())
	assert.Equal(t, []order.Status{order.Archived}, publisher.events)
	repo.AssertExpectations(t)
}

func TestArchiveOrderCommandHandler_Handle_NotReceivedIsNoOp(t *testing.T) {
	ctx := t.Context()
	ord := newShippedOrder(t)
	cmd, _ := commands.NewArchiveOrderCommand(ord.ID())

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", ctx, ord.ID()).Return(ord, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &stubPublisher{}

	h := commands.NewArchiveOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// still shipped, nothing written, nothing published
	assert.Equal(t, order.Shipped, ord.Status())
	assert.Empty(t, publisher.events)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

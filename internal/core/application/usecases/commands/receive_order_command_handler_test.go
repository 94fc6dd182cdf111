package commands_test

import (
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeliveredOrder(t *testing.T) *order.Order {
	t.Helper()

	ord := newShippedOrder(t)
	require.NoError(t, ord.Deliver(time.Now().UTC()))
	return ord
}

func TestReceiveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ord := newDeliveredOrder(t)
	cmd, _ := commands.NewReceiveOrderCommand(ord.ID())

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

	h := commands.NewReceiveOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Received, ord.Status())
	assert.Equal(t, []order.Status{order.Received}, publisher.events)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReceiveOrderCommandHandler_Handle_NotDeliveredOrder(t *testing.T) {
	ctx := t.Context()
	ord := newShippedOrder(t)
	cmd, _ := commands.NewReceiveOrderCommand(ord.ID())

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", ctx, ord.ID()).Return(ord, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveOrderCommandHandler(factory, &stubPublisher{})
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Shipped, ord.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

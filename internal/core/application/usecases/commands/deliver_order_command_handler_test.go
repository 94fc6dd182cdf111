package commands_test

import (
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newShippedOrder(t *testing.T) *order.Order {
	t.Helper()

	ord := newNotPaidOrder(t, 2800)
	require.NoError(t, ord.MarkPaid(kernel.NewUUID()))
	require.NoError(t, ord.Ship(time.Now().UTC(), 3))
	return ord
}

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ord := newShippedOrder(t)
	cmd, _ := commands.NewDeliverOrderCommand(ord.ID())

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

	h := commands.NewDeliverOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Delivered, ord.Status())
	assert.Equal(t, []order.Status{order.Delivered}, publisher.events)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_NotShippedOrder(t *testing.T) {
	ctx := t.Context()
	ord := newNotPaidOrder(t, 2800)
	cmd, _ := commands.NewDeliverOrderCommand(ord.ID())

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", ctx, ord.ID()).Return(ord, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory, &stubPublisher{})
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

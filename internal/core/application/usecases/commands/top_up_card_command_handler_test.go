package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTopUpCardCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := newTestUser(t, "alice")
	cmd, _ := commands.NewTopUpCardCommand("alice", 42, kernel.MoneyFromCents(1500))

	card := restoreAccount(t, 42, 500)

	users := new(MockUserDirectory)
	users.On("GetByLogin", ctx, "alice").Return(owner, nil).Once()

	repo := new(MockAccountRepository)
	repo.On("OwnedBy", ctx, int64(42), owner.ID()).Return(true, nil).Once()
	repo.On("GetForUpdate", ctx, int64(42)).Return(card, nil).Once()
	repo.On("Update", ctx, card).Return(nil).Once()

	uow := new(MockAccountUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTopUpCardCommandHandler(factory, users)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, card.Balance().IsEqual(kernel.MoneyFromCents(2000)))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTopUpCardCommandHandler_Handle_NotOwnedCard(t *testing.T) {
	ctx := t.Context()
	owner := newTestUser(t, "bob")
	cmd, _ := commands.NewTopUpCardCommand("bob", 42, kernel.MoneyFromCents(1500))

	users := new(MockUserDirectory)
	users.On("GetByLogin", ctx, "bob").Return(owner, nil).Once()

	repo := new(MockAccountRepository)
	repo.On("OwnedBy", ctx, int64(42), owner.ID()).Return(false, nil).Once()

	uow := new(MockAccountUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTopUpCardCommandHandler(factory, users)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
}

func TestNewTopUpCardCommand_NonPositiveAmount(t *testing.T) {
	_, err := commands.NewTopUpCardCommand("alice", 42, kernel.MoneyFromCents(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTopUpAmountIsInvalid)
}

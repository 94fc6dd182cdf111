package commands_test

import (
	"context"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccountUoW struct{ mock.Mock }

func (m *MockAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockCardUoW struct{ mock.Mock }

func (m *MockCardUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCardUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCardUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCardUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockCardUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockCardUoWFactory struct{ mock.Mock }

func (m *MockCardUoWFactory) Create() commands.CardUoW {
	args := m.Called()
	return args.Get(0).(commands.CardUoW)
}

func TestRegisterCardCommandHandler_Handle_CreatesNewCard(t *testing.T) {
	ctx := t.Context()
	owner := newTestUser(t, "alice")
	cmd, _ := commands.NewRegisterCardCommand("alice", 42, 12, 2030, 123)

	users := new(MockUserDirectory)
	users.On("GetByLogin", ctx, "alice").Return(owner, nil).Once()

	repo := new(MockAccountRepository)
	repo.On("Get", ctx, int64(42)).Return(nil, errs.NewObjectNotFoundError("card", 42)).Once()
	repo.On("Add", ctx, mock.AnythingOfType("*account.Account")).Return(nil).Once()
	repo.On("Link", ctx, int64(42), owner.ID()).Return(nil).Once()

	uow := new(MockAccountUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCardCommandHandler(factory, users)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	created := repo.Calls[1].Arguments.Get(1).(*account.Account)
	assert.Equal(t, int64(42), created.ID())
	assert.True(t, created.Balance().IsZero())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterCardCommandHandler_Handle_LinksExistingCard(t *testing.T) {
	ctx := t.Context()
	owner := newTestUser(t, "bob")
	cmd, _ := commands.NewRegisterCardCommand("bob", 42, 12, 2030, 123)

	existing := restoreAccount(t, 42, 5000)

	users := new(MockUserDirectory)
	users.On("GetByLogin", ctx, "bob").Return(owner, nil).Once()

	repo := new(MockAccountRepository)
	repo.On("Get", ctx, int64(42)).Return(existing, nil).Once()
	repo.On("Link", ctx, int64(42), owner.ID()).Return(nil).Once()

	uow := new(MockAccountUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCardCommandHandler(factory, users)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// the existing balance survives re-registration
	assert.True(t, existing.Balance().IsEqual(kernel.MoneyFromCents(5000)))
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRegisterCardCommandHandler_Handle_MismatchedIdentity(t *testing.T) {
	ctx := t.Context()
	owner := newTestUser(t, "mallory")
	cmd, _ := commands.NewRegisterCardCommand("mallory", 42, 1, 2031, 999)

	existing := restoreAccount(t, 42, 5000)

	users := new(MockUserDirectory)
	users.On("GetByLogin", ctx, "mallory").Return(owner, nil).Once()

	repo := new(MockAccountRepository)
	repo.On("Get", ctx, int64(42)).Return(existing, nil).Once()

	uow := new(MockAccountUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCardCommandHandler(factory, users)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	repo.AssertNotCalled(t, "Link", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

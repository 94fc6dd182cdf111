package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// RegisterCardCommandHandler registers a bank card for a user.
// Cards are shared aggregates: the first registration creates the card with
// a zero balance, later registrations by other users only add an ownership
// link. A registration whose expiry or code disagrees with the stored card
// is rejected as a conflict.
type RegisterCardCommandHandler struct {
	uowFactory AccountUoWFactory
	users      ports.UserDirectory
}

// NewRegisterCardCommandHandler creates a handler for card registration.
func NewRegisterCardCommandHandler(
	uowFactory AccountUoWFactory,
	users ports.UserDirectory,
) RegisterCardCommandHandler {
	return RegisterCardCommandHandler{
		uowFactory: uowFactory,
		users:      users,
	}
}

// Handle processes the card registration command.
// Find-or-create by card number, then link the user. Linking an already
// linked card is a no-op, so repeated registrations are idempotent.
func (h *RegisterCardCommandHandler) Handle(ctx context.Context, cmd RegisterCardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	owner, err := h.users.GetByLogin(ctx, cmd.Login())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	card, err := accountRepo.Get(ctx, cmd.CardID())
	switch {
	case err == nil:
		if !card.MatchesIdentity(cmd.ExpMonth(), cmd.ExpYear(), cmd.Code()) {
			return errs.NewConflictError("card", cmd.CardID())
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		card, err = account.NewAccount(cmd.CardID(), cmd.ExpMonth(), cmd.ExpYear(), cmd.Code())
		if err != nil {
			return err
		}
		if err = accountRepo.Add(ctx, card); err != nil {
			return err
		}
	default:
		return err
	}

	if err = accountRepo.Link(ctx, card.ID(), owner.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"

	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// TopUpCardCommandHandler credits funds to a card the user has registered.
// The card row is locked for the duration of the transaction so a top-up
// never races a concurrent settlement debit.
type TopUpCardCommandHandler struct {
	uowFactory AccountUoWFactory
	users      ports.UserDirectory
}

// NewTopUpCardCommandHandler creates a handler for card top-ups.
func NewTopUpCardCommandHandler(
	uowFactory AccountUoWFactory,
	users ports.UserDirectory,
) TopUpCardCommandHandler {
	return TopUpCardCommandHandler{
		uowFactory: uowFactory,
		users:      users,
	}
}

// Handle processes the top-up command.
// Only a user who registered the card may add funds to it; anyone else
// gets a not found error rather than a hint that the card exists.
func (h *TopUpCardCommandHandler) Handle(ctx context.Context, cmd TopUpCardCommand) error {
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

	owned, err := accountRepo.OwnedBy(ctx, cmd.CardID(), owner.ID())
	if err != nil {
		return err
	}
	if !owned {
		return errs.NewObjectNotFoundError("card", cmd.CardID())
	}

	card, err := accountRepo.GetForUpdate(ctx, cmd.CardID())
	if err != nil {
		return err
	}

	if err = card.Credit(cmd.Amount()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, card); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

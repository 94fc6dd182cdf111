package commands

import (
	"context"

	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// RemoveCardCommandHandler removes a user's registration of a card.
// The last owner's removal deletes the card itself; payment receipts that
// referenced it keep their amounts with the card reference nulled, so the
// audit trail survives the card.
type RemoveCardCommandHandler struct {
	uowFactory CardUoWFactory
	users      ports.UserDirectory
}

// NewRemoveCardCommandHandler creates a handler for card removal.
func NewRemoveCardCommandHandler(
	uowFactory CardUoWFactory,
	users ports.UserDirectory,
) RemoveCardCommandHandler {
	return RemoveCardCommandHandler{
		uowFactory: uowFactory,
		users:      users,
	}
}

// Handle processes the card removal command.
// Unlinks the user from the card; when no owners remain the card row is
// deleted and its receipts are detached, all inside one transaction.
func (h *RemoveCardCommandHandler) Handle(ctx context.Context, cmd RemoveCardCommand) error {
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

	remaining, err := accountRepo.Unlink(ctx, cmd.CardID(), owner.ID())
	if err != nil {
		return err
	}

	if remaining == 0 {
		if err = uow.PaymentRepository().DetachAccount(ctx, cmd.CardID()); err != nil {
			return err
		}
		if err = accountRepo.Delete(ctx, cmd.CardID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

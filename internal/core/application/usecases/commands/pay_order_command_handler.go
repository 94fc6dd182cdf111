package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// PayOrderCommandHandler orchestrates order settlement.
// Loads the order, the payer card and the configured collector card inside a
// single transaction, delegates the money movement to the settlement service
// and persists every touched aggregate before committing.
//
// Precondition failures surface in a stable sequence: an unpayable order,
// then an unknown payer card, then insufficient funds, then an unresolvable
// collector. The funds check is repeated on the row-locked payer inside the
// settlement service, so a concurrent debit between the cheap check and the
// lock still cannot overdraw the card.
//
// The order row is locked before the card rows, and card locks are taken in
// ascending card number order regardless of which card is the payer. Every
// settlement follows the same lock order, so two concurrent settlements can
// never deadlock on each other's locks, and two settlements of the same
// order serialize on the order row before any money moves.
type PayOrderCommandHandler struct {
	uowFactory SettlementUoWFactory
	users      ports.UserDirectory
	settlement services.Settlement
	collector  CollectorConfig
	publisher  ports.OrderEventPublisher
}

// CollectorConfig identifies the card every settlement credits. The card is
// resolved by number and then verified against the expiry and code, so a
// misconfigured collector cannot silently credit someone else's card.
type CollectorConfig struct {
	AccountID int64
	ExpMonth  int
	ExpYear   int
	Code      int64
}

// NewPayOrderCommandHandler creates a handler for order settlement.
// The collector identity comes from configuration; a non-positive card
// number or an identity mismatch is reported as a configuration error at
// payment time, not at startup.
func NewPayOrderCommandHandler(
	uowFactory SettlementUoWFactory,
	users ports.UserDirectory,
	settlement services.Settlement,
	collector CollectorConfig,
	publisher ports.OrderEventPublisher,
) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		settlement: settlement,
		collector:  collector,
		publisher:  publisher,
	}
}

// Handle processes the payment command.
// On success the payer debit, collector credit, receipt insert and order
// status change are committed atomically, and a status change event is
// published afterwards. On any error nothing is persisted.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	payingUser, err := h.users.GetByLogin(ctx, cmd.Login())
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

	orderRepo := uow.OrderRepository()
	accountRepo := uow.AccountRepository()

	// The locked read serializes concurrent settlements of the same order:
	// whichever transaction wins the row lock pays, the loser re-reads the
	// committed PAID status and fails the check below.
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() != order.NotPaid {
		return errs.NewInvalidStateError("order", aggregate.Status().String(), order.NotPaid.String())
	}

	// Cheap unlocked reads establish the error sequence; the payer is
	// re-read under a row lock below before any money moves.
	payerSnapshot, err := accountRepo.Get(ctx, cmd.PayerAccountID())
	if err != nil {
		return err
	}

	price := aggregate.PriceInCents()
	if payerSnapshot.Balance().LessThan(price) {
		return errs.NewInsufficientFundsError(payerSnapshot.ID(), payerSnapshot.Balance().String(), price.String())
	}

	if h.collector.AccountID <= 0 {
		return errs.NewConfigurationMissingError("collector account id")
	}
	collectorSnapshot, err := accountRepo.Get(ctx, h.collector.AccountID)
	if err != nil {
		return errs.NewConfigurationMissingErrorWithCause("collector account", err)
	}
	if !collectorSnapshot.MatchesIdentity(h.collector.ExpMonth, h.collector.ExpYear, h.collector.Code) {
		return errs.NewConfigurationMissingError("collector card identity")
	}

	payer, collector, err := h.lockParticipants(ctx, accountRepo, cmd.PayerAccountID())
	if err != nil {
		return err
	}

	receipt, err := h.settlement.Transfer(payer, collector, aggregate, payingUser.ID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, payer); err != nil {
		return err
	}
	if collector != payer {
		if err = accountRepo.Update(ctx, collector); err != nil {
			return err
		}
	}
	if err = uow.PaymentRepository().Add(ctx, receipt); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.PublishStatusChanged(ctx, aggregate.ID(), aggregate.Status(), time.Now().UTC())

	return nil
}

// lockParticipants row-locks the payer and collector cards in ascending card
// number order and returns them as (payer, collector). When the payer card is
// the collector card itself, one lock is taken and both roles alias the same
// aggregate, which nets the transfer to zero.
func (h *PayOrderCommandHandler) lockParticipants(
	ctx context.Context,
	accountRepo ports.AccountRepository,
	payerID int64,
) (*account.Account, *account.Account, error) {
	if payerID == h.collector.AccountID {
		locked, err := accountRepo.GetForUpdate(ctx, payerID)
		if err != nil {
			return nil, nil, err
		}
		return locked, locked, nil
	}

	first, second := payerID, h.collector.AccountID
	if first > second {
		first, second = second, first
	}

	firstLocked, err := accountRepo.GetForUpdate(ctx, first)
	if err != nil {
		return nil, nil, err
	}
	secondLocked, err := accountRepo.GetForUpdate(ctx, second)
	if err != nil {
		return nil, nil, err
	}

	if firstLocked.ID() == payerID {
		return firstLocked, secondLocked, nil
	}
	return secondLocked, firstLocked, nil
}

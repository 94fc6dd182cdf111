package services

import (
	"time"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/pkg/errs"
)

// Settlement is the domain service that settles an order: it debits the
// payer, credits the collector, creates the receipt and marks the order PAID.
//
// Settlement operates purely on in-memory aggregates. The caller loads all
// participants inside one unit of work, invokes Transfer, and persists every
// touched aggregate before committing, so the two balance mutations and the
// order/payment writes share a single commit point. Any failure before the
// commit leaves both balances and the order status untouched.
//
// Business rules enforced here:
//   - The order must be NOT_PAID (re-payment is rejected with InvalidState)
//   - The payer balance must cover the order's frozen price (exact decimal
//     comparison; InsufficientFunds otherwise)
//   - Exactly one payment record is created, linking order, card and user
//
// Example usage:
//
//	settlement := services.NewSettlement()
//	receipt, err := settlement.Transfer(payer, collector, ord, userID, time.Now())
//	if err != nil {
//	    // nothing was modified
//	    return err
//	}
//	// persist payer, collector, ord and receipt in one transaction
type Settlement struct{}

// NewSettlement creates a Settlement service instance.
func NewSettlement() Settlement {
	return Settlement{}
}

// Transfer moves the order's frozen price from payer to collector and
// produces the receipt.
//
// Parameters:
//   - payer: the customer's card (already locked by the caller)
//   - collector: the configured house account receiving the credit
//   - ord: the order being settled
//   - userID: the user requesting payment, recorded on the receipt
//   - now: settlement timestamp
//
// On any error no aggregate has been modified. On success payer, collector
// and ord have all been mutated and the returned payment must be persisted
// together with them.
func (s Settlement) Transfer(
	payer *account.Account,
	collector *account.Account,
	ord *order.Order,
	userID kernel.UUID,
	now time.Time,
) (*payment.Payment, error) {
	if err := payer.Validate(); err != nil {
		return nil, err
	}
	if err := collector.Validate(); err != nil {
		return nil, err
	}
	if err := ord.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	price := ord.PriceInCents()

	if ord.Status() != order.NotPaid {
		return nil, errs.NewInvalidStateError("order", ord.Status().String(), order.NotPaid.String())
	}

	if payer.Balance().LessThan(price) {
		return nil, errs.NewInsufficientFundsError(payer.ID(), payer.Balance().String(), price.String())
	}

	receipt, err := payment.NewPayment(kernel.NewUUID(), ord.ID(), payer.ID(), userID, price, now)
	if err != nil {
		return nil, err
	}

	// The order transition is the last fallible step; the balance
	// adjustments below cannot fail, so an error here leaves no aggregate
	// half-modified.
	if err = ord.MarkPaid(receipt.ID()); err != nil {
		return nil, err
	}

	payer.AdjustBalance(price.Neg())
	collector.AdjustBalance(price)

	return receipt, nil
}

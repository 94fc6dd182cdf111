// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AccountRepoFactory provides access to account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// PaymentRepoFactory provides access to payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AccountUoW manages transactions for card-only operations.
	// Used when commands only modify account aggregates.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// CardUoW manages transactions spanning cards and payment receipts.
	// Used when removing a card, which also detaches its receipts.
	CardUoW interface {
		TxManager
		AccountRepoFactory
		PaymentRepoFactory
	}

	// CardUoWFactory creates new card unit of work instances.
	CardUoWFactory interface {
		Create() CardUoW
	}

	// SettlementUoW manages transactions across orders, accounts and payments.
	// Settlement debits the payer, credits the collector, writes the receipt
	// and flips the order status inside one transaction boundary.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   accountRepo := uow.AccountRepository()
	//   paymentRepo := uow.PaymentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		AccountRepoFactory
		PaymentRepoFactory
	}

	// SettlementUoWFactory creates new unit of work instances for settlement.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}
)

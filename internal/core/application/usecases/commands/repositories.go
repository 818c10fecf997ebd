// Package commands contains the lifecycle operations that modify order state.
// Every handler follows the same pattern: validate the command, open a unit of
// work, load and lock the aggregate, apply the transition, write the ledgers
// and the audit entry, hydrate the result, commit, then notify.
package commands

import (
	"context"

	"ordering/internal/core/application/notifications"
	"ordering/internal/core/application/readmodel"
	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LedgerRepoFactory provides access to the approval and dispatch ledgers.
	LedgerRepoFactory interface {
		ApprovalRepository() ports.ApprovalRepository
		CourierInfoRepository() ports.CourierInfoRepository
	}

	// ReferenceRepoFactory provides read access to the catalog and identity stores.
	ReferenceRepoFactory interface {
		ProductRepository() ports.ProductRepository
		UserRepository() ports.UserRepository
	}

	// AuditRepoFactory provides access to the audit trail.
	AuditRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	// OrderUoW spans everything a lifecycle transition writes or resolves.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... transition, ledgers, audit
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		LedgerRepoFactory
		ReferenceRepoFactory
		AuditRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// NotificationLogUoW manages transactions over the notification log.
	NotificationLogUoW interface {
		TxManager
		NotificationLogRepository() ports.NotificationLogRepository
	}

	// NotificationLogUoWFactory creates notification log unit of work instances.
	NotificationLogUoWFactory interface {
		Create() NotificationLogUoW
	}
)

// Notifier emits the best-effort notification of a committed transition.
type Notifier interface {
	Notify(ctx context.Context, event notifications.Event, view readmodel.OrderView)
}

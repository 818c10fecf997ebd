package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained after Begin share its transaction; repositories
// obtained without Begin run each statement on its own.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ApprovalRepository() ApprovalRepository
	CourierInfoRepository() CourierInfoRepository
	ProductRepository() ProductRepository
	UserRepository() UserRepository
	NotificationLogRepository() NotificationLogRepository
	AuditLogRepository() AuditLogRepository
}

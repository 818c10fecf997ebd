package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
)

// ProductRepository is the catalog store as seen by the ordering engine.
type ProductRepository interface {
	Add(ctx context.Context, product *catalog.Product) error
	Update(ctx context.Context, product *catalog.Product) error
	// Get returns the product or *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// UserRepository is the identity store as seen by the ordering engine.
type UserRepository interface {
	Add(ctx context.Context, user *identity.User) error
	// Get and GetByUsername return the user or *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)
	GetByUsername(ctx context.Context, username string) (*identity.User, error)
	ListByRole(ctx context.Context, role identity.Role) ([]*identity.User, error)
}

// NotificationLogRepository stores every composed notification.
type NotificationLogRepository interface {
	Add(ctx context.Context, entry *notification.Log) error
	// ListLatest returns at most limit entries, newest first.
	ListLatest(ctx context.Context, limit int) ([]*notification.Log, error)
	// DeleteOlderThan removes entries created before cutoff and reports how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// AuditLogRepository is the append-only audit trail.
type AuditLogRepository interface {
	Add(ctx context.Context, entry *audit.Entry) error
	// ListByEntity returns the entries of one entity, oldest first.
	ListByEntity(ctx context.Context, entityID kernel.UUID) ([]*audit.Entry, error)
}

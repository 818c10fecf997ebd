package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

var (
	_ ports.ProductRepository         = (*ProductRepository)(nil)
	_ ports.UserRepository            = (*UserRepository)(nil)
	_ ports.NotificationLogRepository = (*NotificationLogRepository)(nil)
	_ ports.AuditLogRepository        = (*AuditLogRepository)(nil)
)

type ProductRepository struct {
	access access
}

func (r *ProductRepository) Add(_ context.Context, product *catalog.Product) error {
	return r.access.write(func(t *tables) error {
		if _, ok := t.products[product.ID()]; ok {
			return errs.NewValueIsInvalidError("product id")
		}
		t.products[product.ID()] = *product
		return nil
	})
}

func (r *ProductRepository) Update(_ context.Context, product *catalog.Product) error {
	return r.access.write(func(t *tables) error {
		if _, ok := t.products[product.ID()]; !ok {
			return errs.NewObjectNotFoundError("product", product.ID().String())
		}
		t.products[product.ID()] = *product
		return nil
	})
}

func (r *ProductRepository) Get(_ context.Context, id kernel.UUID) (*catalog.Product, error) {
	var result *catalog.Product
	err := r.access.read(func(t *tables) error {
		p, ok := t.products[id]
		if !ok {
			return errs.NewObjectNotFoundError("product", id.String())
		}
		result = &p
		return nil
	})
	return result, err
}

func (r *ProductRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.access.write(func(t *tables) error {
		if _, ok := t.products[id]; !ok {
			return errs.NewObjectNotFoundError("product", id.String())
		}
		delete(t.products, id)
		return nil
	})
}

type UserRepository struct {
	access access
}

// Add rejects a second user with the same username, compared case-insensitively.
func (r *UserRepository) Add(_ context.Context, user *identity.User) error {
	return r.access.write(func(t *tables) error {
		for _, u := range t.users {
			if u.ID() == user.ID() || strings.EqualFold(u.Username(), user.Username()) {
				return errs.NewValueIsInvalidError("user")
			}
		}
		t.users[user.ID()] = *user
		return nil
	})
}

func (r *UserRepository) Get(_ context.Context, id kernel.UUID) (*identity.User, error) {
	var result *identity.User
	err := r.access.read(func(t *tables) error {
		u, ok := t.users[id]
		if !ok {
			return errs.NewObjectNotFoundError("user", id.String())
		}
		result = &u
		return nil
	})
	return result, err
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*identity.User, error) {
	var result *identity.User
	err := r.access.read(func(t *tables) error {
		for _, u := range t.users {
			if strings.EqualFold(u.Username(), username) {
				result = &u
				return nil
			}
		}
		return errs.NewObjectNotFoundError("user", username)
	})
	return result, err
}

// ListByRole returns users ordered by username.
func (r *UserRepository) ListByRole(_ context.Context, role identity.Role) ([]*identity.User, error) {
	var result []*identity.User
	err := r.access.read(func(t *tables) error {
		for _, u := range t.users {
			if u.Role() == role {
				result = append(result, &u)
			}
		}
		sort.Slice(result, func(i, j int) bool {
			return result[i].Username() < result[j].Username()
		})
		return nil
	})
	return result, err
}

type NotificationLogRepository struct {
	access access
}

func (r *NotificationLogRepository) Add(_ context.Context, entry *notification.Log) error {
	return r.access.write(func(t *tables) error {
		t.notifications = append(t.notifications, *entry)
		return nil
	})
}

func (r *NotificationLogRepository) ListLatest(_ context.Context, limit int) ([]*notification.Log, error) {
	var result []*notification.Log
	err := r.access.read(func(t *tables) error {
		all := make([]*notification.Log, 0, len(t.notifications))
		for i := len(t.notifications) - 1; i >= 0; i-- {
			l := t.notifications[i]
			all = append(all, &l)
		}
		sort.SliceStable(all, func(i, j int) bool {
			return all[i].CreatedAt().After(all[j].CreatedAt())
		})
		result = all[:min(limit, len(all))]
		return nil
	})
	return result, err
}

func (r *NotificationLogRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	err := r.access.write(func(t *tables) error {
		kept := make([]notification.Log, 0, len(t.notifications))
		for _, l := range t.notifications {
			if l.CreatedAt().Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, l)
		}
		t.notifications = kept
		return nil
	})
	return removed, err
}

type AuditLogRepository struct {
	access access
}

func (r *AuditLogRepository) Add(_ context.Context, entry *audit.Entry) error {
	return r.access.write(func(t *tables) error {
		t.auditEntries = append(t.auditEntries, *entry)
		return nil
	})
}

func (r *AuditLogRepository) ListByEntity(_ context.Context, entityID kernel.UUID) ([]*audit.Entry, error) {
	var result []*audit.Entry
	err := r.access.read(func(t *tables) error {
		for _, e := range t.auditEntries {
			if e.EntityID() == entityID {
				result = append(result, &e)
			}
		}
		return nil
	})
	return result, err
}

package memory

import (
	"context"
	"errors"

	"ordering/internal/core/ports"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements ports.UnitOfWork. Repositories obtained after Begin
// see the transaction's own writes; repositories obtained without Begin read
// committed state and commit each write immediately.
type UnitOfWork struct {
	store *Store
	tx    *tables
}

// Begin blocks until no other transaction is open on the store.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.txMu.Lock()

	uow.store.mu.RLock()
	uow.tx = uow.store.data.clone()
	uow.store.mu.RUnlock()
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.store.mu.Lock()
	uow.store.data = uow.tx
	uow.store.mu.Unlock()

	uow.tx = nil
	uow.store.txMu.Unlock()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.tx = nil
	uow.store.txMu.Unlock()
	return nil
}

func (uow *UnitOfWork) access() access {
	if uow.tx != nil {
		return transactional{tx: uow.tx}
	}
	return direct{store: uow.store}
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{access: uow.access()}
}

func (uow *UnitOfWork) ApprovalRepository() ports.ApprovalRepository {
	return &ApprovalRepository{access: uow.access()}
}

func (uow *UnitOfWork) CourierInfoRepository() ports.CourierInfoRepository {
	return &CourierInfoRepository{access: uow.access()}
}

func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return &ProductRepository{access: uow.access()}
}

func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return &UserRepository{access: uow.access()}
}

func (uow *UnitOfWork) NotificationLogRepository() ports.NotificationLogRepository {
	return &NotificationLogRepository{access: uow.access()}
}

func (uow *UnitOfWork) AuditLogRepository() ports.AuditLogRepository {
	return &AuditLogRepository{access: uow.access()}
}

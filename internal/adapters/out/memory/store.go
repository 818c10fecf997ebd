// Package memory provides an in-process implementation of the unit of work and
// every repository port. It is used by the test suites and for local runs
// without a database.
//
// Transactions are serialized store-wide: Begin takes the write lock of the
// store and works on a private copy of all tables, Commit swaps the copy in and
// Rollback discards it. Reads outside a transaction see the last committed
// state.
package memory

import (
	"sync"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/domain/model/order"
)

// orderRecord is the persisted part of an order row. Approval and courier
// details live in their own tables, like in the relational schema.
type orderRecord struct {
	id              kernel.UUID
	ownerID         kernel.UUID
	status          order.Status
	shippingAddress string
	deliveryAddress string
	customerTaxID   string
	createdAt       time.Time
	items           []order.Item
	seq             int64
}

type tables struct {
	seq           int64
	orders        map[kernel.UUID]orderRecord
	approvals     map[kernel.UUID]order.Approval
	courierInfos  map[kernel.UUID]order.CourierInfo
	products      map[kernel.UUID]catalog.Product
	users         map[kernel.UUID]identity.User
	notifications []notification.Log
	auditEntries  []audit.Entry
}

func newTables() *tables {
	return &tables{
		orders:       map[kernel.UUID]orderRecord{},
		approvals:    map[kernel.UUID]order.Approval{},
		courierInfos: map[kernel.UUID]order.CourierInfo{},
		products:     map[kernel.UUID]catalog.Product{},
		users:        map[kernel.UUID]identity.User{},
	}
}

// clone copies every table. Stored values are never mutated in place, so a
// shallow copy of each entry is enough.
func (t *tables) clone() *tables {
	c := &tables{
		seq:           t.seq,
		orders:        make(map[kernel.UUID]orderRecord, len(t.orders)),
		approvals:     make(map[kernel.UUID]order.Approval, len(t.approvals)),
		courierInfos:  make(map[kernel.UUID]order.CourierInfo, len(t.courierInfos)),
		products:      make(map[kernel.UUID]catalog.Product, len(t.products)),
		users:         make(map[kernel.UUID]identity.User, len(t.users)),
		notifications: append([]notification.Log(nil), t.notifications...),
		auditEntries:  append([]audit.Entry(nil), t.auditEntries...),
	}
	for k, v := range t.orders {
		c.orders[k] = v
	}
	for k, v := range t.approvals {
		c.approvals[k] = v
	}
	for k, v := range t.courierInfos {
		c.courierInfos[k] = v
	}
	for k, v := range t.products {
		c.products[k] = v
	}
	for k, v := range t.users {
		c.users[k] = v
	}
	return c
}

// Store holds the committed state shared by all units of work.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data *tables
}

func NewStore() *Store {
	return &Store{data: newTables()}
}

// access runs repository callbacks against either a transaction's private
// tables or the committed state of the store.
type access interface {
	read(fn func(t *tables) error) error
	write(fn func(t *tables) error) error
}

// direct is the non-transactional access path: every write is its own commit.
type direct struct {
	store *Store
}

func (d direct) read(fn func(t *tables) error) error {
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()
	return fn(d.store.data)
}

func (d direct) write(fn func(t *tables) error) error {
	d.store.txMu.Lock()
	defer d.store.txMu.Unlock()

	next := d.store.data.clone()
	if err := fn(next); err != nil {
		return err
	}

	d.store.mu.Lock()
	d.store.data = next
	d.store.mu.Unlock()
	return nil
}

// transactional works on the private tables of an open unit of work. The
// store's txMu is held by the owning unit of work for the whole transaction.
type transactional struct {
	tx *tables
}

func (t transactional) read(fn func(t *tables) error) error {
	return fn(t.tx)
}

func (t transactional) write(fn func(t *tables) error) error {
	return fn(t.tx)
}

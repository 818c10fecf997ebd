package memory_test

import (
	"sync"
	"testing"
	"time"

	"ordering/internal/adapters/out/memory"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 1, kernel.MustMoney("10.00"))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "1 Main St", "", []order.Item{item}, createdAt)
	require.NoError(t, err)
	return o
}

func TestUnitOfWork_CommitPublishesWrites(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	o := newTestOrder(t, time.Now())
	require.NoError(t, uow.OrderRepository().Add(ctx, o))

	_, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound, "uncommitted order must not be visible")

	require.NoError(t, uow.Commit(ctx))

	got, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, o.ID(), got.ID())
	assert.Equal(t, order.PendingApproval, got.Status())
}

func TestUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	o := newTestOrder(t, time.Now())
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Rollback(ctx))

	_, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_RollbackAfterCommitIsHarmless(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit(ctx))
	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)

	// the store lock must have been released exactly once
	next := factory.Create()
	require.NoError(t, next.Begin(ctx))
	require.NoError(t, next.Commit(ctx))
}

func TestUnitOfWork_TransactionsSerialize(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)

	o := newTestOrder(t, time.Now())
	require.NoError(t, factory.Create().OrderRepository().Add(ctx, o))

	approverID := kernel.NewUUID()
	var wg sync.WaitGroup
	results := make(chan error, 2)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := factory.Create()
			if err := uow.Begin(ctx); err != nil {
				results <- err
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			loaded, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
			if err != nil {
				results <- err
				return
			}
			if err = loaded.Approve(approverID, "", time.Now()); err != nil {
				results <- err
				return
			}
			if err = uow.ApprovalRepository().Save(ctx, loaded.ID(), loaded.Approval()); err != nil {
				results <- err
				return
			}
			if err = uow.OrderRepository().Update(ctx, loaded); err != nil {
				results <- err
				return
			}
			results <- uow.Commit(ctx)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		rejected++
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
}

func TestOrderRepository_ListsNewestFirst(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().OrderRepository()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	older := newTestOrder(t, base)
	newer := newTestOrder(t, base.Add(time.Hour))
	require.NoError(t, repo.Add(ctx, older))
	require.NoError(t, repo.Add(ctx, newer))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID(), all[0].ID())
	assert.Equal(t, older.ID(), all[1].ID())

	none, err := repo.ListByStatuses(ctx)
	require.NoError(t, err)
	assert.Empty(t, none)

	pending, err := repo.ListByStatuses(ctx, order.PendingApproval)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestProductRepository_ReturnsCopies(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().ProductRepository()

	p, err := catalog.NewProduct(kernel.NewUUID(), "MUG-01", "Mug", "", "", kernel.MustMoney("5.00"), 10, true, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, p))

	loaded, err := repo.Get(ctx, p.ID())
	require.NoError(t, err)
	require.NoError(t, loaded.ChangePrice(kernel.MustMoney("7.00")))

	again, err := repo.Get(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "5.00", again.Price().String())

	require.NoError(t, repo.Delete(ctx, p.ID()))
	_, err = repo.Get(ctx, p.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

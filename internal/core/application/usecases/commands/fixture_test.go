package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"ordering/internal/adapters/out/memory"
	"ordering/internal/core/application/notifications"
	"ordering/internal/core/application/readmodel"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

type recordedNotification struct {
	event notifications.Event
	view  readmodel.OrderView
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []recordedNotification
}

func (n *recordingNotifier) Notify(_ context.Context, event notifications.Event, view readmodel.OrderView) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, recordedNotification{event: event, view: view})
}

func (n *recordingNotifier) recorded() []recordedNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]recordedNotification(nil), n.events...)
}

type orderUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

type notificationLogUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f notificationLogUoWFactory) Create() commands.NotificationLogUoW {
	return f.factory.Create()
}

// fixture wires every command handler to a fresh in-memory store seeded with
// one store user, one approver, one fulfillment agent and two products.
type fixture struct {
	t        *testing.T
	memory   *memory.UnitOfWorkFactory
	notifier *recordingNotifier
	now      time.Time
	clock    func() time.Time

	owner    *identity.User
	approver *identity.User
	agent    *identity.User
	hoodie   *catalog.Product
	mug      *catalog.Product

	create   commands.CreateOrderCommandHandler
	approve  commands.ApproveOrderCommandHandler
	reject   commands.RejectOrderCommandHandler
	accept   commands.AcceptOrderCommandHandler
	dispatch commands.RecordDispatchCommandHandler
	fulfill  commands.MarkFulfilledCommandHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		t:        t,
		memory:   memory.NewUnitOfWorkFactory(memory.NewStore()),
		notifier: &recordingNotifier{},
		now:      time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC),
	}
	f.clock = func() time.Time { return f.now }

	f.owner = f.seedUser("alice", identity.RoleStoreUser)
	f.approver = f.seedUser("bob", identity.RoleApprover)
	f.agent = f.seedUser("carol", identity.RoleFulfillmentAgent)
	f.hoodie = f.seedProduct("HOOD-01", "Hoodie", "2499.00")
	f.mug = f.seedProduct("MUG-01", "Mug", "1299.00")

	uows := orderUoWFactory{factory: f.memory}
	f.create = commands.NewCreateOrderCommandHandler(uows, f.notifier, f.clock)
	f.approve = commands.NewApproveOrderCommandHandler(uows, f.notifier, f.clock)
	f.reject = commands.NewRejectOrderCommandHandler(uows, f.notifier, f.clock)
	f.accept = commands.NewAcceptOrderCommandHandler(uows, f.notifier, f.clock)
	f.dispatch = commands.NewRecordDispatchCommandHandler(uows, f.notifier, f.clock)
	f.fulfill = commands.NewMarkFulfilledCommandHandler(uows, f.notifier, f.clock)
	return f
}

func (f *fixture) seedUser(username string, role identity.Role) *identity.User {
	f.t.Helper()

	u, err := identity.NewUser(kernel.NewUUID(), username, role, username+"@example.com", "")
	require.NoError(f.t, err)
	require.NoError(f.t, f.memory.Create().UserRepository().Add(f.t.Context(), u))
	return u
}

func (f *fixture) seedProduct(sku string, name string, price string) *catalog.Product {
	f.t.Helper()

	p, err := catalog.NewProduct(kernel.NewUUID(), sku, name, "", "", kernel.MustMoney(price), 100, true, nil)
	require.NoError(f.t, err)
	require.NoError(f.t, f.memory.Create().ProductRepository().Add(f.t.Context(), p))
	return p
}

// placeOrder creates 2 hoodies and 1 mug for the owner.
func (f *fixture) placeOrder() readmodel.OrderView {
	f.t.Helper()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), f.owner.Username(), "12 MG Road, Pune", "", []commands.ItemInput{
		{ProductID: f.hoodie.ID(), Quantity: 2},
		{ProductID: f.mug.ID(), Quantity: 1},
	})
	require.NoError(f.t, err)

	view, err := f.create.Handle(f.t.Context(), cmd)
	require.NoError(f.t, err)
	return view
}

func (f *fixture) approveOrder(id kernel.UUID) (readmodel.OrderView, error) {
	cmd, err := commands.NewApproveOrderCommand(id, f.approver.Username(), "ok")
	require.NoError(f.t, err)
	return f.approve.Handle(f.t.Context(), cmd)
}

func (f *fixture) acceptOrder(id kernel.UUID) (readmodel.OrderView, error) {
	cmd, err := commands.NewAcceptOrderCommand(id, f.agent.Username(), "Warehouse 4, Mumbai")
	require.NoError(f.t, err)
	return f.accept.Handle(f.t.Context(), cmd)
}

func (f *fixture) dispatchOrder(id kernel.UUID, courier string, tracking string) (readmodel.OrderView, error) {
	cmd, err := commands.NewRecordDispatchCommand(id, f.agent.Username(), courier, tracking, f.now.Add(time.Hour))
	require.NoError(f.t, err)
	return f.dispatch.Handle(f.t.Context(), cmd)
}

package notifications_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/core/application/notifications"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct{ mock.Mock }

func (m *MockSender) Send(ctx context.Context, msg ports.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
	ports.UserRepository
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role identity.Role) ([]*identity.User, error) {
	args := m.Called(ctx, role)
	users, _ := args.Get(0).([]*identity.User)
	return users, args.Error(1)
}

type MockNotificationLogRepository struct {
	mock.Mock
	ports.NotificationLogRepository
}

func (m *MockNotificationLogRepository) Add(ctx context.Context, entry *notification.Log) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type stubRepositories struct {
	users *MockUserRepository
	logs  *MockNotificationLogRepository
}

func (s stubRepositories) UserRepository() ports.UserRepository { return s.users }
func (s stubRepositories) NotificationLogRepository() ports.NotificationLogRepository {
	return s.logs
}

type stubFactory struct{ repos stubRepositories }

func (f stubFactory) Create() notifications.Repositories { return f.repos }

var fixedNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func newDispatcher(props notifications.Properties) (*notifications.Dispatcher, stubRepositories, *MockSender) {
	repos := stubRepositories{users: new(MockUserRepository), logs: new(MockNotificationLogRepository)}
	sender := new(MockSender)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := notifications.NewDispatcher(stubFactory{repos: repos}, sender, props,
		func() time.Time { return fixedNow }, logger)
	return d, repos, sender
}

func mustUser(t *testing.T, name string, role identity.Role, email string) *identity.User {
	t.Helper()
	u, err := identity.NewUser(kernel.NewUUID(), name, role, email, "")
	require.NoError(t, err)
	return u
}

func TestDispatcher_CreatedCopiesApprovers(t *testing.T) {
	ctx := t.Context()
	d, repos, sender := newDispatcher(notifications.Properties{
		Enabled: true, FromAddress: "orders@example.com", CopyApproversOnCreation: true,
	})
	view := sampleView(t)

	repos.users.On("ListByRole", ctx, identity.RoleApprover).Return([]*identity.User{
		mustUser(t, "priya", identity.RoleApprover, "priya@example.com"),
		mustUser(t, "noemail", identity.RoleApprover, ""),
		mustUser(t, "dup", identity.RoleApprover, "ALICE@example.com"),
	}, nil).Once()
	repos.logs.On("Add", ctx, mock.MatchedBy(func(l *notification.Log) bool {
		return l.Subject() == notifications.Subject(notifications.EventCreated, view.ID) &&
			assert.ObjectsAreEqual([]string{"alice@example.com", "priya@example.com"}, l.Recipients()) &&
			l.CreatedAt().Equal(fixedNow)
	})).Return(nil).Once()
	sender.On("Send", ctx, mock.MatchedBy(func(msg ports.Message) bool {
		return msg.From == "orders@example.com" && len(msg.To) == 2
	})).Return(nil).Once()

	d.Notify(ctx, notifications.EventCreated, view)

	repos.users.AssertExpectations(t)
	repos.logs.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestDispatcher_NonCreationNotifiesOwnerOnly(t *testing.T) {
	ctx := t.Context()
	d, repos, sender := newDispatcher(notifications.Properties{Enabled: true, CopyApproversOnCreation: true})
	view := sampleView(t)

	repos.logs.On("Add", ctx, mock.Anything).Return(nil).Once()
	sender.On("Send", ctx, mock.MatchedBy(func(msg ports.Message) bool {
		return assert.ObjectsAreEqual([]string{"alice@example.com"}, msg.To)
	})).Return(nil).Once()

	d.Notify(ctx, notifications.EventApproved, view)

	repos.users.AssertNotCalled(t, "ListByRole", mock.Anything, mock.Anything)
	sender.AssertExpectations(t)
}

func TestDispatcher_SkipsWithoutRecipients(t *testing.T) {
	ctx := t.Context()
	d, repos, sender := newDispatcher(notifications.Properties{Enabled: true})
	view := sampleView(t)
	view.Owner.Email = ""

	d.Notify(ctx, notifications.EventRejected, view)

	repos.logs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatcher_DisabledStillCapturesLog(t *testing.T) {
	ctx := t.Context()
	d, repos, sender := newDispatcher(notifications.Properties{Enabled: false})

	repos.logs.On("Add", ctx, mock.Anything).Return(nil).Once()

	d.Notify(ctx, notifications.EventApproved, sampleView(t))

	repos.logs.AssertExpectations(t)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatcher_FailuresAreSwallowed(t *testing.T) {
	ctx := t.Context()
	d, repos, sender := newDispatcher(notifications.Properties{Enabled: true, CopyApproversOnCreation: true})

	repos.users.On("ListByRole", ctx, identity.RoleApprover).Return(nil, errors.New("db down")).Once()
	repos.logs.On("Add", ctx, mock.Anything).Return(errors.New("db down")).Once()
	sender.On("Send", ctx, mock.Anything).Return(errors.New("smtp down")).Once()

	assert.NotPanics(t, func() {
		d.Notify(ctx, notifications.EventCreated, sampleView(t))
	})

	sender.AssertExpectations(t)
}

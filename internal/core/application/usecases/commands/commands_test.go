package commands_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotificationLog(t *testing.T, repo ports.NotificationLogRepository, createdAt time.Time) {
	t.Helper()

	entry, err := notification.NewLog(kernel.NewUUID(), "subject", []string{"a@example.com"}, "body", createdAt)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), entry))
}

func TestNewCreateOrderCommand(t *testing.T) {
	productID := kernel.NewUUID()

	tests := []struct {
		name     string
		orderID  kernel.UUID
		owner    string
		address  string
		items    []commands.ItemInput
		wantErr  error
		contains string
	}{
		{
			name:    "valid",
			orderID: kernel.NewUUID(),
			owner:   "alice",
			address: "1 Main St",
			items:   []commands.ItemInput{{ProductID: productID, Quantity: 1}},
		},
		{
			name:    "empty items",
			orderID: kernel.NewUUID(),
			owner:   "alice",
			address: "1 Main St",
			wantErr: errs.ErrEmptyOrder,
		},
		{
			name:     "zero quantity",
			orderID:  kernel.NewUUID(),
			owner:    "alice",
			address:  "1 Main St",
			items:    []commands.ItemInput{{ProductID: productID, Quantity: 0}},
			wantErr:  errs.ErrValueIsInvalid,
			contains: "quantity",
		},
		{
			name:     "blank shipping address",
			orderID:  kernel.NewUUID(),
			owner:    "alice",
			address:  "   ",
			items:    []commands.ItemInput{{ProductID: productID, Quantity: 1}},
			wantErr:  errs.ErrValueIsRequired,
			contains: "shipping address",
		},
		{
			name:    "missing order id",
			owner:   "alice",
			address: "1 Main St",
			items:   []commands.ItemInput{{ProductID: productID, Quantity: 1}},
			wantErr: errs.ErrValueIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewCreateOrderCommand(tt.orderID, tt.owner, tt.address, "", tt.items)
			if tt.wantErr == nil {
				require.NoError(t, err)
				require.NoError(t, cmd.Validate())
				assert.Equal(t, tt.items, cmd.Items())
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestCommands_ZeroValueFailsValidation(t *testing.T) {
	assert.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.ApproveOrderCommand{}.Validate(), commands.ErrApproveOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RejectOrderCommand{}.Validate(), commands.ErrRejectOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.AcceptOrderCommand{}.Validate(), commands.ErrAcceptOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RecordDispatchCommand{}.Validate(), commands.ErrRecordDispatchCommandIsNotConstructed)
	assert.ErrorIs(t, commands.MarkFulfilledCommand{}.Validate(), commands.ErrMarkFulfilledCommandIsNotConstructed)
}

func TestNewAcceptOrderCommand_RequiresDeliveryAddress(t *testing.T) {
	_, err := commands.NewAcceptOrderCommand(kernel.NewUUID(), "carol", "  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "delivery address")
}

func TestNewRecordDispatchCommand_RequiresCourierFields(t *testing.T) {
	_, err := commands.NewRecordDispatchCommand(kernel.NewUUID(), "carol", "", "", time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "courier name")
	assert.Contains(t, err.Error(), "tracking number")
	assert.Contains(t, err.Error(), "dispatch timestamp")
}

func TestNewPruneNotificationLogsCommand_RejectsNonPositiveRetention(t *testing.T) {
	_, err := commands.NewPruneNotificationLogsCommand(0)
	require.Error(t, err)
}

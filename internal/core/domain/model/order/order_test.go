package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func mustItem(t *testing.T, quantity int, price string) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), quantity, kernel.MustMoney(price))
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"12 MG Road, Pune",
		"27AAPFU0939F1ZV",
		[]order.Item{mustItem(t, 2, "2499.00"), mustItem(t, 1, "1299.00")},
		createdAt,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with computed total", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.PendingApproval, o.Status())
		assert.Equal(t, "6297.00", o.Total().String())
		assert.Equal(t, "12 MG Road, Pune", o.ShippingAddress())
		assert.Equal(t, "27AAPFU0939F1ZV", o.CustomerTaxID())
		assert.Empty(t, o.DeliveryAddress())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Len(t, o.Items(), 2)
		assert.Nil(t, o.Approval())
		assert.Nil(t, o.CourierInfo())
	})

	t.Run("should fail with empty items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "addr", "", nil, createdAt)

		require.ErrorIs(t, err, errs.ErrEmptyOrder)
		assert.Nil(t, o)
	})

	t.Run("should fail with blank shipping address", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "   ", "",
			[]order.Item{mustItem(t, 1, "10")}, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "shipping address")
		assert.Nil(t, o)
	})

	t.Run("should fail with duplicate products", func(t *testing.T) {
		item := mustItem(t, 1, "10")

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "addr", "",
			[]order.Item{item, item}, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "listed more than once")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, "", "", nil, time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "owner id")
		assert.Contains(t, err.Error(), "shipping address")
		assert.Contains(t, err.Error(), "at least one item")
		assert.Contains(t, err.Error(), "created at")
	})

	t.Run("should not share the items slice with the caller", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1, "10")}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "addr", "", items, createdAt)
		require.NoError(t, err)

		items[0] = mustItem(t, 5, "99")

		assert.Equal(t, "10.00", o.Total().String())
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should compute line total", func(t *testing.T) {
		item := mustItem(t, 3, "19.99")

		assert.Equal(t, "59.97", item.LineTotal().String())
	})

	t.Run("should reject quantity below one", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewItem(kernel.NewUUID(), quantity, kernel.MustMoney("1"))

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "quantity is invalid")
		}
	})

	t.Run("should require unit price", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), 1, kernel.Money{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_ApproveThenDispatch(t *testing.T) {
	o := newPendingOrder(t)
	approverID := kernel.NewUUID()
	decidedAt := createdAt.Add(time.Hour)

	require.NoError(t, o.Approve(approverID, " ok ", decidedAt))

	assert.Equal(t, order.Approved, o.Status())
	require.NotNil(t, o.Approval())
	assert.Equal(t, order.ApprovalApproved, o.Approval().Status())
	assert.Equal(t, "ok", o.Approval().Comments())
	assert.True(t, o.Approval().ApproverID().IsEqual(approverID))
	assert.Equal(t, decidedAt, o.Approval().DecidedAt())

	dispatchedAt := createdAt.Add(24 * time.Hour)
	info, err := order.NewCourierInfo("Delhivery", "DL123", dispatchedAt)
	require.NoError(t, err)

	require.NoError(t, o.RecordDispatch(info))

	assert.Equal(t, order.InTransit, o.Status())
	require.NotNil(t, o.CourierInfo())
	assert.Equal(t, "Delhivery", o.CourierInfo().CourierName())
	assert.Equal(t, "DL123", o.CourierInfo().TrackingNumber())
	assert.Equal(t, dispatchedAt, o.CourierInfo().DispatchedAt())
	assert.Equal(t, "6297.00", o.Total().String())
}

func TestOrder_SecondDecisionFails(t *testing.T) {
	o := newPendingOrder(t)
	require.NoError(t, o.Approve(kernel.NewUUID(), "ok", createdAt))
	first := o.Approval()

	err := o.Approve(kernel.NewUUID(), "again", createdAt)
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)

	err = o.Reject(kernel.NewUUID(), "too late", createdAt)
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Contains(t, err.Error(), "cannot reject order in status APPROVED")
	assert.Contains(t, err.Error(), "PENDING_APPROVAL")

	assert.Equal(t, order.Approved, o.Status())
	assert.Same(t, first, o.Approval())
}

func TestOrder_RejectedIsTerminal(t *testing.T) {
	o := newPendingOrder(t)

	require.NoError(t, o.Reject(kernel.NewUUID(), "bad art", createdAt))
	assert.Equal(t, order.Rejected, o.Status())
	assert.Equal(t, order.ApprovalRejected, o.Approval().Status())
	assert.Equal(t, "bad art", o.Approval().Comments())

	err := o.Accept("Warehouse 4")
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Empty(t, o.DeliveryAddress())

	info, infoErr := order.NewCourierInfo("Delhivery", "DL123", createdAt)
	require.NoError(t, infoErr)
	err = o.RecordDispatch(info)
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Nil(t, o.CourierInfo())

	require.ErrorIs(t, o.MarkFulfilled(), errs.ErrInvalidStateTransition)
	assert.Equal(t, order.Rejected, o.Status())
}

func TestOrder_RecordDispatchFromPendingFails(t *testing.T) {
	o := newPendingOrder(t)
	info, err := order.NewCourierInfo("Delhivery", "DL123", createdAt)
	require.NoError(t, err)

	err = o.RecordDispatch(info)

	var transitionErr *errs.InvalidStateTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.OperationRecordDispatch, transitionErr.Operation)
	assert.Equal(t, "PENDING_APPROVAL", transitionErr.Current)
	assert.Equal(t, []string{"APPROVED", "ACCEPTED", "IN_TRANSIT"}, transitionErr.Allowed)
	assert.Equal(t, order.PendingApproval, o.Status())
}

func TestOrder_AcceptDispatchRedispatchFulfill(t *testing.T) {
	o := newPendingOrder(t)
	require.NoError(t, o.Approve(kernel.NewUUID(), "", createdAt))

	t.Run("accept requires delivery address", func(t *testing.T) {
		err := o.Accept("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Approved, o.Status())
	})

	t.Run("accept sets delivery address", func(t *testing.T) {
		require.NoError(t, o.Accept("Warehouse 4, Bhiwandi"))

		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, "Warehouse 4, Bhiwandi", o.DeliveryAddress())
		require.ErrorIs(t, o.Accept("elsewhere"), errs.ErrInvalidStateTransition)
	})

	t.Run("re-dispatch overwrites courier fields", func(t *testing.T) {
		first, err := order.NewCourierInfo("Delhivery", "DL123", createdAt)
		require.NoError(t, err)
		require.NoError(t, o.RecordDispatch(first))

		second, err := order.NewCourierInfo("BlueDart", "BD999", createdAt.Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, o.RecordDispatch(second))

		assert.Equal(t, order.InTransit, o.Status())
		assert.Equal(t, "BlueDart", o.CourierInfo().CourierName())
		assert.Equal(t, "BD999", o.CourierInfo().TrackingNumber())
		assert.Equal(t, createdAt.Add(time.Hour), o.CourierInfo().DispatchedAt())
	})

	t.Run("mark fulfilled", func(t *testing.T) {
		require.NoError(t, o.MarkFulfilled())

		assert.Equal(t, order.Fulfilled, o.Status())
		require.ErrorIs(t, o.MarkFulfilled(), errs.ErrInvalidStateTransition)
	})
}

func TestNewCourierInfo(t *testing.T) {
	_, err := order.NewCourierInfo("", " ", time.Time{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "courier name")
	assert.Contains(t, err.Error(), "tracking number")
	assert.Contains(t, err.Error(), "dispatch timestamp")
}

func TestOrder_RecordDispatchRequiresConstructedInfo(t *testing.T) {
	o := newPendingOrder(t)
	require.NoError(t, o.Approve(kernel.NewUUID(), "", createdAt))

	err := o.RecordDispatch(order.CourierInfo{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, order.Approved, o.Status())
}

func TestRestoreOrder(t *testing.T) {
	items := []order.Item{mustItem(t, 1, "10")}
	approverID := kernel.NewUUID()
	approved, err := order.RestoreApproval(order.ApprovalApproved, "ok", createdAt, approverID)
	require.NoError(t, err)
	info, err := order.NewCourierInfo("Delhivery", "DL123", createdAt)
	require.NoError(t, err)

	t.Run("should restore consistent state", func(t *testing.T) {
		o, restoreErr := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.InTransit,
			"addr", "dock 3", "", createdAt, items, approved, &info)

		require.NoError(t, restoreErr)
		assert.Equal(t, order.InTransit, o.Status())
		assert.Equal(t, "dock 3", o.DeliveryAddress())
	})

	t.Run("should reject decided status without approval", func(t *testing.T) {
		_, restoreErr := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Approved,
			"addr", "", "", createdAt, items, nil, nil)

		require.ErrorIs(t, restoreErr, errs.ErrValueIsInvalid)
		assert.Contains(t, restoreErr.Error(), "requires an approval decision")
	})

	t.Run("should reject mismatched decision", func(t *testing.T) {
		_, restoreErr := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Rejected,
			"addr", "", "", createdAt, items, approved, nil)

		require.ErrorIs(t, restoreErr, errs.ErrValueIsInvalid)
	})

	t.Run("should reject courier info before dispatch", func(t *testing.T) {
		_, restoreErr := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Approved,
			"addr", "", "", createdAt, items, approved, &info)

		require.ErrorIs(t, restoreErr, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, restoreErr := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Unknown,
			"addr", "", "", createdAt, items, nil, nil)

		require.Error(t, restoreErr)
	})
}

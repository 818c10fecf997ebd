package order

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/pkg/errs"
)

// CourierInfo holds the dispatch details of an order. The dispatch time is
// supplied by the caller and may lie in the past or the future.
type CourierInfo struct {
	courierName    string
	trackingNumber string
	dispatchedAt   time.Time
}

// NewCourierInfo validates that all three fields are present.
func NewCourierInfo(courierName string, trackingNumber string, dispatchedAt time.Time) (CourierInfo, error) {
	var info CourierInfo

	if err := errors.Join(
		info.setCourierName(courierName),
		info.setTrackingNumber(trackingNumber),
		info.setDispatchedAt(dispatchedAt),
	); err != nil {
		return CourierInfo{}, err
	}

	return info, nil
}

func (c CourierInfo) CourierName() string {
	return c.courierName
}

func (c CourierInfo) TrackingNumber() string {
	return c.trackingNumber
}

func (c CourierInfo) DispatchedAt() time.Time {
	return c.dispatchedAt
}

func (c *CourierInfo) setCourierName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("courier name")
	}
	c.courierName = strings.TrimSpace(name)
	return nil
}

func (c *CourierInfo) setTrackingNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	c.trackingNumber = strings.TrimSpace(number)
	return nil
}

func (c *CourierInfo) setDispatchedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("dispatch timestamp")
	}
	c.dispatchedAt = at
	return nil
}

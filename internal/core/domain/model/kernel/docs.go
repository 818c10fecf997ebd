// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: identifier value object used by orders, products and users
//   - Money: non-negative monetary amount used for captured unit prices, line totals and
//     order totals
//
// Both value objects are immutable and reject their zero value through Validate, so a
// field that was never set is caught as soon as an aggregate is constructed.
package kernel

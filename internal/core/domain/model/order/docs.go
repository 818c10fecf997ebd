// Package order provides the Order aggregate of the merchandise ordering system
// and the state machine that governs it.
//
// The package includes:
//   - Order: the aggregate root owning items, the approval decision and courier details
//   - Item: an order line with a unit price snapshot taken at creation
//   - Approval: the single approve/reject decision
//   - CourierInfo: dispatch details, updated in place on re-dispatch
//   - Status: PENDING_APPROVAL -> APPROVED -> ACCEPTED -> IN_TRANSIT -> FULFILLED, or REJECTED
//
// Every transition method checks the current status first and returns an
// *errs.InvalidStateTransitionError naming the operation, the current status
// and the allowed source statuses. A failed transition leaves the aggregate untouched.
package order

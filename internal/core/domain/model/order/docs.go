// Package order provides the Order aggregate and its fulfillment lifecycle.
//
// The package includes:
//   - Order: the aggregate root; immutable except for its status
//   - Status: pending, cooking, ready, delivering, completed, cancelled
//   - LineItem, Payment, Customer, Charges: the value objects an order is made of
//
// Key business rules:
//   - Orders are always created in Pending
//   - Completed and Cancelled are terminal; every other status is active
//   - Status changes are not restricted by the current status
//   - Line item quantities are positive; prices and totals come from the storefront as-is
package order

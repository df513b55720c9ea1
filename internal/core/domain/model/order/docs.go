// Package order provides the Order aggregate and its line items.
//
// The package includes:
//   - Order: the aggregate root owned by exactly one user
//   - Item: a (product, quantity) line bound to exactly one order
//   - Status: the lifecycle state machine, Active -> Complete
//
// Key business rules:
//   - Orders are created Active; Complete is terminal
//   - The only transition is Active -> Complete, requested explicitly
//   - Items are added only to Active orders and changed or removed only while the order is not Complete
//   - An item keeps its product for life; updates change the quantity only
//   - Quantities are positive
package order

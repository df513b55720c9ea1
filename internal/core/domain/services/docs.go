// Package services provides domain services whose rules span more than one
// aggregate of the ordering system.
//
// The package includes:
//   - OrderLifecycle: decides which item mutations an order accepts given its status,
//     the product catalog and the item's owning order
//
// Status transitions of the order itself are decided by the Order aggregate; the
// lifecycle service applies the rules that couple an order to its items.
package services

// Package order implements the Order aggregate of the shop: its items, its
// money totals and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning items, discount and status
//   - Item: an immutable snapshot of a product line taken when it was added
//   - Status: the state machine an order moves through
//
// Key business rules:
//   - total = subtotal + shipping cost - discount, recomputed after every mutation
//   - shipping is charged once per item line, digital items contribute zero
//   - unit price and shipping of an item are frozen when the item is added
//   - status follows Pending -> Confirmed -> Processing -> Shipped -> Delivered,
//     and an order can be cancelled at any point before delivery
//   - transitions that do not apply to the current status change nothing
//   - delivered and cancelled orders no longer accept item or discount changes
//
// Stock is not handled here. Reserving and releasing stock for physical products
// is done by the services package, which produces the Items this package stores.
package order

// Package services provides domain services that coordinate several aggregates.
//
// The package includes:
//   - StockAllocator: moves physical stock between the catalog and order lines
//
// An order line for a physical product holds stock taken from that product. The
// allocator is the only place where the two sides are changed together, so the
// product count and the order lines never disagree.
package services

// Package kernel provides the domain primitives shared by every aggregate of the
// order-management engine.
//
// The package includes:
//   - ID: the storage-assigned sequential identity of products, users and orders
//   - Email: a validated, case-insensitive email address value object
//
// These primitives enforce their invariants at construction and are immutable,
// so they can be copied freely between aggregates, commands and read models.
package kernel

// Package errs provides the typed errors of the order-management engine.
//
// The application layer reports four kinds of failure:
//   - validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - not found: ObjectNotFoundError
//   - conflict: ConflictError (duplicate unique keys, state that forbids the operation)
//   - insufficient stock: InsufficientStockError
//
// Every type pairs a sentinel (ErrValueIsRequired, ErrConflict, ...) with a struct
// carrying the details. Constructors come in two forms, with and without a cause,
// and Unwrap returns the sentinel so errors.Is keeps working through fmt.Errorf wrapping.
//
// Front-ends classify failures with errors.Is against the sentinels, or with
// IsValidation for the whole validation family.
package errs

package kernel

import (
	"errors"
	"fmt"
	"strconv"

	"ecommerce/internal/pkg/errs"
)

// ID is the identity storage assigns to an aggregate.
// Identities are sequential per entity type and start at 1;
// the zero value means "not assigned yet".
type ID int64

// ParseID parses the decimal representation of an identity.
//
// Example:
//
//	id, err := kernel.ParseID(ctx.Param("id"))
//	if err != nil {
//	    return err // value is invalid: id (cause: ...)
//	}
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	id := ID(v)
	if err = id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports whether the identity has been assigned.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("id", fmt.Errorf("%d is not an assigned identity", id))
	}
	return nil
}

// IsZero reports whether storage has not assigned the identity yet.
func (id ID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw identity value.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ErrIDIsAlreadyAssigned is returned when storage tries to re-identify an aggregate.
var ErrIDIsAlreadyAssigned = errors.New("identity is already assigned")

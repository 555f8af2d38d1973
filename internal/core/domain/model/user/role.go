package user

import (
	"fmt"
	"strings"

	"ecommerce/internal/pkg/errs"
)

// Role names the account variant.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleCustomer: "CUSTOMER",
		RoleAdmin:    "ADMIN",
	}
}

// ParseRole accepts "customer" or "admin" in any case.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CUSTOMER":
		return RoleCustomer, nil
	case "ADMIN":
		return RoleAdmin, nil
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", s))
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

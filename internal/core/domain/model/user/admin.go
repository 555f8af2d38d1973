package user

import (
	"errors"
	"slices"
	"strings"

	"ecommerce/internal/core/domain/model/kernel"
)

// Permission is a back-office capability.
type Permission string

const (
	PermissionCreate Permission = "CREATE"
	PermissionRead   Permission = "READ"
	PermissionUpdate Permission = "UPDATE"
	PermissionDelete Permission = "DELETE"
)

var (
	ErrAdminIsNotConstructed = errors.New("admin must be created via NewAdmin or RestoreAdmin")

	adminPermissions = []Permission{PermissionCreate, PermissionRead, PermissionUpdate, PermissionDelete}
)

// StaffProfile holds the organisational data of an admin.
type StaffProfile struct {
	Department   string
	EmployeeCode string
}

func (p StaffProfile) normalize() StaffProfile {
	return StaffProfile{
		Department:   strings.TrimSpace(p.Department),
		EmployeeCode: strings.TrimSpace(p.EmployeeCode),
	}
}

// Admin is a back-office account holding every permission.
type Admin struct {
	account

	staff StaffProfile
}

// NewAdmin creates an active admin without identity.
func NewAdmin(name string, email kernel.Email, password Password, staff StaffProfile) (*Admin, error) {
	a, err := newAccount(name, email, password)
	if err != nil {
		return nil, err
	}

	return &Admin{account: a, staff: staff.normalize()}, nil
}

// RestoreAdmin rebuilds a stored admin.
func RestoreAdmin(
	id kernel.ID,
	name string,
	email kernel.Email,
	password Password,
	active bool,
	staff StaffProfile,
) (*Admin, error) {
	a, err := restoreAccount(id, name, email, password, active)
	if err != nil {
		return nil, err
	}

	return &Admin{account: a, staff: staff.normalize()}, nil
}

func (a *Admin) Role() Role {
	return RoleAdmin
}

func (a *Admin) Staff() StaffProfile {
	return a.staff
}

func (a *Admin) UpdateStaff(staff StaffProfile) {
	a.staff = staff.normalize()
}

// Permissions returns a copy of the fixed permission set.
func (a *Admin) Permissions() []Permission {
	return slices.Clone(adminPermissions)
}

func (a *Admin) HasPermission(permission Permission) bool {
	return slices.Contains(adminPermissions, permission)
}

func (a *Admin) Validate() error {
	if a == nil {
		return ErrAdminIsNotConstructed
	}
	return a.account.Validate()
}

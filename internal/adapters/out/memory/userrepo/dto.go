// Package userrepo stores customers and admins in an in-memory table.
package userrepo

import (
	"fmt"

	"ecommerce/internal/adapters/out/memory/store"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
)

type Table = store.Table[UserDTO]

func NewTable(journal *store.Journal) *Table {
	return store.NewTable[UserDTO]("user", journal)
}

// UserDTO is the stored form of a user. Customer or Staff is set, matching Role.
type UserDTO struct {
	ID           int64
	Role         int
	Name         string
	Email        string
	PasswordHash []byte
	Active       bool

	Customer *CustomerDTO
	Staff    *StaffDTO
}

type CustomerDTO struct {
	FiscalID string
	Address  string
	Phone    string
}

type StaffDTO struct {
	Department   string
	EmployeeCode string
}

func (d UserDTO) Key() int64 {
	return d.ID
}

func (d UserDTO) WithKey(key int64) UserDTO {
	d.ID = key
	return d
}

func fromDomain(u user.User) (UserDTO, error) {
	dto := UserDTO{
		ID:           u.ID().Int64(),
		Role:         int(u.Role()),
		Name:         u.Name(),
		Email:        u.Email().String(),
		PasswordHash: u.Password().Hash(),
		Active:       u.IsActive(),
	}

	switch v := u.(type) {
	case *user.Customer:
		profile := v.Profile()
		dto.Customer = &CustomerDTO{
			FiscalID: profile.FiscalID,
			Address:  profile.Address,
			Phone:    profile.Phone,
		}
	case *user.Admin:
		staff := v.Staff()
		dto.Staff = &StaffDTO{
			Department:   staff.Department,
			EmployeeCode: staff.EmployeeCode,
		}
	default:
		return UserDTO{}, fmt.Errorf("unsupported user type %T", u)
	}

	return dto, nil
}

func toDomain(dto UserDTO) (user.User, error) {
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	password, err := user.RestorePassword(dto.PasswordHash)
	if err != nil {
		return nil, err
	}
	id := kernel.ID(dto.ID)

	switch user.Role(dto.Role) {
	case user.RoleCustomer:
		var profile user.CustomerProfile
		if dto.Customer != nil {
			profile = user.CustomerProfile{
				FiscalID: dto.Customer.FiscalID,
				Address:  dto.Customer.Address,
				Phone:    dto.Customer.Phone,
			}
		}
		return user.RestoreCustomer(id, dto.Name, email, password, dto.Active, profile)

	case user.RoleAdmin:
		var staff user.StaffProfile
		if dto.Staff != nil {
			staff = user.StaffProfile{
				Department:   dto.Staff.Department,
				EmployeeCode: dto.Staff.EmployeeCode,
			}
		}
		return user.RestoreAdmin(id, dto.Name, email, password, dto.Active, staff)

	case user.RoleUnknown:
	}

	return nil, fmt.Errorf("user %d: unknown role %d", dto.ID, dto.Role)
}

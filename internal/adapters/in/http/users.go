package http

import (
	"net/http"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

type newCustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FiscalID string `json:"fiscalId"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

type newAdminRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Department   string `json:"department"`
	EmployeeCode string `json:"employeeCode"`
}

// userChangesRequest carries optional profile fields; absent fields stay untouched.
type userChangesRequest struct {
	Name         *string `json:"name"`
	FiscalID     *string `json:"fiscalId"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	Department   *string `json:"department"`
	EmployeeCode *string `json:"employeeCode"`
}

func (r userChangesRequest) options() []commands.UpdateUserOption {
	var opts []commands.UpdateUserOption
	add := func(v *string, opt func(string) commands.UpdateUserOption) {
		if v != nil {
			opts = append(opts, opt(*v))
		}
	}
	add(r.Name, commands.WithUserName)
	add(r.FiscalID, commands.WithFiscalID)
	add(r.Address, commands.WithAddress)
	add(r.Phone, commands.WithPhone)
	add(r.Department, commands.WithDepartment)
	add(r.EmployeeCode, commands.WithEmployeeCode)
	return opts
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ListUsers handles GET /api/v1/users.
func (s *Server) ListUsers(ctx echo.Context) error {
	var role *string
	if err := queryParam(ctx, "role", &role); err != nil {
		return err
	}

	var filter string
	if role != nil {
		filter = *role
	}
	query, err := queries.NewListUsersQuery(filter)
	if err != nil {
		return err
	}

	users, err := s.h.ListUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, users)
}

// GetUserByEmail handles GET /api/v1/users/by-email.
func (s *Server) GetUserByEmail(ctx echo.Context) error {
	var email *string
	if err := queryParam(ctx, "email", &email); err != nil {
		return err
	}

	var address string
	if email != nil {
		address = *email
	}
	query, err := queries.NewGetUserByEmailQuery(address)
	if err != nil {
		return err
	}

	res, err := s.h.GetUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

// RegisterCustomer handles POST /api/v1/users/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var body newCustomerRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterCustomerCommand(body.Name, body.Email, body.Password, user.CustomerProfile{
		FiscalID: body.FiscalID,
		Address:  body.Address,
		Phone:    body.Phone,
	})
	if err != nil {
		return err
	}

	id, err := s.h.RegisterCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, createdResponse{ID: id.Int64()})
}

// RegisterAdmin handles POST /api/v1/users/admins.
func (s *Server) RegisterAdmin(ctx echo.Context) error {
	var body newAdminRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterAdminCommand(body.Name, body.Email, body.Password, user.StaffProfile{
		Department:   body.Department,
		EmployeeCode: body.EmployeeCode,
	})
	if err != nil {
		return err
	}

	id, err := s.h.RegisterAdmin.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, createdResponse{ID: id.Int64()})
}

// GetUser handles GET /api/v1/users/:id.
func (s *Server) GetUser(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetUserQuery(id)
	if err != nil {
		return err
	}

	res, err := s.h.GetUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

// UpdateUser handles PATCH /api/v1/users/:id.
func (s *Server) UpdateUser(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var body userChangesRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateUserCommand(id, body.options()...)
	if err != nil {
		return err
	}
	if err = s.h.UpdateUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (s *Server) DeleteUser(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteUserCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeUserEmail handles PUT /api/v1/users/:id/email.
func (s *Server) ChangeUserEmail(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var body struct {
		Email string `json:"email"`
	}
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewChangeUserEmailCommand(id, body.Email)
	if err != nil {
		return err
	}
	if err = s.h.ChangeUserEmail.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeUserPassword handles PUT /api/v1/users/:id/password.
func (s *Server) ChangeUserPassword(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var body struct {
		CurrentPassword string `json:"currentPassword"`
		Password        string `json:"password"`
	}
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewChangeUserPasswordCommand(id, body.CurrentPassword, body.Password)
	if err != nil {
		return err
	}
	if err = s.h.ChangeUserPassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetUserActive handles PUT /api/v1/users/:id/active.
func (s *Server) SetUserActive(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var body toggleRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSetUserActiveCommand(id, body.Value)
	if err != nil {
		return err
	}
	if err = s.h.SetUserActive.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var body credentialsRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	query, err := queries.NewAuthenticateUserQuery(body.Email, body.Password)
	if err != nil {
		return err
	}
	res, ok, err := s.h.Authenticate.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	return ctx.JSON(http.StatusOK, res)
}

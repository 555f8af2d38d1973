// Package seed loads the demonstration catalog and accounts into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

type customerSeed struct {
	name, email, password string
	profile               user.CustomerProfile
}

type physicalSeed struct {
	info                          product.Info
	weight, length, width, height string
	stock                         int
}

var (
	customers = []customerSeed{
		{
			name: "João Silva", email: "joao@email.com", password: "senha123",
			profile: user.CustomerProfile{FiscalID: "12345678901", Address: "Rua A, 123", Phone: "11987654321"},
		},
		{
			name: "Maria Santos", email: "maria@email.com", password: "senha456",
			profile: user.CustomerProfile{FiscalID: "98765432109", Address: "Rua B, 456", Phone: "11912345678"},
		},
	}

	physicals = []physicalSeed{
		{
			info: product.Info{
				Name:        "Notebook Dell",
				Description: "Notebook Dell Inspiron 15",
				Category:    "Electronics",
				Price:       decimal.RequireFromString("3500.00"),
			},
			weight: "2.5", length: "35", width: "25", height: "20", stock: 10,
		},
		{
			info: product.Info{
				Name:        "Mouse Logitech",
				Description: "Mouse sem fio Logitech MX Master",
				Category:    "Electronics",
				Price:       decimal.RequireFromString("250.00"),
			},
			weight: "0.3", length: "12", width: "7", height: "5", stock: 50,
		},
	}

	digitals = []commands.CreateDigitalProductCommand{
		commands.NewCreateDigitalProductCommand(product.Info{
			Name:        "Java Programming",
			Description: "Complete Java Programming Guide",
			Category:    "Books",
			Price:       decimal.RequireFromString("49.90"),
		}, product.Asset{
			DownloadURL:   "https://download.com/java-book",
			FileSizeMB:    decimal.RequireFromString("15.5"),
			Format:        "PDF",
			DownloadLimit: 5,
			ValidityDays:  365,
		}),
		commands.NewCreateDigitalProductCommand(product.Info{
			Name:        "Web Development Course",
			Description: "Complete Web Development Bootcamp",
			Category:    "Education",
			Price:       decimal.RequireFromString("199.90"),
		}, product.Asset{
			DownloadURL:   "https://download.com/web-course",
			FileSizeMB:    decimal.RequireFromString("2500"),
			Format:        "MP4",
			DownloadLimit: 3,
			ValidityDays:  180,
		}),
	}
)

// Seeder creates the sample data through the regular command handlers.
type Seeder struct {
	registerCustomer commands.RegisterCustomerCommandHandler
	registerAdmin    commands.RegisterAdminCommandHandler
	createPhysical   commands.CreatePhysicalProductCommandHandler
	createDigital    commands.CreateDigitalProductCommandHandler
	logger           *slog.Logger
}

func NewSeeder(users commands.UserUoWFactory, products commands.ProductUoWFactory, logger *slog.Logger) *Seeder {
	return &Seeder{
		registerCustomer: commands.NewRegisterCustomerCommandHandler(users),
		registerAdmin:    commands.NewRegisterAdminCommandHandler(users),
		createPhysical:   commands.NewCreatePhysicalProductCommandHandler(products),
		createDigital:    commands.NewCreateDigitalProductCommandHandler(products),
		logger:           logger.With("component", "seed"),
	}
}

// Run stores three accounts and four products. It fails on the first error,
// so running it twice against the same store returns a conflict.
func (s *Seeder) Run(ctx context.Context) error {
	for _, c := range customers {
		cmd, err := commands.NewRegisterCustomerCommand(c.name, c.email, c.password, c.profile)
		if err != nil {
			return fmt.Errorf("seed customer %s: %w", c.email, err)
		}
		if _, err = s.registerCustomer.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.email, err)
		}
	}

	admin, err := commands.NewRegisterAdminCommand("Admin", "admin@ecommerce.com", "admin123",
		user.StaffProfile{Department: "IT", EmployeeCode: "ADM001"})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if _, err = s.registerAdmin.Handle(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	for _, p := range physicals {
		if err = s.seedPhysical(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.info.Name, err)
		}
	}

	for _, cmd := range digitals {
		if _, err = s.createDigital.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed product %s: %w", cmd.Info().Name, err)
		}
	}

	s.logger.InfoContext(ctx, "sample data loaded",
		"users", len(customers)+1,
		"products", len(physicals)+len(digitals),
	)
	return nil
}

func (s *Seeder) seedPhysical(ctx context.Context, p physicalSeed) error {
	dims, err := product.NewDimensions(
		decimal.RequireFromString(p.weight),
		decimal.RequireFromString(p.length),
		decimal.RequireFromString(p.width),
		decimal.RequireFromString(p.height),
	)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreatePhysicalProductCommand(p.info, dims, p.stock)
	if err != nil {
		return err
	}

	_, err = s.createPhysical.Handle(ctx, cmd)
	return err
}

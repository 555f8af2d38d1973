package cmd

import (
	"fmt"
	"log/slog"

	httpin "ecommerce/internal/adapters/in/http"
	mcpin "ecommerce/internal/adapters/in/mcp"
	"ecommerce/internal/adapters/out/memory"
	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/jobs"
	"ecommerce/internal/pkg/money"
	"ecommerce/internal/seed"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory *memory.UnitOfWorkFactory
	formatter  money.Formatter
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	formatter, err := money.NewFormatter(config.Currency, config.Locale)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("money formatter: %w", err)
	}

	return CompositionRoot{
		config:     config,
		logger:     logger,
		uowFactory: memory.NewUnitOfWorkFactory(memory.NewDatabase(), logger),
		formatter:  formatter,
	}, nil
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) allUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) productReadUoWFactory() queries.ProductReadUoWFactory {
	return FuncProductReadUoWFactory(func() queries.ProductReadUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) userReadUoWFactory() queries.UserReadUoWFactory {
	return FuncUserReadUoWFactory(func() queries.UserReadUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderReadUoWFactory() queries.OrderReadUoWFactory {
	return FuncOrderReadUoWFactory(func() queries.OrderReadUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) readUoWFactory() queries.ReadUoWFactory {
	return FuncReadUoWFactory(func() queries.ReadUoW { return c.uowFactory.Create() })
}

// Handlers builds every command and query handler over the shared store.
func (c *CompositionRoot) Handlers() httpin.Handlers {
	products, users, all := c.productUoWFactory(), c.userUoWFactory(), c.allUoWFactory()

	return httpin.Handlers{
		CreatePhysicalProduct:  commands.NewCreatePhysicalProductCommandHandler(products),
		CreateDigitalProduct:   commands.NewCreateDigitalProductCommandHandler(products),
		UpdateProduct:          commands.NewUpdateProductCommandHandler(products),
		ChangeProductPrice:     commands.NewChangeProductPriceCommandHandler(products),
		RestockProduct:         commands.NewRestockProductCommandHandler(products),
		SetProductAvailability: commands.NewSetProductAvailabilityCommandHandler(products),
		DeleteProduct:          commands.NewDeleteProductCommandHandler(products),

		RegisterCustomer:   commands.NewRegisterCustomerCommandHandler(users),
		RegisterAdmin:      commands.NewRegisterAdminCommandHandler(users),
		UpdateUser:         commands.NewUpdateUserCommandHandler(users),
		ChangeUserEmail:    commands.NewChangeUserEmailCommandHandler(users),
		ChangeUserPassword: commands.NewChangeUserPasswordCommandHandler(users),
		SetUserActive:      commands.NewSetUserActiveCommandHandler(users),
		DeleteUser:         commands.NewDeleteUserCommandHandler(users),

		CreateOrder:     commands.NewCreateOrderCommandHandler(all),
		AddOrderItem:    commands.NewAddOrderItemCommandHandler(all),
		RemoveOrderItem: commands.NewRemoveOrderItemCommandHandler(all),
		ApplyDiscount:   commands.NewApplyDiscountCommandHandler(all),
		AdvanceOrder:    commands.NewAdvanceOrderCommandHandler(all),
		CancelOrder:     commands.NewCancelOrderCommandHandler(all),

		GetProduct:      queries.NewGetProductQueryHandler(c.productReadUoWFactory()),
		ListProducts:    queries.NewListProductsQueryHandler(c.productReadUoWFactory()),
		GetDownloadLink: queries.NewGetDownloadLinkQueryHandler(c.productReadUoWFactory()),
		GetUser:         queries.NewGetUserQueryHandler(c.userReadUoWFactory()),
		ListUsers:       queries.NewListUsersQueryHandler(c.userReadUoWFactory()),
		Authenticate:    queries.NewAuthenticateUserQueryHandler(c.userReadUoWFactory()),
		GetOrder:        queries.NewGetOrderQueryHandler(c.orderReadUoWFactory()),
		ListOrders:      queries.NewListOrdersQueryHandler(c.orderReadUoWFactory()),
		GetStatistics:   queries.NewGetStatisticsQueryHandler(c.readUoWFactory()),
	}
}

// CreateHTTPServer builds the echo router over the validated API document.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	doc, err := httpin.LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	return httpin.NewRouter(httpin.NewServer(c.Handlers()), doc, c.logger), nil
}

func (c *CompositionRoot) CreateMCPServer() *mcpin.Server {
	h := c.Handlers()
	return mcpin.NewServer(mcpin.Handlers{
		ListProducts:  h.ListProducts,
		GetOrder:      h.GetOrder,
		ListOrders:    h.ListOrders,
		GetStatistics: h.GetStatistics,
		CreateOrder:   h.CreateOrder,
		AddOrderItem:  h.AddOrderItem,
		ApplyDiscount: h.ApplyDiscount,
		AdvanceOrder:  h.AdvanceOrder,
		CancelOrder:   h.CancelOrder,
	}, c.formatter, c.logger)
}

func (c *CompositionRoot) CreateSeeder() *seed.Seeder {
	return seed.NewSeeder(c.userUoWFactory(), c.productUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.Config{
		RevenueReportSchedule: c.config.RevenueReportSchedule,
		LowStockSchedule:      c.config.LowStockSchedule,
		LowStockThreshold:     c.config.LowStockThreshold,
	},
		queries.NewGetStatisticsQueryHandler(c.readUoWFactory()),
		queries.NewListProductsQueryHandler(c.productReadUoWFactory()),
		c.formatter,
		c.logger,
	)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncProductReadUoWFactory func() queries.ProductReadUoW

func (f FuncProductReadUoWFactory) Create() queries.ProductReadUoW {
	return f()
}

type FuncUserReadUoWFactory func() queries.UserReadUoW

func (f FuncUserReadUoWFactory) Create() queries.UserReadUoW {
	return f()
}

type FuncOrderReadUoWFactory func() queries.OrderReadUoW

func (f FuncOrderReadUoWFactory) Create() queries.OrderReadUoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}

package http

import (
	"net/http"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type productInfoRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

func (r productInfoRequest) info() product.Info {
	return product.Info{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
	}
}

type newPhysicalProductRequest struct {
	productInfoRequest
	WeightKg decimal.Decimal `json:"weightKg"`
	LengthCm decimal.Decimal `json:"lengthCm"`
	WidthCm  decimal.Decimal `json:"widthCm"`
	HeightCm decimal.Decimal `json:"heightCm"`
	Stock    int             `json:"stock"`
}

type newDigitalProductRequest struct {
	productInfoRequest
	DownloadURL   string          `json:"downloadUrl"`
	FileSizeMB    decimal.Decimal `json:"fileSizeMb"`
	Format        string          `json:"format"`
	DownloadLimit int             `json:"downloadLimit"`
	ValidityDays  int             `json:"validityDays"`
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	var (
		category  *string
		available *bool
		kind      *string
		maxStock  *int
	)
	if err := queryParam(ctx, "category", &category); err != nil {
		return err
	}
	if err := queryParam(ctx, "available", &available); err != nil {
		return err
	}
	if err := queryParam(ctx, "kind", &kind); err != nil {
		return err
	}
	if err := queryParam(ctx, "maxStock", &maxStock); err != nil {
		return err
	}
	minPrice, err := queryDecimal(ctx, "minPrice")
	if err != nil {
		return err
	}
	maxPrice, err := queryDecimal(ctx, "maxPrice")
	if err != nil {
		return err
	}

	var opts []queries.ListProductsOption
	if category != nil {
		opts = append(opts, queries.WithCategory(*category))
	}
	if minPrice != nil {
		opts = append(opts, queries.WithMinPrice(*minPrice))
	}
	if maxPrice != nil {
		opts = append(opts, queries.WithMaxPrice(*maxPrice))
	}
	if available != nil && *available {
		opts = append(opts, queries.OnlyAvailable())
	}
	if kind != nil {
		k, parseErr := product.ParseKind(*kind)
		if parseErr != nil {
			return parseErr
		}
		opts = append(opts, queries.WithKind(k))
	}
	if maxStock != nil {
		opts = append(opts, queries.WithMaxStock(*maxStock))
	}

	query, err := queries.NewListProductsQuery(opts...)
	if err != nil {
		return err
	}
	products, err := s.h.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, products)
}

// CreatePhysicalProduct handles POST /api/v1/products/physical.
func (s *Server) CreatePhysicalProduct(ctx echo.Context) error {
	var body newPhysicalProductRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	dimensions, err := product.NewDimensions(body.WeightKg, body.LengthCm, body.WidthCm, body.HeightCm)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreatePhysicalProductCommand(body.info(), dimensions, body.Stock)
	if err != nil {
		return err
	}

	id, err := s.h.CreatePhysicalProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, createdResponse{ID: id.Int64()})
}

// CreateDigitalProduct handles POST /api/v1/products/digital.
func (s *Server) CreateDigitalProduct(ctx echo.Context) error {
	var body newDigitalProductRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd := commands.NewCreateDigitalProductCommand(body.info(), product.Asset{
		DownloadURL:   body.DownloadURL,
		FileSizeMB:    body.FileSizeMB,
		Format:        body.Format,
		DownloadLimit: body.DownloadLimit,
		ValidityDays:  body.ValidityDays,
	})

	id, err := s.h.CreateDigitalProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, createdResponse{ID: id.Int64()})
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return err
	}

	res, err := s.h.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var body productInfoRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProductCommand(id, body.info())
	if err != nil {
		return err
	}
	if err = s.h.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeProductPrice handles PUT /api/v1/products/:id/price.
func (s *Server) ChangeProductPrice(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var body struct {
		Price decimal.Decimal `json:"price"`
	}
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewChangeProductPriceCommand(id, body.Price)
	if err != nil {
		return err
	}
	if err = s.h.ChangeProductPrice.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RestockProduct handles POST /api/v1/products/:id/restock.
func (s *Server) RestockProduct(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRestockProductCommand(id, body.Quantity)
	if err != nil {
		return err
	}
	stock, err := s.h.RestockProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, map[string]int{"stock": stock})
}

// SetProductAvailability handles PUT /api/v1/products/:id/availability.
func (s *Server) SetProductAvailability(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var body toggleRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSetProductAvailabilityCommand(id, body.Value)
	if err != nil {
		return err
	}
	if err = s.h.SetProductAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetDownloadLink handles GET /api/v1/products/:id/download-link.
func (s *Server) GetDownloadLink(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetDownloadLinkQuery(id)
	if err != nil {
		return err
	}

	link, err := s.h.GetDownloadLink.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, map[string]string{"url": link})
}

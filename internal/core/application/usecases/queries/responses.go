package queries

import (
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/core/domain/model/user"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ProductResponse is the read model of a catalog product. Exactly one of
// Physical and Digital is set.
type ProductResponse struct {
	ID           kernel.ID        `json:"id"`
	Kind         string           `json:"kind"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Category     string           `json:"category"`
	Price        decimal.Decimal  `json:"price"`
	Available    bool             `json:"available"`
	ShippingCost decimal.Decimal  `json:"shippingCost"`
	CreatedAt    time.Time        `json:"createdAt"`
	Physical     *PhysicalDetails `json:"physical,omitempty"`
	Digital      *DigitalDetails  `json:"digital,omitempty"`
}

type PhysicalDetails struct {
	WeightKg decimal.Decimal `json:"weightKg"`
	LengthCm decimal.Decimal `json:"lengthCm"`
	WidthCm  decimal.Decimal `json:"widthCm"`
	HeightCm decimal.Decimal `json:"heightCm"`
	Stock    int             `json:"stock"`
}

type DigitalDetails struct {
	DownloadURL   string          `json:"downloadUrl"`
	FileSizeMB    decimal.Decimal `json:"fileSizeMb"`
	Format        string          `json:"format"`
	DownloadLimit int             `json:"downloadLimit"`
	ValidityDays  int             `json:"validityDays"`
}

func newProductResponse(p product.Product) ProductResponse {
	res := ProductResponse{
		ID:           p.ID(),
		Kind:         p.Kind().String(),
		Name:         p.Name(),
		Description:  p.Description(),
		Category:     p.Category(),
		Price:        p.Price(),
		Available:    p.IsAvailable(),
		ShippingCost: p.ShippingCost(),
		CreatedAt:    p.CreatedAt(),
	}

	switch v := p.(type) {
	case *product.Physical:
		dims := v.Dimensions()
		res.Physical = &PhysicalDetails{
			WeightKg: dims.Weight(),
			LengthCm: dims.Length(),
			WidthCm:  dims.Width(),
			HeightCm: dims.Height(),
			Stock:    v.Stock(),
		}
	case *product.Digital:
		asset := v.Asset()
		res.Digital = &DigitalDetails{
			DownloadURL:   asset.DownloadURL,
			FileSizeMB:    asset.FileSizeMB,
			Format:        asset.Format,
			DownloadLimit: asset.DownloadLimit,
			ValidityDays:  asset.ValidityDays,
		}
	}

	return res
}

// UserResponse is the read model of an account. The password hash is never exposed.
type UserResponse struct {
	ID       kernel.ID        `json:"id"`
	Role     string           `json:"role"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Active   bool             `json:"active"`
	Customer *CustomerDetails `json:"customer,omitempty"`
	Staff    *StaffDetails    `json:"staff,omitempty"`
}

type CustomerDetails struct {
	FiscalID string `json:"fiscalId,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type StaffDetails struct {
	Department   string   `json:"department,omitempty"`
	EmployeeCode string   `json:"employeeCode,omitempty"`
	Permissions  []string `json:"permissions"`
}

func newUserResponse(u user.User) UserResponse {
	res := UserResponse{
		ID:     u.ID(),
		Role:   u.Role().String(),
		Name:   u.Name(),
		Email:  u.Email().String(),
		Active: u.IsActive(),
	}

	switch v := u.(type) {
	case *user.Customer:
		profile := v.Profile()
		res.Customer = &CustomerDetails{
			FiscalID: profile.FiscalID,
			Address:  profile.Address,
			Phone:    profile.Phone,
		}
	case *user.Admin:
		staff := v.Staff()
		res.Staff = &StaffDetails{
			Department:   staff.Department,
			EmployeeCode: staff.EmployeeCode,
			Permissions: lo.Map(v.Permissions(), func(p user.Permission, _ int) string {
				return string(p)
			}),
		}
	}

	return res
}

// OrderResponse is the read model of an order with its lines.
type OrderResponse struct {
	ID            kernel.ID       `json:"id"`
	CustomerID    kernel.ID       `json:"customerId"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	Items         []ItemResponse  `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ShippingCost  decimal.Decimal `json:"shippingCost"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"createdAt"`
	DeliveredAt   *time.Time      `json:"deliveredAt,omitempty"`
}

type ItemResponse struct {
	Line         int             `json:"line"`
	ProductID    kernel.ID       `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductKind  string          `json:"productKind"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

func newOrderResponse(o *order.Order) OrderResponse {
	res := OrderResponse{
		ID:            o.ID(),
		CustomerID:    o.CustomerID(),
		PaymentMethod: o.PaymentMethod(),
		Status:        o.Status().String(),
		Items: lo.Map(o.Items(), func(item order.Item, _ int) ItemResponse {
			return ItemResponse{
				Line:         item.Line(),
				ProductID:    item.ProductID(),
				ProductName:  item.ProductName(),
				ProductKind:  item.ProductKind().String(),
				Quantity:     item.Quantity(),
				UnitPrice:    item.UnitPrice(),
				ShippingCost: item.ShippingCost(),
				TotalPrice:   item.TotalPrice(),
			}
		}),
		Subtotal:     o.Subtotal(),
		ShippingCost: o.ShippingCost(),
		Discount:     o.Discount(),
		Total:        o.Total(),
		CreatedAt:    o.CreatedAt(),
	}

	if at, ok := o.DeliveredAt(); ok {
		res.DeliveredAt = &at
	}

	return res
}

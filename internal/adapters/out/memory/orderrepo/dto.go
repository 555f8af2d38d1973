// Package orderrepo stores order aggregates and their items in an in-memory table.
package orderrepo

import (
	"time"

	"ecommerce/internal/adapters/out/memory/store"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/product"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type Table = store.Table[OrderDTO]

func NewTable(journal *store.Journal) *Table {
	return store.NewTable[OrderDTO]("order", journal)
}

// OrderDTO is the stored form of an order. Derived totals are not stored.
type OrderDTO struct {
	ID            int64
	CustomerID    int64
	PaymentMethod string
	Status        int
	Discount      decimal.Decimal
	CreatedAt     time.Time
	DeliveredAt   *time.Time
	Items         []ItemDTO
}

// ItemDTO is one order line.
type ItemDTO struct {
	Line         int
	ProductID    int64
	ProductName  string
	ProductKind  int
	Quantity     int
	UnitPrice    decimal.Decimal
	ShippingCost decimal.Decimal
}

func (d OrderDTO) Key() int64 {
	return d.ID
}

func (d OrderDTO) WithKey(key int64) OrderDTO {
	d.ID = key
	return d
}

func fromDomain(o *order.Order) OrderDTO {
	var deliveredAt *time.Time
	if at, ok := o.DeliveredAt(); ok {
		deliveredAt = &at
	}

	return OrderDTO{
		ID:            o.ID().Int64(),
		CustomerID:    o.CustomerID().Int64(),
		PaymentMethod: o.PaymentMethod(),
		Status:        int(o.Status()),
		Discount:      o.Discount(),
		CreatedAt:     o.CreatedAt(),
		DeliveredAt:   deliveredAt,
		Items: lo.Map(o.Items(), func(item order.Item, _ int) ItemDTO {
			return ItemDTO{
				Line:         item.Line(),
				ProductID:    item.ProductID().Int64(),
				ProductName:  item.ProductName(),
				ProductKind:  int(item.ProductKind()),
				Quantity:     item.Quantity(),
				UnitPrice:    item.UnitPrice(),
				ShippingCost: item.ShippingCost(),
			}
		}),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.RestoreItem(
			itemDTO.Line,
			kernel.ID(itemDTO.ProductID),
			itemDTO.ProductName,
			product.Kind(itemDTO.ProductKind),
			itemDTO.Quantity,
			itemDTO.UnitPrice,
			itemDTO.ShippingCost,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.CustomerID),
		dto.PaymentMethod,
		order.Status(dto.Status),
		items,
		dto.Discount,
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}


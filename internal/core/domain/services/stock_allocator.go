package services

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/pkg/errs"
)

// ErrProductIsUnavailable is returned when an unavailable product is added to an order.
var ErrProductIsUnavailable = errs.NewValueIsInvalidErrorWithCause("product", errors.New("product is not available for sale"))

// StockAllocator reserves stock when a line is added to an order and releases
// it when the line goes away.
//
// Business rules:
//   - only available products can be ordered
//   - a physical line takes its quantity from the product stock
//   - stock is never reduced below zero
//   - digital lines do not touch stock
//
// Example usage:
//
//	allocator := services.NewStockAllocator()
//	item, err := allocator.Allocate(o, notebook, 2)
//	if errors.Is(err, errs.ErrInsufficientStock) {
//	    // Not enough units left
//	}
//	// notebook.Stock() is now two units lower and o has a new line
type StockAllocator struct{}

func NewStockAllocator() StockAllocator {
	return StockAllocator{}
}

// Allocate adds quantity units of p to o and reserves the stock of a physical product.
//
// Returns:
//   - the stored order line
//   - ErrProductIsUnavailable, an InsufficientStockError, or the validation
//     error of the order or product
//
// Nothing is changed when an error is returned.
func (StockAllocator) Allocate(o *order.Order, p product.Product, quantity int) (order.Item, error) {
	if err := o.Validate(); err != nil {
		return order.Item{}, err
	}
	if err := o.ValidateEditable(); err != nil {
		return order.Item{}, err
	}

	item, err := order.NewItem(p, quantity)
	if err != nil {
		return order.Item{}, err
	}

	if !p.IsAvailable() {
		return order.Item{}, ErrProductIsUnavailable
	}

	physical, isPhysical := p.(*product.Physical)
	if isPhysical {
		if err = physical.ReduceStock(quantity); err != nil {
			return order.Item{}, err
		}
	}

	stored, err := o.AddItem(item)
	if err != nil {
		if isPhysical {
			err = errors.Join(err, physical.AddStock(quantity))
		}
		return order.Item{}, err
	}

	return stored, nil
}

// Release gives the stock held by item back to p. It does nothing for digital
// lines. p must be the product the line was taken from.
func (StockAllocator) Release(item order.Item, p product.Product) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !item.IsPhysical() {
		return nil
	}
	if p == nil {
		return errs.NewValueIsRequiredError("product")
	}
	if p.ID() != item.ProductID() {
		return errs.NewValueIsInvalidErrorWithCause(
			"product",
			fmt.Errorf("line %d holds product %s, got %s", item.Line(), item.ProductID(), p.ID()),
		)
	}

	physical, ok := p.(*product.Physical)
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("product", fmt.Errorf("product %s is not physical", p.ID()))
	}

	return physical.AddStock(item.Quantity())
}

// RemoveLine drops a line from o and releases its stock into p. p may be nil
// when the product was deleted from the catalog in the meantime.
func (a StockAllocator) RemoveLine(o *order.Order, line int, p product.Product) (order.Item, error) {
	if err := o.Validate(); err != nil {
		return order.Item{}, err
	}

	removed, err := o.RemoveItem(line)
	if err != nil {
		return order.Item{}, err
	}
	if p == nil {
		return removed, nil
	}

	if err = a.Release(removed, p); err != nil {
		return order.Item{}, err
	}
	return removed, nil
}

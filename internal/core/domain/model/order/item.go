package order

import (
	"errors"
	"fmt"
	"strings"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("item must be created via NewItem or RestoreItem")

// Item is a product line of an order. It keeps a snapshot of the product taken
// when the line was added, so later catalog changes do not alter the order.
type Item struct {
	line         int
	productID    kernel.ID
	productName  string
	productKind  product.Kind
	quantity     int
	unitPrice    decimal.Decimal
	shippingCost decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItem snapshots a stored product. The line number is assigned by Order.AddItem.
// Stock is not checked here.
func NewItem(p product.Product, quantity int) (Item, error) {
	if p == nil {
		return Item{}, errs.NewValueIsRequiredError("product")
	}
	if err := p.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := p.ID().Validate(); err != nil {
		return Item{}, fmt.Errorf("product is not stored: %w", err)
	}

	return Item{
		productID:    p.ID(),
		productName:  p.Name(),
		productKind:  p.Kind(),
		quantity:     quantity,
		unitPrice:    p.Price(),
		shippingCost: p.ShippingCost(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem rebuilds a stored item line.
func RestoreItem(
	line int,
	productID kernel.ID,
	productName string,
	productKind product.Kind,
	quantity int,
	unitPrice decimal.Decimal,
	shippingCost decimal.Decimal,
) (Item, error) {
	var lineErr, qtyErr, nameErr, priceErr, shippingErr error
	if line <= 0 {
		lineErr = errs.NewValueIsInvalidErrorWithCause("line", fmt.Errorf("%d is not greater than 0", line))
	}
	if quantity <= 0 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if strings.TrimSpace(productName) == "" {
		nameErr = errs.NewValueIsRequiredError("product name")
	}
	if !unitPrice.IsPositive() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	if shippingCost.IsNegative() {
		shippingErr = errs.NewValueIsInvalidErrorWithCause("shipping cost", fmt.Errorf("%s is negative", shippingCost))
	}
	if err := errors.Join(lineErr, productID.Validate(), productKind.Validate(), qtyErr, nameErr, priceErr, shippingErr); err != nil {
		return Item{}, err
	}

	return Item{
		line:         line,
		productID:    productID,
		productName:  productName,
		productKind:  productKind,
		quantity:     quantity,
		unitPrice:    unitPrice,
		shippingCost: shippingCost,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Line is the 1-based position of the item inside its order. Zero until added.
func (i Item) Line() int {
	return i.line
}

func (i Item) ProductID() kernel.ID {
	return i.productID
}

func (i Item) ProductName() string {
	return i.productName
}

func (i Item) ProductKind() product.Kind {
	return i.productKind
}

// IsPhysical reports whether the line reserved stock when it was added.
func (i Item) IsPhysical() bool {
	return i.productKind == product.KindPhysical
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// ShippingCost is charged once for the line, whatever the quantity.
func (i Item) ShippingCost() decimal.Decimal {
	return i.shippingCost
}

// TotalPrice is unit price × quantity, shipping excluded.
func (i Item) TotalPrice() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

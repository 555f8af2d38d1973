package queries

import (
	"errors"

	"ecommerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetStatisticsQueryIsNotConstructed = errors.New(
	"GetStatisticsQuery must be created via NewGetStatisticsQuery constructor",
)

type GetStatisticsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStatisticsQuery() GetStatisticsQuery {
	return GetStatisticsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}

// StatisticsResponse summarizes the store. OrdersByStatus has an entry for
// every status, zero included. Revenue is the sum of DELIVERED order totals.
type StatisticsResponse struct {
	Products         int             `json:"products"`
	PhysicalProducts int             `json:"physicalProducts"`
	DigitalProducts  int             `json:"digitalProducts"`
	Users            int             `json:"users"`
	Customers        int             `json:"customers"`
	Admins           int             `json:"admins"`
	Orders           int             `json:"orders"`
	OrdersByStatus   map[string]int  `json:"ordersByStatus"`
	Revenue          decimal.Decimal `json:"revenue"`
}

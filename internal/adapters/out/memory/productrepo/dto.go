// Package productrepo stores catalog products in an in-memory table.
// Both product kinds share one table and one id sequence.
package productrepo

import (
	"fmt"
	"time"

	"ecommerce/internal/adapters/out/memory/store"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// Table is the storage of ProductDTO rows.
type Table = store.Table[ProductDTO]

// NewTable creates the product table recording into journal.
func NewTable(journal *store.Journal) *Table {
	return store.NewTable[ProductDTO]("product", journal)
}

// ProductDTO is the stored form of a product. Exactly one of Physical and
// Digital is set, matching Kind.
type ProductDTO struct {
	ID          int64
	Kind        int
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Available   bool
	CreatedAt   time.Time

	Physical *PhysicalDTO
	Digital  *DigitalDTO
}

type PhysicalDTO struct {
	Weight decimal.Decimal
	Length decimal.Decimal
	Width  decimal.Decimal
	Height decimal.Decimal
	Stock  int
}

type DigitalDTO struct {
	DownloadURL   string
	FileSizeMB    decimal.Decimal
	Format        string
	DownloadLimit int
	ValidityDays  int
}

func (d ProductDTO) Key() int64 {
	return d.ID
}

func (d ProductDTO) WithKey(key int64) ProductDTO {
	d.ID = key
	return d
}

func fromDomain(p product.Product) (ProductDTO, error) {
	dto := ProductDTO{
		ID:          p.ID().Int64(),
		Kind:        int(p.Kind()),
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category(),
		Price:       p.Price(),
		Available:   p.IsAvailable(),
		CreatedAt:   p.CreatedAt(),
	}

	switch v := p.(type) {
	case *product.Physical:
		dims := v.Dimensions()
		dto.Physical = &PhysicalDTO{
			Weight: dims.Weight(),
			Length: dims.Length(),
			Width:  dims.Width(),
			Height: dims.Height(),
			Stock:  v.Stock(),
		}
	case *product.Digital:
		asset := v.Asset()
		dto.Digital = &DigitalDTO{
			DownloadURL:   asset.DownloadURL,
			FileSizeMB:    asset.FileSizeMB,
			Format:        asset.Format,
			DownloadLimit: asset.DownloadLimit,
			ValidityDays:  asset.ValidityDays,
		}
	default:
		return ProductDTO{}, fmt.Errorf("unsupported product type %T", p)
	}

	return dto, nil
}

func toDomain(dto ProductDTO) (product.Product, error) {
	id := kernel.ID(dto.ID)
	info := product.Info{
		Name:        dto.Name,
		Description: dto.Description,
		Category:    dto.Category,
		Price:       dto.Price,
	}

	switch product.Kind(dto.Kind) {
	case product.KindPhysical:
		if dto.Physical == nil {
			return nil, fmt.Errorf("product %d: physical details are missing", dto.ID)
		}
		dims, err := product.NewDimensions(dto.Physical.Weight, dto.Physical.Length, dto.Physical.Width, dto.Physical.Height)
		if err != nil {
			return nil, err
		}
		return product.RestorePhysical(id, info, dto.CreatedAt, dto.Available, dims, dto.Physical.Stock)

	case product.KindDigital:
		if dto.Digital == nil {
			return nil, fmt.Errorf("product %d: digital details are missing", dto.ID)
		}
		return product.RestoreDigital(id, info, dto.CreatedAt, dto.Available, product.Asset{
			DownloadURL:   dto.Digital.DownloadURL,
			FileSizeMB:    dto.Digital.FileSizeMB,
			Format:        dto.Digital.Format,
			DownloadLimit: dto.Digital.DownloadLimit,
			ValidityDays:  dto.Digital.ValidityDays,
		})

	case product.UnknownKind:
	}

	return nil, fmt.Errorf("product %d: unknown kind %d", dto.ID, dto.Kind)
}

package product

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrDigitalIsNotConstructed = errors.New("digital product must be created via NewDigital or RestoreDigital")

// Asset describes the downloadable payload of a digital product.
type Asset struct {
	DownloadURL   string
	FileSizeMB    decimal.Decimal
	Format        string
	DownloadLimit int
	ValidityDays  int
}

func (a Asset) validate() error {
	var urlErr error
	if a.DownloadURL == "" {
		urlErr = errs.NewValueIsRequiredError("download url")
	} else if u, err := url.ParseRequestURI(a.DownloadURL); err != nil || u.Host == "" {
		urlErr = errs.NewValueIsInvalidErrorWithCause("download url", fmt.Errorf("%q is not an absolute url", a.DownloadURL))
	}

	var sizeErr, limitErr, validityErr error
	if a.FileSizeMB.IsNegative() {
		sizeErr = errs.NewValueIsInvalidErrorWithCause("file size", fmt.Errorf("%s is negative", a.FileSizeMB))
	}
	if a.DownloadLimit < 0 {
		limitErr = errs.NewValueIsInvalidErrorWithCause("download limit", fmt.Errorf("%d is negative", a.DownloadLimit))
	}
	if a.ValidityDays < 0 {
		validityErr = errs.NewValueIsInvalidErrorWithCause("validity days", fmt.Errorf("%d is negative", a.ValidityDays))
	}

	return errors.Join(urlErr, sizeErr, limitErr, validityErr)
}

// Digital is a downloadable catalog entry. It never ships and has no stock.
type Digital struct {
	entry

	asset Asset
}

// NewDigital creates an available digital product without identity.
func NewDigital(info Info, asset Asset, createdAt time.Time) (*Digital, error) {
	asset.DownloadURL = strings.TrimSpace(asset.DownloadURL)
	asset.Format = strings.TrimSpace(asset.Format)

	e, entryErr := newEntry(info, createdAt)
	if err := errors.Join(entryErr, asset.validate()); err != nil {
		return nil, err
	}

	return &Digital{
		entry: e,
		asset: asset,
	}, nil
}

// RestoreDigital rebuilds a stored digital product.
func RestoreDigital(id kernel.ID, info Info, createdAt time.Time, available bool, asset Asset) (*Digital, error) {
	e, entryErr := restoreEntry(id, info, createdAt, available)
	if err := errors.Join(entryErr, asset.validate()); err != nil {
		return nil, err
	}

	return &Digital{
		entry: e,
		asset: asset,
	}, nil
}

func (d *Digital) Kind() Kind {
	return KindDigital
}

func (d *Digital) Asset() Asset {
	return d.asset
}

// ShippingCost is always zero for downloads.
func (d *Digital) ShippingCost() decimal.Decimal {
	return decimal.Zero
}

// DownloadLink appends a freshness token to the stored download URL.
// Callers supply a new token for every link.
func (d *Digital) DownloadLink(token string) (string, error) {
	if token == "" {
		return "", errs.NewValueIsRequiredError("token")
	}

	sep := "?"
	if strings.Contains(d.asset.DownloadURL, "?") {
		sep = "&"
	}
	return d.asset.DownloadURL + sep + "token=" + url.QueryEscape(token), nil
}

func (d *Digital) Validate() error {
	if d == nil {
		return ErrDigitalIsNotConstructed
	}
	return d.entry.Validate()
}

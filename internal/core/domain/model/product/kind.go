package product

import (
	"fmt"
	"strings"

	"ecommerce/internal/pkg/errs"
)

// Kind names the catalog variant.
type Kind int

const (
	UnknownKind Kind = iota
	KindPhysical
	KindDigital
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:  "UNKNOWN",
		KindPhysical: "PHYSICAL",
		KindDigital:  "DIGITAL",
	}
}

// ParseKind accepts "physical" or "digital" in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PHYSICAL":
		return KindPhysical, nil
	case "DIGITAL":
		return KindDigital, nil
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a product kind", s))
}

func (k Kind) Validate() error {
	if k != KindPhysical && k != KindDigital {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a product kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}

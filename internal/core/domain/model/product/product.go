// Package product holds the read model of the external product catalog.
// The catalog owns products; this service only looks them up by id.
package product

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

type Product struct {
	id    kernel.ID
	name  string
	price decimal.Decimal

	guard guard.ConstructorGuard
}

// NewProduct builds an unsaved catalog entry.
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsOutOfRangeError("price", price.String(), "0", "unbounded")
	}

	return &Product{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func RestoreProduct(id kernel.ID, name string, price decimal.Decimal) (*Product, error) {
	p, err := NewProduct(name, price)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.ID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

// Price is informational catalog data; this service never computes with it.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Package catalog holds the Product entity. The ordering engine only reads
// products: the price at order creation and name/image for display.
package catalog

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Product is a catalog entry referenced by order items.
type Product struct {
	id             kernel.UUID
	sku            string
	name           string
	description    string
	imageURL       string
	price          kernel.Money
	stockQuantity  int
	active         bool
	specifications map[string]any
}

// NewProduct creates a product. Specifications may be nil.
func NewProduct(
	id kernel.UUID,
	sku string,
	name string,
	description string,
	imageURL string,
	price kernel.Money,
	stockQuantity int,
	active bool,
	specifications map[string]any,
) (*Product, error) {
	p := &Product{
		description:    description,
		imageURL:       imageURL,
		stockQuantity:  stockQuantity,
		active:         active,
		specifications: specifications,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSKU(sku),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	if p.specifications == nil {
		p.specifications = map[string]any{}
	}

	return p, nil
}

func (p *Product) ID() kernel.UUID { return p.id }
func (p *Product) SKU() string { return p.sku }
func (p *Product) Name() string { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) ImageURL() string { return p.imageURL }
func (p *Product) Price() kernel.Money { return p.price }
func (p *Product) StockQuantity() int { return p.stockQuantity }
func (p *Product) IsActive() bool { return p.active }
func (p *Product) Specifications() map[string]any { return p.specifications }

// ChangePrice updates the catalog price. Existing order items keep their snapshot.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = strings.TrimSpace(sku)
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = strings.TrimSpace(name)
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	p.price = price
	return nil
}

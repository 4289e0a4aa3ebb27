package inventory

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is an inventory item. All amounts are in the local currency.
//
// Products are values: the Store copies them in and out.
type Product struct {
	Name          string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	ShippingCost  decimal.Decimal
	// ID is a stable identifier, unlike the position in the list.
	// It is assigned by the Store when empty.
	ID string
}

// NewProduct creates a product without ID.
func NewProduct[T float64 | int | decimal.Decimal](name string, purchase, sale, shipping T) Product {
	return Product{
		Name:          name,
		PurchasePrice: newDecimal(purchase),
		SalePrice:     newDecimal(sale),
		ShippingCost:  newDecimal(shipping),
	}
}

// Validate checks the product invariants. Amounts are always finite, only the
// name remains to be checked.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Fields: []string{"name"}}
	}
	return nil
}

// Equal reports whether p and q hold the same name, amounts and ID.
func (p Product) Equal(q Product) bool {
	return p.Name == q.Name &&
		p.PurchasePrice.Equal(q.PurchasePrice) &&
		p.SalePrice.Equal(q.SalePrice) &&
		p.ShippingCost.Equal(q.ShippingCost) &&
		p.ID == q.ID
}

// MarshalJSON writes the product keys in a fixed order: name, purchasePrice,
// salePrice, shippingCost then id when set.
func (p Product) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", p.Name)
	w.Append("purchasePrice", p.PurchasePrice)
	w.Append("salePrice", p.SalePrice)
	w.Append("shippingCost", p.ShippingCost)
	w.Optional("id", p.ID)
	return w.MarshalJSON()
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var jp struct {
		Name          string          `json:"name"`
		PurchasePrice decimal.Decimal `json:"purchasePrice"`
		SalePrice     decimal.Decimal `json:"salePrice"`
		ShippingCost  decimal.Decimal `json:"shippingCost"`
		ID            string          `json:"id"`
	}
	if err := json.Unmarshal(data, &jp); err != nil {
		return err
	}
	*p = Product{
		Name:          jp.Name,
		PurchasePrice: jp.PurchasePrice,
		SalePrice:     jp.SalePrice,
		ShippingCost:  jp.ShippingCost,
		ID:            jp.ID,
	}
	return nil
}

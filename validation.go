package inventory

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Form is the raw text input of a product, as typed by the user.
type Form struct {
	Name          string `json:"name" validate:"required"`
	PurchasePrice string `json:"purchasePrice" validate:"required,numeric"`
	SalePrice     string `json:"salePrice" validate:"required,numeric"`
	ShippingCost  string `json:"shippingCost" validate:"required,numeric"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields with their persisted name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return v
}

// FormOf returns the form pre-filled with p, as the edit action does.
func FormOf(p Product) Form {
	return Form{
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice.String(),
		SalePrice:     p.SalePrice.String(),
		ShippingCost:  p.ShippingCost.String(),
	}
}

// Product validates the form and returns the product it describes, or a
// *ValidationError listing every empty or non-numeric field.
func (f Form) Product() (Product, error) {
	f = Form{
		Name:          strings.TrimSpace(f.Name),
		PurchasePrice: strings.TrimSpace(f.PurchasePrice),
		SalePrice:     strings.TrimSpace(f.SalePrice),
		ShippingCost:  strings.TrimSpace(f.ShippingCost),
	}
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Product{}, err
		}
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return Product{}, &ValidationError{Fields: fields}
	}

	// the numeric tag guarantees the parsing.
	return Product{
		Name:          f.Name,
		PurchasePrice: decimal.RequireFromString(f.PurchasePrice),
		SalePrice:     decimal.RequireFromString(f.SalePrice),
		ShippingCost:  decimal.RequireFromString(f.ShippingCost),
	}, nil
}

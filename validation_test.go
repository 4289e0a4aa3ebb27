package inventory

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestForm_Product(t *testing.T) {
	got, err := Form{Name: "  Mate ", PurchasePrice: "100", SalePrice: " 150.50", ShippingCost: "0"}.Product()
	if err != nil {
		t.Fatalf("Product() error = %v", err)
	}
	want := NewProduct("Mate", 100, 150.5, 0)
	if !got.Equal(want) {
		t.Errorf("Product() = %+v, want %+v", got, want)
	}
}

func TestForm_ProductInvalid(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want []string
	}{
		{"all empty", Form{}, []string{"name", "purchasePrice", "salePrice", "shippingCost"}},
		{"blank name", Form{Name: "  ", PurchasePrice: "1", SalePrice: "2", ShippingCost: "3"}, []string{"name"}},
		{"not a number", Form{Name: "A", PurchasePrice: "12abc", SalePrice: "2", ShippingCost: "three"}, []string{"purchasePrice", "shippingCost"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.form.Product()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Product() error = %v, want *ValidationError", err)
			}
			if diff := cmp.Diff(tt.want, verr.Fields); diff != "" {
				t.Errorf("Fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormOf(t *testing.T) {
	p := NewProduct("A", 100, 150.25, 10)
	got, err := FormOf(p).Product()
	if err != nil {
		t.Fatalf("FormOf(p).Product() error = %v", err)
	}
	if !got.Equal(p) {
		t.Errorf("FormOf(p).Product() = %+v, want %+v", got, p)
	}
}

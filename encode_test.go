package inventory

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeProducts(t *testing.T) {
	tests := []struct {
		name     string
		products []Product
		want     string
	}{
		{
			name:     "empty",
			products: nil,
			want:     "[]\n",
		},
		{
			name: "fixed key order",
			products: []Product{
				{Name: "A", PurchasePrice: newDecimal(100), SalePrice: newDecimal(150.5), ShippingCost: newDecimal(10), ID: "id-a"},
				NewProduct("B \"quoted\"", 0, 1, 2),
			},
			want: `[
{"name":"A","purchasePrice":100,"salePrice":150.5,"shippingCost":10,"id":"id-a"},
{"name":"B \"quoted\"","purchasePrice":0,"salePrice":1,"shippingCost":2}
]
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			if err := EncodeProducts(&b, tt.products); err != nil {
				t.Fatalf("EncodeProducts() error = %v", err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("EncodeProducts() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

// TestDecodeProducts_Browser reads the array the browser version stored.
func TestDecodeProducts_Browser(t *testing.T) {
	stored := `[{"name":"Mate","purchasePrice":1500,"salePrice":3200.5,"shippingCost":450},{"name":"Bombilla","purchasePrice":0,"salePrice":900,"shippingCost":0}]`

	got, err := DecodeProducts(strings.NewReader(stored))
	if err != nil {
		t.Fatalf("DecodeProducts() error = %v", err)
	}
	want := []Product{
		NewProduct("Mate", 1500, 3200.5, 450),
		NewProduct("Bombilla", 0, 900, 0),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeProducts() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDecodeStable(t *testing.T) {
	sample := `[
{"name":"A","purchasePrice":100,"salePrice":150,"shippingCost":10,"id":"1"},
{"name":"B","purchasePrice":0.25,"salePrice":1,"shippingCost":0,"id":"2"}
]
`
	products, err := DecodeProducts(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("DecodeProducts() error = %v", err)
	}
	var b strings.Builder
	if err := EncodeProducts(&b, products); err != nil {
		t.Fatalf("EncodeProducts() error = %v", err)
	}
	if got := b.String(); got != sample {
		t.Errorf("decode/encode sequence is not stable got \n%s\n want \n%s\n", got, sample)
	}
}

func TestDecodeProducts_Null(t *testing.T) {
	got, err := DecodeProducts(strings.NewReader("null"))
	if err != nil {
		t.Fatalf("DecodeProducts() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("DecodeProducts(null) = %v, want empty", got)
	}
}

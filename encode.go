package inventory

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains the encoding of the product list as stored in a slot.
//
// The format is a single JSON array of product objects. It is kept
// compatible with the array the browser version stored in its local
// storage: keys are "name", "purchasePrice", "salePrice", "shippingCost" and
// the optional "id". There is no schema version.
//
// Products are written one per line, so that a file slot stays readable and
// diff friendly.

// EncodeProducts writes the products to w in the slot format.
func EncodeProducts(w io.Writer, products []Product) error {
	if len(products) == 0 {
		_, err := io.WriteString(w, "[]\n")
		return err
	}
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	for i, p := range products {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("cannot marshal product %q: %w", p.Name, err)
		}
		if i < len(products)-1 {
			data = append(data, ',')
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("cannot write products: %w", err)
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

// DecodeProducts reads products in the slot format. A JSON null decodes to
// an empty list.
func DecodeProducts(r io.Reader) ([]Product, error) {
	var products []Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("cannot decode products: %w", err)
	}
	return products, nil
}

package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Filter selects the products to display.
//
// The zero Filter accepts every product.
type Filter struct {
	// Term keeps products whose name contains it, ignoring case.
	Term string
	// Where is a JSONPath filter expression evaluated on the stored product
	// object, e.g. `@.salePrice > 1000 && @.shippingCost == 0`.
	Where string
}

// Apply returns the indices of the accepted products, in order.
func (f Filter) Apply(products []Product) ([]int, error) {
	match, err := f.compile()
	if err != nil {
		return nil, err
	}
	indices := make([]int, 0, len(products))
	for i, p := range products {
		ok, err := match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

func (f Filter) compile() (func(Product) (bool, error), error) {
	term := strings.ToLower(f.Term)
	byName := func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Name), term)
	}
	if strings.TrimSpace(f.Where) == "" {
		return func(p Product) (bool, error) { return byName(p), nil }, nil
	}

	// the expression is applied to a single element array holding the
	// product, a product is accepted when the result is not empty.
	path := "$[?(" + f.Where + ")]"
	eval, err := jsonpath.New(path)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", f.Where, err)
	}
	ctx := context.Background()
	return func(p Product) (bool, error) {
		if !byName(p) {
			return false, nil
		}
		obj, err := jsonObject(p)
		if err != nil {
			return false, err
		}
		res, err := eval(ctx, []any{obj})
		if err != nil {
			return false, fmt.Errorf("cannot evaluate %q on %q: %w", f.Where, p.Name, err)
		}
		list, ok := res.([]any)
		return ok && len(list) > 0, nil
	}, nil
}

// jsonObject returns the product as a generic json object, as it is stored.
func jsonObject(p Product) (map[string]any, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	obj := make(map[string]any)
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

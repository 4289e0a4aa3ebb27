package inventory

// Row is a displayed product with its figures.
type Row struct {
	Index   int // position in the product list
	Product Product
	Figures Figures
}

// Cells returns the displayed values, in the column order of the table and
// of the CSV export.
func (r Row) Cells() []string {
	f := r.Figures
	return []string{
		r.Product.Name,
		f.Purchase.String(),
		f.Sale.String(),
		f.Shipping.String(),
		f.TotalLocal.String(),
		f.ProfitWithoutShipping.String(),
		f.ProfitWithShipping.String(),
		f.ProfitForeign.String(),
		f.PercentageProfit.String(),
	}
}

// View is what gets displayed: the rows accepted by a filter and the totals.
//
// Totals are computed over all products, the filter only hides rows.
type View struct {
	Rows   []Row
	Totals Totals
}

// NewView rebuilds the whole view from the product list.
func NewView(c *Calculator, products []Product, f Filter) (*View, error) {
	indices, err := f.Apply(products)
	if err != nil {
		return nil, err
	}
	v := &View{
		Rows:   make([]Row, 0, len(indices)),
		Totals: c.Aggregate(products),
	}
	for _, i := range indices {
		v.Rows = append(v.Rows, Row{
			Index:   i,
			Product: products[i],
			Figures: c.Calculate(products[i]),
		})
	}
	return v, nil
}

package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
)

// DefaultExportFile is the default name of the CSV export.
const DefaultExportFile = "productos.csv"

// ExportHeader is the header line of the CSV export.
var ExportHeader = []string{
	"Product",
	"Purchase Price",
	"Sale Price",
	"Shipping Cost",
	"Total (local)",
	"Profit w/o Shipping",
	"Profit w/ Shipping",
	"Profit (foreign)",
	"Profit %",
}

// ExportCSV writes the rows of the view as CSV.
//
// Values are the display strings, with currency symbols and separators:
// they are quoted whenever they contain a comma.
func ExportCSV(w io.Writer, v *View) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for _, r := range v.Rows {
		if err := cw.Write(r.Cells()); err != nil {
			return fmt.Errorf("cannot write csv row %d: %w", r.Index, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

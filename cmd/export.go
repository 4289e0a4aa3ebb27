package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
	filter inventory.Filter
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the displayed products as CSV" }
func (*exportCmd) Usage() string {
	return `inv export [-o <file>] [-q <term>] [-where <expr>]

  Exports the products, as displayed by "inv list" with the same filters,
  to a CSV file. Use "-o -" to write to the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", inventory.DefaultExportFile, "Output file, - for the standard output")
	filterFlags(f, &c.filter)
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}
	defer a.close()

	v, err := inventory.NewView(a.calc, a.store.Products(), c.filter)
	if err != nil {
		return fail(subcommands.ExitUsageError, "%v", err)
	}

	var w io.Writer = stdout
	if c.output != "-" {
		file, err := os.Create(c.output)
		if err != nil {
			return fail(subcommands.ExitFailure, "cannot create %q: %v", c.output, err)
		}
		defer file.Close()
		w = file
	}

	if err := inventory.ExportCSV(w, v); err != nil {
		return fail(subcommands.ExitFailure, "exporting to %q: %v", c.output, err)
	}
	if c.output != "-" {
		fmt.Fprintf(stderr, "Exported %d products to %s\n", len(v.Rows), c.output)
	}
	return subcommands.ExitSuccess
}

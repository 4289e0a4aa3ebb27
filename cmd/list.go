package cmd

import (
	"context"
	"flag"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

// filterFlags binds a product filter to flags.
func filterFlags(f *flag.FlagSet, filter *inventory.Filter) {
	f.StringVar(&filter.Term, "q", "", "Only show products whose name contains this term, case insensitive")
	f.StringVar(&filter.Where, "where", "", "Only show products matching this jsonpath expression, e.g. '@.salePrice > 1000'")
}

type listCmd struct {
	filter inventory.Filter
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the products with their profit" }
func (*listCmd) Usage() string {
	return `inv list [-q <term>] [-where <expr>]

  Displays the products with their profit, followed by the totals. Filters
  hide rows but the totals always include all the products.

Usage Examples:
$ inv list -q lamp
$ inv list -where '@.purchasePrice == 0'

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) { filterFlags(f, &c.filter) }

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}
	defer a.close()

	v, err := inventory.NewView(a.calc, a.store.Products(), c.filter)
	if err != nil {
		return fail(subcommands.ExitUsageError, "%v", err)
	}
	printMarkdown(renderer.Products(v))
	return subcommands.ExitSuccess
}

type totalsCmd struct{}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "display the total profit and sales" }
func (*totalsCmd) Usage() string {
	return `inv totals

  Displays the total profit, in both currencies, and the sales total.
`
}

func (*totalsCmd) SetFlags(f *flag.FlagSet) {}

func (*totalsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}
	defer a.close()

	printMarkdown(renderer.Totals(a.calc.Aggregate(a.store.Products())))
	return subcommands.ExitSuccess
}

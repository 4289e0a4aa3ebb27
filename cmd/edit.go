package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type editCmd struct {
	form inventory.Form
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a product, moving it to the end of the inventory" }
func (*editCmd) Usage() string {
	return `inv edit [-name <name>] [-buy <price>] [-sell <price>] [-ship <cost>] <product>

  Edits a product, given by its index or a prefix of its id. Fields not
  given keep their current value. A reference made only of digits is always
  an index: when an id starts with digits, give a prefix long enough to
  include a letter or a dash.

  The edited product is removed and added again: it moves to the end of the
  inventory and the following products shift down by one. It keeps its id.

Usage Examples:
$ inv edit -sell 180 3

`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) { formFlags(f, &c.form) }

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(subcommands.ExitUsageError, "edit expects exactly one product, got %d", f.NArg())
	}

	a, err := openApp(ctx)
	if err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}
	defer a.close()

	i, err := a.store.Lookup(f.Arg(0))
	if err != nil {
		return fail(subcommands.ExitUsageError, "%v", err)
	}
	old, _ := a.store.At(i)

	p, err := merge(inventory.FormOf(old), c.form).Product()
	if err != nil {
		return fail(subcommands.ExitUsageError, "%v", err)
	}

	a.showTotals()
	j, err := a.store.ReplaceAt(ctx, i, p)
	if err != nil {
		return storeFailure(err)
	}
	fmt.Fprintf(stderr, "Edited %q, #%d is now #%d\n", p.Name, i, j)
	return subcommands.ExitSuccess
}

// merge overrides the fields of base that are set in changes.
func merge(base, changes inventory.Form) inventory.Form {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.Name, changes.Name)
	set(&base.PurchasePrice, changes.PurchasePrice)
	set(&base.SalePrice, changes.SalePrice)
	set(&base.ShippingCost, changes.ShippingCost)
	return base
}

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

// formFlags binds the product form to flags.
func formFlags(f *flag.FlagSet, form *inventory.Form) {
	f.StringVar(&form.Name, "name", "", "Product name")
	f.StringVar(&form.PurchasePrice, "buy", "", "Purchase price, in the local currency")
	f.StringVar(&form.SalePrice, "sell", "", "Sale price, in the local currency")
	f.StringVar(&form.ShippingCost, "ship", "", "Shipping cost, in the local currency")
}

type addCmd struct {
	form inventory.Form
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a product to the inventory" }
func (*addCmd) Usage() string {
	return `inv add -name <name> -buy <price> -sell <price> -ship <cost>

  Adds a product at the end of the inventory. All amounts are in the local
  currency and all fields are required. Prints the totals afterward.

Usage Examples:
$ inv add -name "Lamp" -buy 100 -sell 150 -ship 10

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { formFlags(f, &c.form) }

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.form.Product()
	if err != nil {
		return fail(subcommands.ExitUsageError, "%v", err)
	}

	a, err := openApp(ctx)
	if err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}
	defer a.close()
	a.showTotals()

	i, err := a.store.Add(ctx, p)
	if err != nil {
		return storeFailure(err)
	}
	added, _ := a.store.At(i)
	fmt.Fprintf(stderr, "Added %q as #%d (id %s)\n", added.Name, i, added.ID)
	return subcommands.ExitSuccess
}

// storeFailure reports an error returned by a store mutation.
func storeFailure(err error) subcommands.ExitStatus {
	var perr *inventory.PersistenceError
	if errors.As(err, &perr) {
		return fail(subcommands.ExitFailure, "the change is not saved: %v", err)
	}
	return fail(subcommands.ExitUsageError, "%v", err)
}

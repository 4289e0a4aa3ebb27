package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a product from the inventory" }
func (*rmCmd) Usage() string {
	return `inv rm <product>

  Removes a product, given by its index or a prefix of its id. The
  following products shift down by one.

  A reference made only of digits is always an index: when an id starts
  with digits, give a prefix long enough to include a letter or a dash.

Usage Examples:
$ inv rm 2
$ inv rm 3f9a
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(subcommands.ExitUsageError, "rm expects exactly one product, got %d", f.NArg())
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
	p, _ := a.store.At(i)

	a.showTotals()
	if err := a.store.RemoveAt(ctx, i); err != nil {
		return storeFailure(err)
	}
	fmt.Fprintf(stderr, "Removed %q (#%d)\n", p.Name, i)
	return subcommands.ExitSuccess
}

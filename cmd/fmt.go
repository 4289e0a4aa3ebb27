package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the stored products into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `inv fmt

  Reads the stored products, assigns an id to products without one, and
  writes them back in the canonical JSON form.

  Other commands assign missing ids in memory only, they are stored by the
  next change or by this command.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}
	defer a.close()

	if err := a.store.Persist(ctx); err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}
	fmt.Fprintf(stderr, "Formatted %d products\n", a.store.Len())
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type convertCmd struct {
	to string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount with the exchange rate" }
func (*convertCmd) Usage() string {
	return `inv convert -to <currency> <amount>

  Converts a positive amount into the local or the foreign currency, using
  the configured exchange rate.

Usage Examples:
$ inv convert -to ars 10
$ inv convert -to usd 22700

`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Target currency, the local or the foreign one")
}

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(subcommands.ExitUsageError, "convert expects exactly one amount, got %d", f.NArg())
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		return fail(subcommands.ExitUsageError, "%q: %v", f.Arg(0), inventory.ErrInvalidAmount)
	}

	cfg, err := Config()
	if err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}
	calc, err := NewCalculator(cfg)
	if err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}

	to := c.to
	if to == "" {
		to = calc.Foreign()
	}
	m, err := calc.Convert(amount, to)
	if errors.Is(err, inventory.ErrInvalidAmount) {
		return fail(subcommands.ExitUsageError, "%q: %v", f.Arg(0), err)
	}
	if err != nil {
		return fail(subcommands.ExitUsageError, "%v", err)
	}
	fmt.Fprintln(stdout, m)
	return subcommands.ExitSuccess
}

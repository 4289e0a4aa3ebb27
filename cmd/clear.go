package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove all the products" }
func (*clearCmd) Usage() string {
	return `inv clear [-y]

  Removes all the products, after confirmation.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *clearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}
	defer a.close()

	n := a.store.Len()
	if n == 0 {
		fmt.Fprintln(stderr, "No products to remove.")
		return subcommands.ExitSuccess
	}
	if !c.yes && !confirm(fmt.Sprintf("Remove all %d products?", n)) {
		fmt.Fprintln(stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	if err := a.store.Clear(ctx); err != nil {
		return storeFailure(err)
	}
	fmt.Fprintf(stderr, "Removed %d products\n", n)
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on stdin, no is the default.
func confirm(question string) bool {
	fmt.Fprintf(stderr, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(stdin).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

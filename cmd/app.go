// Package cmd implements the inv command line application to track the
// profit of an inventory.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/inventory"
	"github.com/etnz/inventory/config"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Commands lists every inv subcommand by group.
var Commands = map[string][]subcommands.Command{
	"products": {&addCmd{}, &editCmd{}, &rmCmd{}, &clearCmd{}, &fmtCmd{}},
	"reports":  {&listCmd{}, &totalsCmd{}, &exportCmd{}, &convertCmd{}},
	"help":     {&topicCmd{}, &assistCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, group := range []string{"products", "reports", "help"} {
		for _, cmd := range Commands[group] {
			c.Register(cmd, group)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile  = flag.String("config", config.DefaultFile, "Path to the YAML configuration file")
	storePath   = flag.String("store", "", "Path to the products file, selects the file driver")
	redisURL    = flag.String("redis", "", "Redis URL, selects the redis driver")
	redisKey    = flag.String("key", "", "Redis key holding the products")
	rate        = flag.Float64("rate", 0, "Exchange rate, local units for one foreign unit")
	localCur    = flag.String("local", "", "Local currency, the one amounts are entered in")
	foreignCur  = flag.String("foreign", "", "Foreign currency")
	Verbose     = flag.Bool("v", false, "Verbose logging")
	plainOutput = flag.Bool("plain", false, "Print raw markdown instead of rendering it")
)

// replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin
)

// Config resolves the configuration from the config file, the environment
// and the global flags, in increasing priority.
func Config() (*config.Config, error) {
	return config.Resolve(*configFile, *configFile != config.DefaultFile, func(c *config.Config) {
		if *storePath != "" {
			c.Store.Driver = config.DriverFile
			c.Store.Path = *storePath
		}
		if *redisURL != "" {
			c.Store.Driver = config.DriverRedis
			c.Store.RedisURL = *redisURL
		}
		if *redisKey != "" {
			c.Store.Key = *redisKey
		}
		if *rate != 0 {
			c.Currency.Rate = *rate
		}
		if *localCur != "" {
			c.Currency.Local = *localCur
		}
		if *foreignCur != "" {
			c.Currency.Foreign = *foreignCur
		}
	})
}

// NewSlot returns the durable slot configured by cfg.
func NewSlot(cfg *config.Config) (inventory.Slot, error) {
	switch cfg.Store.Driver {
	case config.DriverRedis:
		return inventory.NewRedisSlot(cfg.Store.RedisURL, cfg.Store.Key)
	default:
		return inventory.FileSlot{Path: cfg.Store.Path}, nil
	}
}

// NewCalculator returns the calculator configured by cfg.
func NewCalculator(cfg *config.Config) (*inventory.Calculator, error) {
	return inventory.NewCalculator(cfg.ExchangeRate(), cfg.Currency.Local, cfg.Currency.Foreign)
}

// app is what most commands need: the loaded store and the calculator.
type app struct {
	store *inventory.Store
	calc  *inventory.Calculator
	close func()
}

// openApp resolves the configuration, opens the store and loads it.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := Config()
	if err != nil {
		return nil, err
	}
	calc, err := NewCalculator(cfg)
	if err != nil {
		return nil, err
	}
	slot, err := NewSlot(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	log.Debug().Str("slot", fmt.Sprint(slot)).Str("rate", calc.Rate().String()).Msg("opening store")

	closeSlot := func() {}
	if c, ok := slot.(io.Closer); ok {
		closeSlot = func() {
			if err := c.Close(); err != nil {
				log.Warn().Err(err).Msg("closing store")
			}
		}
	}
	store, err := inventory.Open(ctx, slot)
	if err != nil {
		closeSlot()
		return nil, err
	}
	return &app{store: store, calc: calc, close: closeSlot}, nil
}

// showTotals subscribes to the store to print the totals after every change.
func (a *app) showTotals() {
	a.store.Subscribe(func(products []inventory.Product) {
		printMarkdown(renderer.Totals(a.calc.Aggregate(products)))
	})
}

// printMarkdown prints md rendered for the terminal, or as is with -plain.
func printMarkdown(md string) {
	if *plainOutput {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		log.Debug().Err(err).Msg("cannot create markdown renderer")
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("cannot render markdown")
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// fail prints the error of a command and returns the matching exit status.
func fail(status subcommands.ExitStatus, format string, args ...any) subcommands.ExitStatus {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(stderr, "Error: "+msg)
	return status
}

package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/config"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv points the global flags to a fresh store file, in USD with 2 USD
// for 1 EUR, and captures the outputs.
type testEnv struct {
	path   string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	for _, name := range []string{config.EnvDriver, config.EnvStore, config.EnvRedisURL, config.EnvKey, config.EnvLocal, config.EnvForeign, config.EnvRate} {
		t.Setenv(name, "")
	}

	e := &testEnv{
		path:   filepath.Join(t.TempDir(), "products.json"),
		stdout: new(bytes.Buffer),
		stderr: new(bytes.Buffer),
	}

	oldStore, oldRate, oldLocal, oldForeign, oldPlain := *storePath, *rate, *localCur, *foreignCur, *plainOutput
	oldOut, oldErr, oldIn := stdout, stderr, stdin
	t.Cleanup(func() {
		*storePath, *rate, *localCur, *foreignCur, *plainOutput = oldStore, oldRate, oldLocal, oldForeign, oldPlain
		stdout, stderr, stdin = oldOut, oldErr, oldIn
	})

	*storePath, *rate, *localCur, *foreignCur, *plainOutput = e.path, 2, "USD", "EUR", true
	stdout, stderr, stdin = e.stdout, e.stderr, strings.NewReader("")
	return e
}

func (e *testEnv) run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return c.Execute(context.Background(), fs)
}

// stored decodes the products in the store file.
func (e *testEnv) stored(t *testing.T) []inventory.Product {
	t.Helper()
	f, err := os.Open(e.path)
	require.NoError(t, err)
	defer f.Close()
	products, err := inventory.DecodeProducts(f)
	require.NoError(t, err)
	return products
}

func (e *testEnv) add(t *testing.T, name, buy, sell, ship string) {
	t.Helper()
	status := e.run(t, &addCmd{}, "-name", name, "-buy", buy, "-sell", sell, "-ship", ship)
	require.Equal(t, subcommands.ExitSuccess, status, e.stderr.String())
}

func names(products []inventory.Product) []string {
	var ns []string
	for _, p := range products {
		ns = append(ns, p.Name)
	}
	return ns
}

func TestAdd(t *testing.T) {
	e := newTestEnv(t)
	e.add(t, "Lamp", "100", "150", "10")

	products := e.stored(t)
	require.Len(t, products, 1)
	assert.Equal(t, "Lamp", products[0].Name)
	assert.Equal(t, "150", products[0].SalePrice.String())
	assert.NotEmpty(t, products[0].ID)

	assert.Contains(t, e.stderr.String(), `Added "Lamp" as #0`)
	assert.Contains(t, e.stdout.String(), "- Total profit (USD): $60.00")
	assert.Contains(t, e.stdout.String(), "- Total profit (EUR): €30.00")
}

func TestAdd_Invalid(t *testing.T) {
	e := newTestEnv(t)
	status := e.run(t, &addCmd{}, "-name", "  ", "-buy", "abc", "-sell", "1", "-ship", "0")

	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, e.stderr.String(), "name")
	assert.Contains(t, e.stderr.String(), "purchasePrice")
	assert.NoFileExists(t, e.path)
}

func TestAdd_PersistFailure(t *testing.T) {
	e := newTestEnv(t)
	*storePath = filepath.Join(e.path, "missing", "products.json")

	status := e.run(t, &addCmd{}, "-name", "Lamp", "-buy", "1", "-sell", "2", "-ship", "0")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, e.stderr.String(), "not saved")
}

// A store that exists but cannot be read fails every command and is left
// untouched.
func TestUnreadableStore(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, os.Mkdir(e.path, 0755))

	status := e.run(t, &addCmd{}, "-name", "Lamp", "-buy", "1", "-sell", "2", "-ship", "0")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, e.stderr.String(), "products storage is unavailable")

	assert.Equal(t, subcommands.ExitFailure, e.run(t, &listCmd{}))
	assert.Equal(t, subcommands.ExitFailure, e.run(t, &fmtCmd{}))
	assert.DirExists(t, e.path)
}

func TestEdit_MovesToEnd(t *testing.T) {
	e := newTestEnv(t)
	e.add(t, "A", "1", "2", "0")
	e.add(t, "B", "1", "2", "0")
	e.add(t, "C", "1", "2", "0")
	id := e.stored(t)[0].ID

	status := e.run(t, &editCmd{}, "-sell", "5", "0")
	require.Equal(t, subcommands.ExitSuccess, status, e.stderr.String())

	products := e.stored(t)
	assert.Equal(t, []string{"B", "C", "A"}, names(products))
	assert.Equal(t, id, products[2].ID)
	assert.Equal(t, "5", products[2].SalePrice.String())
	assert.Equal(t, "1", products[2].PurchasePrice.String())
	assert.Contains(t, e.stderr.String(), "#0 is now #2")
}

func TestEdit_Errors(t *testing.T) {
	e := newTestEnv(t)
	e.add(t, "A", "1", "2", "0")

	assert.Equal(t, subcommands.ExitUsageError, e.run(t, &editCmd{}))
	assert.Equal(t, subcommands.ExitUsageError, e.run(t, &editCmd{}, "-sell", "1", "7"))
	assert.Equal(t, subcommands.ExitUsageError, e.run(t, &editCmd{}, "-sell", "x", "0"))
	assert.Equal(t, []string{"A"}, names(e.stored(t)))
}

func TestRm(t *testing.T) {
	e := newTestEnv(t)
	e.add(t, "A", "1", "2", "0")
	e.add(t, "B", "1", "2", "0")
	e.add(t, "C", "1", "2", "0")

	require.Equal(t, subcommands.ExitSuccess, e.run(t, &rmCmd{}, "1"))
	assert.Equal(t, []string{"A", "C"}, names(e.stored(t)))

	// the prefix includes the first dash so that it cannot be read as an index.
	id := e.stored(t)[1].ID
	require.Equal(t, subcommands.ExitSuccess, e.run(t, &rmCmd{}, id[:9]))
	assert.Equal(t, []string{"A"}, names(e.stored(t)))

	assert.Equal(t, subcommands.ExitUsageError, e.run(t, &rmCmd{}, "5"))
	assert.Equal(t, []string{"A"}, names(e.stored(t)))
}

func TestClear(t *testing.T) {
	e := newTestEnv(t)
	e.add(t, "A", "1", "2", "0")
	e.add(t, "B", "1", "2", "0")

	stdin = strings.NewReader("n\n")
	require.Equal(t, subcommands.ExitSuccess, e.run(t, &clearCmd{}))
	assert.Contains(t, e.stderr.String(), "Aborted.")
	assert.Len(t, e.stored(t), 2)

	stdin = strings.NewReader("y\n")
	require.Equal(t, subcommands.ExitSuccess, e.run(t, &clearCmd{}))
	assert.Empty(t, e.stored(t))
}

func TestClear_Yes(t *testing.T) {
	e := newTestEnv(t)
	e.add(t, "A", "1", "2", "0")

	require.Equal(t, subcommands.ExitSuccess, e.run(t, &clearCmd{}, "-y"))
	assert.Empty(t, e.stored(t))

	data, err := os.ReadFile(e.path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestList(t *testing.T) {
	e := newTestEnv(t)
	e.add(t, "Desk lamp", "100", "150", "10")
	e.add(t, "Chair", "0", "30", "0")
	e.stdout.Reset()

	require.Equal(t, subcommands.ExitSuccess, e.run(t, &listCmd{}, "-q", "LAMP"))
	out := e.stdout.String()
	assert.Contains(t, out, "Desk lamp")
	assert.NotContains(t, out, "Chair")
	assert.Contains(t, out, "1 of 2 products shown")
	assert.Contains(t, out, "- Total profit (USD): $90.00")

	e.stdout.Reset()
	require.Equal(t, subcommands.ExitSuccess, e.run(t, &listCmd{}, "-where", "@.purchasePrice == 0"))
	assert.Contains(t, e.stdout.String(), "Chair")
	assert.Contains(t, e.stdout.String(), inventory.NotAvailable)
	assert.NotContains(t, e.stdout.String(), "Desk lamp")

	assert.Equal(t, subcommands.ExitUsageError, e.run(t, &listCmd{}, "-where", "@.salePrice >"))
}

func TestTotals(t *testing.T) {
	e := newTestEnv(t)
	e.add(t, "A", "100", "150", "10")
	e.stdout.Reset()

	require.Equal(t, subcommands.ExitSuccess, e.run(t, &totalsCmd{}))
	assert.Contains(t, e.stdout.String(), "- Sales total (USD): $160.00")
	assert.NotContains(t, e.stdout.String(), "| A |")
}

func TestExport(t *testing.T) {
	e := newTestEnv(t)
	e.add(t, "A", "100", "150", "10")
	e.add(t, "B", "1", "2", "0")
	out := filepath.Join(t.TempDir(), "out.csv")

	require.Equal(t, subcommands.ExitSuccess, e.run(t, &exportCmd{}, "-o", out, "-q", "a"))
	data, err := os.ReadFile(out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(inventory.ExportHeader, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "A,"), lines[1])
	assert.Contains(t, e.stderr.String(), "Exported 1 products")
}

func TestExport_Stdout(t *testing.T) {
	e := newTestEnv(t)
	e.add(t, "A", "100", "150", "10")
	e.stdout.Reset()

	require.Equal(t, subcommands.ExitSuccess, e.run(t, &exportCmd{}, "-o", "-"))
	assert.True(t, strings.HasPrefix(e.stdout.String(), "Product,"))
}

func TestConvert(t *testing.T) {
	tests := []struct {
		args   []string
		status subcommands.ExitStatus
		want   string
	}{
		{args: []string{"-to", "eur", "10"}, want: "€5.00\n"},
		{args: []string{"-to", "usd", "10"}, want: "$20.00\n"},
		{args: []string{"10"}, want: "€5.00\n"},
		{args: []string{"-to", "usd", "0"}, status: subcommands.ExitUsageError},
		{args: []string{"-to", "usd", "-4"}, status: subcommands.ExitUsageError},
		{args: []string{"-to", "usd", "ten"}, status: subcommands.ExitUsageError},
		{args: []string{"-to", "gbp", "10"}, status: subcommands.ExitUsageError},
		{args: []string{"-to", "usd"}, status: subcommands.ExitUsageError},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			e := newTestEnv(t)
			status := e.run(t, &convertCmd{}, tt.args...)
			assert.Equal(t, tt.status, status, e.stderr.String())
			assert.Equal(t, tt.want, e.stdout.String())
		})
	}
}

func TestFmt(t *testing.T) {
	e := newTestEnv(t)
	legacy := `[{"shippingCost":0,"name":"A","salePrice":2.50,"purchasePrice":1}]`
	require.NoError(t, os.WriteFile(e.path, []byte(legacy), 0644))

	// reading commands leave the legacy file as is.
	require.Equal(t, subcommands.ExitSuccess, e.run(t, &listCmd{}))
	data, err := os.ReadFile(e.path)
	require.NoError(t, err)
	assert.Equal(t, legacy, string(data))

	require.Equal(t, subcommands.ExitSuccess, e.run(t, &fmtCmd{}))

	products := e.stored(t)
	require.Len(t, products, 1)
	data, err = os.ReadFile(e.path)
	require.NoError(t, err)
	assert.Equal(t, `[
{"name":"A","purchasePrice":1,"salePrice":2.5,"shippingCost":0,"id":"`+products[0].ID+`"}
]
`, string(data))
}

func TestTopic(t *testing.T) {
	e := newTestEnv(t)
	require.Equal(t, subcommands.ExitSuccess, e.run(t, &topicCmd{}, "convert"))
	assert.Contains(t, e.stdout.String(), "# Convert")

	assert.Equal(t, subcommands.ExitUsageError, e.run(t, &topicCmd{}, "unknown"))
}

func TestCompletion(t *testing.T) {
	c := completion()

	for _, cmds := range Commands {
		for _, cmd := range cmds {
			assert.Contains(t, c.Sub, cmd.Name())
		}
	}
	assert.Contains(t, c.Sub["add"].Flags, "name")
	assert.Contains(t, c.Sub["export"].Flags, "o")
	assert.Contains(t, c.Sub["list"].Flags, "where")
	assert.Contains(t, c.Flags, "store")
	assert.NotNil(t, c.Sub["topic"].Args)
}

func TestMerge(t *testing.T) {
	base := inventory.Form{Name: "A", PurchasePrice: "1", SalePrice: "2", ShippingCost: "3"}
	got := merge(base, inventory.Form{SalePrice: "9"})
	assert.Equal(t, inventory.Form{Name: "A", PurchasePrice: "1", SalePrice: "9", ShippingCost: "3"}, got)
}

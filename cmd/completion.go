package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/inventory/config"
	"github.com/etnz/inventory/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers the shell completion requests for the inv binary called
// name, then exits. It returns immediately when the shell is not asking for
// completion.
//
// Install it with: COMP_INSTALL=1 inv
func Complete(name string) {
	completion().Complete(name)
}

// completion describes the subcommands and their flags.
func completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	root.Flags["config"] = predict.Files("*.yaml")
	root.Flags["store"] = predict.Files("*.json")

	topics := predict.Set{"*"}
	if all, err := docs.GetAllTopics(); err == nil {
		topics = append(topics, all...)
	}

	for _, cmds := range Commands {
		for _, c := range cmds {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			sub := &complete.Command{Flags: flagPredictors(fs)}
			switch c.Name() {
			case "export":
				sub.Flags["o"] = predict.Files("*.csv")
			case "convert":
				sub.Flags["to"] = predict.Set{
					strings.ToLower(config.DefaultLocal),
					strings.ToLower(config.DefaultForeign),
				}
			case "topic":
				sub.Args = topics
			}
			root.Sub[c.Name()] = sub
		}
	}
	return root
}

// flagPredictors predicts nothing after boolean flags and something after
// the others.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

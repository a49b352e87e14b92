package cmd

import (
	"flag"

	"github.com/etnz/fintrack"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rs/zerolog"
)

// flagPredictors completes flag values that have a closed set of values, by flag name
// within a subcommand ("" for global flags).
var flagPredictors = map[string]map[string]complete.Predictor{
	"": {
		"ledger-file":    predict.Files("*.csv"),
		"portfolio-file": predict.Files("*.csv"),
		"log-level":      predict.Set{"debug", "info", "warn", "error"},
	},
	"add": {
		"k": predict.Set(names(fintrack.Kinds())),
		"c": predict.Set(names(fintrack.Categories())),
	},
	"edit": {
		"c": predict.Set(names(fintrack.Categories())),
	},
	"tx": {
		"k": predict.Set(names(fintrack.Kinds())),
	},
	"buy": {
		"k": predict.Set(names(fintrack.AssetKinds())),
	},
}

// Completion returns the shell completion of the commands and of the global flags of fs.
// Symbols are completed from the portfolio file.
func Completion(fs *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flags("", fs),
	}
	for _, c := range Commands() {
		sub := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(sub)
		root.Sub[c.Name()] = &complete.Command{Flags: flags(c.Name(), sub)}
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

func flags(command string, fs *flag.FlagSet) map[string]complete.Predictor {
	res := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case flagPredictors[command][f.Name] != nil:
			res[f.Name] = flagPredictors[command][f.Name]
		case f.Name == "s":
			res[f.Name] = complete.PredictFunc(predictSymbols)
		case isBool(f):
			res[f.Name] = predict.Nothing
		default:
			res[f.Name] = predict.Something
		}
	})
	return res
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// predictSymbols lists the distinct symbols of the portfolio file.
func predictSymbols(prefix string) []string {
	s, _ := fintrack.Open("", PortfolioFile(), fintrack.WithLogger(zerolog.Nop()))
	var res []string
	seen := make(map[string]bool)
	for _, h := range s.Holdings() {
		if !seen[h.Symbol()] {
			seen[h.Symbol()] = true
			res = append(res, h.Symbol())
		}
	}
	return res
}

// Package runner parses fsmctl's command-line flags, in the style of
// projectdiscovery-alterx's internal/runner package.
package runner

import (
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Options holds every fsmctl flag.
type Options struct {
	Alphabet   string
	Mode       string
	Pattern    string
	Minimize   string
	Check      goflags.StringSlice
	Render     string
	RankDir    string
	ConfigFile string
	Verbose    bool
	Silent     bool
}

// ParseFlags parses os.Args into an *Options, mirroring
// projectdiscovery-alterx/internal/runner.ParseFlags's group/flag shape.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Build, minimize, check, and render finite-state acceptors.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Alphabet, "alphabet", "a", "01", "alphabet symbols, one per character"),
		flagSet.StringVarP(&opts.Mode, "mode", "m", "startswith", "acceptor kind: startswith or endswith"),
		flagSet.StringVarP(&opts.Pattern, "pattern", "p", "", "prefix/suffix symbols, one per character"),
		flagSet.StringVar(&opts.ConfigFile, "config", "", "fsmctl YAML config file with named alphabets/patterns"),
	)

	flagSet.CreateGroup("transform", "Transform",
		flagSet.StringVar(&opts.Minimize, "minimize", "", "minimize the built acceptor: hopcroft, brzozowski, or empty for none"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringSliceVarP(&opts.Check, "check", "c", nil, "example strings to check against the acceptor (comma-separated)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Render, "render", "r", "", "write a Graphviz PNG of the acceptor to this path"),
		flagSet.StringVar(&opts.RankDir, "rankdir", "TB", "Graphviz rank direction: TB, BT, LR, or RL"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.Mode != "startswith" && opts.Mode != "endswith" {
		gologger.Fatal().Msgf("invalid mode: %s (must be 'startswith' or 'endswith')", opts.Mode)
	}

	return opts
}

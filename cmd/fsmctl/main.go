// Command fsmctl is a thin example driver over the core automaton package:
// it builds a prefix or suffix acceptor, optionally minimizes it, checks
// example strings against it, and optionally renders it. It contains no
// automaton algorithm of its own (projectdiscovery-alterx/cmd/alterx style).
package main

import (
	"os"

	"github.com/projectdiscovery/gologger"

	fsm "github.com/quint-t/Finite-State-Machine"
	"github.com/quint-t/Finite-State-Machine/internal/config"
	"github.com/quint-t/Finite-State-Machine/internal/runner"
	"github.com/quint-t/Finite-State-Machine/pattern"
	"github.com/quint-t/Finite-State-Machine/render"
)

func symbols(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

func main() {
	opts := runner.ParseFlags()

	alphabet := symbols(opts.Alphabet)
	patternSymbols := symbols(opts.Pattern)

	if opts.ConfigFile != "" {
		cfg, err := config.NewConfig(opts.ConfigFile)
		if err != nil {
			gologger.Fatal().Msgf("failed to read config %v got: %v", opts.ConfigFile, err)
		}
		if set, ok := cfg.Alphabets[opts.Alphabet]; ok {
			alphabet = set
		}
		if set, ok := cfg.Patterns[opts.Pattern]; ok {
			patternSymbols = set
		}
	}

	var a *fsm.Automaton
	var err error
	switch opts.Mode {
	case "startswith":
		a, err = pattern.Prefix(alphabet, patternSymbols)
	case "endswith":
		a, err = pattern.Suffix(alphabet, patternSymbols)
	}
	if err != nil {
		gologger.Fatal().Msgf("failed to build acceptor: %v", err)
	}

	switch opts.Minimize {
	case "hopcroft":
		a, err = fsm.MinimizeHopcroft(a, nil)
	case "brzozowski":
		a, err = fsm.MinimizeBrzozowski(a, nil)
	case "":
		// no minimization requested
	default:
		gologger.Fatal().Msgf("unknown minimizer: %s (must be 'hopcroft' or 'brzozowski')", opts.Minimize)
	}
	if err != nil {
		gologger.Fatal().Msgf("failed to minimize acceptor: %v", err)
	}

	gologger.Info().Msgf("built %d-state acceptor (%s, pattern=%q, alphabet=%q)",
		len(a.GetStates()), opts.Mode, opts.Pattern, opts.Alphabet)

	for _, example := range opts.Check {
		ok, err := fsm.Accepts(a, toSymbols(symbols(example)))
		if err != nil {
			gologger.Error().Msgf("check %q failed: %v", example, err)
			continue
		}
		gologger.Info().Msgf("%q: %v", example, ok)
	}

	if opts.Render != "" {
		f, err := os.Create(opts.Render)
		if err != nil {
			gologger.Fatal().Msgf("failed to open %v for writing: %v", opts.Render, err)
		}
		defer f.Close()
		if err := render.Render(a, f, opts.RankDir); err != nil {
			gologger.Fatal().Msgf("failed to render acceptor: %v", err)
		}
		gologger.Info().Msgf("wrote diagram to %s", opts.Render)
	}
}

func toSymbols(raw []string) []fsm.Symbol {
	out := make([]fsm.Symbol, len(raw))
	for i, r := range raw {
		out[i] = fsm.NewSymbol(r)
	}
	return out
}

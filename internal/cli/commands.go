package cli

import (
	"fmt"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/puneeth6796/alien-dictionary/internal/alphabet"
	"github.com/puneeth6796/alien-dictionary/internal/config"
	"github.com/puneeth6796/alien-dictionary/internal/errors"
	"github.com/puneeth6796/alien-dictionary/internal/output"
	"github.com/puneeth6796/alien-dictionary/internal/wordlist"
)

// Help text alignment widths.
const (
	helpCommandWidth  = 10
	helpFlagWidth     = 16
	defaultConfigHint = config.DefaultFileName
)

var out = output.New()

// applyOptionsToOutput configures the global writer from flags and config.
// Flags win over config; "auto" leaves terminal detection alone.
func applyOptionsToOutput(opts *GlobalOptions, cfg *config.Config) {
	out.SetQuiet(opts.Quiet)

	switch {
	case opts.NoColor:
		out.SetColor(false)
	case cfg.Output.Color == "always":
		out.SetColor(true)
	case cfg.Output.Color == "never":
		out.SetColor(false)
	}
}

// loadConfig resolves the effective configuration. A missing default config
// file is fine; a missing --config file is not.
func loadConfig(opts *GlobalOptions) (*config.Config, int) {
	path := opts.ConfigPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err != nil {
			return config.Default(), errors.ExitSuccess
		}
		path = config.DefaultFileName
	}

	cfg, warnings, err := config.LoadAndValidate(path)
	for _, w := range warnings {
		out.Warning("%s", w)
	}
	if err != nil {
		out.ErrorPrefix("%v", err)
		return nil, errors.ExitConfigError
	}
	return cfg, errors.ExitSuccess
}

// inputPath extracts the word-list path from command arguments, defaulting
// to stdin.
func inputPath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "-", nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("expected at most one file argument, got %d", len(args))
	}
}

// setup handles the shared command prologue: config, output options, and
// the word list itself.
func setup(args []string, opts *GlobalOptions) ([]string, int) {
	cfg, code := loadConfig(opts)
	if cfg == nil {
		return nil, code
	}
	applyOptionsToOutput(opts, cfg)

	path, err := inputPath(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return nil, errors.ExitConfigError
	}

	words, err := wordlist.ReadFile(path, cfg.Limits)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return nil, errors.GetExitCode(err)
	}
	return words, errors.ExitSuccess
}

// cmdInfer infers the character ordering and prints it.
func cmdInfer(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printInferUsage()
		return errors.ExitSuccess
	}

	words, code := setup(args, opts)
	if code != errors.ExitSuccess {
		return code
	}

	order, err := alphabet.Deduce(words)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	// An empty ordering for a word list that has characters means the
	// constraints are cyclic; for a character-free list it is the answer.
	if order == "" && hasCharacters(words) {
		out.NoOrdering()
		return errors.ExitSuccess
	}

	out.Ordering(order)
	return errors.ExitSuccess
}

// cmdEdges prints the derived precedence constraints, one per line.
func cmdEdges(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printEdgesUsage()
		return errors.ExitSuccess
	}

	words, code := setup(args, opts)
	if code != errors.ExitSuccess {
		return code
	}

	g, err := alphabet.Build(words)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	for _, e := range g.Edges() {
		out.Constraint(e[0], e[1])
	}
	return errors.ExitSuccess
}

// cmdValidate checks the word list and reports its shape without sorting.
func cmdValidate(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printValidateUsage()
		return errors.ExitSuccess
	}

	words, code := setup(args, opts)
	if code != errors.ExitSuccess {
		return code
	}

	g, err := alphabet.Build(words)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	out.ValidationSuccess("word list is valid: %d words, %d distinct characters, %d constraints",
		len(words), g.Len(), g.EdgeCount())
	return errors.ExitSuccess
}

func hasCharacters(words []string) bool {
	for _, w := range words {
		if len(w) > 0 {
			return true
		}
	}
	return false
}

// printReadCommandUsage prints help for a command that reads a word list.
func printReadCommandUsage(cmd, summary string, description []string) {
	w := output.New()

	w.HelpTitle(fmt.Sprintf("aliendict %s - %s", cmd, summary))

	w.HelpSection("Usage:")
	w.HelpUsage(fmt.Sprintf("aliendict %s [<file>] [options]", cmd))

	w.HelpSection("Description:")
	for _, line := range description {
		w.Println("  %s", line)
	}

	w.HelpSection("Arguments:")
	w.HelpFlag("[<file>]", "Word list JSON file (\"-\" or omitted: stdin)", helpFlagWidth)

	w.HelpSection("Examples:")
	titleCase := cases.Title(language.English)
	w.HelpExample(fmt.Sprintf("aliendict %s words.json", cmd), fmt.Sprintf("%s a word list from a file", titleCase.String(cmd)))
	w.HelpExample(fmt.Sprintf("cat words.json | aliendict %s", cmd), fmt.Sprintf("%s a word list from stdin", titleCase.String(cmd)))
	w.Println("")
}

func printInferUsage() {
	printReadCommandUsage("infer", "infer the character ordering", []string{
		"Derives precedence constraints from adjacent word comparisons and",
		"prints a character ordering satisfying all of them. When the",
		"constraints are cyclic no ordering exists and nothing is printed.",
	})
}

func printEdgesUsage() {
	printReadCommandUsage("edges", "print the derived constraints", []string{
		"Prints each precedence constraint derived from the word list as",
		"\"u -> v\", meaning u must precede v in the alphabet.",
	})
}

func printValidateUsage() {
	printReadCommandUsage("validate", "check a word list", []string{
		"Validates the word list document against the JSON schema, the",
		"configured input limits, and the prefix rule, without inferring",
		"an ordering.",
	})
}

// Package cli provides command-line interface functionality for aliendict.
package cli

import (
	"fmt"
	"strings"

	"github.com/puneeth6796/alien-dictionary/internal/errors"
	"github.com/puneeth6796/alien-dictionary/internal/output"
)

// Version is set at build time.
var Version = "dev"

// wantsHelp returns true if args contain -h or --help.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return errors.ExitSuccess
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return errors.ExitSuccess
	case "--version", "version":
		fmt.Printf("aliendict %s\n", Version)
		return errors.ExitSuccess
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	if len(remaining) == 0 {
		printUsage()
		return errors.ExitSuccess
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	// Inference over a word list: the main command.
	case "infer":
		return cmdInfer(cmdArgs, opts)

	// Inspection of the derived precedence constraints.
	case "edges":
		return cmdEdges(cmdArgs, opts)

	// Input checking without inference.
	case "validate":
		return cmdValidate(cmdArgs, opts)

	default:
		out.ErrorPrefix("unknown command %q", cmd)
		out.Hint("run 'aliendict help' for usage")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet      bool
	NoColor    bool
	ConfigPath string
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of the stdlib flag package because flags
// may appear anywhere in the argument list, not just before the command,
// and "-" must survive as a positional stdin marker.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "--no-color":
			opts.NoColor = true
			i++
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--config requires a value")
			}
			opts.ConfigPath = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--config="):
			opts.ConfigPath = strings.TrimPrefix(arg, "--config=")
			i++
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	return opts, remaining, nil
}

func printUsage() {
	w := output.New()

	w.HelpTitle("aliendict - infer a character ordering from a sorted word list")

	w.HelpSection("Usage:")
	w.HelpUsage("aliendict <command> [<file>] [options]")

	w.HelpSection("Commands:")
	w.HelpCommand("infer", "Infer the character ordering from a word list", helpCommandWidth)
	w.HelpCommand("edges", "Print the precedence constraints derived from a word list", helpCommandWidth)
	w.HelpCommand("validate", "Check a word list without running the inference", helpCommandWidth)
	w.HelpCommand("version", "Print the aliendict version", helpCommandWidth)
	w.HelpCommand("help", "Show this help", helpCommandWidth)

	w.HelpSection("Input:")
	w.Println("  The word list is a JSON array of strings, read from <file> or from")
	w.Println("  stdin when <file> is omitted or given as \"-\". Words are assumed to")
	w.Println("  be sorted lexicographically under the unknown alphabet.")

	w.HelpSection("Global Options:")
	w.HelpFlag("-q, --quiet", "Minimal output (result and errors only)", helpFlagWidth)
	w.HelpFlag("--no-color", "Disable colored output", helpFlagWidth)
	w.HelpFlag("--config <path>", "Config file (default: ./"+defaultConfigHint+")", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidth)

	w.HelpSection("Examples:")
	w.HelpExample("aliendict infer words.json", "Print the inferred ordering")
	w.HelpExample("echo '[\"wrt\",\"wrf\",\"er\",\"ett\",\"rftt\"]' | aliendict infer", "Infer from stdin")
	w.HelpExample("aliendict edges words.json", "Show the derived constraints")
	w.Println("")
}

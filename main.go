package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mcncl/jsondom/internal/config"
	"github.com/mcncl/jsondom/internal/errors"
	"github.com/mcncl/jsondom/internal/model"
	"github.com/mcncl/jsondom/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Check       bool   `help:"Validate the input without writing the normalized document." short:"c"`
	Config      string `help:"Path to a config file. Defaults to .jsondom.yaml in the working or home directory." type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	cliParser := kong.Must(&CLI,
		kong.Name("jsondom"),
		kong.Description("A tool to validate JSON and normalize it to its compact form"),
		kong.UsageOnError(),
	)

	// No arguments and an interactive terminal means interactive mode.
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := cliParser.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsondom version %s\n", Version)
		return
	}

	setupLogging(CLI.Debug)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsondom --help\n")
		os.Exit(1)
	}
}

// setupLogging routes slog to stderr, at debug level when requested.
func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// run executes the main program logic
func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.NewInputError("failed to load configuration", err)
	}

	// 1. Parse JSON input
	value, err := parseInput()
	if err != nil {
		return err
	}
	slog.Debug("parsed input", "type", value.Type().String())

	// 2. Apply configured strictness checks
	if err := checkStrict(value, &cfg.Strict); err != nil {
		return err
	}

	if CLI.Check {
		fmt.Fprintln(os.Stderr, "Input is valid JSON")
		return nil
	}

	// 3. Write the compact normalized form
	out := value.String()
	if cfg.Output.TrailingNewline {
		out += "\n"
	}
	return writeOutput(out)
}

func loadConfig() (*config.Config, error) {
	if CLI.Config != "" {
		return config.LoadConfigFromFile(CLI.Config)
	}
	return config.LoadConfig()
}

// checkStrict walks the parsed document and rejects the constructs the
// parser deliberately lets through when the configuration asks for it.
func checkStrict(v model.Value, strict *config.StrictConfig) error {
	if !strict.RejectUnknownLiterals && !strict.RejectDuplicateKeys {
		return nil
	}
	switch v.Type() {
	case model.TypeUnknownLiteral:
		if strict.RejectUnknownLiterals {
			text, _ := v.Text()
			return errors.NewParsingError(
				fmt.Sprintf("unknown literal %q rejected by strict mode", text),
				errors.ErrInvalidJSON,
			)
		}
	case model.TypeArray:
		arr := v.Array()
		for i := 0; i < arr.Len(); i++ {
			if err := checkStrict(arr.At(i), strict); err != nil {
				return err
			}
		}
	case model.TypeObject:
		obj := v.Object()
		seen := make(map[string]bool, obj.Len())
		for _, p := range obj.Properties() {
			if strict.RejectDuplicateKeys {
				if seen[p.Name()] {
					return errors.NewParsingError(
						fmt.Sprintf("duplicate object key %q rejected by strict mode", p.Name()),
						errors.ErrInvalidJSON,
					)
				}
				seen[p.Name()] = true
			}
			if err := checkStrict(p.Value(), strict); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseInput reads JSON from file or stdin
func parseInput() (model.Value, error) {
	if CLI.Input != "" {
		return parser.ParseFile(CLI.Input)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return model.Undefined(), errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return model.Undefined(), errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return model.Undefined(), errors.NewInputError("failed to read from stdin", err)
	}
	if len(jsonData) == 0 {
		return model.Undefined(), errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes the normalized document to file or stdout
func writeOutput(out string) error {
	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, []byte(out), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Normalized JSON written to %s\n", CLI.Output)
		return nil
	}

	if _, err := fmt.Print(out); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste
// JSON and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (model.Value, error) {
	fmt.Fprintln(os.Stderr, "jsondom Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return model.Undefined(), errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return model.Undefined(), errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}

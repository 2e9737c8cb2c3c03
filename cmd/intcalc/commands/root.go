package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/l3aro/intcalc/internal/config"
	"github.com/l3aro/intcalc/internal/log"
	"github.com/l3aro/intcalc/pkg/calcerr"
	"github.com/l3aro/intcalc/pkg/formatter"
	"github.com/l3aro/intcalc/pkg/intmath"
	"github.com/spf13/cobra"
)

// Exit codes returned by Execute.
const (
	ExitOK               = 0
	ExitFailure          = 1
	ExitComputationInput = 2
	ExitFormattingInput  = 3
)

// Version is stamped at build time with -ldflags "-X .../commands.Version=...".
var Version = "dev"

// app carries the state shared by subcommands for one invocation.
type app struct {
	logger *log.DefaultLogger
	cfg    *config.Config

	configPath string
	format     string
	verbose    bool
	jsonLog    bool
}

// NewRootCmd builds the intcalc command tree. Records go to logger, which
// is redirected to the command's stderr once flags are parsed.
func NewRootCmd(logger *log.DefaultLogger) *cobra.Command {
	if logger == nil {
		logger = log.Default()
	}
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "intcalc",
		Short: "intcalc - bounded integer arithmetic with XML results",
		Long: `intcalc runs small integer operations and renders their results.

Commands:
  divisors    Signed divisors of a non-prime integer in [-10000, 10000]
  factorial   Factorial of an integer in [0, 12]
  primes      Primes among up to 500 integers, as <primeNumbers amount="N">
  format      Render integers under a named root element
  init        Create a configuration file interactively
  config      Print the effective configuration

Negative numbers go after "--", for example: intcalc divisors -- -8`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.Version = Version
	root.SetVersionTemplate(`intcalc version {{.Version}}
`)

	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "Output format ("+strings.Join(formatter.Formats(), ", ")+")")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (default: ./.intcalc/config.yaml, then ~/.intcalc/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose logging")
	root.PersistentFlags().BoolVar(&a.jsonLog, "json-log", false, "Write log records as JSON")

	root.AddCommand(newDivisorsCmd(a))
	root.AddCommand(newFactorialCmd(a))
	root.AddCommand(newPrimesCmd(a))
	root.AddCommand(newFormatCmd(a))
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}

// setup loads configuration and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger.SetOutput(cmd.ErrOrStderr())

	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFromFile(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if a.format != "" {
		cfg.Format = strings.ToLower(a.format)
	}
	if a.jsonLog {
		cfg.LogJSON = true
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.logger.SetLevel(cfg.Level())
	a.logger.SetJSONOutput(cfg.LogJSON)
	a.cfg = cfg

	a.logger.Debug("config loaded", "format", cfg.Format, "declaration", cfg.XMLDeclaration)
	return nil
}

// calculator returns a Calculator whose XML output follows the config.
func (a *app) calculator() *intmath.Calculator {
	return intmath.New(formatter.NewXML(a.cfg.FormatterOptions()))
}

// emit writes r in the configured format.
func (a *app) emit(w io.Writer, r formatter.Result) error {
	return formatter.Encode(a.cfg.Format, w, r, a.cfg.FormatterOptions())
}

// fail logs err with its classification and returns it unchanged.
func (a *app) fail(op string, err error) error {
	kind, _ := calcerr.KindOf(err)
	reason, _ := calcerr.ReasonOf(err)
	a.logger.Warn("operation failed", "op", op, "kind", kind, "reason", reason, "error", err)
	return err
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	logger := log.Default()
	root := NewRootCmd(logger)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	fmt.Fprintln(stderr, "Error:", err)
	return ExitCode(err)
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, calcerr.ErrComputationInput):
		return ExitComputationInput
	case errors.Is(err, calcerr.ErrFormattingInput):
		return ExitFormattingInput
	default:
		return ExitFailure
	}
}

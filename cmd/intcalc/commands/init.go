package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/l3aro/intcalc/internal/config"
	"github.com/l3aro/intcalc/pkg/formatter"
	"github.com/spf13/cobra"
)

// promptConfig fills cfg from interactive prompts. Tests replace it.
var promptConfig = runInitForm

func newInitCmd(a *app) *cobra.Command {
	var (
		global bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize intcalc configuration interactively",
		Long: `Guides you through the output and logging settings and writes them to
./.intcalc/config.yaml (or ~/.intcalc/config.yaml with --global).`,
		Args: cobra.NoArgs,
		// init must work even when the existing config is broken.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger.SetOutput(cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ProjectConfigFilePath()
			if global {
				path = config.GlobalConfigFilePath()
			}
			if a.configPath != "" {
				path = a.configPath
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}

			cfg := config.DefaultConfig()
			if err := promptConfig(cfg); err != nil {
				return fmt.Errorf("interactive prompt failed: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.Save(path); err != nil {
				return err
			}

			a.logger.Debug("config written", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Write the global config (~/.intcalc/config.yaml)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func runInitForm(cfg *config.Config) error {
	formatOptions := make([]huh.Option[string], 0, len(formatter.Formats()))
	for _, f := range formatter.Formats() {
		formatOptions = append(formatOptions, huh.NewOption(f, f))
	}

	indent := cfg.XMLIndent != ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Description("Encoding used for divisors, factorial and primes results").
				Options(formatOptions...).
				Value(&cfg.Format),
			huh.NewConfirm().
				Title("XML declaration").
				Description("Start XML output with <?xml version=\"1.0\" encoding=\"UTF-8\"?>").
				Affirmative("Yes").
				Negative("No").
				Value(&cfg.XMLDeclaration),
			huh.NewConfirm().
				Title("Indent XML and JSON output?").
				Affirmative("Two spaces").
				Negative("Single line").
				Value(&indent),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("Errors only", "error"),
					huh.NewOption("Warnings", "warn"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Debug", "debug"),
				).
				Value(&cfg.LogLevel),
			huh.NewConfirm().
				Title("Write logs as JSON?").
				Value(&cfg.LogJSON),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	cfg.XMLIndent = ""
	if indent {
		cfg.XMLIndent = "  "
	}
	return nil
}

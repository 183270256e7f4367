package cli

import (
	"fmt"
	"log/slog"

	"github.com/kcaldas/devconsole/cmd/tui"
	"github.com/kcaldas/devconsole/internal/di"
	"github.com/kcaldas/devconsole/pkg/config"
	"github.com/kcaldas/devconsole/pkg/logging"
	"github.com/kcaldas/devconsole/pkg/version"
	"github.com/spf13/cobra"
)

// debugLogName is the temp-dir log file the terminal host writes with
// --verbose when no debug file is configured.
const debugLogName = "devconsole-debug.log"

// rootOptions holds the flags shared by every command and the configuration
// they resolve to.
type rootOptions struct {
	verbose    bool
	quiet      bool
	open       bool
	configPath string
	outputMode string

	cfg config.Config
}

// stdinIsPiped is replaced in tests.
var stdinIsPiped = hasStdinInput

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

// NewRootCmd builds the devconsole command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "devconsole",
		Short: "In-game developer console",
		Long: `devconsole is a drop-down developer console for games and tools.

With a terminal it starts a host screen where the console toggles open with
the backquote key. With piped input it runs every line as a console command
and prints the console output.`,
		Version:       version.GetInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if stdinIsPiped() {
				opts.configureLogging(cmd, false)
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				return runBatch(cmd, opts.cfg, lines)
			}
			opts.configureLogging(cmd, true)
			return runTUI(opts.cfg)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug level)")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "quiet output (errors only)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultConfigPath, "path to the YAML configuration file")
	cmd.PersistentFlags().BoolVar(&opts.open, "open", false, "start with the console open")
	cmd.Flags().StringVar(&opts.outputMode, "output-mode", "", "terminal color mode (true, 256 or normal)")

	cmd.AddCommand(newRunCmd(opts))
	return cmd
}

// load resolves the configuration and applies flag overrides.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := di.InitializeConfig(config.NewManager(config.WithConfigPath(o.configPath)))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("open") {
		cfg.StartOpen = o.open
	}
	if o.outputMode != "" {
		cfg.OutputMode = o.outputMode
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --output-mode: %w", err)
		}
	}
	o.cfg = cfg
	return nil
}

// logLevel picks the level from the flags, falling back to the configured one.
func (o *rootOptions) logLevel() slog.Level {
	switch {
	case o.quiet:
		return slog.LevelError
	case o.verbose:
		return slog.LevelDebug
	default:
		return logging.ParseLevel(o.cfg.DebugLevel, slog.LevelInfo)
	}
}

// configureLogging installs the global logger. The terminal host owns the
// screen, so it logs to a file or nowhere.
func (o *rootOptions) configureLogging(cmd *cobra.Command, interactive bool) {
	var logger logging.Logger
	switch {
	case interactive && o.cfg.DebugFile != "":
		logger = logging.NewFileLogger(o.cfg.DebugFile, o.logLevel())
	case interactive && o.verbose:
		logger = logging.NewFileLoggerFromEnv(debugLogName)
		logger.SetLevel(slog.LevelDebug)
	case interactive:
		logger = logging.NewDisabledLogger()
	default:
		logger = logging.NewLogger(logging.Config{
			Level:  o.logLevel(),
			Format: logging.FormatText,
			Output: cmd.ErrOrStderr(),
		})
	}
	logging.SetGlobalLogger(logger)
}

func runTUI(cfg config.Config) error {
	app, err := tui.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to start console host: %w", err)
	}
	defer app.Close()

	if err := app.Session().MergeModule(cliCommands(app.Session())); err != nil {
		return err
	}
	return app.Run()
}

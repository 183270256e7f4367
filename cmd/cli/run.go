package cli

import (
	"fmt"
	"io"

	"github.com/kcaldas/devconsole/internal/di"
	"github.com/kcaldas/devconsole/pkg/config"
	"github.com/kcaldas/devconsole/pkg/console"
	"github.com/kcaldas/devconsole/pkg/version"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <line>...",
		Short: "Run console command lines and print the output",
		Long: `Run submits each argument to a fresh console as if it had been typed,
then prints what the console printed.`,
		Example: `  devconsole run help
  devconsole run "echo hello" history`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configureLogging(cmd, false)
			return runBatch(cmd, opts.cfg, args)
		},
	}
}

// writerSink streams console output to a writer. Clear has nothing to undo.
type writerSink struct {
	w io.Writer
}

func (s writerSink) AppendLine(line string) { fmt.Fprintln(s.w, line) }
func (s writerSink) Clear()                 {}

// runBatch submits lines to a new session and fails if any of them failed.
func runBatch(cmd *cobra.Command, cfg config.Config, lines []string) error {
	cfg.Banner = nil
	session, err := di.InitializeSession(cfg, nil, writerSink{w: cmd.OutOrStdout()})
	if err != nil {
		return fmt.Errorf("failed to initialize console: %w", err)
	}
	if err := session.MergeModule(cliCommands(session)); err != nil {
		return err
	}

	failed, total := 0, 0
	for _, line := range lines {
		outcome := session.Submit(line)
		if outcome.Kind == console.OutcomeSkipped {
			continue
		}
		total++
		if outcome.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d commands failed", failed, total)
	}
	return nil
}

// cliCommands returns the commands the binary adds to session.
func cliCommands(session *console.Session) *console.Module {
	return console.NewModule("cli", "devconsole binary commands",
		console.ModuleCommand{
			Name:        "version",
			Description: "prints the devconsole build information",
			Handler: func(args []string) error {
				session.Print(version.GetInfo().String())
				return nil
			},
		},
	)
}

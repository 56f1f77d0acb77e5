package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MyelinBots/catmanager-go/config"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the catmanager CLI. Without a subcommand it opens the
// terminal UI.
func NewRootCommand() *cobra.Command {
	var configFile string
	load := func() (config.Config, error) {
		return config.Load(configFile)
	}

	root := &cobra.Command{
		Use:   "catmanager",
		Short: "Run a cat shelter in the terminal or on IRC",
		Long: `catmanager keeps a shelter of simulated cats. Feed them, play with them,
put them to bed and watch them grow old.

  catmanager            Open the terminal UI
  catmanager irc        Run the shelter as an IRC bot with an HTTP API
  catmanager migrate    Apply the caretaker database migrations`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigFile, "config file")

	root.AddCommand(newTUICommand(load), newIRCCommand(load), newMigrateCommand(load))
	return root
}

// Execute runs the CLI until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		return fmt.Errorf("catmanager: %w", err)
	}
	return nil
}

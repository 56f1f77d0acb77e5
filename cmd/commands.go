package cmd

import (
	"context"
	"fmt"
	"os/user"

	"github.com/MyelinBots/catmanager-go/config"
	"github.com/MyelinBots/catmanager-go/internal/bot"
	"github.com/MyelinBots/catmanager-go/internal/db"
	"github.com/MyelinBots/catmanager-go/internal/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

type loader func() (config.Config, error)

func newTUICommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}
}

func newIRCCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "irc",
		Short: "Run the shelter as an IRC bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return bot.StartBot(cmd.Context(), cfg)
		},
	}
}

func newMigrateCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the caretaker database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			database, err := db.NewDatabase(cfg.DBConfig)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := database.Migrate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied to %s\n", cfg.DBConfig.DataBase)
			return nil
		},
	}
}

func runTUI(ctx context.Context, cfg config.Config) error {
	shelter, err := bot.NewShelter(cfg)
	if err != nil {
		return err
	}
	defer shelter.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	player := "player"
	if u, err := user.Current(); err == nil && u.Username != "" {
		player = u.Username
	}

	app := tui.NewApp(tui.Options{
		Screen:       screen,
		Manager:      shelter.Manager("local", "tui", nil),
		Roster:       shelter.Roster,
		TickInterval: cfg.ShelterConfig.TickInterval(),
		Player:       player,
	})
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

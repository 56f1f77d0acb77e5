package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MyelinBots/catmanager-go/config"
	"github.com/MyelinBots/catmanager-go/internal/bot"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()

	for _, name := range []string{"tui", "irc", "migrate"} {
		c, _, err := root.Find([]string{name})
		if err != nil || c.Name() != name {
			t.Errorf("expected subcommand %s, got %v %v", name, c, err)
		}
	}

	flag := root.PersistentFlags().Lookup("config")
	if flag == nil || flag.DefValue != config.DefaultConfigFile {
		t.Errorf("unexpected config flag %+v", flag)
	}
}

func TestIRCCommand_RequiresChannels(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(file, []byte(`{"IRCConfig": {"ChannelsString": ""}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHANNELS", "")

	root := NewRootCommand()
	root.SetArgs([]string{"irc", "--config", file})
	root.SetOut(new(discard))
	root.SetErr(new(discard))

	err := root.ExecuteContext(context.Background())
	if !errors.Is(err, bot.ErrNoChannels) {
		t.Errorf("expected ErrNoChannels, got %v", err)
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"unexpected"})
	root.SetOut(new(discard))
	root.SetErr(new(discard))

	if err := root.Execute(); err == nil {
		t.Error("expected an error for a stray argument")
	}
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }

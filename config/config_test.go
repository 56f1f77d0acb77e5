package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppConfig.APPName != "catmanager" {
		t.Errorf("expected default app name, got %q", cfg.AppConfig.APPName)
	}
	if cfg.ShelterConfig.MaxCats != 40 || cfg.ShelterConfig.StartingCats != 2 {
		t.Errorf("unexpected shelter defaults %+v", cfg.ShelterConfig)
	}
	if cfg.ShelterConfig.TickInterval() != 10*time.Second {
		t.Errorf("expected 10s tick, got %s", cfg.ShelterConfig.TickInterval())
	}
	if cfg.DBConfig.Enabled {
		t.Error("database should be disabled by default")
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	body := `{"ShelterConfig": {"MaxCats": 12}, "IRCConfig": {"ChannelsString": "#cats, #kittens,"}}`
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TICK_SECONDS", "3")

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ShelterConfig.MaxCats != 12 {
		t.Errorf("expected MaxCats from file, got %d", cfg.ShelterConfig.MaxCats)
	}
	if cfg.ShelterConfig.TickInterval() != 3*time.Second {
		t.Errorf("expected env override to 3s, got %s", cfg.ShelterConfig.TickInterval())
	}
	if want := []string{"#cats", "#kittens"}; !slices.Equal(cfg.IRCConfig.Channels, want) {
		t.Errorf("channels = %v, want %v", cfg.IRCConfig.Channels, want)
	}
}

func TestTickInterval_Fallback(t *testing.T) {
	if got := (ShelterConfig{TickSeconds: 0}).TickInterval(); got != 10*time.Second {
		t.Errorf("expected fallback 10s, got %s", got)
	}
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{Host: "db", User: "u", Password: "p", DataBase: "cats", Port: 5433, SSLMode: "disable"}

	if dsn := c.DSN(); !strings.Contains(dsn, "host=db") || !strings.Contains(dsn, "port=5433") {
		t.Errorf("unexpected dsn %q", dsn)
	}
	if url := c.URL(); url != "postgres://u:p@db:5433/cats?sslmode=disable" {
		t.Errorf("unexpected url %q", url)
	}
}

func TestAllowedOrigins(t *testing.T) {
	got := AppConfig{CORSOrigins: "https://a.example, https://b.example"}.AllowedOrigins()
	if want := []string{"https://a.example", "https://b.example"}; !slices.Equal(got, want) {
		t.Errorf("origins = %v, want %v", got, want)
	}
	if got := (AppConfig{}).AllowedOrigins(); len(got) != 0 {
		t.Errorf("expected no origins, got %v", got)
	}
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jinzhu/configor"
	"github.com/joho/godotenv"
)

const DefaultConfigFile = "config/config.dev.json"

type Config struct {
	AppConfig     AppConfig     `env:"APPCONFIG"`
	IRCConfig     IRCConfig     `env:"IRCCONFIG"`
	DBConfig      DBConfig      `env:"DBCONFIG"`
	ShelterConfig ShelterConfig `env:"SHELTERCONFIG"`
}

type AppConfig struct {
	APPName string `default:"catmanager"`
	Version string `default:"x.x.x" env:"VERSION"`
	Port    int    `default:"8080" env:"APP_PORT"`
	// CORSOrigins is a comma separated allow list for the HTTP API.
	CORSOrigins string `default:"*" env:"CORS_ORIGINS"`
}

func (c AppConfig) AllowedOrigins() []string {
	return splitChannels(c.CORSOrigins)
}

type IRCConfig struct {
	Host             string `env:"HOST"`
	Port             int    `env:"PORT" default:"6667"`
	SSL              bool   `env:"SSL"`
	Nick             string `env:"NICK" default:"catmanager"`
	ChannelsString   string `env:"CHANNELS"`
	Channels         []string
	Network          string  `env:"NETWORK"`
	NickservCommand  string  `env:"NICKSERV_COMMAND" default:"PRIVMSG NickServ IDENTIFY %s"`
	NickservPassword string  `env:"NICKSERV_PASSWORD" default:""`
	CommandsPerSec   float64 `env:"COMMANDS_PER_SEC" default:"1"`
	CommandBurst     int     `env:"COMMAND_BURST" default:"3"`
}

type DBConfig struct {
	Enabled  bool   `default:"false" env:"DBENABLED"`
	Host     string `default:"localhost" env:"DBHOST"`
	DataBase string `default:"catmanager" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `required:"true" env:"DBPASSWORD" default:"mysecretpassword"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`
}

// ShelterConfig tunes the simulation itself.
type ShelterConfig struct {
	StartingCats  int    `default:"2" env:"STARTING_CATS"`
	MaxCats       int    `default:"40" env:"MAX_CATS"`
	TickSeconds   int    `default:"10" env:"TICK_SECONDS"`
	PantryRations int    `default:"20" env:"PANTRY_RATIONS"`
	AvatarDir     string `default:"assets/cats" env:"AVATAR_DIR"`
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.DataBase, c.Port, c.SSLMode)
}

// URL is the form golang-migrate expects.
func (c DBConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DataBase, c.SSLMode)
}

func (c ShelterConfig) TickInterval() time.Duration {
	if c.TickSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TickSeconds) * time.Second
}

// Load reads an optional .env file, then the given config files and the
// environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}

	var config = Config{}
	if err := configor.Load(&config, existing...); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	config.IRCConfig.Channels = splitChannels(config.IRCConfig.ChannelsString)
	return config, nil
}

func LoadConfigOrPanic() Config {
	config, err := Load(DefaultConfigFile)
	if err != nil {
		panic(err)
	}
	return config
}

func splitChannels(s string) []string {
	var out []string
	for _, ch := range strings.Split(s, ",") {
		if ch = strings.TrimSpace(ch); ch != "" {
			out = append(out, ch)
		}
	}
	return out
}

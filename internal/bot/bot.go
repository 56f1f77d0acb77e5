package bot

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MyelinBots/catmanager-go/config"
	"github.com/MyelinBots/catmanager-go/internal/healthcheck"
	"github.com/MyelinBots/catmanager-go/internal/httpapi"
	"github.com/MyelinBots/catmanager-go/internal/services/commands"
	"github.com/MyelinBots/catmanager-go/internal/services/timer"
	irc "github.com/fluffle/goirc/client"
)

var ErrNoChannels = errors.New("no IRC channels configured")

type Identified struct {
	sync.Mutex
	identified bool
}

// StartBot runs the shelter on IRC until the connection drops or ctx is done.
func StartBot(ctx context.Context, cfg config.Config) error {
	if len(cfg.IRCConfig.Channels) == 0 {
		return ErrNoChannels
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	identified := &Identified{}
	mainChannel := cfg.IRCConfig.Channels[0]

	fmt.Printf("Starting bot %s on %s:%d\n", cfg.IRCConfig.Nick, cfg.IRCConfig.Host, cfg.IRCConfig.Port)

	shelter, err := NewShelter(cfg)
	if err != nil {
		return err
	}
	defer shelter.Close()

	healthcheck.StartHealthcheck(ctx, cfg.AppConfig, httpapi.NewRouter(httpapi.Options{
		Roster:         shelter.Roster,
		Avatars:        shelter.Avatars,
		AllowedOrigins: cfg.AppConfig.AllowedOrigins(),
	}))

	ircConfig := irc.NewConfig(cfg.IRCConfig.Nick)
	ircConfig.SSL = cfg.IRCConfig.SSL
	ircConfig.SSLConfig = &tls.Config{InsecureSkipVerify: true}
	ircConfig.Server = fmt.Sprintf("%s:%d", cfg.IRCConfig.Host, cfg.IRCConfig.Port)

	conn := irc.Client(ircConfig)

	manager := shelter.Manager(cfg.IRCConfig.Network, mainChannel, func(msg string) {
		conn.Privmsg(mainChannel, msg)
	})
	limiter := commands.NewNickLimiter(commands.RateLimitConfig{
		CommandsPerSec: cfg.IRCConfig.CommandsPerSec,
		Burst:          cfg.IRCConfig.CommandBurst,
	})
	controller := commands.NewCommandController(manager, conn, mainChannel, limiter)
	controller.RegisterDefaults()

	cleanup := timer.NewRepeatedTimer(time.Minute, limiter.Cleanup)
	cleanup.Start()
	defer cleanup.Stop()

	conn.HandleFunc(irc.CONNECTED, func(conn *irc.Conn, line *irc.Line) {
		fmt.Printf("Connected to %s\n", cfg.IRCConfig.Host)
		for _, channel := range cfg.IRCConfig.Channels {
			fmt.Printf("Joining channel %s\n", channel)
			conn.Join(channel)
		}
	})

	// no MOTD, or end of MOTD
	for _, code := range []string{"422", "376"} {
		conn.HandleFunc(code, func(conn *irc.Conn, line *irc.Line) {
			for _, channel := range cfg.IRCConfig.Channels {
				conn.Join(channel)
			}
		})
	}

	conn.HandleFunc(irc.JOIN, func(conn *irc.Conn, line *irc.Line) {
		if line.Nick != conn.Me().Nick {
			return
		}
		fmt.Printf("Joined %s\n", line.Args[0])
		if line.Args[0] == mainChannel {
			manager.Start(ctx)
		}
		handleNickserv(cfg.IRCConfig, identified, conn)
	})

	conn.HandleFunc(irc.INVITE, func(conn *irc.Conn, line *irc.Line) {
		if len(line.Args) < 2 {
			return
		}
		fmt.Printf("Invited to %s\n", line.Args[1])
		conn.Join(line.Args[1])
	})

	conn.HandleFunc(irc.PRIVMSG, func(conn *irc.Conn, line *irc.Line) {
		if line == nil || len(line.Args) < 2 {
			return
		}

		err := controller.HandleCommand(ctx, line)
		if err != nil {
			fmt.Printf("Error handling command: %s\n", err.Error())
		}
	})

	quit := make(chan struct{}, 1)
	conn.HandleFunc(irc.DISCONNECTED, func(conn *irc.Conn, line *irc.Line) {
		select {
		case quit <- struct{}{}:
		default:
		}
	})

	if err := conn.Connect(); err != nil {
		fmt.Printf("Connection error: %s\n", err.Error())
		return err
	}

	select {
	case <-quit:
	case <-ctx.Done():
		conn.Quit("The shelter is closing for the night 🐾")
		select {
		case <-quit:
		case <-time.After(5 * time.Second):
		}
	}
	manager.Stop()
	return nil
}

func handleNickserv(cfg config.IRCConfig, identified *Identified, c *irc.Conn) {
	identified.Lock()
	defer identified.Unlock()
	if !identified.identified && cfg.NickservPassword != "" {
		command := fmt.Sprintf(cfg.NickservCommand, cfg.NickservPassword)
		c.Raw(command)
		identified.identified = true
	}
}

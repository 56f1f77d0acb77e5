package commands

//go:generate mockgen -source=commands.go -destination=../../mocks/mock_irc_client.go -package=mocks IRCClient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MyelinBots/catmanager-go/internal/cat"
	"github.com/MyelinBots/catmanager-go/internal/pantry"
	"github.com/MyelinBots/catmanager-go/internal/roster"
	"github.com/MyelinBots/catmanager-go/internal/services/catmanager"
	"github.com/MyelinBots/catmanager-go/internal/services/context_manager"
	irc "github.com/fluffle/goirc/client"
)

const (
	// maxLine keeps messages clear of server truncation.
	maxLine = 400

	// MaxRestock is the largest !restock one command may ask for.
	MaxRestock = 100
)

var ErrUsage = errors.New("usage")

// IRCClient is the part of *irc.Conn the commands need.
type IRCClient interface {
	Privmsg(target, message string)
	Join(channel string, key ...string)
}

type Handler func(ctx context.Context, args ...string) error

type CommandController interface {
	HandleCommand(ctx context.Context, line *irc.Line) error
	AddCommand(command string, handler Handler)
}

type CommandControllerImpl struct {
	manager  catmanager.CatManager
	client   IRCClient
	channel  string
	limiter  *NickLimiter
	commands map[string]Handler
}

func NewCommandController(manager catmanager.CatManager, client IRCClient, channel string, limiter *NickLimiter) *CommandControllerImpl {
	return &CommandControllerImpl{
		manager:  manager,
		client:   client,
		channel:  channel,
		limiter:  limiter,
		commands: make(map[string]Handler),
	}
}

// RegisterDefaults wires every shelter command.
func (c *CommandControllerImpl) RegisterDefaults() {
	c.AddCommand("!spawn", c.SpawnHandler())
	c.AddCommand("!cats", c.CatsHandler())
	c.AddCommand("!cat", c.CatHandler())
	c.AddCommand("!feed", c.FeedHandler())
	c.AddCommand("!play", c.PlayHandler())
	c.AddCommand("!sleep", c.SleepHandler())
	c.AddCommand("!mate", c.MateHandler())
	c.AddCommand("!pantry", c.PantryHandler())
	c.AddCommand("!restock", c.RestockHandler())
	c.AddCommand("!topcare", c.TopCareHandler())
	c.AddCommand("!help", c.HelpHandler())
	c.AddCommand("!invite", c.InviteHandler())
}

// HandleCommand parses an IRC line and dispatches to the correct handler
func (c *CommandControllerImpl) HandleCommand(ctx context.Context, line *irc.Line) error {
	if line == nil || len(line.Args) < 2 {
		return nil
	}

	fields := strings.Fields(line.Args[1])
	if len(fields) == 0 {
		return nil
	}

	handler, exists := c.commands[strings.ToLower(fields[0])]
	if !exists {
		return nil
	}
	if c.limiter != nil && !c.limiter.Allow(line.Nick) {
		return nil
	}

	ctx = context_manager.SetNickContext(ctx, line.Nick)
	ctx = context_manager.SetLineContext(ctx, line)
	return handler(ctx, fields[1:]...)
}

func (c *CommandControllerImpl) AddCommand(command string, handler Handler) {
	c.commands[strings.ToLower(command)] = handler
}

func (c *CommandControllerImpl) SpawnHandler() Handler {
	return func(ctx context.Context, args ...string) error {
		n := 1
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return c.usage(ctx, "!spawn [n]")
			}
			n = v
		}
		return c.respond(ctx)(c.manager.Spawn(ctx, n))
	}
}

func (c *CommandControllerImpl) CatsHandler() Handler {
	return func(ctx context.Context, args ...string) error {
		lines := c.manager.List()
		if len(lines) == 0 {
			c.reply(ctx, "🏠 The shelter is empty. Try !spawn")
			return nil
		}
		for _, msg := range pack(lines, " | ", maxLine) {
			c.reply(ctx, msg)
		}
		return nil
	}
}

func (c *CommandControllerImpl) CatHandler() Handler {
	return c.indexed("!cat <n>", func(ctx context.Context, i int) (string, error) {
		return c.manager.Describe(i)
	})
}

func (c *CommandControllerImpl) FeedHandler() Handler {
	return c.indexed("!feed <n>", c.manager.Feed)
}

func (c *CommandControllerImpl) PlayHandler() Handler {
	return c.indexed("!play <n>", c.manager.Play)
}

func (c *CommandControllerImpl) SleepHandler() Handler {
	return c.indexed("!sleep <n>", c.manager.Sleep)
}

func (c *CommandControllerImpl) MateHandler() Handler {
	return func(ctx context.Context, args ...string) error {
		if len(args) < 2 {
			return c.usage(ctx, "!mate <a> <b>")
		}
		i, err1 := parseIndex(args[0])
		j, err2 := parseIndex(args[1])
		if err1 != nil || err2 != nil {
			return c.usage(ctx, "!mate <a> <b>")
		}
		return c.respond(ctx)(c.manager.Mate(ctx, i, j))
	}
}

func (c *CommandControllerImpl) PantryHandler() Handler {
	return func(ctx context.Context, args ...string) error {
		c.reply(ctx, c.manager.PantryStatus())
		return nil
	}
}

func (c *CommandControllerImpl) RestockHandler() Handler {
	return func(ctx context.Context, args ...string) error {
		n := 0
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 || v > MaxRestock {
				return c.usage(ctx, fmt.Sprintf("!restock [n] with n from 1 to %d", MaxRestock))
			}
			n = v
		}
		c.reply(ctx, c.manager.Restock(n))
		return nil
	}
}

func (c *CommandControllerImpl) TopCareHandler() Handler {
	return func(ctx context.Context, args ...string) error {
		return c.respond(ctx)(c.manager.TopCaretakers(ctx, 5))
	}
}

func (c *CommandControllerImpl) indexed(usage string, fn func(ctx context.Context, index int) (string, error)) Handler {
	return func(ctx context.Context, args ...string) error {
		if len(args) < 1 {
			return c.usage(ctx, usage)
		}
		i, err := parseIndex(args[0])
		if err != nil {
			return c.usage(ctx, usage)
		}
		return c.respond(ctx)(fn(ctx, i))
	}
}

// respond sends msg, or a warning for err. Shelter errors are the user's
// problem and are not returned.
func (c *CommandControllerImpl) respond(ctx context.Context) func(msg string, err error) error {
	return func(msg string, err error) error {
		if err == nil {
			c.reply(ctx, msg)
			return nil
		}

		var mateErr *cat.MateError
		switch {
		case errors.As(err, &mateErr),
			errors.Is(err, roster.ErrNotFound),
			errors.Is(err, roster.ErrFull),
			errors.Is(err, pantry.ErrEmpty):
			c.reply(ctx, "⚠️ "+err.Error())
			return nil
		}
		c.reply(ctx, "⚠️ Something went wrong, try again later.")
		return err
	}
}

func (c *CommandControllerImpl) usage(ctx context.Context, u string) error {
	c.reply(ctx, "Usage: "+u)
	return nil
}

// reply answers where the command came from: the channel, or the nick for
// private messages.
func (c *CommandControllerImpl) reply(ctx context.Context, msg string) {
	target := c.channel
	if line := context_manager.GetLineContext(ctx); line != nil {
		if t := line.Target(); t != "" {
			target = t
		}
	}
	c.client.Privmsg(target, msg)
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrUsage)
	}
	return n, nil
}

// clip cuts s to at most limit bytes without splitting a rune.
func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// pack joins items into as few messages as fit within limit.
func pack(items []string, sep string, limit int) []string {
	var out []string
	var b strings.Builder
	for _, it := range items {
		if b.Len() > 0 && b.Len()+len(sep)+len(it) > limit {
			out = append(out, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(it)
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

package context_manager

import (
	"context"
	"strings"

	irc "github.com/fluffle/goirc/client"
)

type Nick struct{}

type lineKey struct{}

// SetNickContext stores the lowercased nickname into context
func SetNickContext(ctx context.Context, nick string) context.Context {
	return context.WithValue(ctx, Nick{}, strings.ToLower(nick))
}

// GetNickContext retrieves the nickname from context, or "" when unset
func GetNickContext(ctx context.Context) string {
	nick, ok := ctx.Value(Nick{}).(string)
	if !ok {
		return ""
	}
	return nick
}

// SetLineContext stores the IRC line a command came from
func SetLineContext(ctx context.Context, line *irc.Line) context.Context {
	return context.WithValue(ctx, lineKey{}, line)
}

func GetLineContext(ctx context.Context) *irc.Line {
	line, _ := ctx.Value(lineKey{}).(*irc.Line)
	return line
}

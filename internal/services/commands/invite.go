package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/MyelinBots/catmanager-go/internal/services/context_manager"
)

// InviteHandler lets users bring the shelter bot into their own channels.
func (c *CommandControllerImpl) InviteHandler() Handler {
	return func(ctx context.Context, args ...string) error {
		nick := context_manager.GetNickContext(ctx)

		if len(args) < 1 || !strings.HasPrefix(args[0], "#") {
			return c.usage(ctx, "!invite <#channel>")
		}
		channel := args[0]

		c.client.Join(channel)
		c.client.Privmsg(channel, fmt.Sprintf("🐾 The shelter cats pad into %s, invited by %s. Type !help to meet them.", channel, nick))

		fmt.Println("Invite command received from", nick)
		return nil
	}
}

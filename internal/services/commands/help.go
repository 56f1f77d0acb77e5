package commands

import (
	"context"

	"github.com/MyelinBots/catmanager-go/internal/services/context_manager"
)

func (c *CommandControllerImpl) HelpHandler() Handler {
	return func(ctx context.Context, args ...string) error {
		nick := context_manager.GetNickContext(ctx)

		lines := []string{
			"🐱 Hi " + nick + "! Welcome to the cat shelter. Cats are numbered as in !cats.",
			" * !spawn [n] :::: Take in one or more new cats 🐈",
			" * !cats :::: List every cat in the shelter",
			" * !cat <n> :::: Show a cat's full card",
			" * !feed <n> :::: Serve a ration of CatEat 🍗",
			" * !play <n> :::: Play with a cat 🧶",
			" * !sleep <n> :::: Put a cat to bed, or wake it up 💤",
			" * !mate <a> <b> :::: Try for a kitten 🐣",
			" * !pantry / !restock [n] :::: Check or refill the food 🥫",
			" * !topcare :::: See the best caretakers 🏆",
			" * !invite <#channel> :::: Bring the shelter to your channel",
		}

		for _, l := range lines {
			c.reply(ctx, clip(l, maxLine))
		}
		return nil
	}
}

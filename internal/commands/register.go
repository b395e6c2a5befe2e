// Package commands wires every command category into the bot.
// Commands are organized in subdirectories by category (utils, mod, dev, contextmenu).
package commands

import (
	"github.com/PancyStudios/PancyCommandsGo/internal/commands/contextmenu"
	"github.com/PancyStudios/PancyCommandsGo/internal/commands/dev"
	"github.com/PancyStudios/PancyCommandsGo/internal/commands/mod"
	"github.com/PancyStudios/PancyCommandsGo/internal/commands/utils"
	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
)

// RegisterAll registers every command with the bot. Must run before the
// session opens, since deployment happens on ready.
func RegisterAll(bot *appcommands.Bot, devGuildID string) error {
	if err := utils.Register(bot); err != nil {
		return err
	}

	if err := mod.Register(bot); err != nil {
		return err
	}

	if err := contextmenu.Register(bot); err != nil {
		return err
	}

	// Dev commands only exist in the development guild
	return dev.Register(bot, devGuildID)
}

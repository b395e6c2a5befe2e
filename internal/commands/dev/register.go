package dev

import (
	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
)

// Register builds the /dev command group and registers it in the
// development guild only. Without a configured guild the group is skipped.
func Register(bot *appcommands.Bot, devGuildID string) error {
	if devGuildID == "" {
		logger.Warn("devGuildId no configurado, omitiendo comandos de desarrollo", "Commands")
		return nil
	}

	evalCmd, err := createEvalCommand()
	if err != nil {
		return err
	}
	inspectCmd, err := createInspectCommand()
	if err != nil {
		return err
	}
	usageCmd, err := createUsageCommand()
	if err != nil {
		return err
	}

	def, err := appcommands.NewGroup(
		"dev",
		"Comandos de desarrollo",
		evalCmd,
		inspectCmd,
		usageCmd,
	)
	if err != nil {
		return err
	}

	return bot.AddGroup(def.ForGuild(devGuildID))
}

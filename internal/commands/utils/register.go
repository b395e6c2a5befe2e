package utils

import (
	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
)

// Register registers the utility commands as global slash commands
func Register(bot *appcommands.Bot) error {
	creators := []func() (*appcommands.Command, error){
		createPingCommand,
		createStatsCommand,
		createHelpCommand,
	}

	for _, create := range creators {
		cmd, err := create()
		if err != nil {
			return err
		}
		if err := bot.AddSlashCommand(cmd, ""); err != nil {
			return err
		}
	}
	return nil
}

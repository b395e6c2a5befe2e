package contextmenu

import (
	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
)

// Register registers the context menu commands globally
func Register(bot *appcommands.Bot) error {
	avatarCmd, err := createAvatarCommand()
	if err != nil {
		return err
	}
	if err := bot.AddUserCommand(avatarCmd, ""); err != nil {
		return err
	}

	reportCmd, err := createReportCommand()
	if err != nil {
		return err
	}
	return bot.AddMessageCommand(reportCmd, "")
}

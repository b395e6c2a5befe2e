package mod

import (
	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
)

// Register builds the /mod command group and registers it globally.
// Layout: /mod ban, /mod kick, /mod mute, /mod warn add|list|remove.
func Register(bot *appcommands.Bot) error {
	banCmd, err := createBanCommand()
	if err != nil {
		return err
	}
	kickCmd, err := createKickCommand()
	if err != nil {
		return err
	}
	muteCmd, err := createMuteCommand()
	if err != nil {
		return err
	}

	warnAddCmd, err := createWarnAddCommand()
	if err != nil {
		return err
	}
	warnListCmd, err := createWarnListCommand()
	if err != nil {
		return err
	}
	warnRemoveCmd, err := createWarnRemoveCommand()
	if err != nil {
		return err
	}

	warnGroup, err := appcommands.NewSubGroup(
		"warn",
		"Gestión de advertencias",
		warnAddCmd,
		warnListCmd,
		warnRemoveCmd,
	)
	if err != nil {
		return err
	}

	def, err := appcommands.NewGroup(
		"mod",
		"Comandos de moderación",
		banCmd,
		kickCmd,
		muteCmd,
		warnGroup,
	)
	if err != nil {
		return err
	}

	return bot.AddGroup(def.Global())
}

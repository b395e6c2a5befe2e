package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/bwmarrin/discordgo"
)

// createKickCommand creates the /mod kick subcommand
func createKickCommand() (*appcommands.Command, error) {
	userOpt, err := appcommands.NewOption("usuario", "Usuario a expulsar", discordgo.ApplicationCommandOptionUser, true)
	if err != nil {
		return nil, err
	}

	reasonOpt, err := appcommands.NewOption("razon", "Razón de la expulsión", discordgo.ApplicationCommandOptionString, false)
	if err != nil {
		return nil, err
	}
	reasonOpt.WithDefault("Sin razón especificada")

	return appcommands.NewSlashCommand(
		"kick",
		"Expulsa a un usuario del servidor",
		kickHandler,
		userOpt,
		reasonOpt,
	)
}

// kickHandler handles the /mod kick command
func kickHandler(ctx *appcommands.Context, opts []appcommands.ResolvedOption) error {
	user := opts[0].UserValue()
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario válido.")
	}

	reason := opts[1].StringValue()

	err := ctx.Session.GuildMemberDeleteWithReason(ctx.Interaction.GuildID, user.ID, reason)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al expulsar: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("👢 **%s** ha sido expulsado.\n**Razón:** %s", user.Username, reason))
}

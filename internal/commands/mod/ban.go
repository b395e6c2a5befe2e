// Package mod provides the moderation commands grouped under /mod.
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/bwmarrin/discordgo"
)

// createBanCommand creates the /mod ban subcommand
func createBanCommand() (*appcommands.Command, error) {
	userOpt, err := appcommands.NewOption("usuario", "Usuario a banear", discordgo.ApplicationCommandOptionUser, true)
	if err != nil {
		return nil, err
	}

	reasonOpt, err := appcommands.NewOption("razon", "Razón del ban", discordgo.ApplicationCommandOptionString, false)
	if err != nil {
		return nil, err
	}
	reasonOpt.WithDefault("Sin razón especificada")

	daysOpt, err := appcommands.NewOption("dias", "Días de mensajes a eliminar (0-7)", discordgo.ApplicationCommandOptionInteger, false)
	if err != nil {
		return nil, err
	}
	daysOpt.WithMinValue(0).WithMaxValue(7).WithDefault(int64(0))

	return appcommands.NewSlashCommand(
		"ban",
		"Banea a un usuario del servidor",
		banHandler,
		userOpt,
		reasonOpt,
		daysOpt,
	)
}

// banHandler handles the /mod ban command. Options arrive in declaration
// order: usuario, razon, dias.
func banHandler(ctx *appcommands.Context, opts []appcommands.ResolvedOption) error {
	user := opts[0].UserValue()
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario válido.")
	}

	reason := opts[1].StringValue()
	days := int(opts[2].IntValue())

	err := ctx.Session.GuildBanCreateWithReason(
		ctx.Interaction.GuildID,
		user.ID,
		reason,
		days,
	)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al banear: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("🔨 **%s** ha sido baneado.\n**Razón:** %s", user.Username, reason))
}

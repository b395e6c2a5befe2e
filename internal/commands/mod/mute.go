package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/bwmarrin/discordgo"
)

// createMuteCommand creates the /mod mute subcommand
func createMuteCommand() (*appcommands.Command, error) {
	userOpt, err := appcommands.NewOption("usuario", "Usuario a silenciar", discordgo.ApplicationCommandOptionUser, true)
	if err != nil {
		return nil, err
	}

	durationOpt, err := appcommands.NewOption("duracion", "Duración en minutos", discordgo.ApplicationCommandOptionInteger, true)
	if err != nil {
		return nil, err
	}
	durationOpt.WithMinValue(1).WithMaxValue(40320) // 28 days max

	reasonOpt, err := appcommands.NewOption("razon", "Razón del silencio", discordgo.ApplicationCommandOptionString, false)
	if err != nil {
		return nil, err
	}
	reasonOpt.WithDefault("Sin razón especificada")

	return appcommands.NewSlashCommand(
		"mute",
		"Silencia a un usuario temporalmente",
		muteHandler,
		userOpt,
		durationOpt,
		reasonOpt,
	)
}

// muteHandler handles the /mod mute command
func muteHandler(ctx *appcommands.Context, opts []appcommands.ResolvedOption) error {
	user := opts[0].UserValue()
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario válido.")
	}

	duration := opts[1].IntValue()
	if duration < 1 {
		return ctx.ReplyEphemeral("❌ La duración debe ser al menos 1 minuto.")
	}

	reason := opts[2].StringValue()

	timeoutUntil := time.Now().Add(time.Duration(duration) * time.Minute)

	err := ctx.Session.GuildMemberTimeout(
		ctx.Interaction.GuildID,
		user.ID,
		&timeoutUntil,
	)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al silenciar: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("🔇 **%s** ha sido silenciado por %d minutos.\n**Razón:** %s",
		user.Username,
		duration,
		reason,
	))
}

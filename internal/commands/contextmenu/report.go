package contextmenu

import (
	"fmt"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createReportCommand creates the "Reportar Mensaje" message context command
func createReportCommand() (*appcommands.Command, error) {
	return appcommands.NewMessageCommand("Reportar Mensaje", reportHandler)
}

// reportHandler records a message report and confirms it privately
func reportHandler(ctx *appcommands.Context, message *discordgo.Message) error {
	if message == nil {
		return ctx.ReplyEphemeral("❌ No se pudo obtener el mensaje.")
	}

	content := message.Content
	if len(content) > 200 {
		content = content[:197] + "..."
	}
	if content == "" {
		content = "(sin texto)"
	}

	author := "desconocido"
	if message.Author != nil {
		author = message.Author.Username
	}

	logger.Warn(fmt.Sprintf("Mensaje %s de %s reportado por %s en %s",
		message.ID, author, ctx.User().ID, ctx.Interaction.ChannelID), "Reports")

	return ctx.ReplyEphemeral(fmt.Sprintf(
		"📨 Mensaje de **%s** reportado a los moderadores.\n> %s",
		author, content,
	))
}

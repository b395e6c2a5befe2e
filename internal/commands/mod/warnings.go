package mod

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/database"
	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
	"go.mongodb.org/mongo-driver/bson"
)

// createWarnListCommand creates the /mod warn list subcommand
func createWarnListCommand() (*appcommands.Command, error) {
	userOpt, err := appcommands.NewOption("usuario", "Usuario del cual listar advertencias", discordgo.ApplicationCommandOptionUser, true)
	if err != nil {
		return nil, err
	}

	return appcommands.NewSlashCommand(
		"list",
		"Lista las advertencias de un usuario",
		warnListHandler,
		userOpt,
	)
}

// warnListHandler handles the /mod warn list command
func warnListHandler(ctx *appcommands.Context, opts []appcommands.ResolvedOption) error {
	user := opts[0].UserValue()
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario válido.")
	}

	dm := database.GlobalWarnDM
	query := bson.M{"guildId": ctx.Interaction.GuildID, "userId": user.ID}

	doc, err := dm.Get(query)
	if err != nil {
		logger.Error(fmt.Sprintf("Error DB Warnings: %v", err), "CMD-Warnings")
		return ctx.ReplyEphemeral("❌ Error al consultar la base de datos.")
	}

	if doc == nil || len(doc.Warns) == 0 {
		return ctx.Reply(fmt.Sprintf("✅ **%s** no tiene advertencias.", user.Username))
	}

	var b strings.Builder
	for i, warn := range doc.Warns {
		fmt.Fprintf(&b, "**%d.** %s\n└ ID: `%s` · Moderador: <@%s> · <t:%d:F>\n",
			i+1, warn.Reason, warn.ID, warn.Moderator, warn.Timestamp/1000)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚠️ Advertencias de %s (%d)", user.Username, len(doc.Warns)),
		Description: b.String(),
		Color:       0xFFA500,
		Footer: &discordgo.MessageEmbedFooter{
			Text:    fmt.Sprintf("Solicitado por %s", ctx.User().String()),
			IconURL: ctx.User().AvatarURL(""),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	return ctx.ReplyEmbed(embed)
}

package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/database"
	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/PancyStudios/PancyCommandsGo/pkg/models"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// createWarnAddCommand creates the /mod warn add subcommand
func createWarnAddCommand() (*appcommands.Command, error) {
	userOpt, err := appcommands.NewOption("usuario", "Usuario a advertir", discordgo.ApplicationCommandOptionUser, true)
	if err != nil {
		return nil, err
	}

	reasonOpt, err := appcommands.NewOption("razon", "Razón de la advertencia", discordgo.ApplicationCommandOptionString, true)
	if err != nil {
		return nil, err
	}

	return appcommands.NewSlashCommand(
		"add",
		"Advierte a un usuario",
		warnAddHandler,
		userOpt,
		reasonOpt,
	)
}

// warnAddHandler handles the /mod warn add command
func warnAddHandler(ctx *appcommands.Context, opts []appcommands.ResolvedOption) error {
	user := opts[0].UserValue()
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario válido.")
	}

	reason := opts[1].StringValue()
	if reason == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar una razón.")
	}

	warn := models.Warn{
		Reason:    reason,
		Moderator: ctx.User().ID,
		ID:        uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
	}

	dm := database.GlobalWarnDM
	query := bson.M{"guildId": ctx.Interaction.GuildID, "userId": user.ID}

	doc, err := dm.Get(query)
	if err != nil {
		logger.Error(fmt.Sprintf("Error DB Warn: %v", err), "CMD-Warn")
		return ctx.ReplyEphemeral("❌ Error al consultar la base de datos.")
	}

	if doc == nil {
		doc = &models.WarnsDocument{
			GuildID: ctx.Interaction.GuildID,
			UserID:  user.ID,
		}
	}
	doc.Warns = append(doc.Warns, warn)

	if _, err := dm.Set(query, doc); err != nil {
		logger.Error(fmt.Sprintf("Error guardando Warn: %v", err), "CMD-Warn")
		return ctx.ReplyEphemeral("❌ No se pudo guardar la advertencia.")
	}

	notifyWarnedUser(ctx, user, warn)

	return ctx.Reply(fmt.Sprintf("⚠️ **%s** ha sido advertido.\n**Razón:** %s\n**Moderador:** %s",
		user.Username,
		reason,
		ctx.User().Username,
	))
}

// notifyWarnedUser sends a DM to the warned user, ignoring failures
func notifyWarnedUser(ctx *appcommands.Context, user *discordgo.User, warn models.Warn) {
	guildName := ctx.Interaction.GuildID
	if guild := ctx.Guild(); guild != nil {
		guildName = guild.Name
	}

	embed := &discordgo.MessageEmbed{
		Title: "⚠️ - Has recibido una advertencia",
		Color: 0xFFFF00,
		Description: fmt.Sprintf(
			"⚒ - **Servidor:** %s\n"+
				"📄 - **Razón:** %s\n\n"+
				"🕒 - **Fecha:** <t:%d:F>",
			guildName, warn.Reason, warn.Timestamp/1000,
		),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by PancyStudios",
		},
	}

	userChannel, err := ctx.Session.UserChannelCreate(user.ID)
	if err != nil {
		logger.Debug(fmt.Sprintf("No se pudo abrir MD con %s", user.ID), "CMD-Warn")
		return
	}
	_, _ = ctx.Session.ChannelMessageSendEmbed(userChannel.ID, embed)
}

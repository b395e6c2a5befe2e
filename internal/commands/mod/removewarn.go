package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/database"
	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/PancyStudios/PancyCommandsGo/pkg/models"
	"github.com/bwmarrin/discordgo"
	"go.mongodb.org/mongo-driver/bson"
)

// createWarnRemoveCommand creates the /mod warn remove subcommand
func createWarnRemoveCommand() (*appcommands.Command, error) {
	userOpt, err := appcommands.NewOption("usuario", "Usuario del cual eliminar la advertencia", discordgo.ApplicationCommandOptionUser, true)
	if err != nil {
		return nil, err
	}

	idOpt, err := appcommands.NewOption("id", "ID de la advertencia a eliminar", discordgo.ApplicationCommandOptionString, true)
	if err != nil {
		return nil, err
	}
	idOpt.WithAutocomplete()

	cmd, err := appcommands.NewSlashCommand(
		"remove",
		"Elimina una advertencia específica de un usuario",
		warnRemoveHandler,
		userOpt,
		idOpt,
	)
	if err != nil {
		return nil, err
	}
	return cmd.WithAutocomplete(warnRemoveAutocomplete), nil
}

// warnRemoveHandler handles the /mod warn remove command
func warnRemoveHandler(ctx *appcommands.Context, opts []appcommands.ResolvedOption) error {
	user := opts[0].UserValue()
	warnID := opts[1].StringValue()

	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario válido.")
	}
	if warnID == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar el ID de la advertencia.")
	}

	dm := database.GlobalWarnDM
	query := bson.M{"guildId": ctx.Interaction.GuildID, "userId": user.ID}

	doc, err := dm.Get(query)
	if err != nil {
		logger.Error(fmt.Sprintf("Error DB RemoveWarn: %v", err), "CMD-RemoveWarn")
		return ctx.ReplyEphemeral("❌ Error al consultar la base de datos.")
	}

	if doc == nil || len(doc.Warns) == 0 {
		return ctx.ReplyEphemeral("❌ El usuario no tiene advertencias.")
	}

	found := false
	var updatedWarns []models.Warn
	var removedWarn models.Warn

	for _, warn := range doc.Warns {
		if warn.ID == warnID {
			removedWarn = warn
			found = true
		} else {
			updatedWarns = append(updatedWarns, warn)
		}
	}

	if !found {
		return ctx.ReplyEphemeral("❌ No se encontró una advertencia con ese ID.")
	}

	doc.Warns = updatedWarns
	if _, err := dm.Set(query, doc); err != nil {
		logger.Error(fmt.Sprintf("Error guardando RemoveWarn: %v", err), "CMD-RemoveWarn")
		return ctx.ReplyEphemeral("❌ No se pudo eliminar la advertencia.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "✅ Advertencia eliminada con éxito",
		Description: fmt.Sprintf("La advertencia de **%s** ha sido eliminada.\n\n**Razón original:** %s\n**ID:** `%s`", user.String(), removedWarn.Reason, warnID),
		Color:       0x00FF00,
		Footer: &discordgo.MessageEmbedFooter{
			Text:    fmt.Sprintf("Solicitado por %s", ctx.User().String()),
			IconURL: ctx.User().AvatarURL(""),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	return ctx.ReplyEmbed(embed)
}

// warnRemoveAutocomplete suggests the target user's warn IDs while typing
func warnRemoveAutocomplete(ctx *appcommands.Context) error {
	data := ctx.Interaction.ApplicationCommandData()

	userID, _ := findOptionValue(data.Options, "usuario").(string)
	if userID == "" {
		return ctx.RespondChoices(nil)
	}

	dm := database.GlobalWarnDM
	query := bson.M{"guildId": ctx.Interaction.GuildID, "userId": userID}

	doc, err := dm.Get(query)
	if err != nil || doc == nil || len(doc.Warns) == 0 {
		return ctx.RespondChoices(nil)
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 25)
	for i, warn := range doc.Warns {
		if i >= 25 {
			break
		}
		name := fmt.Sprintf("ID: %s - Razón: %s", warn.ID, warn.Reason)
		if len(name) > 100 {
			name = name[:97] + "..."
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: warn.ID,
		})
	}

	return ctx.RespondChoices(choices)
}

// findOptionValue walks the raw option tree looking for a named option
func findOptionValue(options []*discordgo.ApplicationCommandInteractionDataOption, name string) interface{} {
	for _, opt := range options {
		if opt.Name == name {
			return opt.Value
		}
		if len(opt.Options) > 0 {
			if v := findOptionValue(opt.Options, name); v != nil {
				return v
			}
		}
	}
	return nil
}

package dev

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/database"
	"github.com/bwmarrin/discordgo"
)

// createUsageCommand creates the /dev usage subcommand
func createUsageCommand() (*appcommands.Command, error) {
	return appcommands.NewSlashCommand(
		"usage",
		"Muestra los comandos más utilizados",
		usageHandler,
	)
}

// usageHandler handles the /dev usage command
func usageHandler(ctx *appcommands.Context, _ []appcommands.ResolvedOption) error {
	top, err := database.GetTopCommands(10)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Error al consultar las estadísticas de uso.")
	}

	if len(top) == 0 {
		return ctx.ReplyEphemeral("📊 Aún no hay invocaciones registradas.")
	}

	var b strings.Builder
	for i, entry := range top {
		fmt.Fprintf(&b, "**%d.** `%s` · %d invocaciones\n", i+1, entry.CommandName, entry.Count)
	}

	lastDay, _ := database.GetUsageSince(time.Now().Add(-24 * time.Hour))

	embed := &discordgo.MessageEmbed{
		Title:       "📊 Comandos más utilizados",
		Description: b.String(),
		Color:       0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "⚡ Total",
				Value:  fmt.Sprintf("%d", database.GetTotalUsageCount()),
				Inline: true,
			},
			{
				Name:   "🕒 Últimas 24h",
				Value:  fmt.Sprintf("%d", lastDay),
				Inline: true,
			},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	return ctx.ReplyEphemeralEmbed(embed)
}

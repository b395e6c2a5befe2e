package dev

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/database"
	"github.com/bwmarrin/discordgo"
)

// createInspectCommand creates the /dev inspect subcommand
func createInspectCommand() (*appcommands.Command, error) {
	return appcommands.NewSlashCommand(
		"inspect",
		"Muestra el inventario de comandos y el último despliegue",
		inspectHandler,
	)
}

// inspectHandler shows every registered command with its platform id
func inspectHandler(ctx *appcommands.Context, _ []appcommands.ResolvedOption) error {
	reg := ctx.Bot.GlobalRegistry()

	var b strings.Builder
	b.WriteString("**Scope global:**\n")
	for _, entry := range reg.Commands() {
		id := entry.ID()
		if id == "" {
			id = "sin desplegar"
		}
		fmt.Fprintf(&b, "• `%s` → `%s`\n", entry.Name(), id)
	}

	for _, guildID := range ctx.Bot.GuildIDs() {
		guildReg, ok := ctx.Bot.GuildRegistry(guildID)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n**Scope guild %s:**\n", guildID)
		for _, entry := range guildReg.Commands() {
			id := entry.ID()
			if id == "" {
				id = "sin desplegar"
			}
			fmt.Fprintf(&b, "• `%s` → `%s`\n", entry.Name(), id)
		}
	}

	deployInfo := "Sin registros"
	if last, err := database.GetLatestDeployment(); err == nil && last != nil {
		deployInfo = fmt.Sprintf("<t:%d:F> · %d comandos", last.DeployedAt.Unix(), len(last.Commands))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🔍 Inventario de comandos",
		Description: b.String(),
		Color:       0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "📦 Último despliegue",
				Value: deployInfo,
			},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	return ctx.ReplyEphemeralEmbed(embed)
}

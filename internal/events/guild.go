// Package events provides event handlers for guild (server) events
package events

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/config"
	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
	json "github.com/goccy/go-json"
)

// RegisterGuildEvents registers all guild-related event handlers
func RegisterGuildEvents(bot *appcommands.Bot) {
	bot.Session.AddHandler(onGuildCreate)
	bot.Session.AddHandler(onGuildDelete)
}

// onGuildCreate is called when the bot joins a server
func onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	// GuildCreate also fires for every guild during startup; only react
	// to joins that just happened
	if g.JoinedAt.Compare(time.Now().Add(-10*time.Second)) < 0 {
		return
	}

	logger.Info(fmt.Sprintf("➕ Bot agregado a servidor: %s (ID: %s)", g.Name, g.ID), "Guild")
	logger.Debug(fmt.Sprintf("   Miembros: %d | Canales: %d", g.MemberCount, len(g.Channels)), "Guild")

	notifyGuildWebhook(fmt.Sprintf("➕ Nuevo servidor: **%s** (%d miembros)", g.Name, g.MemberCount), 0x00FF00)

	// Enviar mensaje de bienvenida al canal del sistema
	if g.SystemChannelID != "" {
		welcomeEmbed := &discordgo.MessageEmbed{
			Title:       "¡Gracias por agregarme! 🎉",
			Description: "Hola, soy **PancyCommands**. Usa `/help` para ver todos mis comandos.",
			Color:       0x00ff00,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "🔧 Moderación",
					Value:  "Usa `/mod` para moderar",
					Inline: true,
				},
				{
					Name:   "❓ Ayuda",
					Value:  "Usa `/help` para más información",
					Inline: true,
				},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: "¡Disfruta de PancyCommands!",
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		if _, err := s.ChannelMessageSendEmbed(g.SystemChannelID, welcomeEmbed); err != nil {
			logger.Error(fmt.Sprintf("Error enviando mensaje de bienvenida: %v", err), "Guild")
		}
	}
}

// onGuildDelete is called when the bot is removed from a server
func onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	logger.Info(fmt.Sprintf("➖ Bot removido del servidor ID: %s", g.ID), "Guild")
	notifyGuildWebhook(fmt.Sprintf("➖ Bot removido del servidor ID: %s", g.ID), 0xFF0000)
}

type guildWebhookEmbed struct {
	Description string `json:"description"`
	Color       int    `json:"color"`
	Timestamp   string `json:"timestamp"`
}

type guildWebhookPayload struct {
	Embeds []guildWebhookEmbed `json:"embeds"`
}

// notifyGuildWebhook posts a guild join/leave notice to the configured
// webhook, if any
func notifyGuildWebhook(description string, color int) {
	cfg := config.Get()
	if cfg == nil || cfg.GuildsWebhook == "" {
		return
	}

	payload := guildWebhookPayload{
		Embeds: []guildWebhookEmbed{
			{
				Description: description,
				Color:       color,
				Timestamp:   time.Now().Format(time.RFC3339),
			},
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	go func() {
		client := &http.Client{Timeout: 10 * time.Second}
		resp, err := client.Post(cfg.GuildsWebhook, "application/json", bytes.NewBuffer(data))
		if err != nil {
			logger.Debug(fmt.Sprintf("Error enviando webhook de guilds: %v", err), "Guild")
			return
		}
		resp.Body.Close()
	}()
}

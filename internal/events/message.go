// Package events provides event handlers for message events
package events

import (
	"fmt"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(bot *appcommands.Bot) {
	bot.Session.AddHandler(onMessageCreate)
}

// onMessageCreate answers direct mentions with a pointer to /help
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignorar mensajes de bots
	if m.Author == nil || m.Author.Bot {
		return
	}

	for _, mention := range m.Mentions {
		if mention.ID != s.State.User.ID {
			continue
		}

		embed := &discordgo.MessageEmbed{
			Title:       "👋 ¡Hola!",
			Description: "Usa comandos **slash (/)** para interactuar conmigo.\nEscribe `/help` para ver todos los comandos disponibles.",
			Color:       0x3498db,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "🔧 Moderación",
					Value:  "`/mod` - Comandos de moderación",
					Inline: true,
				},
				{
					Name:   "❓ Ayuda",
					Value:  "`/help` - Ver todos los comandos",
					Inline: true,
				},
			},
		}

		if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
			logger.Error(fmt.Sprintf("Error enviando respuesta: %v", err), "Message")
		}
		break
	}
}

// Package events - EXAMPLE FILE
// This is a template for creating new event handlers
// Copy this file and rename it to your event category (e.g., moderation.go, logging.go, etc.)

package events

import (
	"fmt"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// STEP 1: Create a registration function
// This function will be called from register.go
func RegisterExampleEvents(bot *appcommands.Bot) {
	// For any Discord event, use bot.Session.AddHandler:
	bot.Session.AddHandler(onExampleBanAdd)
	bot.Session.AddHandler(onChannelCreate)
	bot.Session.AddHandler(onBanRemove)
	// bot.Session.AddHandler(onPresenceUpdate)  // Careful: fires very frequently!

	logger.Debug("Example events registered", "Events")
}

// STEP 2: Create your event handler functions
// Each handler receives the Discord session and event data

// Example: Guild Ban Add event
func onExampleBanAdd(s *discordgo.Session, b *discordgo.GuildBanAdd) {
	logger.Info(fmt.Sprintf("🔨 User banned: %s", b.User.Username), "Example")

	guild, err := s.Guild(b.GuildID)
	if err != nil {
		logger.Error(fmt.Sprintf("Error getting guild: %v", err), "Example")
		return
	}

	// Send a message to a log channel (example)
	logChannelID := "YOUR_LOG_CHANNEL_ID" // Replace with actual channel ID

	embed := &discordgo.MessageEmbed{
		Title:       "🔨 User Banned",
		Description: fmt.Sprintf("**%s** was banned from **%s**", b.User.Username, guild.Name),
		Color:       0xff0000,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: b.User.AvatarURL("128"),
		},
	}

	_, err = s.ChannelMessageSendEmbed(logChannelID, embed)
	if err != nil {
		logger.Error(fmt.Sprintf("Error sending ban notification: %v", err), "Example")
	}
}

// STEP 3: Add your registration function to register.go
// In internal/events/register.go, add:
/*
func RegisterAll(bot *appcommands.Bot) {
	logger.System("📋 Registrando eventos del bot...", "Events")

	// ... existing registrations ...

	// Add your new registration here:
	RegisterExampleEvents(bot)

	logger.Success("✅ Todos los eventos registrados correctamente", "Events")
}
*/

// ==============================================================================
// MORE EXAMPLES OF EVENT HANDLERS
// ==============================================================================

// Example: Channel Create
func onChannelCreate(s *discordgo.Session, c *discordgo.ChannelCreate) {
	logger.Info(fmt.Sprintf("📝 New channel created: %s", c.Name), "Example")
}

// Example: Ban Remove
func onBanRemove(s *discordgo.Session, b *discordgo.GuildBanRemove) {
	logger.Info(fmt.Sprintf("✅ Ban removed for: %s", b.User.Username), "Example")
}

// Example: Presence Update (user status change)
func onPresenceUpdate(s *discordgo.Session, p *discordgo.PresenceUpdate) {
	// Note: This event fires VERY frequently, use with caution
	if p.Status == discordgo.StatusOnline {
		logger.Debug(fmt.Sprintf("👤 %s is now online", p.User.Username), "Example")
	}
}

// ==============================================================================
// COMMAND LIFECYCLE HOOKS
// ==============================================================================
/*
Besides raw gateway events, the bot exposes hooks for the command layer
(see commands.go for the real wiring):

- bot.OnCommandInvoked(func(ctx *appcommands.Context, cmd *appcommands.Command))
- bot.OnCommandError(func(ctx *appcommands.Context, err error))
- bot.OnDeploy(func(result *appcommands.DeployResult))

Common gateway events for bots like this one:

Bot Events:
- *discordgo.Ready                    - Bot is ready
- *discordgo.Resumed                  - Bot resumed connection

Guild Events:
- *discordgo.GuildCreate              - Bot joined guild
- *discordgo.GuildDelete              - Bot left guild
- *discordgo.GuildBanAdd              - User banned
- *discordgo.GuildBanRemove           - Ban removed
- *discordgo.GuildMemberAdd           - Member joined
- *discordgo.GuildMemberRemove        - Member left

Message Events:
- *discordgo.MessageCreate            - Message sent
- *discordgo.MessageUpdate            - Message edited
- *discordgo.MessageDelete            - Message deleted
- *discordgo.MessageReactionAdd       - Reaction added

Interaction Events:
- *discordgo.InteractionCreate        - Interaction created (handled by the bot itself)
*/

// Package events provides a registry for organizing bot events.
// Events are organized by category (ready, guild, shard, command lifecycle)
package events

import (
	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
)

// RegisterAll registers all events with the bot
// Add your event registration calls here
func RegisterAll(bot *appcommands.Bot) {
	logger.System("📋 Registrando eventos del bot...", "Events")

	// Ready event (presence)
	RegisterReadyEvent(bot)

	// Guild events (server join/leave)
	RegisterGuildEvents(bot)

	// Shard events (disconnect/resume)
	RegisterShardEvents(bot)

	// Message events (mention replies)
	RegisterMessageEvents(bot)

	// Command lifecycle (telemetry, errors, deployment auditing)
	RegisterCommandListeners(bot)

	logger.Success("✅ Todos los eventos registrados correctamente", "Events")
}

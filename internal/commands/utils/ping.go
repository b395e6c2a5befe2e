// Package utils provides the general utility commands.
package utils

import (
	"fmt"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/database"
	"github.com/PancyStudios/PancyCommandsGo/pkg/mqtt"
)

// createPingCommand creates the /ping command
func createPingCommand() (*appcommands.Command, error) {
	return appcommands.NewSlashCommand(
		"ping",
		"Comprueba la latencia del bot",
		pingHandler,
	)
}

// pingHandler handles the /ping command
func pingHandler(ctx *appcommands.Context, _ []appcommands.ResolvedOption) error {
	latency := ctx.Session.HeartbeatLatency().Milliseconds()

	dbStatus := "🔴 | Desconectado"
	if db := database.Get(); db != nil {
		dbStatus, _ = db.GetStatus()
	}

	mqttStatus := "🔴 | Desconectado"
	if mc := mqtt.Get(); mc != nil && mc.IsConnected() {
		mqttStatus = "🟢 | En linea"
	}

	return ctx.Reply(fmt.Sprintf(
		"🏓 Pong! Latencia: %dms\n• Base de datos: %s\n• MQTT: %s",
		latency, dbStatus, mqttStatus,
	))
}

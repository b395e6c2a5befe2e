// Package events provides the command lifecycle listeners: usage
// telemetry, error accounting and deployment auditing.
package events

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/database"
	"github.com/PancyStudios/PancyCommandsGo/pkg/errors"
	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/PancyStudios/PancyCommandsGo/pkg/models"
	"github.com/PancyStudios/PancyCommandsGo/pkg/mqtt"
)

// RegisterCommandListeners connects the command lifecycle to the rest of
// the application
func RegisterCommandListeners(bot *appcommands.Bot) {
	bot.OnCommandInvoked(onCommandInvoked)
	bot.OnCommandError(onCommandError)
	bot.OnDeploy(func(result *appcommands.DeployResult) {
		onDeploy(bot, result)
	})
}

// onCommandInvoked records one invocation in Mongo and publishes it over
// MQTT for external consumers
func onCommandInvoked(ctx *appcommands.Context, cmd *appcommands.Command) {
	usage := models.CommandUsage{
		CommandName: cmd.Name(),
		Kind:        models.CommandKindName(cmd.Kind().String()),
		GuildID:     ctx.Interaction.GuildID,
		InvokedAt:   time.Now(),
	}
	if user := ctx.User(); user != nil {
		usage.UserID = user.ID
	}
	if ctx.Group != nil {
		usage.GroupPath = ctx.Group.Name()
	}

	if err := database.RecordCommandUsage(usage); err != nil {
		logger.Debug("No se pudo registrar el uso del comando: "+err.Error(), "Telemetry")
	}

	if mc := mqtt.Get(); mc != nil && mc.IsConnected() {
		if err := mc.Publish("pancycmd/events/command", usage); err != nil {
			logger.Debug("No se pudo publicar el evento de comando: "+err.Error(), "Telemetry")
		}
	}
}

// onCommandError feeds the crash watchdog and reports the failure
func onCommandError(ctx *appcommands.Context, err error) {
	h := errors.Get()
	if h == nil {
		return
	}

	h.IncrementError()

	commandName := ""
	if ctx != nil && ctx.Interaction != nil {
		if data, ok := ctx.Interaction.Data.(discordgo.ApplicationCommandInteractionData); ok {
			commandName = data.Name
		}
	}

	go h.Report(errors.ReportErrorOptions{
		Error:   err.Error(),
		Message: fmt.Sprintf("Fallo ejecutando el comando '%s'", commandName),
	})
}

// onDeploy persists the deployment for auditing and announces it over MQTT
func onDeploy(bot *appcommands.Bot, result *appcommands.DeployResult) {
	record := models.DeploymentRecord{
		DeployID:    uuid.NewString(),
		DeployedAt:  time.Now(),
		GlobalCount: len(result.Global),
		GuildCounts: make(map[string]int, len(result.Guilds)),
		DurationMs:  result.Duration.Milliseconds(),
	}

	if bot.Session != nil && bot.Session.State != nil && bot.Session.State.User != nil {
		record.BotID = bot.Session.State.User.ID
	}

	appendCommands := func(deployed []appcommands.DeployedCommand, guildID string) {
		reg := bot.GlobalRegistry()
		if guildID != "" {
			reg, _ = bot.GuildRegistry(guildID)
		}
		for _, dc := range deployed {
			kind := "group"
			if reg != nil {
				if entry, ok := reg.ByName(dc.Name); ok {
					if cmd, isCmd := entry.(*appcommands.Command); isCmd {
						kind = cmd.Kind().String()
					}
				}
			}
			record.Commands = append(record.Commands, models.DeployedCommand{
				CommandID: dc.ID,
				Name:      dc.Name,
				Kind:      kind,
				GuildID:   guildID,
			})
		}
	}

	appendCommands(result.Global, "")
	for guildID, deployed := range result.Guilds {
		record.GuildCounts[guildID] = len(deployed)
		appendCommands(deployed, guildID)
	}

	if err := database.RecordDeployment(record); err != nil {
		logger.Debug("No se pudo registrar el despliegue: "+err.Error(), "Telemetry")
	}

	if mc := mqtt.Get(); mc != nil && mc.IsConnected() {
		if err := mc.Publish("pancycmd/events/deploy", record); err != nil {
			logger.Debug("No se pudo publicar el evento de despliegue: "+err.Error(), "Telemetry")
		}
	}
}

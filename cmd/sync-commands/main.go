// Package main provides a utility to manage the bot's application commands
// from the terminal, without starting the full bot.
//
// Usage:
//   go run cmd/sync-commands/main.go [options]
//
// Options:
//   -list           List the commands currently registered with Discord
//   -clean          Remove all commands without registering new ones
//   -deploy         Deploy the current command set (default behavior)
//   -guild <id>     Target a specific guild for -list/-clean (deploy always
//                   covers every registered scope)
//   -json           Print machine-readable output
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/PancyStudios/PancyCommandsGo/internal/commands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/config"
	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
	json "github.com/goccy/go-json"
)

// commandSummary is the -json output shape for a single command
type commandSummary struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
}

func main() {
	// Parse command line flags
	listCmd := flag.Bool("list", false, "List the commands currently registered with Discord")
	cleanCmd := flag.Bool("clean", false, "Remove all commands without registering new ones")
	deployCmd := flag.Bool("deploy", false, "Deploy the current command set")
	guildID := flag.String("guild", "", "Target a specific guild (leave empty for global)")
	jsonOut := flag.Bool("json", false, "Print machine-readable output")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando utilidad de sincronización de comandos...", "SyncCommands")

	// Create the bot without opening the gateway. Everything this tool
	// does goes over the REST API.
	bot, err := appcommands.NewBot(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "SyncCommands")
		os.Exit(1)
	}

	me, err := bot.Session.User("@me")
	if err != nil {
		logger.Critical(fmt.Sprintf("Error connecting to Discord: %v", err), "SyncCommands")
		os.Exit(1)
	}

	logger.Success("Autenticado como: "+me.Username, "SyncCommands")

	// Register commands to know what we should have
	if err := commands.RegisterAll(bot, cfg.DevGuildID); err != nil {
		logger.Critical(fmt.Sprintf("Error registrando comandos: %v", err), "SyncCommands")
		os.Exit(1)
	}

	// Execute the requested action
	switch {
	case *listCmd:
		listCommands(bot, me.ID, *guildID, *jsonOut)
	case *cleanCmd:
		cleanCommands(bot, me.ID, *guildID)
	case *deployCmd:
		deployCommands(bot, me.ID, *jsonOut)
	default:
		// Default: deploy commands
		deployCommands(bot, me.ID, *jsonOut)
	}

	logger.Success("Operación completada exitosamente", "SyncCommands")
}

// listCommands lists all commands registered with Discord
func listCommands(bot *appcommands.Bot, appID, guildID string, jsonOut bool) {
	logger.Info("📋 Listando comandos registrados...", "SyncCommands")

	if guildID != "" {
		logger.Info(fmt.Sprintf("Obteniendo comandos del servidor: %s", guildID), "SyncCommands")
	} else {
		logger.Info("Obteniendo comandos globales", "SyncCommands")
	}

	cmds, err := bot.Session.ApplicationCommands(appID, guildID)
	if err != nil {
		logger.Error(fmt.Sprintf("Error obteniendo comandos: %v", err), "SyncCommands")
		return
	}

	if len(cmds) == 0 {
		logger.Info("No hay comandos registrados", "SyncCommands")
		return
	}

	if jsonOut {
		printJSON(summarize(cmds))
		return
	}

	logger.Info(fmt.Sprintf("Comandos encontrados: %d", len(cmds)), "SyncCommands")
	for i, cmd := range cmds {
		logger.Info(fmt.Sprintf("  %d. /%s - %s (ID: %s)", i+1, cmd.Name, cmd.Description, cmd.ID), "SyncCommands")
	}
}

// cleanCommands removes all commands from Discord via an empty bulk overwrite
func cleanCommands(bot *appcommands.Bot, appID, guildID string) {
	logger.Info("🧹 Eliminando todos los comandos...", "SyncCommands")

	if guildID != "" {
		logger.Info(fmt.Sprintf("Eliminando comandos del servidor: %s", guildID), "SyncCommands")
	} else {
		logger.Info("Eliminando comandos globales", "SyncCommands")
	}

	_, err := bot.Session.ApplicationCommandBulkOverwrite(appID, guildID, []*discordgo.ApplicationCommand{})
	if err != nil {
		logger.Error(fmt.Sprintf("Error eliminando comandos: %v", err), "SyncCommands")
		return
	}

	logger.Success("✅ Todos los comandos han sido eliminados", "SyncCommands")
}

// deployCommands pushes the current command set to Discord. The bulk
// overwrite drops anything stale on its own, so there is no separate
// cleanup step.
func deployCommands(bot *appcommands.Bot, appID string, jsonOut bool) {
	logger.Info("🔄 Desplegando comandos...", "SyncCommands")

	result, err := bot.Deploy(bot.Session, appID)
	if err != nil {
		logger.Error(fmt.Sprintf("Error desplegando comandos: %v", err), "SyncCommands")
		return
	}

	if jsonOut {
		view := struct {
			Global []deployedSummary            `json:"global"`
			Guilds map[string][]deployedSummary `json:"guilds"`
		}{
			Global: summarizeDeployed(result.Global),
			Guilds: make(map[string][]deployedSummary, len(result.Guilds)),
		}
		for gid, deps := range result.Guilds {
			view.Guilds[gid] = summarizeDeployed(deps)
		}
		printJSON(view)
		return
	}

	logger.Success(fmt.Sprintf("✅ Comandos globales desplegados: %d", len(result.Global)), "SyncCommands")
	for _, dep := range result.Global {
		logger.Info(fmt.Sprintf("  /%s (ID: %s)", dep.Name, dep.ID), "SyncCommands")
	}
	for gid, deps := range result.Guilds {
		logger.Success(fmt.Sprintf("✅ Comandos desplegados en %s: %d", gid, len(deps)), "SyncCommands")
		for _, dep := range deps {
			logger.Info(fmt.Sprintf("  /%s (ID: %s)", dep.Name, dep.ID), "SyncCommands")
		}
	}
}

type deployedSummary struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

func summarize(cmds []*discordgo.ApplicationCommand) []commandSummary {
	out := make([]commandSummary, 0, len(cmds))
	for _, cmd := range cmds {
		out = append(out, commandSummary{Name: cmd.Name, ID: cmd.ID, Description: cmd.Description})
	}
	return out
}

func summarizeDeployed(deps []appcommands.DeployedCommand) []deployedSummary {
	out := make([]deployedSummary, 0, len(deps))
	for _, dep := range deps {
		out = append(out, deployedSummary{Name: dep.Name, ID: dep.ID})
	}
	return out
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Error(fmt.Sprintf("Error generando JSON: %v", err), "SyncCommands")
		return
	}
	fmt.Println(string(data))
}

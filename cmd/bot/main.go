// Package main is the entry point for the PancyCommands Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PancyStudios/PancyCommandsGo/internal/commands"
	"github.com/PancyStudios/PancyCommandsGo/internal/events"
	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/config"
	"github.com/PancyStudios/PancyCommandsGo/pkg/database"
	"github.com/PancyStudios/PancyCommandsGo/pkg/errors"
	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/PancyStudios/PancyCommandsGo/pkg/mqtt"
	"github.com/PancyStudios/PancyCommandsGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

	logger.System("Iniciando PancyCommands Go...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var bot *appcommands.Bot
	errors.Init(cfg.ErrorWebhook, func() {
		if bot != nil {
			err := bot.Stop()
			if err != nil {
				return
			}
		}
	})

	// Initialize database
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
		// Continue without database- it will attempt to reconnect
	}
	defer func() {
		if db != nil {
			err := db.Disconnect()
			if err != nil {
				return
			}
		}
	}()

	// Initialize global DataManagers
	if db != nil {
		database.InitGlobalDataManagers(db)

		// Load usage counters at startup and start auto-refresh
		if err := database.InitUsageCounters(); err != nil {
			logger.Warn(fmt.Sprintf("Error inicializando contadores de uso: %v", err), "Main")
		}
		database.StartUsageCounterRefresh()
		defer database.StopUsageCounterRefresh()
	}

	// Initialize MQTT
	mqttClientID := "pancycmd"
	if !cfg.IsProd() {
		mqttClientID = "pancycmd_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Initialize web server
	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize the command bot
	bot, err = appcommands.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}
	bot.LogDeployments(cfg.LogAppCommands)

	// Register commands using the commands package
	if err := commands.RegisterAll(bot, cfg.DevGuildID); err != nil {
		logger.Critical(fmt.Sprintf("Error registrando comandos: %v", err), "Main")
		os.Exit(1)
	}

	// Register events using the events package
	events.RegisterAll(bot)

	// Start the bot. Deployment happens when the ready event arrives.
	if err := bot.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(bot *appcommands.Bot) {
		err := bot.Stop()
		if err != nil {
			return
		}
	}(bot)

	logger.Success("PancyCommands Go iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando PancyCommands Go...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}

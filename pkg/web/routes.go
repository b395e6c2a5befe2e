// Package web provides API routes for the web server.
package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/config"
	"github.com/PancyStudios/PancyCommandsGo/pkg/database"
	"github.com/PancyStudios/PancyCommandsGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/commands", commandsHandler)
		api.GET("/commands/usage", usageHandler)
		api.GET("/deployments", deploymentsHandler)
	}
}

// statusHandler returns the bot, database and MQTT status
func statusHandler(c *gin.Context) {
	bot := appcommands.Get()

	dbStatus := "🔴 | Desconectado"
	dbOnline := false
	if db := database.Get(); db != nil {
		dbStatus, dbOnline = db.GetStatus()
	}

	mqttOnline := false
	if mc := mqtt.Get(); mc != nil {
		mqttOnline = mc.IsConnected()
	}

	botOnline := false
	uptime := float64(0)
	if bot != nil {
		botOnline = bot.IsReady()
		if !bot.StartTime.IsZero() {
			uptime = time.Since(bot.StartTime).Seconds()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": config.Version,
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"mqtt": gin.H{
			"isOnline": mqttOnline,
		},
		"bot": gin.H{
			"isOnline":      botOnline,
			"uptimeSeconds": uptime,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "PancyCommands Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	bot := appcommands.Get()

	if bot == nil || !bot.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := bot.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        bot.GuildCount(),
		"isReady":       bot.IsReady(),
	})
}

// commandView is the public shape of a registered command
type commandView struct {
	Name        string                                     `json:"name"`
	ID          string                                     `json:"id,omitempty"`
	Type        string                                     `json:"type"`
	Description string                                     `json:"description,omitempty"`
	Subcommands []string                                   `json:"subcommands,omitempty"`
	Permissions []*discordgo.ApplicationCommandPermissions `json:"permissions,omitempty"`
}

// commandsHandler exposes the registered command inventory, including the
// ids assigned on the last deployment
func commandsHandler(c *gin.Context) {
	bot := appcommands.Get()

	if bot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	guilds := gin.H{}
	for _, guildID := range bot.GuildIDs() {
		if reg, ok := bot.GuildRegistry(guildID); ok {
			guilds[guildID] = buildRegistryView(reg)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"global": buildRegistryView(bot.GlobalRegistry()),
		"guilds": guilds,
	})
}

// buildRegistryView flattens a registry into serializable command views
func buildRegistryView(reg *appcommands.Registry) []commandView {
	entries := reg.Commands()
	views := make([]commandView, 0, len(entries))

	for _, entry := range entries {
		switch e := entry.(type) {
		case *appcommands.Command:
			views = append(views, commandView{
				Name:        e.Name(),
				ID:          e.ID(),
				Type:        e.Kind().String(),
				Description: e.Description(),
				Permissions: e.SerializePermissions(),
			})
		case *appcommands.Group:
			views = append(views, commandView{
				Name:        e.Name(),
				ID:          e.ID(),
				Type:        "group",
				Description: e.Description(),
				Subcommands: groupPaths(e),
			})
		}
	}

	return views
}

// groupPaths lists the full invocation paths inside a group
func groupPaths(g *appcommands.Group) []string {
	var paths []string
	for _, cmd := range g.Commands() {
		paths = append(paths, g.Name()+" "+cmd.Name())
	}
	for _, sub := range g.SubGroups() {
		for _, cmd := range sub.Commands() {
			paths = append(paths, g.Name()+" "+sub.Name()+" "+cmd.Name())
		}
	}
	return paths
}

// usageHandler returns command usage statistics
func usageHandler(c *gin.Context) {
	top, err := database.GetTopCommands(10)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Database Offline",
			"message": "No se pudieron obtener las estadísticas de uso.",
		})
		return
	}

	last24h, err := database.GetUsageSince(time.Now().Add(-24 * time.Hour))
	if err != nil {
		last24h = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   database.GetTotalUsageCount(),
		"last24h": last24h,
		"top":     top,
	})
}

// deploymentsHandler returns the most recent command deployments
func deploymentsHandler(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	history, err := database.GetDeploymentHistory(limit)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Database Offline",
			"message": "No se pudo obtener el historial de despliegues.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deployments": history,
	})
}

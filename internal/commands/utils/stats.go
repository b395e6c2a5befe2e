package utils

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/config"
	"github.com/PancyStudios/PancyCommandsGo/pkg/database"
	"github.com/bwmarrin/discordgo"
)

// createStatsCommand creates the /stats command
func createStatsCommand() (*appcommands.Command, error) {
	return appcommands.NewSlashCommand(
		"stats",
		"Muestra estadísticas del bot",
		statsHandler,
	)
}

// statsHandler handles the /stats command
func statsHandler(ctx *appcommands.Context, _ []appcommands.ResolvedOption) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	numGoroutines := runtime.NumGoroutine()
	numCPU := runtime.NumCPU()

	goVersion := strings.TrimPrefix(runtime.Version(), "go")

	guildCount := ctx.Bot.GuildCount()
	memberCount := 0
	for _, guild := range ctx.Session.State.Guilds {
		memberCount += guild.MemberCount
	}

	uptime := time.Since(ctx.Bot.StartTime)

	embed := &discordgo.MessageEmbed{
		Title: "📊 Estadísticas del Bot",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🤖 Versión del Bot",
				Value:  config.Version,
				Inline: true,
			},
			{
				Name:   "🐹 Versión de Go",
				Value:  goVersion,
				Inline: true,
			},
			{
				Name:   "📚 Versión de DiscordGo",
				Value:  discordgo.VERSION,
				Inline: true,
			},
			{
				Name:   "🖥 Uso de RAM",
				Value:  fmt.Sprintf("%.2f MB", float64(m.Alloc)/1024/1024),
				Inline: true,
			},
			{
				Name:   "⚙ Uso de CPU",
				Value:  fmt.Sprintf("%d Goroutines / %d CPUs", numGoroutines, numCPU),
				Inline: true,
			},
			{
				Name:   "⏱ Uptime",
				Value:  formatDuration(uptime),
				Inline: true,
			},
			{
				Name:   "🏠 Guilds",
				Value:  fmt.Sprintf("%d", guildCount),
				Inline: true,
			},
			{
				Name:   "👥 Miembros",
				Value:  fmt.Sprintf("%d", memberCount),
				Inline: true,
			},
			{
				Name:   "⚡ Comandos ejecutados",
				Value:  fmt.Sprintf("%d", database.GetTotalUsageCount()),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "💫 - Developed by PancyStudios",
			IconURL: ctx.Session.State.User.AvatarURL(""),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	return ctx.ReplyEmbed(embed)
}

// formatDuration formats a time.Duration into a human-readable string
func formatDuration(dur time.Duration) string {
	days := int(dur.Hours() / 24)
	hours := int(dur.Hours()) % 24
	minutes := int(dur.Minutes()) % 60
	seconds := int(dur.Seconds()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d días", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d horas", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minutos", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%d segundos", seconds))
	}

	if len(parts) == 0 {
		return "menos de un segundo"
	}
	return strings.Join(parts, ", ")
}

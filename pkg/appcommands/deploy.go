package appcommands

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// CommandAPI is the slice of the REST surface deployment needs. It is
// satisfied by *discordgo.Session.
type CommandAPI interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// DeployedCommand is one name/id pair confirmed by the platform.
type DeployedCommand struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// DeployResult describes one finished deployment cycle per scope.
type DeployResult struct {
	Global   []DeployedCommand            `json:"global"`
	Guilds   map[string][]DeployedCommand `json:"guilds"`
	Duration time.Duration                `json:"duration"`
}

// Total returns the number of commands confirmed across every scope.
func (d *DeployResult) Total() int {
	n := len(d.Global)
	for _, guild := range d.Guilds {
		n += len(guild)
	}
	return n
}

// Deploy pushes every registered command to the platform: one bulk
// overwrite for the global scope, then one per guild scope in sorted guild
// order, writing the platform-assigned ids back onto the local entries.
// Ids are matched by exact name; response entries matching nothing locally
// are skipped, and unmatched local entries keep their previous id. Any
// transport failure aborts the run; the next deployment rebuilds every
// scope from scratch, so partial state self-heals.
func (r *Registrar) Deploy(api CommandAPI, appID string) (*DeployResult, error) {
	start := time.Now()
	result := &DeployResult{Guilds: make(map[string][]DeployedCommand)}

	assigned, err := api.ApplicationCommandBulkOverwrite(appID, "", r.globalBatch())
	if err != nil {
		return nil, fmt.Errorf("global command deployment failed: %w", err)
	}
	result.Global = r.backfill("", assigned)

	for _, guildID := range r.GuildIDs() {
		assigned, err := api.ApplicationCommandBulkOverwrite(appID, guildID, r.guildBatch(guildID))
		if err != nil {
			return nil, fmt.Errorf("command deployment for guild %s failed: %w", guildID, err)
		}
		result.Guilds[guildID] = r.backfill(guildID, assigned)
	}

	result.Duration = time.Since(start)
	return result, nil
}

// globalBatch serializes the global registry in insertion order. Guild
// scoped group instances never belong in the global payload.
func (r *Registrar) globalBatch() []*discordgo.ApplicationCommand {
	r.mu.RLock()
	defer r.mu.RUnlock()
	batch := make([]*discordgo.ApplicationCommand, 0, r.global.Len())
	for _, entry := range r.global.Commands() {
		if g, ok := entry.(*Group); ok && g.IsGuild() {
			continue
		}
		batch = append(batch, entry.Serialize())
	}
	return batch
}

// guildBatch serializes one guild registry in insertion order.
func (r *Registrar) guildBatch(guildID string) []*discordgo.ApplicationCommand {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.guilds[guildID]
	if !ok {
		return nil
	}
	batch := make([]*discordgo.ApplicationCommand, 0, reg.Len())
	for _, entry := range reg.Commands() {
		batch = append(batch, entry.Serialize())
	}
	return batch
}

// backfill writes platform-assigned ids onto local entries, matching by
// exact name.
func (r *Registrar) backfill(guildID string, assigned []*discordgo.ApplicationCommand) []DeployedCommand {
	r.mu.RLock()
	reg := r.global
	if guildID != "" {
		reg = r.guilds[guildID]
	}
	r.mu.RUnlock()
	deployed := make([]DeployedCommand, 0, len(assigned))
	if reg == nil {
		return deployed
	}
	for _, remote := range assigned {
		entry, ok := reg.ByName(remote.Name)
		if !ok {
			logger.Debug("Respuesta de despliegue sin comando local: "+remote.Name, "AppCommands")
			continue
		}
		entry.setID(remote.ID)
		deployed = append(deployed, DeployedCommand{Name: remote.Name, ID: remote.ID})
	}
	return deployed
}

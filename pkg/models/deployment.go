package models

import "time"

// DeployedCommand represents one command as published to the platform
type DeployedCommand struct {
	CommandID string `bson:"command_id" json:"commandId"` // ID asignado por la plataforma
	Name      string `bson:"name" json:"name"`
	Kind      string `bson:"kind" json:"kind"`
	GuildID   string `bson:"guild_id,omitempty" json:"guildId,omitempty"` // Vacío para comandos globales
}

// DeploymentRecord represents one full deployment, stored for auditing
type DeploymentRecord struct {
	DeployID    string            `bson:"deploy_id" json:"deployId"`
	DeployedAt  time.Time         `bson:"deployed_at" json:"deployedAt"`
	BotID       string            `bson:"bot_id" json:"botId"`
	GlobalCount int               `bson:"global_count" json:"globalCount"`
	GuildCounts map[string]int    `bson:"guild_counts,omitempty" json:"guildCounts,omitempty"`
	DurationMs  int64             `bson:"duration_ms" json:"durationMs"`
	Commands    []DeployedCommand `bson:"commands" json:"commands"`
}

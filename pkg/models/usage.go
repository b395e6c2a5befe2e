package models

import "time"

// CommandKindName is the human readable kind of an invoked command
type CommandKindName string

const (
	CommandKindSlash   CommandKindName = "slash"
	CommandKindUser    CommandKindName = "user"
	CommandKindMessage CommandKindName = "message"
)

// CommandUsage represents a single command invocation, stored for telemetry
type CommandUsage struct {
	CommandName string          `bson:"command_name"` // Nombre del comando invocado
	GroupPath   string          `bson:"group_path,omitempty"`
	Kind        CommandKindName `bson:"kind"`
	GuildID     string          `bson:"guild_id,omitempty"` // Vacío en mensajes directos
	UserID      string          `bson:"user_id"`
	InvokedAt   time.Time       `bson:"invoked_at"`
}

// CommandUsageCount aggregates invocations per command name
type CommandUsageCount struct {
	CommandName string `bson:"_id" json:"commandName"`
	Count       int64  `bson:"count" json:"count"`
}

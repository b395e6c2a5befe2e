package appcommands

import (
	"github.com/bwmarrin/discordgo"
)

// EntityResolver resolves ids carried in interaction payloads to platform
// entities. Lookups return nil when the entity cannot be resolved; Message
// is the one call that always goes to the network and reports its error.
type EntityResolver interface {
	User(id string) *discordgo.User
	Channel(guildID, id string) *discordgo.Channel
	Role(guildID, id string) *discordgo.Role
	Message(channelID, id string) (*discordgo.Message, error)
}

// sessionResolver answers lookups from the session state cache, falling
// back to REST where the cache cannot answer.
type sessionResolver struct {
	session *discordgo.Session
}

func (sr *sessionResolver) User(id string) *discordgo.User {
	user, err := sr.session.User(id)
	if err != nil {
		return nil
	}
	return user
}

func (sr *sessionResolver) Channel(guildID, id string) *discordgo.Channel {
	if channel, err := sr.session.State.Channel(id); err == nil {
		return channel
	}
	channel, err := sr.session.Channel(id)
	if err != nil {
		return nil
	}
	return channel
}

func (sr *sessionResolver) Role(guildID, id string) *discordgo.Role {
	if guildID == "" {
		return nil
	}
	if role, err := sr.session.State.Role(guildID, id); err == nil {
		return role
	}
	roles, err := sr.session.GuildRoles(guildID)
	if err != nil {
		return nil
	}
	for _, role := range roles {
		if role.ID == id {
			return role
		}
	}
	return nil
}

func (sr *sessionResolver) Message(channelID, id string) (*discordgo.Message, error) {
	return sr.session.ChannelMessage(channelID, id)
}

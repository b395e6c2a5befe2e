package appcommands

import (
	"fmt"

	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// HandleInteraction routes one inbound interaction. The Bot installs it on
// the session; it is exported for embedders wiring their own handlers.
// discordgo runs every handler on its own goroutine, so dispatches overlap
// freely and never block each other.
func (b *Bot) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.dispatchCommand(s, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.dispatchAutocomplete(s, i)
	}
}

func (b *Bot) dispatchCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	switch data.CommandType {
	case discordgo.ChatApplicationCommand:
		b.dispatchSlash(s, i, data)
	case discordgo.UserApplicationCommand:
		b.dispatchUser(s, i, data)
	case discordgo.MessageApplicationCommand:
		b.dispatchMessage(s, i, data)
	}
}

func (b *Bot) dispatchSlash(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	ctx := &Context{Session: s, Interaction: i, Bot: b}
	cmd, group, ok := b.resolveSlash(data, i.GuildID)
	if !ok {
		logger.Warn("Comando no encontrado: "+data.Name, "AppCommands")
		b.reportError(ctx, &CommandNotFoundError{Name: data.Name})
		return
	}
	ctx.Group = group
	opts := parseSlashOptions(cmd, data.Options, b.resolver, i.GuildID)

	defer b.recoverHandler(ctx, cmd.name)
	if err := cmd.slashHandler(ctx, opts); err != nil {
		b.reportError(ctx, &HandlerInvocationError{Command: cmd.name, Err: err})
		return
	}
	b.notifyInvoked(ctx, cmd)
}

func (b *Bot) dispatchUser(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	ctx := &Context{Session: s, Interaction: i, Bot: b}
	cmd, ok := b.lookupContextCommand(KindUser, data.ID, data.Name, i.GuildID)
	if !ok {
		logger.Warn("Comando de usuario no encontrado: "+data.Name, "AppCommands")
		b.reportError(ctx, &CommandNotFoundError{Name: data.Name})
		return
	}
	target := b.resolver.User(data.TargetID)

	defer b.recoverHandler(ctx, cmd.name)
	if err := cmd.userHandler(ctx, target); err != nil {
		b.reportError(ctx, &HandlerInvocationError{Command: cmd.name, Err: err})
		return
	}
	b.notifyInvoked(ctx, cmd)
}

func (b *Bot) dispatchMessage(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	ctx := &Context{Session: s, Interaction: i, Bot: b}
	cmd, ok := b.lookupContextCommand(KindMessage, data.ID, data.Name, i.GuildID)
	if !ok {
		logger.Warn("Comando de mensaje no encontrado: "+data.Name, "AppCommands")
		b.reportError(ctx, &CommandNotFoundError{Name: data.Name})
		return
	}
	target, err := b.resolver.Message(i.ChannelID, data.TargetID)
	if err != nil {
		b.reportError(ctx, fmt.Errorf("fetching target message %s: %w", data.TargetID, err))
		return
	}

	defer b.recoverHandler(ctx, cmd.name)
	if err := cmd.msgHandler(ctx, target); err != nil {
		b.reportError(ctx, &HandlerInvocationError{Command: cmd.name, Err: err})
		return
	}
	b.notifyInvoked(ctx, cmd)
}

func (b *Bot) dispatchAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	cmd, group, ok := b.resolveSlash(data, i.GuildID)
	if !ok || cmd.autocomplete == nil {
		return
	}
	ctx := &Context{Session: s, Interaction: i, Bot: b, Group: group}

	defer b.recoverHandler(ctx, cmd.name)
	if err := cmd.autocomplete(ctx); err != nil {
		b.reportError(ctx, &HandlerInvocationError{Command: cmd.name, Err: err})
	}
}

// recoverHandler converts a handler panic into a reported invocation
// error so a broken command can never take down the gateway goroutines.
func (b *Bot) recoverHandler(ctx *Context, name string) {
	if rec := recover(); rec != nil {
		b.reportError(ctx, &HandlerInvocationError{Command: name, Err: fmt.Errorf("panic: %v", rec)})
	}
}

// resolveSlash finds the invoked slash command: name lookup in the global
// registry, then in the invoking guild's registry. A bare command resolves
// to itself; a group descends through the interaction's option tree.
func (b *Bot) resolveSlash(data discordgo.ApplicationCommandInteractionData, guildID string) (*Command, *Group, bool) {
	entry, ok := b.Lookup(data.Name, guildID)
	if !ok {
		return nil, nil, false
	}
	switch target := entry.(type) {
	case *Command:
		if target.kind != KindSlash {
			return nil, nil, false
		}
		return target, nil, true
	case *Group:
		return resolveGroupCommand(target, data.Options)
	}
	return nil, nil, false
}

// resolveGroupCommand scans the interaction options for the sub-command
// (wire type 1) or sub-command-group (wire type 2) markers selecting the
// final command inside the group.
func resolveGroupCommand(group *Group, options []*discordgo.ApplicationCommandInteractionDataOption) (*Command, *Group, bool) {
	for _, opt := range options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommand:
			if cmd, ok := group.Command(opt.Name); ok {
				return cmd, group, true
			}
		case discordgo.ApplicationCommandOptionSubCommandGroup:
			sub, ok := group.SubGroup(opt.Name)
			if !ok {
				continue
			}
			for _, nested := range opt.Options {
				if nested.Type != discordgo.ApplicationCommandOptionSubCommand {
					continue
				}
				if cmd, ok := sub.Command(nested.Name); ok {
					return cmd, group, true
				}
			}
		}
	}
	return nil, nil, false
}

// parseSlashOptions converts the interaction's raw option tree into the
// declaration-ordered resolved list the handler receives. Sub-command and
// sub-command-group markers are descended into, leaf values are converted
// by wire type, and omitted options are filled with their declared default
// so the result always carries one entry per declared option.
func parseSlashOptions(cmd *Command, raw []*discordgo.ApplicationCommandInteractionDataOption, resolver EntityResolver, guildID string) []ResolvedOption {
	supplied := make(map[string]ResolvedOption)
	collectOptions(raw, supplied, resolver, guildID)

	out := make([]ResolvedOption, 0, len(cmd.options))
	for _, declared := range cmd.options {
		if val, ok := supplied[declared.name]; ok {
			out = append(out, val)
			continue
		}
		out = append(out, ResolvedOption{
			Name:  declared.name,
			Type:  declared.typ,
			Value: declared.defaultValue,
		})
	}
	return out
}

func collectOptions(raw []*discordgo.ApplicationCommandInteractionDataOption, supplied map[string]ResolvedOption, resolver EntityResolver, guildID string) {
	for _, opt := range raw {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommand, discordgo.ApplicationCommandOptionSubCommandGroup:
			collectOptions(opt.Options, supplied, resolver, guildID)
		default:
			supplied[opt.Name] = ResolvedOption{
				Name:  opt.Name,
				Type:  opt.Type,
				Value: convertOptionValue(opt, resolver, guildID),
			}
		}
	}
}

// convertOptionValue maps a raw wire value to its runtime form: entity
// options resolve through the EntityResolver, integers decode from JSON
// float64, everything else passes through as the transport typed it.
func convertOptionValue(opt *discordgo.ApplicationCommandInteractionDataOption, resolver EntityResolver, guildID string) interface{} {
	switch opt.Type {
	case discordgo.ApplicationCommandOptionUser:
		if id, ok := opt.Value.(string); ok && resolver != nil {
			return resolver.User(id)
		}
	case discordgo.ApplicationCommandOptionChannel:
		if id, ok := opt.Value.(string); ok && resolver != nil {
			return resolver.Channel(guildID, id)
		}
	case discordgo.ApplicationCommandOptionRole:
		if id, ok := opt.Value.(string); ok && resolver != nil {
			return resolver.Role(guildID, id)
		}
	case discordgo.ApplicationCommandOptionInteger:
		if f, ok := opt.Value.(float64); ok {
			return int64(f)
		}
	}
	return opt.Value
}

// Package appcommands provides the application command model: commands of
// the three platform kinds, their builders and their wire serialization.
package appcommands

import (
	"sort"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// CommandKind discriminates the three application command variants. The
// values match the platform's command-type field.
type CommandKind int

const (
	KindSlash   CommandKind = 1
	KindUser    CommandKind = 2
	KindMessage CommandKind = 3
)

// String returns the lowercase kind name.
func (k CommandKind) String() string {
	switch k {
	case KindSlash:
		return "slash"
	case KindUser:
		return "user"
	case KindMessage:
		return "message"
	default:
		return "unknown"
	}
}

// SlashHandler runs a slash command. It receives one resolved option per
// declared option, in declaration order.
type SlashHandler func(ctx *Context, opts []ResolvedOption) error

// UserHandler runs a user context command against the targeted user. The
// user may be nil when the target cannot be resolved from the cache.
type UserHandler func(ctx *Context, user *discordgo.User) error

// MessageHandler runs a message context command against the targeted
// message, fetched before invocation.
type MessageHandler func(ctx *Context, message *discordgo.Message) error

// AutocompleteHandler answers autocomplete interactions for a slash
// command, typically via ctx.RespondChoices.
type AutocompleteHandler func(ctx *Context) error

// Command is one application command of any kind. Construct through
// NewSlashCommand, NewUserCommand or NewMessageCommand; the zero value is
// not usable.
type Command struct {
	kind        CommandKind
	name        string
	description string
	options     []*Option

	slashHandler SlashHandler
	userHandler  UserHandler
	msgHandler   MessageHandler
	autocomplete AutocompleteHandler

	allowedUsers map[string]bool
	allowedRoles map[string]bool
	extras       map[string]interface{}
	parent       *GroupDefinition

	mu sync.RWMutex
	id string
}

// NewSlashCommand validates and creates a slash command. The name is
// lowercased; an empty description falls back to the name and the result
// must be between 1 and 100 characters.
func NewSlashCommand(name, description string, handler SlashHandler, options ...*Option) (*Command, error) {
	if handler == nil {
		return nil, invalidArgf("slash command %q has no handler bound", name)
	}
	name = strings.ToLower(name)
	description = fallbackDescription(name, description)
	if err := validateDescription(name, description); err != nil {
		return nil, err
	}
	for _, o := range options {
		if o == nil {
			return nil, invalidArgf("slash command %q declares a nil option", name)
		}
	}
	return &Command{
		kind:         KindSlash,
		name:         name,
		description:  description,
		options:      options,
		slashHandler: handler,
	}, nil
}

// NewUserCommand validates and creates a user context command. The name is
// lowercased; the description defaults to the name and is kept for help
// surfaces only, context commands carry no description on the wire.
func NewUserCommand(name string, handler UserHandler) (*Command, error) {
	if handler == nil {
		return nil, invalidArgf("user command %q has no handler bound", name)
	}
	name = strings.ToLower(name)
	description := fallbackDescription(name, "")
	if err := validateDescription(name, description); err != nil {
		return nil, err
	}
	return &Command{
		kind:        KindUser,
		name:        name,
		description: description,
		userHandler: handler,
	}, nil
}

// NewMessageCommand validates and creates a message context command. The
// name is kept verbatim.
func NewMessageCommand(name string, handler MessageHandler) (*Command, error) {
	if handler == nil {
		return nil, invalidArgf("message command %q has no handler bound", name)
	}
	description := fallbackDescription(name, "")
	if err := validateDescription(name, description); err != nil {
		return nil, err
	}
	return &Command{
		kind:        KindMessage,
		name:        name,
		description: description,
		msgHandler:  handler,
	}, nil
}

func fallbackDescription(name, description string) string {
	if description == "" {
		return name
	}
	return description
}

func validateDescription(name, description string) error {
	if len(description) <= 1 || len(description) >= 100 {
		return invalidArgf("command %q description must be between 1 and 100 characters, got %d", name, len(description))
	}
	return nil
}

// WithAllowedUsers sets the per-user permission overrides (user id to
// allow flag) emitted by SerializePermissions.
func (c *Command) WithAllowedUsers(users map[string]bool) *Command {
	c.allowedUsers = users
	return c
}

// WithAllowedRoles sets the per-role permission overrides.
func (c *Command) WithAllowedRoles(roles map[string]bool) *Command {
	c.allowedRoles = roles
	return c
}

// WithExtras attaches an opaque key/value bag to the command.
func (c *Command) WithExtras(extras map[string]interface{}) *Command {
	c.extras = extras
	return c
}

// WithAutocomplete sets the autocomplete handler. Only slash commands
// receive autocomplete interactions.
func (c *Command) WithAutocomplete(handler AutocompleteHandler) *Command {
	c.autocomplete = handler
	return c
}

// Kind returns the command's variant discriminant.
func (c *Command) Kind() CommandKind { return c.kind }

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// Description returns the command description.
func (c *Command) Description() string { return c.description }

// Options returns the declared options in declaration order.
func (c *Command) Options() []*Option {
	out := make([]*Option, len(c.options))
	copy(out, c.options)
	return out
}

// Extras returns the opaque key/value bag attached to the command.
func (c *Command) Extras() map[string]interface{} { return c.extras }

// Parent returns the owning group definition, or nil for a top-level
// command.
func (c *Command) Parent() *GroupDefinition {
	return c.parent
}

// ID returns the platform-assigned command id, or "" before deployment.
func (c *Command) ID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

func (c *Command) setID(id string) {
	c.mu.Lock()
	c.id = id
	c.mu.Unlock()
}

// Serialize builds the registration payload. Context menu commands carry
// only their type and name on the wire.
func (c *Command) Serialize() *discordgo.ApplicationCommand {
	switch c.kind {
	case KindUser:
		return &discordgo.ApplicationCommand{
			Type: discordgo.UserApplicationCommand,
			Name: escapeText(c.name),
		}
	case KindMessage:
		return &discordgo.ApplicationCommand{
			Type: discordgo.MessageApplicationCommand,
			Name: escapeText(c.name),
		}
	}
	out := &discordgo.ApplicationCommand{
		Type:        discordgo.ChatApplicationCommand,
		Name:        escapeText(c.name),
		Description: escapeText(c.description),
	}
	for _, o := range c.options {
		out.Options = append(out.Options, o.Serialize())
	}
	return out
}

// asSubCommandOption renders the command as a sub-command slot inside a
// group payload.
func (c *Command) asSubCommandOption() *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        escapeText(c.name),
		Description: escapeText(c.description),
	}
	for _, o := range c.options {
		opt.Options = append(opt.Options, o.Serialize())
	}
	return opt
}

// SerializePermissions builds the permission overwrite payload from the
// allow maps: user entries first, then role entries, id-sorted within each
// class so the output is deterministic. Returns nil when no overrides are
// declared.
func (c *Command) SerializePermissions() []*discordgo.ApplicationCommandPermissions {
	if len(c.allowedUsers) == 0 && len(c.allowedRoles) == 0 {
		return nil
	}
	out := make([]*discordgo.ApplicationCommandPermissions, 0, len(c.allowedUsers)+len(c.allowedRoles))
	for _, id := range sortedKeys(c.allowedUsers) {
		out = append(out, &discordgo.ApplicationCommandPermissions{
			ID:         id,
			Type:       discordgo.ApplicationCommandPermissionTypeUser,
			Permission: c.allowedUsers[id],
		})
	}
	for _, id := range sortedKeys(c.allowedRoles) {
		out = append(out, &discordgo.ApplicationCommandPermissions{
			ID:         id,
			Type:       discordgo.ApplicationCommandPermissionTypeRole,
			Permission: c.allowedRoles[id],
		})
	}
	return out
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

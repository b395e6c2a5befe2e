package appcommands

import (
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// GroupMember is a value that can be declared as a direct child of a
// group: a slash command or a sub-group.
type GroupMember interface {
	memberName() string
}

func (c *Command) memberName() string { return c.name }

func (s *SubGroup) memberName() string { return s.name }

// SubGroup is the second nesting level: a named set of slash commands
// inside a group. Sub-groups cannot nest further.
type SubGroup struct {
	name        string
	description string
	commands    map[string]*Command
	order       []string
}

// NewSubGroup validates and builds a sub-group from an ordered list of
// slash commands. The name is lowercased; child names must be unique.
func NewSubGroup(name, description string, commands ...*Command) (*SubGroup, error) {
	name = strings.ToLower(name)
	if name == "" {
		return nil, invalidArgf("sub-group name must not be empty")
	}
	description = fallbackDescription(name, description)
	if err := validateDescription(name, description); err != nil {
		return nil, err
	}
	sg := &SubGroup{
		name:        name,
		description: description,
		commands:    make(map[string]*Command, len(commands)),
	}
	for _, cmd := range commands {
		if err := sg.adopt(cmd); err != nil {
			return nil, err
		}
	}
	return sg, nil
}

func (s *SubGroup) adopt(cmd *Command) error {
	if cmd == nil {
		return invalidArgf("sub-group %q declares a nil command", s.name)
	}
	if cmd.kind != KindSlash {
		return invalidArgf("sub-group %q member %q must be a slash command", s.name, cmd.name)
	}
	if cmd.slashHandler == nil {
		return invalidArgf("sub-group %q member %q must not be a handlerless command", s.name, cmd.name)
	}
	if _, dup := s.commands[cmd.name]; dup {
		return invalidArgf("sub-group %q already declares a command named %q", s.name, cmd.name)
	}
	s.commands[cmd.name] = cmd
	s.order = append(s.order, cmd.name)
	return nil
}

// Name returns the sub-group name.
func (s *SubGroup) Name() string { return s.name }

// Description returns the sub-group description.
func (s *SubGroup) Description() string { return s.description }

// Command returns a child command by name.
func (s *SubGroup) Command(name string) (*Command, bool) {
	cmd, ok := s.commands[name]
	return cmd, ok
}

// Commands returns the child commands in declaration order.
func (s *SubGroup) Commands() []*Command {
	out := make([]*Command, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.commands[name])
	}
	return out
}

// serialize renders the sub-group as a sub-command-group slot inside a
// group payload.
func (s *SubGroup) serialize() *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
		Name:        escapeText(s.name),
		Description: escapeText(s.description),
	}
	for _, cmd := range s.Commands() {
		opt.Options = append(opt.Options, cmd.asSubCommandOption())
	}
	return opt
}

// GroupDefinition is the immutable declaration of a command group: name,
// description and children. A definition is built once and shared by every
// scoped instance; children are attached by reference, never copied, so a
// command mutated after the definition is built changes for all instances.
type GroupDefinition struct {
	name        string
	description string
	commands    map[string]*Command
	subgroups   map[string]*SubGroup
	order       []string
}

// NewGroup validates and builds a group definition from an ordered list of
// members (slash commands and sub-groups). Names are unique within the
// group; a command already owned by another group is rejected.
func NewGroup(name, description string, members ...GroupMember) (*GroupDefinition, error) {
	name = strings.ToLower(name)
	if name == "" {
		return nil, invalidArgf("group name must not be empty")
	}
	description = fallbackDescription(name, description)
	if err := validateDescription(name, description); err != nil {
		return nil, err
	}
	def := &GroupDefinition{
		name:        name,
		description: description,
		commands:    make(map[string]*Command),
		subgroups:   make(map[string]*SubGroup),
	}
	for _, member := range members {
		if member == nil {
			return nil, invalidArgf("group %q declares a nil member", name)
		}
		switch m := member.(type) {
		case *Command:
			if m == nil {
				return nil, invalidArgf("group %q declares a nil command", name)
			}
			if m.kind != KindSlash {
				return nil, invalidArgf("group %q member %q must be a slash command", name, m.name)
			}
			if m.slashHandler == nil {
				return nil, invalidArgf("group %q member %q must not be a handlerless command", name, m.name)
			}
			if m.parent != nil {
				return nil, invalidArgf("group %q member %q already belongs to group %q", name, m.name, m.parent.name)
			}
			if def.has(m.name) {
				return nil, invalidArgf("group %q already declares a member named %q", name, m.name)
			}
			m.parent = def
			def.commands[m.name] = m
			def.order = append(def.order, m.name)
		case *SubGroup:
			if m == nil {
				return nil, invalidArgf("group %q declares a nil sub-group", name)
			}
			if def.has(m.name) {
				return nil, invalidArgf("group %q already declares a member named %q", name, m.name)
			}
			def.subgroups[m.name] = m
			def.order = append(def.order, m.name)
		}
	}
	return def, nil
}

func (d *GroupDefinition) has(name string) bool {
	if _, ok := d.commands[name]; ok {
		return true
	}
	_, ok := d.subgroups[name]
	return ok
}

// Name returns the group name.
func (d *GroupDefinition) Name() string { return d.name }

// Description returns the group description.
func (d *GroupDefinition) Description() string { return d.description }

// Global instantiates the definition for the global scope.
func (d *GroupDefinition) Global() *Group {
	return &Group{def: d}
}

// ForGuild instantiates the definition for a single guild.
func (d *GroupDefinition) ForGuild(guildID string) *Group {
	return &Group{def: d, guildID: guildID}
}

// Group is one deployable instance of a group definition, either global or
// bound to a single guild. Instances share the definition's children and
// carry only their scope and the platform-assigned id.
type Group struct {
	def     *GroupDefinition
	guildID string

	mu sync.RWMutex
	id string
}

// Definition returns the shared group definition.
func (g *Group) Definition() *GroupDefinition { return g.def }

// Name returns the group name.
func (g *Group) Name() string { return g.def.name }

// Description returns the group description.
func (g *Group) Description() string { return g.def.description }

// GuildID returns the owning guild id, or "" for a global group.
func (g *Group) GuildID() string { return g.guildID }

// IsGuild reports whether the instance is bound to a guild.
func (g *Group) IsGuild() bool { return g.guildID != "" }

// Command returns a direct child command by name.
func (g *Group) Command(name string) (*Command, bool) {
	cmd, ok := g.def.commands[name]
	return cmd, ok
}

// SubGroup returns a child sub-group by name.
func (g *Group) SubGroup(name string) (*SubGroup, bool) {
	sg, ok := g.def.subgroups[name]
	return sg, ok
}

// Commands returns the direct child commands in declaration order.
func (g *Group) Commands() []*Command {
	out := make([]*Command, 0, len(g.def.commands))
	for _, name := range g.def.order {
		if cmd, ok := g.def.commands[name]; ok {
			out = append(out, cmd)
		}
	}
	return out
}

// SubGroups returns the child sub-groups in declaration order.
func (g *Group) SubGroups() []*SubGroup {
	out := make([]*SubGroup, 0, len(g.def.subgroups))
	for _, name := range g.def.order {
		if sg, ok := g.def.subgroups[name]; ok {
			out = append(out, sg)
		}
	}
	return out
}

// ID returns the platform-assigned id, or "" before deployment.
func (g *Group) ID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.id
}

func (g *Group) setID(id string) {
	g.mu.Lock()
	g.id = id
	g.mu.Unlock()
}

// Serialize builds the registration payload: a chat command whose options
// are the child commands as sub-command slots and the sub-groups as
// sub-command-group slots, in declaration order.
func (g *Group) Serialize() *discordgo.ApplicationCommand {
	out := &discordgo.ApplicationCommand{
		Type:        discordgo.ChatApplicationCommand,
		Name:        escapeText(g.def.name),
		Description: escapeText(g.def.description),
	}
	for _, name := range g.def.order {
		if cmd, ok := g.def.commands[name]; ok {
			out.Options = append(out.Options, cmd.asSubCommandOption())
			continue
		}
		if sg, ok := g.def.subgroups[name]; ok {
			out.Options = append(out.Options, sg.serialize())
		}
	}
	return out
}

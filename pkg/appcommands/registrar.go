package appcommands

import (
	"sort"
	"strings"
	"sync"
)

// Registrar owns the global registry and the per-guild registries and
// enforces the duplicate-name policy at registration time. It is embedded
// into Bot; guild registries are created lazily on first use.
type Registrar struct {
	mu     sync.RWMutex
	global *Registry
	guilds map[string]*Registry
}

func newRegistrar() *Registrar {
	return &Registrar{
		global: NewRegistry(),
		guilds: make(map[string]*Registry),
	}
}

// GlobalRegistry returns the global-scope registry.
func (r *Registrar) GlobalRegistry() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.global
}

// GuildRegistry returns the registry for one guild, if any commands were
// registered for it.
func (r *Registrar) GuildRegistry(guildID string) (*Registry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.guilds[guildID]
	return reg, ok
}

// GuildIDs returns the guild ids with registered commands, sorted.
func (r *Registrar) GuildIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.guilds))
	for id := range r.guilds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Registrar) guildLocked(guildID string) *Registry {
	reg, ok := r.guilds[guildID]
	if !ok {
		reg = NewRegistry()
		r.guilds[guildID] = reg
	}
	return reg
}

// AddSlashCommand registers a slash command globally (guildID "") or for
// one guild. A duplicate name within the target scope leaves the registry
// unchanged.
func (r *Registrar) AddSlashCommand(cmd *Command, guildID string) error {
	if cmd == nil || cmd.kind != KindSlash {
		return invalidArgf("AddSlashCommand requires a slash command")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	target := r.global
	if guildID != "" {
		target = r.guildLocked(guildID)
	}
	if _, exists := target.ByName(cmd.name); exists {
		return &CommandRegistrationError{Name: cmd.name}
	}
	target.Add(cmd)
	return nil
}

// AddUserCommand registers a user context command globally (guildID "") or
// for one guild. User command names are checked against the registered
// message commands; message command registration performs no cross-check.
func (r *Registrar) AddUserCommand(cmd *Command, guildID string) error {
	if cmd == nil || cmd.kind != KindUser {
		return invalidArgf("AddUserCommand requires a user command")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.global.MessageCommands() {
		if existing.name == cmd.name {
			return &CommandRegistrationError{Name: cmd.name}
		}
	}
	target := r.global
	if guildID != "" {
		target = r.guildLocked(guildID)
	}
	target.Add(cmd)
	return nil
}

// AddMessageCommand registers a message context command globally
// (guildID "") or for one guild.
func (r *Registrar) AddMessageCommand(cmd *Command, guildID string) error {
	if cmd == nil || cmd.kind != KindMessage {
		return invalidArgf("AddMessageCommand requires a message command")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	target := r.global
	if guildID != "" {
		target = r.guildLocked(guildID)
	}
	target.Add(cmd)
	return nil
}

// AddGroup places a group instance into the global registry or its guild's
// registry, according to the instance's scope.
func (r *Registrar) AddGroup(group *Group) error {
	if group == nil {
		return invalidArgf("AddGroup requires a group instance")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	target := r.global
	if group.IsGuild() {
		target = r.guildLocked(group.guildID)
	}
	if _, exists := target.ByName(group.Name()); exists {
		return &CommandRegistrationError{Name: group.Name()}
	}
	target.Add(group)
	return nil
}

// RemoveCommand unregisters an entry by name from the global registry
// (guildID "") or a guild registry, reporting whether one was removed.
func (r *Registrar) RemoveCommand(name, guildID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if guildID == "" {
		return r.global.Remove(name)
	}
	reg, ok := r.guilds[guildID]
	if !ok {
		return false
	}
	return reg.Remove(name)
}

// Lookup finds an entry by name, searching the global registry first and
// then the guild's registry.
func (r *Registrar) Lookup(name, guildID string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.global.ByName(name); ok {
		return e, true
	}
	if guildID != "" {
		if reg, ok := r.guilds[guildID]; ok {
			return reg.ByName(name)
		}
	}
	return nil, false
}

// GlobalSlashCommand resolves a whitespace-separated path ("ping",
// "mod ban", "mod warn add") against the global registry, descending into
// groups and sub-groups. The walk must terminate on a command; a path
// ending on a group or sub-group, or missing any hop, returns false.
func (r *Registrar) GlobalSlashCommand(path string) (*Command, bool) {
	tokens := strings.Fields(path)
	if len(tokens) == 0 || len(tokens) > 3 {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.global.ByName(tokens[0])
	if !ok {
		return nil, false
	}
	switch head := entry.(type) {
	case *Command:
		if len(tokens) == 1 && head.kind == KindSlash {
			return head, true
		}
		return nil, false
	case *Group:
		return descendGroupPath(head, tokens[1:])
	}
	return nil, false
}

func descendGroupPath(group *Group, rest []string) (*Command, bool) {
	if len(rest) == 0 {
		return nil, false
	}
	if cmd, ok := group.Command(rest[0]); ok {
		if len(rest) == 1 {
			return cmd, true
		}
		return nil, false
	}
	sub, ok := group.SubGroup(rest[0])
	if !ok || len(rest) != 2 {
		return nil, false
	}
	return sub.Command(rest[1])
}

// lookupContextCommand finds a user or message command for dispatch: by
// the interaction data id first, then by name, global scope before the
// invoking guild's scope.
func (r *Registrar) lookupContextCommand(kind CommandKind, id, name, guildID string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cmd, ok := findContextCommand(r.global, kind, id, name); ok {
		return cmd, true
	}
	if guildID != "" {
		if reg, ok := r.guilds[guildID]; ok {
			return findContextCommand(reg, kind, id, name)
		}
	}
	return nil, false
}

func findContextCommand(reg *Registry, kind CommandKind, id, name string) (*Command, bool) {
	view := reg.UserCommands()
	if kind == KindMessage {
		view = reg.MessageCommands()
	}
	if id != "" {
		for _, cmd := range view {
			if cmd.ID() == id {
				return cmd, true
			}
		}
	}
	for _, cmd := range view {
		if cmd.name == name {
			return cmd, true
		}
	}
	return nil, false
}

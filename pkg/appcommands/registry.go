package appcommands

import "github.com/bwmarrin/discordgo"

// Entry is one registry member: a command of any kind or a group instance.
type Entry interface {
	Name() string
	ID() string
	Serialize() *discordgo.ApplicationCommand
	setID(id string)
}

// Registry is the ordered command collection for one scope, global or a
// single guild. Lookups and filtered views walk the backing list on
// demand; nothing is cached, so views always reflect the current contents.
// Add appends unconditionally; the duplicate-name policy lives in the
// Bot's registration methods.
type Registry struct {
	entries []Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends an entry without any duplicate check.
func (r *Registry) Add(entry Entry) {
	r.entries = append(r.entries, entry)
}

// Remove deletes the entry with the given name, reporting whether one was
// found.
func (r *Registry) Remove(name string) bool {
	for i, e := range r.entries {
		if e.Name() == name {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Get looks an entry up by name first, then by id.
func (r *Registry) Get(key string) (Entry, bool) {
	if e, ok := r.ByName(key); ok {
		return e, true
	}
	return r.ByID(key)
}

// ByName returns the entry with the given name. When several entries share
// a name the most recently added one wins.
func (r *Registry) ByName(name string) (Entry, bool) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].Name() == name {
			return r.entries[i], true
		}
	}
	return nil, false
}

// ByID returns the command with the given platform-assigned id, groups
// excluded. Only useful after deployment has back-filled ids.
func (r *Registry) ByID(id string) (Entry, bool) {
	if id == "" {
		return nil, false
	}
	for i := len(r.entries) - 1; i >= 0; i-- {
		if _, isGroup := r.entries[i].(*Group); isGroup {
			continue
		}
		if r.entries[i].ID() == id {
			return r.entries[i], true
		}
	}
	return nil, false
}

// ByIDDeep looks up by id and, when the command lookup misses, checks the
// group entries' ids.
func (r *Registry) ByIDDeep(id string) (Entry, bool) {
	if e, ok := r.ByID(id); ok {
		return e, true
	}
	for _, g := range r.Groups() {
		if g.ID() == id {
			return g, true
		}
	}
	return nil, false
}

// Commands returns every entry in insertion order.
func (r *Registry) Commands() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// SlashCommands returns the bare slash commands, groups excluded.
func (r *Registry) SlashCommands() []*Command {
	return r.commandsOfKind(KindSlash)
}

// UserCommands returns the user context commands.
func (r *Registry) UserCommands() []*Command {
	return r.commandsOfKind(KindUser)
}

// MessageCommands returns the message context commands.
func (r *Registry) MessageCommands() []*Command {
	return r.commandsOfKind(KindMessage)
}

func (r *Registry) commandsOfKind(kind CommandKind) []*Command {
	var out []*Command
	for _, e := range r.entries {
		if cmd, ok := e.(*Command); ok && cmd.kind == kind {
			out = append(out, cmd)
		}
	}
	return out
}

// Groups returns the group entries.
func (r *Registry) Groups() []*Group {
	var out []*Group
	for _, e := range r.entries {
		if g, ok := e.(*Group); ok {
			out = append(out, g)
		}
	}
	return out
}

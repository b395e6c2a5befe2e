package appcommands

import "github.com/bwmarrin/discordgo"

// ResolvedOption is one option value carried into a slash handler: the
// option name, its wire type and the converted runtime value. Handlers
// receive exactly one ResolvedOption per declared option, in declaration
// order; options the caller omitted carry the declared default.
type ResolvedOption struct {
	Name  string
	Type  discordgo.ApplicationCommandOptionType
	Value interface{}
}

// StringValue returns the value as a string, or "" when it is not one.
func (r ResolvedOption) StringValue() string {
	s, _ := r.Value.(string)
	return s
}

// IntValue returns the value as an int64, or 0 when it is not numeric.
func (r ResolvedOption) IntValue() int64 {
	switch v := r.Value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// FloatValue returns the value as a float64, or 0 when it is not numeric.
func (r ResolvedOption) FloatValue() float64 {
	switch v := r.Value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

// BoolValue returns the value as a bool, or false when it is not one.
func (r ResolvedOption) BoolValue() bool {
	b, _ := r.Value.(bool)
	return b
}

// UserValue returns the resolved user, or nil.
func (r ResolvedOption) UserValue() *discordgo.User {
	u, _ := r.Value.(*discordgo.User)
	return u
}

// ChannelValue returns the resolved channel, or nil.
func (r ResolvedOption) ChannelValue() *discordgo.Channel {
	c, _ := r.Value.(*discordgo.Channel)
	return c
}

// RoleValue returns the resolved role, or nil.
func (r ResolvedOption) RoleValue() *discordgo.Role {
	role, _ := r.Value.(*discordgo.Role)
	return role
}

// OptionByName returns the option with the given name, if present.
func OptionByName(opts []ResolvedOption, name string) (ResolvedOption, bool) {
	for _, opt := range opts {
		if opt.Name == name {
			return opt, true
		}
	}
	return ResolvedOption{}, false
}

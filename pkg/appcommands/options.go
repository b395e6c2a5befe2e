package appcommands

import (
	"github.com/bwmarrin/discordgo"
)

// Choice is one fixed value offered for an option.
type Choice struct {
	Name  string
	Value interface{}
}

// Option describes one declared parameter of a slash command.
type Option struct {
	name         string
	description  string
	typ          discordgo.ApplicationCommandOptionType
	required     bool
	choices      []Choice
	minValue     *float64
	maxValue     *float64
	channelTypes []discordgo.ChannelType
	autocomplete bool
	defaultValue interface{}
}

// NewOption validates and creates an option. The type must be one of the
// value option types (string, integer, boolean, user, channel, role,
// mentionable, number); sub-command markers are not valid here.
func NewOption(name, description string, typ discordgo.ApplicationCommandOptionType, required bool) (*Option, error) {
	if name == "" {
		return nil, invalidArgf("option name must not be empty")
	}
	if len(description) <= 1 || len(description) >= 100 {
		return nil, invalidArgf("option %q description must be between 1 and 100 characters, got %d", name, len(description))
	}
	if typ < discordgo.ApplicationCommandOptionString || typ > discordgo.ApplicationCommandOptionNumber {
		return nil, invalidArgf("option %q type %d is not a value option type", name, typ)
	}
	return &Option{
		name:        name,
		description: description,
		typ:         typ,
		required:    required,
	}, nil
}

// WithChoices sets the fixed choices offered for the option.
func (o *Option) WithChoices(choices ...Choice) *Option {
	o.choices = choices
	return o
}

// WithMinValue sets the lower numeric bound.
func (o *Option) WithMinValue(min float64) *Option {
	o.minValue = &min
	return o
}

// WithMaxValue sets the upper numeric bound.
func (o *Option) WithMaxValue(max float64) *Option {
	o.maxValue = &max
	return o
}

// WithChannelTypes restricts a channel option to the given channel types.
func (o *Option) WithChannelTypes(types ...discordgo.ChannelType) *Option {
	o.channelTypes = types
	return o
}

// WithAutocomplete marks the option as autocomplete-driven.
func (o *Option) WithAutocomplete() *Option {
	o.autocomplete = true
	return o
}

// WithDefault sets the value handlers receive when the caller omits the
// option. Defaults are local; they are never sent to Discord.
func (o *Option) WithDefault(value interface{}) *Option {
	o.defaultValue = value
	return o
}

// Name returns the option name.
func (o *Option) Name() string { return o.name }

// Description returns the option description.
func (o *Option) Description() string { return o.description }

// Type returns the option's wire type.
func (o *Option) Type() discordgo.ApplicationCommandOptionType { return o.typ }

// Required reports whether the caller must supply the option.
func (o *Option) Required() bool { return o.required }

// Default returns the declared default value, or nil.
func (o *Option) Default() interface{} { return o.defaultValue }

// Serialize builds the wire representation of the option. String metadata
// passes through the escaping transform.
func (o *Option) Serialize() *discordgo.ApplicationCommandOption {
	out := &discordgo.ApplicationCommandOption{
		Type:         o.typ,
		Name:         escapeText(o.name),
		Description:  escapeText(o.description),
		Required:     o.required,
		Autocomplete: o.autocomplete,
		ChannelTypes: o.channelTypes,
		MinValue:     o.minValue,
	}
	if o.maxValue != nil {
		out.MaxValue = *o.maxValue
	}
	for _, c := range o.choices {
		value := c.Value
		if s, ok := value.(string); ok {
			value = escapeText(s)
		}
		out.Choices = append(out.Choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  escapeText(c.Name),
			Value: value,
		})
	}
	return out
}

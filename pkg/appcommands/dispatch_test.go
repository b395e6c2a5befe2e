package appcommands

import (
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

type fakeResolver struct {
	users    map[string]*discordgo.User
	channels map[string]*discordgo.Channel
	roles    map[string]*discordgo.Role
	messages map[string]*discordgo.Message
	msgErr   error
}

func (f *fakeResolver) User(id string) *discordgo.User                { return f.users[id] }
func (f *fakeResolver) Channel(guildID, id string) *discordgo.Channel { return f.channels[id] }
func (f *fakeResolver) Role(guildID, id string) *discordgo.Role       { return f.roles[id] }

func (f *fakeResolver) Message(channelID, id string) (*discordgo.Message, error) {
	if f.msgErr != nil {
		return nil, f.msgErr
	}
	msg, ok := f.messages[id]
	if !ok {
		return nil, errors.New("mensaje desconocido")
	}
	return msg, nil
}

func newTestBot(resolver EntityResolver) *Bot {
	b := New(nil)
	if resolver != nil {
		b.SetResolver(resolver)
	}
	return b
}

func commandInteraction(data discordgo.ApplicationCommandInteractionData, guildID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   guildID,
			ChannelID: "chan-1",
			Data:      data,
		},
	}
}

func slashInteraction(name, guildID string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return commandInteraction(discordgo.ApplicationCommandInteractionData{
		Name:        name,
		CommandType: discordgo.ChatApplicationCommand,
		Options:     opts,
	}, guildID)
}

// TestDispatchSlash verifies option conversion and declaration-order
// expansion with synthesized defaults
func TestDispatchSlash(t *testing.T) {
	b := newTestBot(nil)

	var got []ResolvedOption
	cmd, err := NewSlashCommand("greet", "saluda a alguien",
		func(ctx *Context, opts []ResolvedOption) error {
			got = opts
			return nil
		},
		mustOption(t, "name", "a quien saludar", discordgo.ApplicationCommandOptionString, true),
		mustOption(t, "times", "cuántas veces", discordgo.ApplicationCommandOptionInteger, false).WithDefault(int64(1)),
		mustOption(t, "loud", "en mayúsculas", discordgo.ApplicationCommandOptionBoolean, false),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddSlashCommand(cmd, ""); err != nil {
		t.Fatal(err)
	}

	var invoked *Command
	b.OnCommandInvoked(func(ctx *Context, c *Command) { invoked = c })

	b.HandleInteraction(nil, slashInteraction("greet", "",
		&discordgo.ApplicationCommandInteractionDataOption{Name: "times", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
		&discordgo.ApplicationCommandInteractionDataOption{Name: "name", Type: discordgo.ApplicationCommandOptionString, Value: "hola"},
	))

	if got == nil {
		t.Fatal("handler was not invoked")
	}
	if len(got) != 3 {
		t.Fatalf("resolved options = %v, want one per declared option", len(got))
	}
	if got[0].Name != "name" || got[0].StringValue() != "hola" {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].Name != "times" || got[1].IntValue() != 3 {
		t.Errorf("got[1] = %+v, integer not converted", got[1])
	}
	if got[2].Name != "loud" || got[2].Value != nil {
		t.Errorf("got[2] = %+v, want declared nil default", got[2])
	}
	if invoked != cmd {
		t.Error("invocation listener did not receive the command")
	}
}

// TestDispatchSlashDefaults verifies omitted options fall back to their
// declared defaults
func TestDispatchSlashDefaults(t *testing.T) {
	b := newTestBot(nil)

	var got []ResolvedOption
	cmd, err := NewSlashCommand("purge", "borra mensajes",
		func(ctx *Context, opts []ResolvedOption) error {
			got = opts
			return nil
		},
		mustOption(t, "count", "cuántos borrar", discordgo.ApplicationCommandOptionInteger, false).WithDefault(int64(10)),
		mustOption(t, "reason", "motivo", discordgo.ApplicationCommandOptionString, false).WithDefault("sin razón"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddSlashCommand(cmd, ""); err != nil {
		t.Fatal(err)
	}

	b.HandleInteraction(nil, slashInteraction("purge", ""))

	if len(got) != 2 {
		t.Fatalf("resolved options = %v, want 2", len(got))
	}
	if got[0].IntValue() != 10 {
		t.Errorf("count default = %v, want 10", got[0].Value)
	}
	if got[1].StringValue() != "sin razón" {
		t.Errorf("reason default = %v, want sin razón", got[1].Value)
	}
}

// TestDispatchSlashEntities verifies user, channel and role values resolve
// through the entity resolver
func TestDispatchSlashEntities(t *testing.T) {
	resolver := &fakeResolver{
		users:    map[string]*discordgo.User{"u1": {ID: "u1", Username: "pancy"}},
		channels: map[string]*discordgo.Channel{"c9": {ID: "c9", Name: "general"}},
		roles:    map[string]*discordgo.Role{"r5": {ID: "r5", Name: "mods"}},
	}
	b := newTestBot(resolver)

	var got []ResolvedOption
	cmd, err := NewSlashCommand("inspect", "inspecciona entidades",
		func(ctx *Context, opts []ResolvedOption) error {
			got = opts
			return nil
		},
		mustOption(t, "who", "usuario objetivo", discordgo.ApplicationCommandOptionUser, true),
		mustOption(t, "where", "canal objetivo", discordgo.ApplicationCommandOptionChannel, true),
		mustOption(t, "role", "rol objetivo", discordgo.ApplicationCommandOptionRole, true),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddSlashCommand(cmd, ""); err != nil {
		t.Fatal(err)
	}

	b.HandleInteraction(nil, slashInteraction("inspect", "g1",
		&discordgo.ApplicationCommandInteractionDataOption{Name: "who", Type: discordgo.ApplicationCommandOptionUser, Value: "u1"},
		&discordgo.ApplicationCommandInteractionDataOption{Name: "where", Type: discordgo.ApplicationCommandOptionChannel, Value: "c9"},
		&discordgo.ApplicationCommandInteractionDataOption{Name: "role", Type: discordgo.ApplicationCommandOptionRole, Value: "r5"},
	))

	if len(got) != 3 {
		t.Fatalf("resolved options = %v, want 3", len(got))
	}
	if user := got[0].UserValue(); user == nil || user.Username != "pancy" {
		t.Errorf("user value = %v", got[0].Value)
	}
	if ch := got[1].ChannelValue(); ch == nil || ch.Name != "general" {
		t.Errorf("channel value = %v", got[1].Value)
	}
	if role := got[2].RoleValue(); role == nil || role.Name != "mods" {
		t.Errorf("role value = %v", got[2].Value)
	}
}

// TestDispatchGroup verifies descent through sub-command and
// sub-command-group markers
func TestDispatchGroup(t *testing.T) {
	b := newTestBot(nil)

	var banReason string
	var banGroup *Group
	ban, err := NewSlashCommand("ban", "banea a un usuario",
		func(ctx *Context, opts []ResolvedOption) error {
			banReason = opts[0].StringValue()
			banGroup = ctx.Group
			return nil
		},
		mustOption(t, "reason", "motivo del baneo", discordgo.ApplicationCommandOptionString, true),
	)
	if err != nil {
		t.Fatal(err)
	}

	var warnAddHit bool
	warnAdd, err := NewSlashCommand("add", "añade una advertencia",
		func(ctx *Context, opts []ResolvedOption) error {
			warnAddHit = true
			return nil
		})
	if err != nil {
		t.Fatal(err)
	}
	warn, err := NewSubGroup("warn", "gestión de advertencias", warnAdd)
	if err != nil {
		t.Fatal(err)
	}
	def, err := NewGroup("mod", "herramientas de moderación", ban, warn)
	if err != nil {
		t.Fatal(err)
	}
	registered := def.Global()
	if err := b.AddGroup(registered); err != nil {
		t.Fatal(err)
	}

	b.HandleInteraction(nil, slashInteraction("mod", "g1",
		&discordgo.ApplicationCommandInteractionDataOption{
			Name: "ban",
			Type: discordgo.ApplicationCommandOptionSubCommand,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "reason", Type: discordgo.ApplicationCommandOptionString, Value: "spam"},
			},
		},
	))
	if banReason != "spam" {
		t.Errorf("ban reason = %v, want spam", banReason)
	}
	if banGroup != registered {
		t.Error("handler context does not carry the registered group instance")
	}

	b.HandleInteraction(nil, slashInteraction("mod", "g1",
		&discordgo.ApplicationCommandInteractionDataOption{
			Name: "warn",
			Type: discordgo.ApplicationCommandOptionSubCommandGroup,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "add", Type: discordgo.ApplicationCommandOptionSubCommand},
			},
		},
	))
	if !warnAddHit {
		t.Error("nested sub-command handler was not invoked")
	}
}

// TestDispatchGuildFallback verifies slash resolution tries the global
// registry before the invoking guild's registry
func TestDispatchGuildFallback(t *testing.T) {
	b := newTestBot(nil)

	var hit string
	mk := func(tag string) SlashHandler {
		return func(ctx *Context, opts []ResolvedOption) error {
			hit = tag
			return nil
		}
	}
	globalCmd, err := NewSlashCommand("ping", "versión global", mk("global"))
	if err != nil {
		t.Fatal(err)
	}
	guildCmd, err := NewSlashCommand("local", "versión de guild", mk("guild"))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddSlashCommand(globalCmd, ""); err != nil {
		t.Fatal(err)
	}
	if err := b.AddSlashCommand(guildCmd, "g1"); err != nil {
		t.Fatal(err)
	}

	b.HandleInteraction(nil, slashInteraction("local", "g1"))
	if hit != "guild" {
		t.Errorf("hit = %v, want guild", hit)
	}
	b.HandleInteraction(nil, slashInteraction("ping", "g1"))
	if hit != "global" {
		t.Errorf("hit = %v, want global", hit)
	}
}

// TestDispatchUnknownCommand verifies the not-found error reaches the
// error listeners
func TestDispatchUnknownCommand(t *testing.T) {
	b := newTestBot(nil)

	var reported error
	b.OnCommandError(func(ctx *Context, err error) { reported = err })

	b.HandleInteraction(nil, slashInteraction("nope", ""))

	var notFound *CommandNotFoundError
	if !errors.As(reported, &notFound) {
		t.Fatalf("reported = %v, want CommandNotFoundError", reported)
	}
	if notFound.Name != "nope" {
		t.Errorf("Name = %v, want nope", notFound.Name)
	}
}

// TestDispatchHandlerError verifies handler failures are wrapped and
// reported instead of propagating
func TestDispatchHandlerError(t *testing.T) {
	b := newTestBot(nil)

	boom := errors.New("boom")
	cmd, err := NewSlashCommand("falla", "siempre falla",
		func(ctx *Context, opts []ResolvedOption) error { return boom })
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddSlashCommand(cmd, ""); err != nil {
		t.Fatal(err)
	}

	var reported error
	b.OnCommandError(func(ctx *Context, err error) { reported = err })
	var invoked bool
	b.OnCommandInvoked(func(ctx *Context, c *Command) { invoked = true })

	b.HandleInteraction(nil, slashInteraction("falla", ""))

	var inv *HandlerInvocationError
	if !errors.As(reported, &inv) {
		t.Fatalf("reported = %v, want HandlerInvocationError", reported)
	}
	if inv.Command != "falla" {
		t.Errorf("Command = %v, want falla", inv.Command)
	}
	if !errors.Is(reported, boom) {
		t.Error("wrapped cause lost")
	}
	if invoked {
		t.Error("invocation listener fired for a failed handler")
	}
}

// TestDispatchHandlerPanic verifies a panicking handler is recovered and
// reported
func TestDispatchHandlerPanic(t *testing.T) {
	b := newTestBot(nil)

	cmd, err := NewSlashCommand("explota", "siempre entra en pánico",
		func(ctx *Context, opts []ResolvedOption) error { panic("se rompió") })
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddSlashCommand(cmd, ""); err != nil {
		t.Fatal(err)
	}

	var reported error
	b.OnCommandError(func(ctx *Context, err error) { reported = err })

	b.HandleInteraction(nil, slashInteraction("explota", ""))

	var inv *HandlerInvocationError
	if !errors.As(reported, &inv) {
		t.Fatalf("reported = %v, want HandlerInvocationError", reported)
	}
	if !strings.Contains(inv.Error(), "se rompió") {
		t.Errorf("error text = %v, panic value lost", inv.Error())
	}
}

// TestDispatchUserCommand verifies target resolution and the id-first
// lookup
func TestDispatchUserCommand(t *testing.T) {
	resolver := &fakeResolver{users: map[string]*discordgo.User{"u1": {ID: "u1", Username: "pancy"}}}
	b := newTestBot(resolver)

	var target *discordgo.User
	cmd, err := NewUserCommand("perfil", func(ctx *Context, user *discordgo.User) error {
		target = user
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddUserCommand(cmd, ""); err != nil {
		t.Fatal(err)
	}
	cmd.setID("55")

	b.HandleInteraction(nil, commandInteraction(discordgo.ApplicationCommandInteractionData{
		ID:          "55",
		Name:        "nombre-desactualizado",
		CommandType: discordgo.UserApplicationCommand,
		TargetID:    "u1",
	}, "g1"))

	if target == nil || target.Username != "pancy" {
		t.Errorf("target = %v, want resolved user", target)
	}
}

// TestDispatchMessageCommand verifies the target message is fetched before
// the handler runs and fetch failures are reported
func TestDispatchMessageCommand(t *testing.T) {
	resolver := &fakeResolver{messages: map[string]*discordgo.Message{"m1": {ID: "m1", Content: "hola mundo"}}}
	b := newTestBot(resolver)

	var target *discordgo.Message
	cmd, err := NewMessageCommand("Fijar", func(ctx *Context, msg *discordgo.Message) error {
		target = msg
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddMessageCommand(cmd, ""); err != nil {
		t.Fatal(err)
	}

	b.HandleInteraction(nil, commandInteraction(discordgo.ApplicationCommandInteractionData{
		Name:        "Fijar",
		CommandType: discordgo.MessageApplicationCommand,
		TargetID:    "m1",
	}, "g1"))

	if target == nil || target.Content != "hola mundo" {
		t.Errorf("target = %v, want fetched message", target)
	}

	boom := errors.New("boom")
	resolver.msgErr = boom
	target = nil
	var reported error
	b.OnCommandError(func(ctx *Context, err error) { reported = err })

	b.HandleInteraction(nil, commandInteraction(discordgo.ApplicationCommandInteractionData{
		Name:        "Fijar",
		CommandType: discordgo.MessageApplicationCommand,
		TargetID:    "m1",
	}, "g1"))

	if target != nil {
		t.Error("handler ran despite the fetch failure")
	}
	if !errors.Is(reported, boom) {
		t.Errorf("reported = %v, want wrapped fetch error", reported)
	}
}

// TestDispatchAutocomplete verifies the callback is optional and receives
// the interaction when present
func TestDispatchAutocomplete(t *testing.T) {
	b := newTestBot(nil)

	var hit bool
	cmd, err := NewSlashCommand("busca", "busca una canción",
		noopSlash,
		mustOption(t, "query", "qué buscar", discordgo.ApplicationCommandOptionString, true).WithAutocomplete())
	if err != nil {
		t.Fatal(err)
	}
	cmd.WithAutocomplete(func(ctx *Context) error {
		hit = true
		return nil
	})
	if err := b.AddSlashCommand(cmd, ""); err != nil {
		t.Fatal(err)
	}

	plain, err := NewSlashCommand("sin", "sin autocompletado", noopSlash)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddSlashCommand(plain, ""); err != nil {
		t.Fatal(err)
	}

	var reported error
	b.OnCommandError(func(ctx *Context, err error) { reported = err })

	autocomplete := func(name string) *discordgo.InteractionCreate {
		return &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{
				Type: discordgo.InteractionApplicationCommandAutocomplete,
				Data: discordgo.ApplicationCommandInteractionData{
					Name:        name,
					CommandType: discordgo.ChatApplicationCommand,
				},
			},
		}
	}

	b.HandleInteraction(nil, autocomplete("busca"))
	if !hit {
		t.Error("autocomplete callback was not invoked")
	}

	b.HandleInteraction(nil, autocomplete("sin"))
	if reported != nil {
		t.Errorf("autocomplete without callback reported %v, want silence", reported)
	}
}

// TestDispatchIgnoresOtherInteractionTypes verifies unrelated interaction
// types pass through untouched
func TestDispatchIgnoresOtherInteractionTypes(t *testing.T) {
	b := newTestBot(nil)
	var reported error
	b.OnCommandError(func(ctx *Context, err error) { reported = err })

	b.HandleInteraction(nil, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{Type: discordgo.InteractionMessageComponent},
	})

	if reported != nil {
		t.Errorf("component interaction reported %v", reported)
	}
}

// TestFocusedOption verifies the focused option search descends into
// sub-command trees
func TestFocusedOption(t *testing.T) {
	ctx := &Context{
		Interaction: &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{
				Type: discordgo.InteractionApplicationCommandAutocomplete,
				Data: discordgo.ApplicationCommandInteractionData{
					Name:        "mod",
					CommandType: discordgo.ChatApplicationCommand,
					Options: []*discordgo.ApplicationCommandInteractionDataOption{
						{
							Name: "ban",
							Type: discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandInteractionDataOption{
								{Name: "reason", Type: discordgo.ApplicationCommandOptionString, Value: "sp", Focused: true},
							},
						},
					},
				},
			},
		},
	}

	got := ctx.FocusedOption()
	if got == nil || got.Name != "reason" {
		t.Errorf("FocusedOption = %v, want reason", got)
	}
}

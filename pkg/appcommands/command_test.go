package appcommands

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func noopSlash(ctx *Context, opts []ResolvedOption) error { return nil }

func noopUser(ctx *Context, user *discordgo.User) error { return nil }

func noopMessage(ctx *Context, msg *discordgo.Message) error { return nil }

func mustSlash(t *testing.T, name, description string, options ...*Option) *Command {
	t.Helper()
	cmd, err := NewSlashCommand(name, description, noopSlash, options...)
	if err != nil {
		t.Fatalf("NewSlashCommand(%q): %v", name, err)
	}
	return cmd
}

func mustOption(t *testing.T, name, description string, typ discordgo.ApplicationCommandOptionType, required bool) *Option {
	t.Helper()
	opt, err := NewOption(name, description, typ, required)
	if err != nil {
		t.Fatalf("NewOption(%q): %v", name, err)
	}
	return opt
}

// TestNewSlashCommand verifies name normalization and handler validation
func TestNewSlashCommand(t *testing.T) {
	cmd := mustSlash(t, "PING", "responde con pong")

	if cmd.Name() != "ping" {
		t.Errorf("Name = %v, want ping", cmd.Name())
	}
	if cmd.Kind() != KindSlash {
		t.Errorf("Kind = %v, want KindSlash", cmd.Kind())
	}
	if cmd.Description() != "responde con pong" {
		t.Errorf("Description = %v, want responde con pong", cmd.Description())
	}

	var invalid *InvalidArgumentError
	if _, err := NewSlashCommand("ping", "pong", nil); !errors.As(err, &invalid) {
		t.Errorf("nil handler error = %v, want InvalidArgumentError", err)
	}
	if _, err := NewSlashCommand("ping", "pong", noopSlash, nil); !errors.As(err, &invalid) {
		t.Errorf("nil option error = %v, want InvalidArgumentError", err)
	}
}

// TestDescriptionFallback verifies an empty description falls back to the
// name and the result is still length-checked
func TestDescriptionFallback(t *testing.T) {
	cmd := mustSlash(t, "stats", "")
	if cmd.Description() != "stats" {
		t.Errorf("Description = %v, want stats", cmd.Description())
	}

	var invalid *InvalidArgumentError
	if _, err := NewSlashCommand("x", "", noopSlash); !errors.As(err, &invalid) {
		t.Errorf("one-char fallback error = %v, want InvalidArgumentError", err)
	}
}

// TestNewUserCommand verifies user command names are lowercased
func TestNewUserCommand(t *testing.T) {
	cmd, err := NewUserCommand("Ver Avatar", noopUser)
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Name() != "ver avatar" {
		t.Errorf("Name = %v, want ver avatar", cmd.Name())
	}
	if cmd.Kind() != KindUser {
		t.Errorf("Kind = %v, want KindUser", cmd.Kind())
	}

	if _, err := NewUserCommand("ver avatar", nil); err == nil {
		t.Error("nil handler accepted")
	}
}

// TestNewMessageCommand verifies message command names keep their casing
func TestNewMessageCommand(t *testing.T) {
	cmd, err := NewMessageCommand("Reportar Mensaje", noopMessage)
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Name() != "Reportar Mensaje" {
		t.Errorf("Name = %v, want Reportar Mensaje", cmd.Name())
	}
	if cmd.Kind() != KindMessage {
		t.Errorf("Kind = %v, want KindMessage", cmd.Kind())
	}
}

// TestCommandSerialize verifies the per-kind registration payloads
func TestCommandSerialize(t *testing.T) {
	slash := mustSlash(t, "ban", "banea a un usuario",
		mustOption(t, "user", "a quien banear", discordgo.ApplicationCommandOptionUser, true))

	out := slash.Serialize()
	if out.Type != discordgo.ChatApplicationCommand {
		t.Errorf("slash Type = %v, want ChatApplicationCommand", out.Type)
	}
	if out.Name != "ban" || out.Description != "banea a un usuario" {
		t.Errorf("slash payload = %v/%v", out.Name, out.Description)
	}
	if len(out.Options) != 1 || out.Options[0].Name != "user" {
		t.Errorf("slash options = %v", out.Options)
	}

	user, _ := NewUserCommand("perfil", noopUser)
	uout := user.Serialize()
	if uout.Type != discordgo.UserApplicationCommand {
		t.Errorf("user Type = %v, want UserApplicationCommand", uout.Type)
	}
	if uout.Description != "" || len(uout.Options) != 0 {
		t.Error("user payload carries description or options")
	}

	msg, _ := NewMessageCommand("Fijar", noopMessage)
	mout := msg.Serialize()
	if mout.Type != discordgo.MessageApplicationCommand {
		t.Errorf("message Type = %v, want MessageApplicationCommand", mout.Type)
	}
	if mout.Name != "Fijar" {
		t.Errorf("message Name = %v, want Fijar", mout.Name)
	}
	if mout.Description != "" {
		t.Error("message payload carries a description")
	}
}

// TestSerializePermissions verifies user overrides come before role
// overrides and each class is id-sorted
func TestSerializePermissions(t *testing.T) {
	cmd := mustSlash(t, "deploy", "operación restringida").
		WithAllowedUsers(map[string]bool{"900": true, "100": false}).
		WithAllowedRoles(map[string]bool{"500": true, "200": true})

	perms := cmd.SerializePermissions()
	if len(perms) != 4 {
		t.Fatalf("permissions length = %v, want 4", len(perms))
	}

	wantIDs := []string{"100", "900", "200", "500"}
	wantTypes := []discordgo.ApplicationCommandPermissionType{
		discordgo.ApplicationCommandPermissionTypeUser,
		discordgo.ApplicationCommandPermissionTypeUser,
		discordgo.ApplicationCommandPermissionTypeRole,
		discordgo.ApplicationCommandPermissionTypeRole,
	}
	for idx, p := range perms {
		if p.ID != wantIDs[idx] {
			t.Errorf("perms[%d].ID = %v, want %v", idx, p.ID, wantIDs[idx])
		}
		if p.Type != wantTypes[idx] {
			t.Errorf("perms[%d].Type = %v, want %v", idx, p.Type, wantTypes[idx])
		}
	}
	if perms[0].Permission {
		t.Error("perms[0].Permission = true, want false")
	}

	bare := mustSlash(t, "open", "sin restricciones")
	if bare.SerializePermissions() != nil {
		t.Error("permissions for unrestricted command should be nil")
	}
}

// TestCommandID verifies the deployment id round-trip
func TestCommandID(t *testing.T) {
	cmd := mustSlash(t, "ping", "responde con pong")
	if cmd.ID() != "" {
		t.Errorf("ID before deploy = %v, want empty", cmd.ID())
	}
	cmd.setID("123456")
	if cmd.ID() != "123456" {
		t.Errorf("ID = %v, want 123456", cmd.ID())
	}
}

// TestCommandExtras verifies the opaque extras bag
func TestCommandExtras(t *testing.T) {
	cmd := mustSlash(t, "ping", "responde con pong").
		WithExtras(map[string]interface{}{"category": "utils"})
	if cmd.Extras()["category"] != "utils" {
		t.Errorf("Extras = %v", cmd.Extras())
	}
}

package appcommands

import (
	"errors"
	"testing"
)

// TestAddSlashCommand verifies scope placement and duplicate rejection
func TestAddSlashCommand(t *testing.T) {
	r := newRegistrar()

	if err := r.AddSlashCommand(mustSlash(t, "ping", "responde con pong"), ""); err != nil {
		t.Fatal(err)
	}

	var dup *CommandRegistrationError
	err := r.AddSlashCommand(mustSlash(t, "ping", "otra versión"), "")
	if !errors.As(err, &dup) {
		t.Errorf("global duplicate error = %v, want CommandRegistrationError", err)
	}
	if r.GlobalRegistry().Len() != 1 {
		t.Errorf("global Len = %v, duplicate reached the registry", r.GlobalRegistry().Len())
	}

	// The same name in a guild scope is a different namespace.
	if err := r.AddSlashCommand(mustSlash(t, "ping", "versión de guild"), "100"); err != nil {
		t.Fatal(err)
	}
	err = r.AddSlashCommand(mustSlash(t, "ping", "tercera versión"), "100")
	if !errors.As(err, &dup) {
		t.Errorf("guild duplicate error = %v, want CommandRegistrationError", err)
	}

	var invalid *InvalidArgumentError
	userCmd, _ := NewUserCommand("perfil", noopUser)
	if err := r.AddSlashCommand(userCmd, ""); !errors.As(err, &invalid) {
		t.Errorf("wrong-kind error = %v, want InvalidArgumentError", err)
	}
}

// TestAddUserCommandNameCollision verifies the asymmetric name check: user
// registration collides with message commands, not with other user commands
func TestAddUserCommandNameCollision(t *testing.T) {
	r := newRegistrar()

	msg, _ := NewMessageCommand("reportar", noopMessage)
	if err := r.AddMessageCommand(msg, ""); err != nil {
		t.Fatal(err)
	}

	var dup *CommandRegistrationError
	clash, _ := NewUserCommand("reportar", noopUser)
	if err := r.AddUserCommand(clash, ""); !errors.As(err, &dup) {
		t.Errorf("user-vs-message collision error = %v, want CommandRegistrationError", err)
	}
	if err := r.AddUserCommand(clash, "100"); !errors.As(err, &dup) {
		t.Errorf("guild user-vs-message collision error = %v, want CommandRegistrationError", err)
	}

	first, _ := NewUserCommand("perfil", noopUser)
	second, _ := NewUserCommand("perfil", noopUser)
	if err := r.AddUserCommand(first, ""); err != nil {
		t.Fatal(err)
	}
	if err := r.AddUserCommand(second, ""); err != nil {
		t.Errorf("user-vs-user registration error = %v, want nil", err)
	}
	if got, _ := r.GlobalRegistry().ByName("perfil"); got != second {
		t.Error("most recently added user command should win the name")
	}
}

// TestAddMessageCommand verifies message registration performs no name check
func TestAddMessageCommand(t *testing.T) {
	r := newRegistrar()

	userCmd, _ := NewUserCommand("citar", noopUser)
	if err := r.AddUserCommand(userCmd, ""); err != nil {
		t.Fatal(err)
	}

	msg, _ := NewMessageCommand("citar", noopMessage)
	if err := r.AddMessageCommand(msg, ""); err != nil {
		t.Errorf("message-vs-user registration error = %v, want nil", err)
	}

	again, _ := NewMessageCommand("citar", noopMessage)
	if err := r.AddMessageCommand(again, "100"); err != nil {
		t.Fatal(err)
	}

	var invalid *InvalidArgumentError
	if err := r.AddMessageCommand(userCmd, ""); !errors.As(err, &invalid) {
		t.Errorf("wrong-kind error = %v, want InvalidArgumentError", err)
	}
}

// TestAddGroup verifies placement follows the instance scope
func TestAddGroup(t *testing.T) {
	r := newRegistrar()

	def, err := NewGroup("mod", "herramientas de moderación", mustSlash(t, "ban", "banea a un usuario"))
	if err != nil {
		t.Fatal(err)
	}

	if err := r.AddGroup(def.Global()); err != nil {
		t.Fatal(err)
	}
	if _, ok := r.GlobalRegistry().ByName("mod"); !ok {
		t.Error("global group not placed in the global registry")
	}

	if err := r.AddGroup(def.ForGuild("100")); err != nil {
		t.Fatal(err)
	}
	reg, ok := r.GuildRegistry("100")
	if !ok {
		t.Fatal("guild registry was not created")
	}
	if _, ok := reg.ByName("mod"); !ok {
		t.Error("guild group not placed in its guild registry")
	}

	var dup *CommandRegistrationError
	if err := r.AddGroup(def.Global()); !errors.As(err, &dup) {
		t.Errorf("duplicate group error = %v, want CommandRegistrationError", err)
	}
	if err := r.AddGroup(nil); err == nil {
		t.Error("nil group accepted")
	}

	ids := r.GuildIDs()
	if len(ids) != 1 || ids[0] != "100" {
		t.Errorf("GuildIDs = %v, want [100]", ids)
	}
}

// TestLookup verifies global scope shadows guild scope
func TestLookup(t *testing.T) {
	r := newRegistrar()

	global := mustSlash(t, "ping", "versión global")
	guild := mustSlash(t, "ping", "versión de guild")
	guildOnly := mustSlash(t, "local", "solo en un guild")

	if err := r.AddSlashCommand(global, ""); err != nil {
		t.Fatal(err)
	}
	if err := r.AddSlashCommand(guild, "100"); err != nil {
		t.Fatal(err)
	}
	if err := r.AddSlashCommand(guildOnly, "100"); err != nil {
		t.Fatal(err)
	}

	if got, ok := r.Lookup("ping", "100"); !ok || got != global {
		t.Errorf("Lookup(ping, 100) = %v, want the global entry", got)
	}
	if got, ok := r.Lookup("local", "100"); !ok || got != guildOnly {
		t.Errorf("Lookup(local, 100) = %v, %v", got, ok)
	}
	if _, ok := r.Lookup("local", ""); ok {
		t.Error("guild-only command resolved without a guild id")
	}
	if _, ok := r.Lookup("local", "999"); ok {
		t.Error("guild-only command resolved from another guild")
	}
}

// TestRemoveCommand verifies scoped removal
func TestRemoveCommand(t *testing.T) {
	r := newRegistrar()
	if err := r.AddSlashCommand(mustSlash(t, "ping", "responde con pong"), ""); err != nil {
		t.Fatal(err)
	}
	if err := r.AddSlashCommand(mustSlash(t, "local", "solo en un guild"), "100"); err != nil {
		t.Fatal(err)
	}

	if !r.RemoveCommand("ping", "") {
		t.Error("global removal returned false")
	}
	if !r.RemoveCommand("local", "100") {
		t.Error("guild removal returned false")
	}
	if r.RemoveCommand("ping", "") {
		t.Error("second removal returned true")
	}
	if r.RemoveCommand("x", "999") {
		t.Error("removal from an unknown guild returned true")
	}
}

// TestGlobalSlashCommand verifies path resolution through groups
func TestGlobalSlashCommand(t *testing.T) {
	r := newRegistrar()

	ping := mustSlash(t, "ping", "responde con pong")
	if err := r.AddSlashCommand(ping, ""); err != nil {
		t.Fatal(err)
	}

	ban := mustSlash(t, "ban", "banea a un usuario")
	warnAdd := mustSlash(t, "add", "añade una advertencia")
	warn, err := NewSubGroup("warn", "gestión de advertencias", warnAdd)
	if err != nil {
		t.Fatal(err)
	}
	def, err := NewGroup("mod", "herramientas de moderación", ban, warn)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.AddGroup(def.Global()); err != nil {
		t.Fatal(err)
	}

	userCmd, _ := NewUserCommand("perfil", noopUser)
	if err := r.AddUserCommand(userCmd, ""); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want *Command
	}{
		{"ping", ping},
		{"mod ban", ban},
		{"mod warn add", warnAdd},
		{"  mod   warn   add  ", warnAdd},
		{"mod", nil},
		{"mod warn", nil},
		{"mod missing", nil},
		{"mod warn missing", nil},
		{"ping extra", nil},
		{"perfil", nil},
		{"", nil},
		{"mod warn add extra", nil},
	}
	for _, tt := range tests {
		got, ok := r.GlobalSlashCommand(tt.path)
		if tt.want == nil {
			if ok {
				t.Errorf("GlobalSlashCommand(%q) resolved %v, want miss", tt.path, got.Name())
			}
			continue
		}
		if !ok || got != tt.want {
			t.Errorf("GlobalSlashCommand(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

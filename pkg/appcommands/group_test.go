package appcommands

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestNewSubGroup verifies member validation and ordering
func TestNewSubGroup(t *testing.T) {
	warnAdd := mustSlash(t, "add", "añade una advertencia")
	warnList := mustSlash(t, "list", "lista las advertencias")

	sg, err := NewSubGroup("Warn", "gestión de advertencias", warnAdd, warnList)
	if err != nil {
		t.Fatal(err)
	}
	if sg.Name() != "warn" {
		t.Errorf("Name = %v, want warn", sg.Name())
	}

	cmds := sg.Commands()
	if len(cmds) != 2 || cmds[0] != warnAdd || cmds[1] != warnList {
		t.Errorf("Commands out of declaration order: %v", cmds)
	}

	var invalid *InvalidArgumentError
	if _, err := NewSubGroup("warn", "desc válida", warnAdd, mustSlash(t, "add", "otra")); !errors.As(err, &invalid) {
		t.Errorf("duplicate member error = %v, want InvalidArgumentError", err)
	}
	if _, err := NewSubGroup("warn", "desc válida", nil); !errors.As(err, &invalid) {
		t.Errorf("nil member error = %v, want InvalidArgumentError", err)
	}

	userCmd, _ := NewUserCommand("perfil", noopUser)
	if _, err := NewSubGroup("warn", "desc válida", userCmd); !errors.As(err, &invalid) {
		t.Errorf("non-slash member error = %v, want InvalidArgumentError", err)
	}

	hollow := &Command{kind: KindSlash, name: "hueco", description: "comando sin handler"}
	if _, err := NewSubGroup("warn", "desc válida", hollow); !errors.As(err, &invalid) {
		t.Errorf("handlerless member error = %v, want InvalidArgumentError", err)
	}
}

// TestNewGroup verifies member validation and the ownership backlink
func TestNewGroup(t *testing.T) {
	ban := mustSlash(t, "ban", "banea a un usuario")
	kick := mustSlash(t, "kick", "expulsa a un usuario")
	warn, err := NewSubGroup("warn", "gestión de advertencias", mustSlash(t, "add", "añade una advertencia"))
	if err != nil {
		t.Fatal(err)
	}

	def, err := NewGroup("Mod", "herramientas de moderación", ban, warn, kick)
	if err != nil {
		t.Fatal(err)
	}
	if def.Name() != "mod" {
		t.Errorf("Name = %v, want mod", def.Name())
	}
	if ban.Parent() != def {
		t.Error("member parent not set to the definition")
	}

	var invalid *InvalidArgumentError
	if _, err := NewGroup("otro", "otro grupo de prueba", ban); !errors.As(err, &invalid) {
		t.Errorf("re-parenting error = %v, want InvalidArgumentError", err)
	}
	if _, err := NewGroup("dup", "grupo con duplicados", mustSlash(t, "x1", "uno"), mustSlash(t, "x1", "dos")); !errors.As(err, &invalid) {
		t.Errorf("duplicate member error = %v, want InvalidArgumentError", err)
	}
	if _, err := NewGroup("vacio", "grupo con nil", nil); !errors.As(err, &invalid) {
		t.Errorf("nil member error = %v, want InvalidArgumentError", err)
	}

	userCmd, _ := NewUserCommand("perfil", noopUser)
	if _, err := NewGroup("ctx", "grupo con contexto", userCmd); !errors.As(err, &invalid) {
		t.Errorf("non-slash member error = %v, want InvalidArgumentError", err)
	}

	hollow := &Command{kind: KindSlash, name: "hueco", description: "comando sin handler"}
	if _, err := NewGroup("vacio2", "grupo sin handler", hollow); !errors.As(err, &invalid) {
		t.Errorf("handlerless member error = %v, want InvalidArgumentError", err)
	}
}

// TestGroupInstancesShareChildren verifies scoped instances reuse the
// definition's children by reference while keeping their own scope and id
func TestGroupInstancesShareChildren(t *testing.T) {
	ping := mustSlash(t, "ping", "responde con pong")
	def, err := NewGroup("utils", "utilidades varias", ping)
	if err != nil {
		t.Fatal(err)
	}

	global := def.Global()
	guild := def.ForGuild("999")

	if global.IsGuild() {
		t.Error("global instance reports IsGuild")
	}
	if !guild.IsGuild() || guild.GuildID() != "999" {
		t.Errorf("guild instance scope = %v/%v", guild.IsGuild(), guild.GuildID())
	}

	g1, _ := global.Command("ping")
	g2, _ := guild.Command("ping")
	if g1 != g2 || g1 != ping {
		t.Error("instances do not share the child command pointer")
	}

	guild.setID("42")
	if global.ID() != "" {
		t.Errorf("global ID = %v, want empty after guild backfill", global.ID())
	}
	if guild.ID() != "42" {
		t.Errorf("guild ID = %v, want 42", guild.ID())
	}
}

// TestGroupSerialize verifies the nested payload keeps declaration order
func TestGroupSerialize(t *testing.T) {
	ban := mustSlash(t, "ban", "banea a un usuario",
		mustOption(t, "user", "a quien banear", discordgo.ApplicationCommandOptionUser, true))
	warn, err := NewSubGroup("warn", "gestión de advertencias",
		mustSlash(t, "add", "añade una advertencia"),
		mustSlash(t, "list", "lista las advertencias"))
	if err != nil {
		t.Fatal(err)
	}
	kick := mustSlash(t, "kick", "expulsa a un usuario")

	def, err := NewGroup("mod", "herramientas de moderación", ban, warn, kick)
	if err != nil {
		t.Fatal(err)
	}

	out := def.Global().Serialize()
	if out.Type != discordgo.ChatApplicationCommand {
		t.Errorf("Type = %v, want ChatApplicationCommand", out.Type)
	}
	if len(out.Options) != 3 {
		t.Fatalf("Options length = %v, want 3", len(out.Options))
	}

	if out.Options[0].Type != discordgo.ApplicationCommandOptionSubCommand || out.Options[0].Name != "ban" {
		t.Errorf("Options[0] = %v %v", out.Options[0].Type, out.Options[0].Name)
	}
	if len(out.Options[0].Options) != 1 || out.Options[0].Options[0].Name != "user" {
		t.Errorf("ban sub-command lost its options: %v", out.Options[0].Options)
	}

	if out.Options[1].Type != discordgo.ApplicationCommandOptionSubCommandGroup || out.Options[1].Name != "warn" {
		t.Errorf("Options[1] = %v %v", out.Options[1].Type, out.Options[1].Name)
	}
	if len(out.Options[1].Options) != 2 || out.Options[1].Options[0].Name != "add" {
		t.Errorf("warn slot children = %v", out.Options[1].Options)
	}

	if out.Options[2].Type != discordgo.ApplicationCommandOptionSubCommand || out.Options[2].Name != "kick" {
		t.Errorf("Options[2] = %v %v", out.Options[2].Type, out.Options[2].Name)
	}
}

// TestGroupViews verifies the declaration-ordered accessor views
func TestGroupViews(t *testing.T) {
	a := mustSlash(t, "a1", "primer comando")
	b := mustSlash(t, "b1", "segundo comando")
	sub, err := NewSubGroup("extra", "comandos extra", mustSlash(t, "c1", "tercer comando"))
	if err != nil {
		t.Fatal(err)
	}

	def, err := NewGroup("caja", "grupo de prueba", a, sub, b)
	if err != nil {
		t.Fatal(err)
	}
	g := def.Global()

	cmds := g.Commands()
	if len(cmds) != 2 || cmds[0].Name() != "a1" || cmds[1].Name() != "b1" {
		t.Errorf("Commands = %v", cmds)
	}
	subs := g.SubGroups()
	if len(subs) != 1 || subs[0].Name() != "extra" {
		t.Errorf("SubGroups = %v", subs)
	}
	if _, ok := g.SubGroup("extra"); !ok {
		t.Error("SubGroup lookup failed")
	}
	if _, ok := g.Command("missing"); ok {
		t.Error("Command lookup for missing name succeeded")
	}
}

package utils

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
)

// createHelpCommand creates the /help command
func createHelpCommand() (*appcommands.Command, error) {
	return appcommands.NewSlashCommand(
		"help",
		"Muestra información de ayuda",
		helpHandler,
	)
}

// helpHandler builds the help text from the command registry, so it never
// goes stale when commands are added or removed.
func helpHandler(ctx *appcommands.Context, _ []appcommands.ResolvedOption) error {
	reg := ctx.Bot.GlobalRegistry()

	var b strings.Builder
	b.WriteString("📖 **Ayuda de PancyCommands Go**\n\n**Comandos:**\n")

	for _, cmd := range reg.SlashCommands() {
		fmt.Fprintf(&b, "• `/%s` - %s\n", cmd.Name(), cmd.Description())
	}

	for _, group := range reg.Groups() {
		for _, cmd := range group.Commands() {
			fmt.Fprintf(&b, "• `/%s %s` - %s\n", group.Name(), cmd.Name(), cmd.Description())
		}
		for _, sub := range group.SubGroups() {
			for _, cmd := range sub.Commands() {
				fmt.Fprintf(&b, "• `/%s %s %s` - %s\n", group.Name(), sub.Name(), cmd.Name(), cmd.Description())
			}
		}
	}

	if userCmds := reg.UserCommands(); len(userCmds) > 0 {
		b.WriteString("\n**Menú contextual de usuario:**\n")
		for _, cmd := range userCmds {
			fmt.Fprintf(&b, "• %s\n", cmd.Name())
		}
	}

	if msgCmds := reg.MessageCommands(); len(msgCmds) > 0 {
		b.WriteString("\n**Menú contextual de mensaje:**\n")
		for _, cmd := range msgCmds {
			fmt.Fprintf(&b, "• %s\n", cmd.Name())
		}
	}

	return ctx.Reply(b.String())
}

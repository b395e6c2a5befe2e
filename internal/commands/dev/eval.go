// Package dev provides the developer-only commands, registered exclusively
// in the development guild.
package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/PancyStudios/PancyCommandsGo/pkg/config"
	"github.com/PancyStudios/PancyCommandsGo/pkg/database"
	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// devUserID is the only account allowed to run /dev eval
const devUserID = "852683369899622430"

func isDev(userID string) bool {
	return userID == devUserID
}

// createEvalCommand creates the /dev eval subcommand
func createEvalCommand() (*appcommands.Command, error) {
	codeOpt, err := appcommands.NewOption("codigo", "Código o expresión Go a evaluar", discordgo.ApplicationCommandOptionString, true)
	if err != nil {
		return nil, err
	}

	cmd, err := appcommands.NewSlashCommand(
		"eval",
		"Evalúa código Go y muestra estructuras internas (Peligroso)",
		evalHandler,
		codeOpt,
	)
	if err != nil {
		return nil, err
	}
	return cmd.WithAllowedUsers(map[string]bool{devUserID: true}), nil
}

func evalHandler(ctx *appcommands.Context, opts []appcommands.ResolvedOption) error {
	start := time.Now()

	if !isDev(ctx.User().ID) {
		return ctx.ReplyEphemeral("❌ **Acceso Denegado:** Este comando es solo para desarrolladores.")
	}

	// Compiling the script can take a moment; defer the response
	if err := ctx.Defer(); err != nil {
		return err
	}

	code := opts[0].StringValue()
	code = strings.TrimPrefix(code, "```go")
	code = strings.TrimPrefix(code, "```")
	code = strings.TrimSuffix(code, "```")
	code = strings.TrimSpace(code)

	i := interp.New(interp.Options{})

	if err := i.Use(stdlib.Symbols); err != nil {
		return ctx.EditReply(fmt.Sprintf("❌ Error cargando stdlib: %v", err))
	}

	// Expose the bot internals as globals inside the script
	botExports := map[string]reflect.Value{
		"Ctx":     reflect.ValueOf(ctx),
		"Bot":     reflect.ValueOf(ctx.Bot),
		"Session": reflect.ValueOf(ctx.Session),
		"DB":      reflect.ValueOf(database.Get()),
		"Config":  reflect.ValueOf(config.Get()),
	}

	if err := i.Use(interp.Exports{
		"github.com/PancyStudios/PancyCommandsGo/internal/commands/dev/dev": botExports,
	}); err != nil {
		return ctx.EditReply(fmt.Sprintf("❌ Error registrando variables: %v", err))
	}

	if _, err := i.Eval(`import . "github.com/PancyStudios/PancyCommandsGo/internal/commands/dev"`); err != nil {
		return ctx.EditReply(fmt.Sprintf("❌ Error importando variables: %v", err))
	}

	res, err := i.Eval(code)

	var output string
	if err != nil {
		output = fmt.Sprintf("❌ **Error de Ejecución:**\n```go\n%v\n```", err)
	} else {
		var resStr string
		if res.IsValid() {
			resStr = fmt.Sprintf("%#v", res.Interface())
		} else {
			resStr = "nil"
		}
		if len(resStr) > 1900 {
			resStr = resStr[:1900] + "... (truncado)"
		}
		output = fmt.Sprintf("✅ **Resultado:**\n```go\n%s\n```", resStr)
	}

	logger.Debug(fmt.Sprintf("Eval completado en %s", time.Since(start)), "DevEval")

	return ctx.EditReply(output)
}

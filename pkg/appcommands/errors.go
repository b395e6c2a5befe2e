// Package appcommands layers application commands on top of a discordgo
// session: slash, user and message commands, command groups with sub-groups,
// bulk deployment against Discord and interaction dispatch.
package appcommands

import "fmt"

// InvalidArgumentError reports malformed construction input. Nothing is
// created or registered when it is returned.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

func invalidArgf(format string, a ...interface{}) error {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, a...)}
}

// CommandRegistrationError reports a duplicate name at registration time.
// The target registry is left unchanged.
type CommandRegistrationError struct {
	Name string
}

func (e *CommandRegistrationError) Error() string {
	return fmt.Sprintf("command %q is already registered", e.Name)
}

// CommandNotFoundError reports an interaction that resolved to no
// registered command.
type CommandNotFoundError struct {
	Name string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command %q not found", e.Name)
}

// HandlerInvocationError wraps an error returned (or a panic recovered)
// while running a command handler. It is delivered to the bot's command
// error listeners and never reaches the session's event loop.
type HandlerInvocationError struct {
	Command string
	Err     error
}

func (e *HandlerInvocationError) Error() string {
	return fmt.Sprintf("handler for %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying handler error.
func (e *HandlerInvocationError) Unwrap() error {
	return e.Err
}

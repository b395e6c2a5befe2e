package appcommands

import (
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// DiscordGoLogger bridges discordgo's log output into the custom logger
// Note: discordgo.Logger is a function, not an interface
func init() {
	discordgo.Logger = func(msgL int, caller int, format string, a ...interface{}) {
		logger.Info(fmt.Sprintf(format, a...), "DiscordGo")
	}
}

// Bot wraps a discordgo session with command registration, deployment and
// interaction dispatch. Registration methods come from the embedded
// Registrar; the Bot adds the gateway lifecycle around them.
type Bot struct {
	*Registrar

	Session   *discordgo.Session
	StartTime time.Time

	resolver       EntityResolver
	logDeployments bool

	mu               sync.RWMutex
	isReady          bool
	errorListeners   []func(*Context, error)
	invokedListeners []func(*Context, *Command)
	deployListeners  []func(*DeployResult)
}

var (
	bot  *Bot
	once sync.Once
)

// Init initializes the global bot instance
func Init(token string) (*Bot, error) {
	var err error
	once.Do(func() {
		bot, err = NewBot(token)
	})
	return bot, err
}

// Get returns the global bot instance
func Get() *Bot {
	return bot
}

// NewBot creates a Bot with its own session
func NewBot(token string) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	// Set intents
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers

	// Configure session
	session.ShardCount = 1
	session.SyncEvents = false
	session.StateEnabled = true
	session.LogLevel = discordgo.LogWarning

	return New(session), nil
}

// New wraps an existing session. Embedders that manage their own session
// construction attach the command layer with this.
func New(session *discordgo.Session) *Bot {
	return &Bot{
		Registrar: newRegistrar(),
		Session:   session,
		resolver:  &sessionResolver{session: session},
	}
}

// SetResolver replaces the entity resolver used when converting user,
// channel and role option values.
func (b *Bot) SetResolver(r EntityResolver) {
	b.resolver = r
}

// LogDeployments enables per-command logging during deployment.
func (b *Bot) LogDeployments(enabled bool) {
	b.logDeployments = enabled
}

// Start binds the gateway handlers and opens the connection. Commands are
// deployed once the ready event arrives; a reconnect fires ready again and
// redeploys the current registry contents.
func (b *Bot) Start() error {
	b.Session.AddHandler(b.onReady)
	b.Session.AddHandler(b.HandleInteraction)

	b.StartTime = time.Now()

	if err := b.Session.Open(); err != nil {
		return err
	}
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.mu.Lock()
	b.isReady = true
	b.mu.Unlock()

	logger.Success("Bot conectado como: "+r.User.Username, "AppCommands")

	result, err := b.Deploy(s, r.User.ID)
	if err != nil {
		logger.Error("Error desplegando comandos: "+err.Error(), "AppCommands")
		return
	}

	logger.Success(fmt.Sprintf("Comandos desplegados: %d", result.Total()), "AppCommands")
	if b.logDeployments {
		for _, dep := range result.Global {
			logger.Info("Comando global "+dep.Name+" -> "+dep.ID, "AppCommands")
		}
		for guildID, deps := range result.Guilds {
			for _, dep := range deps {
				logger.Info("Comando de guild "+guildID+" "+dep.Name+" -> "+dep.ID, "AppCommands")
			}
		}
	}
	b.notifyDeploy(result)
}

// Stop stops the bot and closes the session
func (b *Bot) Stop() error {
	b.mu.Lock()
	b.isReady = false
	b.mu.Unlock()

	if b.Session != nil {
		return b.Session.Close()
	}
	return nil
}

// IsReady returns true if the bot is ready
func (b *Bot) IsReady() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.isReady
}

// GuildCount returns the number of guilds the bot is in
func (b *Bot) GuildCount() int {
	if b.Session == nil || b.Session.State == nil {
		return 0
	}
	b.Session.State.RLock()
	defer b.Session.State.RUnlock()
	return len(b.Session.State.Guilds)
}

// OnCommandError registers a listener invoked whenever a dispatch fails:
// unknown command, target fetch failure, handler error or handler panic.
func (b *Bot) OnCommandError(fn func(*Context, error)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errorListeners = append(b.errorListeners, fn)
}

// OnCommandInvoked registers a listener invoked after a handler returns
// without error.
func (b *Bot) OnCommandInvoked(fn func(*Context, *Command)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.invokedListeners = append(b.invokedListeners, fn)
}

// OnDeploy registers a listener invoked after each successful deployment.
func (b *Bot) OnDeploy(fn func(*DeployResult)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deployListeners = append(b.deployListeners, fn)
}

// reportError is the single error sink for dispatch. Errors are logged and
// handed to the registered listeners; they never propagate to the gateway.
func (b *Bot) reportError(ctx *Context, err error) {
	logger.Error("Error ejecutando comando: "+err.Error(), "AppCommands")

	b.mu.RLock()
	listeners := make([]func(*Context, error), len(b.errorListeners))
	copy(listeners, b.errorListeners)
	b.mu.RUnlock()

	for _, fn := range listeners {
		fn(ctx, err)
	}
}

func (b *Bot) notifyInvoked(ctx *Context, cmd *Command) {
	b.mu.RLock()
	listeners := make([]func(*Context, *Command), len(b.invokedListeners))
	copy(listeners, b.invokedListeners)
	b.mu.RUnlock()

	for _, fn := range listeners {
		fn(ctx, cmd)
	}
}

func (b *Bot) notifyDeploy(result *DeployResult) {
	b.mu.RLock()
	listeners := make([]func(*DeployResult), len(b.deployListeners))
	copy(listeners, b.deployListeners)
	b.mu.RUnlock()

	for _, fn := range listeners {
		fn(result)
	}
}

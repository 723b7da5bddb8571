package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/cirrosis/internal/common/clock"
	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/KirkDiggler/cirrosis/internal/services/consumption"
	"github.com/KirkDiggler/cirrosis/internal/services/messaging"
	"github.com/KirkDiggler/cirrosis/internal/services/stats"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot represents the Discord bot instance
type Bot struct {
	session            *discordgo.Session
	commands           map[string]CommandHandler
	commandIDs         map[string]string // Maps command name to command ID
	statsService       stats.Service
	consumptionService consumption.Service
	log                *zap.Logger
	config             *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	StatsService       stats.Service
	ConsumptionService consumption.Service
	MessagingService   messaging.Service

	// Clock decides which month "this month" is
	Clock clock.Clock

	// Drinks offered as choices when logging
	Drinks []*models.DrinkType

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.StatsService == nil {
		return nil, errors.New("stats service cannot be nil")
	}

	if cfg.ConsumptionService == nil {
		return nil, errors.New("consumption service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:            session,
		commands:           make(map[string]CommandHandler),
		commandIDs:         make(map[string]string),
		statsService:       cfg.StatsService,
		consumptionService: cfg.ConsumptionService,
		log:                log.Named("discord"),
		config:             cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	cmd := NewCirrosisCommand(b.statsService, b.consumptionService, b.config.MessagingService, b.config.Clock, b.config.Drinks, b.log)
	if err := b.RegisterCommand(cmd); err != nil {
		return fmt.Errorf("failed to register cirrosis command: %w", err)
	}

	b.log.Info("bot is running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID, guildID := b.target()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			b.log.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
			continue
		}
		b.log.Info("deleted command", zap.String("command", cmdName), zap.String("command_id", cmdID))
	}

	return b.session.Close()
}

// target returns the application and guild commands are registered under.
// An empty guild registers globally.
func (b *Bot) target() (string, string) {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}
	return appID, b.config.GuildID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID, guildID := b.target()

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.log.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", guildID))

	return nil
}

// Select menu custom IDs
const (
	SelectVoidConsumption = "void_consumption"
)

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.log.Error("failed to handle command", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.log.Error("failed to handle component interaction", zap.Error(err))
		}
	}
}

// handleComponentInteraction handles select menus
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	switch i.MessageComponentData().CustomID {
	case SelectVoidConsumption:
		return b.handleVoidConsumptionSelect(s, i, interactionUserID(i))
	default:
		return RespondWithEphemeralMessage(s, i, "Unknown action")
	}
}

// handleVoidConsumptionSelect voids the event picked from the undo menu
func (b *Bot) handleVoidConsumptionSelect(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	values := i.MessageComponentData().Values
	if len(values) == 0 || values[0] == "" {
		return RespondWithEphemeralMessage(s, i, "Nothing selected")
	}

	output, err := b.consumptionService.VoidConsumption(ctx, &consumption.VoidConsumptionInput{
		PersonID: userID,
		EventID:  values[0],
	})
	if err != nil {
		b.log.Error("failed to void consumption", zap.String("event_id", values[0]), zap.Error(err))
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Failed to undo: %v", err))
	}

	message := "Undone."
	if !output.Voided {
		message = "That entry was already undone."
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    message,
			Components: []discordgo.MessageComponent{},
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

// interactionUserID returns the invoking user for guild and direct interactions
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"yogabot/internal/application"
	"yogabot/internal/config"
	"yogabot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	logger  *zap.Logger
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(cfg *config.Config, repo output.PractitionerRepository, translator output.Translator, logger *zap.Logger) (*Bot, error) {
	progressUC := application.NewProgressService(repo, nil)
	timelineUC := application.NewTimelineService(translator)

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(progressUC, timelineUC, translator, logger),
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name == commandName {
		b.handler.HandleCommand(s, i)
	}
}

// Start opens the session, registers the /yoga command, runs the reminder
// scheduler and blocks until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	cmd := buildCommand(b.handler.translator)
	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
		b.logger.Warn("⚠️ failed to register command", zap.String("command", cmd.Name), zap.Error(err))
	}

	go b.handler.RunScheduledTasks(ctx, b.session, b.config.ReminderInterval, b.config.ReminderAfter)

	b.logger.Info("🤖 Bot online", zap.String("user", b.session.State.User.Username))
	<-ctx.Done()
	b.logger.Info("shutting down")
	return nil
}

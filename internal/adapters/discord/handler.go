package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"yogabot/internal/application"
	"yogabot/internal/domain"
	"yogabot/internal/domain/timeline"
	"yogabot/internal/ports/input"
	"yogabot/internal/ports/output"
	pkgdiscord "yogabot/pkg/discord"
)

// Discord expects an interaction response within three seconds.
const interactionTimeout = 3 * time.Second

// Handler handles Discord interactions using use cases.
type Handler struct {
	progress   input.ProgressUseCase
	timeline   input.TimelineUseCase
	translator output.Translator
	logger     *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	progress input.ProgressUseCase,
	timeline input.TimelineUseCase,
	translator output.Translator,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		progress:   progress,
		timeline:   timeline,
		translator: translator,
		logger:     logger,
	}
}

// HandleCommand answers a /yoga invocation.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	in := parseCommand(i.Interaction)
	r := h.dispatch(ctx, in)
	if err := respondEphemeral(s, i.Interaction, r); err != nil {
		h.logger.Error("failed to respond to interaction",
			zap.String("subcommand", in.Subcommand),
			zap.String("user_id", in.UserID),
			zap.Error(err),
		)
	}
}

func (h *Handler) dispatch(ctx context.Context, in commandInput) reply {
	p, err := h.progress.Enroll(ctx, in.UserID, in.Username, h.translator.MatchLocale(in.Locale))
	if err != nil {
		loc := application.NewLocalizer(h.translator, h.translator.MatchLocale(in.Locale))
		return h.failure(loc, in, err)
	}
	loc := application.NewLocalizer(h.translator, p.Locale)

	var r reply
	switch in.Subcommand {
	case subProgram:
		r = h.program(loc, p.Progress())
	case subDay:
		r, err = h.day(loc, p.Progress(), in.intOption(optNumber))
	case subProgress:
		r = h.summary(loc, p.Progress())
	case subComplete:
		r, err = h.complete(ctx, loc, in.UserID, in.intOption(optDay))
	case subLanguage:
		r, err = h.language(ctx, loc, in.UserID, in.stringOption(optLocale))
	case subReminders:
		r, err = h.reminders(ctx, loc, in.UserID, in.boolOption(optEnabled))
	case subReset:
		r, err = h.reset(ctx, loc, in.UserID)
	default:
		r = reply{Content: loc.T("errors.generic", nil)}
	}
	if err != nil {
		return h.failure(loc, in, err)
	}
	return r
}

func (h *Handler) failure(loc *application.Localizer, in commandInput, err error) reply {
	if domain.Code(err) == "" {
		h.logger.Error("command failed",
			zap.String("subcommand", in.Subcommand),
			zap.String("user_id", in.UserID),
			zap.Error(err),
		)
	}
	return reply{Content: pkgdiscord.DomainErrorMessage(loc.T, err)}
}

func (h *Handler) program(loc *application.Localizer, progress timeline.Progress) reply {
	cards := h.timeline.Cards(loc.Locale(), progress)
	summary := h.timeline.Summary(loc.Locale(), progress)
	return reply{Embed: pkgdiscord.BuildProgramEmbed(loc.T, cards, summary)}
}

func (h *Handler) day(loc *application.Localizer, progress timeline.Progress, day int) (reply, error) {
	card, err := h.timeline.Card(loc.Locale(), progress, day)
	if err != nil {
		return reply{}, err
	}
	return reply{Embed: pkgdiscord.BuildDayEmbed(loc.T, card)}, nil
}

func (h *Handler) summary(loc *application.Localizer, progress timeline.Progress) reply {
	return reply{Embed: pkgdiscord.BuildProgressEmbed(loc.T, h.timeline.Summary(loc.Locale(), progress))}
}

func (h *Handler) complete(ctx context.Context, loc *application.Localizer, userID string, day int) (reply, error) {
	p, err := h.progress.CompleteDay(ctx, userID, day)
	if err != nil {
		return reply{}, err
	}
	h.logger.Info("day completed", zap.String("user_id", userID), zap.Int("day", day))
	r := h.summary(loc, p.Progress())
	r.Content = loc.T("complete.success", map[string]any{"day": day})
	return r, nil
}

func (h *Handler) language(ctx context.Context, loc *application.Localizer, userID, locale string) (reply, error) {
	p, err := h.progress.SetLocale(ctx, userID, locale)
	if err != nil {
		return reply{}, err
	}
	if err := loc.SetLocale(p.Locale); err != nil {
		return reply{}, err
	}
	return reply{Content: loc.T("language.changed", nil)}, nil
}

func (h *Handler) reminders(ctx context.Context, loc *application.Localizer, userID string, enabled bool) (reply, error) {
	if _, err := h.progress.SetReminders(ctx, userID, enabled); err != nil {
		return reply{}, err
	}
	if enabled {
		return reply{Content: loc.T("reminders.enabled", nil)}, nil
	}
	return reply{Content: loc.T("reminders.disabled", nil)}, nil
}

func (h *Handler) reset(ctx context.Context, loc *application.Localizer, userID string) (reply, error) {
	p, err := h.progress.Reset(ctx, userID)
	if err != nil {
		return reply{}, err
	}
	h.logger.Info("progress reset", zap.String("user_id", userID))
	r := h.summary(loc, p.Progress())
	r.Content = loc.T("reset.done", nil)
	return r, nil
}

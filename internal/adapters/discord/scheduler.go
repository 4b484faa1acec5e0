package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"yogabot/internal/application"
)

// directMessenger is the part of *discordgo.Session used to send DMs.
type directMessenger interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// RunScheduledTasks sends reminder DMs every interval until ctx is cancelled.
func (h *Handler) RunScheduledTasks(ctx context.Context, s directMessenger, interval, after time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			h.sendReminders(ctx, s, now, after)
		}
	}
}

func (h *Handler) sendReminders(ctx context.Context, s directMessenger, now time.Time, after time.Duration) {
	practitioners, err := h.progress.PractitionersNeedingReminder(ctx, now, after)
	if err != nil {
		h.logger.Error("failed to list practitioners needing reminder", zap.Error(err))
		return
	}
	for _, p := range practitioners {
		loc := application.NewLocalizer(h.translator, p.Locale)
		msg := loc.T("reminders.message", map[string]any{
			"name": p.Username,
			"day":  p.Progress().Stats().NextAvailable,
		})
		if err := sendDM(s, p.UserID, msg); err != nil {
			h.logger.Warn("⚠️ reminder DM failed", zap.String("user_id", p.UserID), zap.Error(err))
			continue
		}
		if err := h.progress.MarkReminded(ctx, p.ID, now); err != nil {
			h.logger.Error("failed to mark practitioner reminded", zap.Uint("id", p.ID), zap.Error(err))
			continue
		}
		h.logger.Info("📨 reminder sent", zap.String("user_id", p.UserID))
	}
}

func sendDM(s directMessenger, userID, content string) error {
	ch, err := s.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("open dm channel: %w", err)
	}
	if _, err := s.ChannelMessageSend(ch.ID, content); err != nil {
		return fmt.Errorf("send dm: %w", err)
	}
	return nil
}

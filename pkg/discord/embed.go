package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"yogabot/internal/domain/timeline"
	"yogabot/internal/ports/input"
)

// Translate renders a translation key in the caller's active locale.
type Translate func(key string, data map[string]any) string

const (
	embedColor        = 0x8B5CF6
	progressBarLength = 10
)

var difficultyColors = map[timeline.Difficulty]int{
	timeline.Beginner:     0x22C55E,
	timeline.Intermediate: 0xEAB308,
	timeline.Advanced:     0xEF4444,
}

func StatusEmoji(status timeline.Status) string {
	switch status {
	case timeline.StatusCompleted:
		return "✅"
	case timeline.StatusCurrent:
		return "▶️"
	case timeline.StatusPreview:
		return "👀"
	default:
		return "🔒"
	}
}

func dayTitle(t Translate, card input.DayCard) string {
	return t("day.title", map[string]any{"day": card.Day.ID, "title": card.Title})
}

// BuildProgramEmbed lists every day of the program with its status.
func BuildProgramEmbed(t Translate, cards []input.DayCard, summary input.Summary) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(cards))
	for _, card := range cards {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s %s", StatusEmoji(card.Status), dayTitle(t, card)),
			Value: fmt.Sprintf("%s · %s · %s", card.Difficulty, card.Duration, card.StatusLabel),
		})
	}
	return &discordgo.MessageEmbed{
		Title:       t("timeline.title", nil),
		Description: fmt.Sprintf("%s\n\n%s", t("timeline.subtitle", nil), summary.Headline),
		Color:       embedColor,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: t("program.footer", nil)},
	}
}

// BuildDayEmbed shows a single day card.
func BuildDayEmbed(t Translate, card input.DayCard) *discordgo.MessageEmbed {
	color, ok := difficultyColors[card.Day.Difficulty]
	if !ok {
		color = embedColor
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s %s", StatusEmoji(card.Status), dayTitle(t, card)),
		Description: card.Description,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: t("day.difficulty", nil), Value: card.Difficulty, Inline: true},
			{Name: t("day.duration", nil), Value: card.Duration, Inline: true},
			{Name: t("day.status", nil), Value: card.StatusLabel, Inline: true},
		},
	}
}

// BuildProgressEmbed shows the aggregate statistics.
func BuildProgressEmbed(t Translate, summary input.Summary) *discordgo.MessageEmbed {
	var b strings.Builder
	b.WriteString(summary.Headline)
	b.WriteString("\n")
	b.WriteString(ProgressBar(summary.Stats.Percentage))
	if summary.Next != "" {
		b.WriteString("\n\n")
		b.WriteString(summary.Next)
	}
	return &discordgo.MessageEmbed{
		Title:       t("progress.title", nil),
		Description: b.String(),
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: t("progress.completedLabel", nil), Value: fmt.Sprintf("%d", summary.Stats.Completed), Inline: true},
			{Name: t("progress.remainingLabel", nil), Value: fmt.Sprintf("%d", summary.Stats.Remaining), Inline: true},
			{Name: t("progress.currentDayLabel", nil), Value: fmt.Sprintf("%d", summary.Stats.CurrentDay), Inline: true},
		},
	}
}

// ProgressBar draws percentage (clamped to 0-100) as a fixed-width bar.
func ProgressBar(percentage int) string {
	percentage = min(max(percentage, 0), 100)
	filled := percentage * progressBarLength / 100
	return strings.Repeat("▰", filled) + strings.Repeat("▱", progressBarLength-filled) + fmt.Sprintf(" %d%%", percentage)
}

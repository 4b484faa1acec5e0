package discord_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yogabot/internal/domain/timeline"
	"yogabot/internal/ports/input"
	pkgdiscord "yogabot/pkg/discord"
)

func keyT(key string, data map[string]any) string {
	if data == nil {
		return key
	}
	return fmt.Sprintf("%s%v", key, data)
}

func card(id int, status timeline.Status) input.DayCard {
	d, _ := timeline.DayByID(id)
	return input.DayCard{
		Day:         d,
		Title:       fmt.Sprintf("Title %d", id),
		Description: fmt.Sprintf("Description %d", id),
		Difficulty:  d.Difficulty.String(),
		Duration:    timeline.DurationText(d.Minutes),
		Status:      status,
		StatusLabel: status.String(),
	}
}

func TestBuildProgramEmbed(t *testing.T) {
	t.Parallel()

	cards := []input.DayCard{card(1, timeline.StatusCompleted), card(2, timeline.StatusCurrent), card(6, timeline.StatusLocked)}
	summary := input.Summary{Headline: "1 of 14"}

	embed := pkgdiscord.BuildProgramEmbed(keyT, cards, summary)
	assert.Equal(t, "timeline.title", embed.Title)
	assert.Equal(t, "timeline.subtitle\n\n1 of 14", embed.Description)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "✅ day.titlemap[day:1 title:Title 1]", embed.Fields[0].Name)
	assert.Equal(t, "beginner · 20 min · completed", embed.Fields[0].Value)
	assert.Equal(t, "🔒 day.titlemap[day:6 title:Title 6]", embed.Fields[2].Name)
	assert.Equal(t, "program.footer", embed.Footer.Text)
}

func TestBuildDayEmbed(t *testing.T) {
	t.Parallel()

	embed := pkgdiscord.BuildDayEmbed(keyT, card(8, timeline.StatusPreview))
	assert.Equal(t, "👀 day.titlemap[day:8 title:Title 8]", embed.Title)
	assert.Equal(t, "Description 8", embed.Description)
	assert.Equal(t, 0xEF4444, embed.Color)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "advanced", embed.Fields[0].Value)
	assert.Equal(t, "45 min", embed.Fields[1].Value)
	assert.Equal(t, "preview", embed.Fields[2].Value)
}

func TestBuildProgressEmbed(t *testing.T) {
	t.Parallel()

	summary := input.Summary{
		Stats:    timeline.Stats{Completed: 2, Remaining: 12, CurrentDay: 3, Percentage: 14, NextAvailable: 3},
		Headline: "2 of 14",
		Next:     "Next: 3",
	}
	embed := pkgdiscord.BuildProgressEmbed(keyT, summary)
	assert.Equal(t, "progress.title", embed.Title)
	assert.Equal(t, "2 of 14\n▰▱▱▱▱▱▱▱▱▱ 14%\n\nNext: 3", embed.Description)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "2", embed.Fields[0].Value)
	assert.Equal(t, "12", embed.Fields[1].Value)
	assert.Equal(t, "3", embed.Fields[2].Value)
}

func TestProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		percentage int
		want       string
	}{
		{percentage: 0, want: "▱▱▱▱▱▱▱▱▱▱ 0%"},
		{percentage: 50, want: "▰▰▰▰▰▱▱▱▱▱ 50%"},
		{percentage: 100, want: "▰▰▰▰▰▰▰▰▰▰ 100%"},
		{percentage: 140, want: "▰▰▰▰▰▰▰▰▰▰ 100%"},
		{percentage: -5, want: "▱▱▱▱▱▱▱▱▱▱ 0%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pkgdiscord.ProgressBar(tt.percentage))
	}
}

func TestStatusEmoji(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "✅", pkgdiscord.StatusEmoji(timeline.StatusCompleted))
	assert.Equal(t, "▶️", pkgdiscord.StatusEmoji(timeline.StatusCurrent))
	assert.Equal(t, "👀", pkgdiscord.StatusEmoji(timeline.StatusPreview))
	assert.Equal(t, "🔒", pkgdiscord.StatusEmoji(timeline.StatusLocked))
}

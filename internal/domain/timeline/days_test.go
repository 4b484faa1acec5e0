package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yogabot/internal/domain/timeline"
)

func TestDays(t *testing.T) {
	t.Parallel()

	days := timeline.Days()
	require.Len(t, days, timeline.TotalDays)

	unlocked := 0
	for i, d := range days {
		assert.Equal(t, i+1, d.ID, "ids are contiguous from 1")
		assert.Positive(t, d.Minutes)
		assert.GreaterOrEqual(t, d.Difficulty, timeline.Beginner)
		assert.LessOrEqual(t, d.Difficulty, timeline.Advanced)
		if d.Unlocked {
			unlocked++
		}
	}
	assert.Equal(t, timeline.InitialUnlockedDays, unlocked)
}

func TestDays_ReturnsCopy(t *testing.T) {
	t.Parallel()

	days := timeline.Days()
	days[0].Unlocked = false
	days[0].Minutes = 999

	first, ok := timeline.DayByID(1)
	require.True(t, ok)
	assert.True(t, first.Unlocked)
	assert.Equal(t, 20, first.Minutes)
}

func TestDayByID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id     int
		wantOK bool
	}{
		{id: 0, wantOK: false},
		{id: 1, wantOK: true},
		{id: 14, wantOK: true},
		{id: 15, wantOK: false},
		{id: -3, wantOK: false},
	}

	for _, tt := range tests {
		d, ok := timeline.DayByID(tt.id)
		assert.Equal(t, tt.wantOK, ok, "id %d", tt.id)
		if ok {
			assert.Equal(t, tt.id, d.ID)
		}
	}
}

func TestDay_Keys(t *testing.T) {
	t.Parallel()

	d, ok := timeline.DayByID(8)
	require.True(t, ok)
	assert.Equal(t, "timeline.days.day8.title", d.TitleKey())
	assert.Equal(t, "timeline.days.day8.description", d.DescriptionKey())
	assert.Equal(t, "timeline.difficulty.advanced", d.DifficultyKey())
}

func TestDifficulty_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "beginner", timeline.Beginner.String())
	assert.Equal(t, "intermediate", timeline.Intermediate.String())
	assert.Equal(t, "advanced", timeline.Advanced.String())
	assert.Equal(t, "unknown", timeline.Difficulty(0).String())
	assert.Less(t, timeline.Beginner, timeline.Intermediate)
	assert.Less(t, timeline.Intermediate, timeline.Advanced)
}

func TestDurationText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "20 min", timeline.DurationText(20))
	assert.Equal(t, "0 min", timeline.DurationText(0))
}

package input

import "yogabot/internal/domain/timeline"

// DayCard is the localized presentation of one program day.
type DayCard struct {
	Day         timeline.Day
	Title       string
	Description string
	Difficulty  string
	Duration    string
	Status      timeline.Status
	StatusLabel string
}

// Summary is the localized presentation of progress statistics.
type Summary struct {
	Stats    timeline.Stats
	Headline string
	Next     string
}

type TimelineUseCase interface {
	Cards(locale string, progress timeline.Progress) []DayCard
	Card(locale string, progress timeline.Progress, day int) (DayCard, error)
	Summary(locale string, progress timeline.Progress) Summary
}

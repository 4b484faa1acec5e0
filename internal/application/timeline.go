package application

import (
	"yogabot/internal/domain"
	"yogabot/internal/domain/timeline"
	"yogabot/internal/ports/input"
	"yogabot/internal/ports/output"
)

var _ input.TimelineUseCase = (*TimelineService)(nil)

// TimelineService renders the classifier output as localized views.
type TimelineService struct {
	translator output.T
}

func NewTimelineService(translator output.T) *TimelineService {
	return &TimelineService{translator: translator}
}

func (s *TimelineService) Cards(locale string, progress timeline.Progress) []input.DayCard {
	days := timeline.Days()
	cards := make([]input.DayCard, len(days))
	for i, d := range days {
		cards[i] = s.card(locale, progress, d)
	}
	return cards
}

func (s *TimelineService) Card(locale string, progress timeline.Progress, day int) (input.DayCard, error) {
	d, ok := timeline.DayByID(day)
	if !ok {
		return input.DayCard{}, domain.ErrDayOutOfRange
	}
	return s.card(locale, progress, d), nil
}

func (s *TimelineService) Summary(locale string, progress timeline.Progress) input.Summary {
	stats := progress.Stats()
	summary := input.Summary{
		Stats: stats,
		Headline: s.translator.T(locale, "progress.headline", map[string]any{
			"completed":  stats.Completed,
			"total":      timeline.TotalDays,
			"percentage": stats.Percentage,
		}),
	}
	switch {
	case stats.HasNext():
		summary.Next = s.translator.T(locale, "progress.next", map[string]any{"day": stats.NextAvailable})
	case stats.Remaining == 0:
		summary.Next = s.translator.T(locale, "progress.finished", nil)
	}
	return summary
}

func (s *TimelineService) card(locale string, progress timeline.Progress, d timeline.Day) input.DayCard {
	status := progress.Status(d)
	return input.DayCard{
		Day:         d,
		Title:       s.translator.T(locale, d.TitleKey(), nil),
		Description: s.translator.T(locale, d.DescriptionKey(), nil),
		Difficulty:  s.translator.T(locale, d.DifficultyKey(), nil),
		Duration:    timeline.DurationText(d.Minutes),
		Status:      status,
		StatusLabel: s.translator.T(locale, statusKey(status), nil),
	}
}

func statusKey(status timeline.Status) string {
	switch status {
	case timeline.StatusCompleted:
		return "timeline.completed"
	case timeline.StatusCurrent:
		return "timeline.startPractice"
	case timeline.StatusPreview:
		return "timeline.preview"
	default:
		return "timeline.locked"
	}
}

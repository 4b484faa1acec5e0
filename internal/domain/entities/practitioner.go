package entities

import (
	"time"

	"yogabot/internal/domain/timeline"
)

// Practitioner is a Discord user following the 14-day program.
type Practitioner struct {
	ID               uint
	UserID           string
	Username         string
	Locale           string
	CurrentDay       int
	CompletedDays    []int
	RemindersEnabled bool
	LastActiveAt     time.Time
	RemindedAt       time.Time // zero = never reminded
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Progress returns the classifier snapshot for the practitioner's state.
func (p *Practitioner) Progress() timeline.Progress {
	return timeline.NewProgress(p.CurrentDay, p.CompletedDays)
}

func (p *Practitioner) Finished() bool {
	return p.Progress().Stats().Remaining == 0
}

package timeline

import (
	"math"
	"sort"
)

// Status is the display classification of a day for a given progress.
type Status int

const (
	StatusLocked Status = iota
	StatusPreview
	StatusCurrent
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusCurrent:
		return "current"
	case StatusPreview:
		return "preview"
	default:
		return "locked"
	}
}

// Progress is a read-only snapshot of a practitioner's position in the
// program. Callers are expected to pass a current day and completed days
// within [1, TotalDays]; out-of-range input is not rejected here.
type Progress struct {
	current   int
	completed map[int]struct{}
}

// Stats aggregates a Progress. NextAvailable is NoDay when every day from
// the current one onwards is completed.
type Stats struct {
	Completed     int
	Remaining     int
	CurrentDay    int
	Percentage    int
	NextAvailable int
}

func (s Stats) HasNext() bool {
	return s.NextAvailable != NoDay
}

// NewProgress builds a Progress. completedDays is copied into a set and
// never retained.
func NewProgress(currentDay int, completedDays []int) Progress {
	completed := make(map[int]struct{}, len(completedDays))
	for _, id := range completedDays {
		completed[id] = struct{}{}
	}
	return Progress{current: currentDay, completed: completed}
}

func (p Progress) CurrentDay() int {
	return p.current
}

// CompletedDays returns the completed day ids in ascending order.
func (p Progress) CompletedDays() []int {
	out := make([]int, 0, len(p.completed))
	for id := range p.completed {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func (p Progress) IsCompleted(day Day) bool {
	_, ok := p.completed[day.ID]
	return ok
}

func (p Progress) IsCurrent(day Day) bool {
	return day.ID == p.current
}

// IsAccessible reports whether the day can be opened: statically unlocked
// days always can, any other day once the current day has reached it.
func (p Progress) IsAccessible(day Day) bool {
	return day.Unlocked || day.ID <= p.current
}

// Status classifies day for display. Completion wins over the current
// marker, which wins over plain accessibility.
func (p Progress) Status(day Day) Status {
	switch {
	case p.IsCompleted(day):
		return StatusCompleted
	case p.IsCurrent(day):
		return StatusCurrent
	case p.IsAccessible(day):
		return StatusPreview
	default:
		return StatusLocked
	}
}

// Stats is recomputed on every call.
func (p Progress) Stats() Stats {
	completed := len(p.completed)
	return Stats{
		Completed:     completed,
		Remaining:     TotalDays - completed,
		CurrentDay:    p.current,
		Percentage:    int(math.Round(float64(completed) / TotalDays * 100)),
		NextAvailable: p.nextAvailable(),
	}
}

func (p Progress) nextAvailable() int {
	for id := max(p.current, 1); id <= TotalDays; id++ {
		if _, done := p.completed[id]; !done {
			return id
		}
	}
	return NoDay
}

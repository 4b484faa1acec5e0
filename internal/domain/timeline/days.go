// Package timeline holds the static 14-day program and the progress
// classification derived from a practitioner's position in it.
package timeline

import "fmt"

const (
	TotalDays           = 14
	InitialUnlockedDays = 5

	// NoDay is returned as the next available day once every remaining
	// day is completed.
	NoDay = 0
)

// Difficulty levels are ordered: Beginner < Intermediate < Advanced.
type Difficulty int

const (
	Beginner Difficulty = iota + 1
	Intermediate
	Advanced
)

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// Day is one entry of the static program.
type Day struct {
	ID         int
	Difficulty Difficulty
	Minutes    int
	Unlocked   bool
}

func (d Day) TitleKey() string {
	return fmt.Sprintf("timeline.days.day%d.title", d.ID)
}

func (d Day) DescriptionKey() string {
	return fmt.Sprintf("timeline.days.day%d.description", d.ID)
}

func (d Day) DifficultyKey() string {
	return "timeline.difficulty." + d.Difficulty.String()
}

var program = [TotalDays]Day{
	{ID: 1, Difficulty: Beginner, Minutes: 20, Unlocked: true},
	{ID: 2, Difficulty: Beginner, Minutes: 25, Unlocked: true},
	{ID: 3, Difficulty: Beginner, Minutes: 30, Unlocked: true},
	{ID: 4, Difficulty: Intermediate, Minutes: 25, Unlocked: true},
	{ID: 5, Difficulty: Intermediate, Minutes: 35, Unlocked: true},
	{ID: 6, Difficulty: Intermediate, Minutes: 40},
	{ID: 7, Difficulty: Beginner, Minutes: 30},
	{ID: 8, Difficulty: Advanced, Minutes: 45},
	{ID: 9, Difficulty: Intermediate, Minutes: 35},
	{ID: 10, Difficulty: Intermediate, Minutes: 30},
	{ID: 11, Difficulty: Intermediate, Minutes: 25},
	{ID: 12, Difficulty: Advanced, Minutes: 50},
	{ID: 13, Difficulty: Advanced, Minutes: 60},
	{ID: 14, Difficulty: Intermediate, Minutes: 45},
}

// Days returns a copy of the program, ordered by day id.
func Days() []Day {
	out := make([]Day, TotalDays)
	copy(out, program[:])
	return out
}

// DayByID returns the program day with the given id.
func DayByID(id int) (Day, bool) {
	if !ValidDay(id) {
		return Day{}, false
	}
	return program[id-1], true
}

// ValidDay reports whether id lies in [1, TotalDays].
func ValidDay(id int) bool {
	return id >= 1 && id <= TotalDays
}

func DurationText(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

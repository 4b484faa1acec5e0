package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"yogabot/internal/domain/entities"
)

// practitionerColumns matches the scan order of scanPractitioner.
const practitionerColumns = `id, user_id, username, locale, current_day, completed_days,
	reminders_enabled, last_active_at, reminded_at, created_at, updated_at`

type practitionerRow struct {
	ID               int64
	UserID           string
	Username         string
	Locale           string
	CurrentDay       int32
	CompletedDays    []int32
	RemindersEnabled bool
	LastActiveAt     pgtype.Timestamptz
	RemindedAt       pgtype.Timestamptz
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPractitioner(row scanner) (practitionerRow, error) {
	var r practitionerRow
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.Username,
		&r.Locale,
		&r.CurrentDay,
		&r.CompletedDays,
		&r.RemindersEnabled,
		&r.LastActiveAt,
		&r.RemindedAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func practitionerToDomain(r practitionerRow) entities.Practitioner {
	completed := make([]int, len(r.CompletedDays))
	for i, d := range r.CompletedDays {
		completed[i] = int(d)
	}
	return entities.Practitioner{
		ID:               uint(r.ID),
		UserID:           r.UserID,
		Username:         r.Username,
		Locale:           r.Locale,
		CurrentDay:       int(r.CurrentDay),
		CompletedDays:    completed,
		RemindersEnabled: r.RemindersEnabled,
		LastActiveAt:     pgtypeTimestamptzToTime(r.LastActiveAt),
		RemindedAt:       pgtypeTimestamptzToTime(r.RemindedAt),
		CreatedAt:        pgtypeTimestamptzToTime(r.CreatedAt),
		UpdatedAt:        pgtypeTimestamptzToTime(r.UpdatedAt),
	}
}

// completedDaysParam never returns nil: completed_days is NOT NULL.
func completedDaysParam(days []int) []int32 {
	out := make([]int32, 0, len(days))
	for _, d := range days {
		out = append(out, int32(d))
	}
	return out
}

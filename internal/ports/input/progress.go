package input

import (
	"context"
	"time"

	"yogabot/internal/domain/entities"
)

type ProgressUseCase interface {
	Enroll(ctx context.Context, userID, username, locale string) (*entities.Practitioner, error)
	GetPractitioner(ctx context.Context, userID string) (*entities.Practitioner, error)
	CompleteDay(ctx context.Context, userID string, day int) (*entities.Practitioner, error)
	SetLocale(ctx context.Context, userID, locale string) (*entities.Practitioner, error)
	SetReminders(ctx context.Context, userID string, enabled bool) (*entities.Practitioner, error)
	Reset(ctx context.Context, userID string) (*entities.Practitioner, error)
	PractitionersNeedingReminder(ctx context.Context, now time.Time, after time.Duration) ([]entities.Practitioner, error)
	MarkReminded(ctx context.Context, practitionerID uint, at time.Time) error
}

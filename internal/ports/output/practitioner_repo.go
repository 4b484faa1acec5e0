package output

import (
	"context"
	"time"

	"yogabot/internal/domain/entities"
)

type PractitionerRepository interface {
	Create(ctx context.Context, practitioner *entities.Practitioner) error
	FindByUserID(ctx context.Context, userID string) (*entities.Practitioner, error)
	Update(ctx context.Context, practitioner *entities.Practitioner) error
	FindNeedingReminder(ctx context.Context, inactiveSince time.Time) ([]entities.Practitioner, error)
	MarkReminded(ctx context.Context, id uint, at time.Time) error
}

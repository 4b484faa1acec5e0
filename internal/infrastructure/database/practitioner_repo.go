package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"yogabot/internal/domain"
	"yogabot/internal/domain/entities"
	"yogabot/internal/ports/output"
)

var _ output.PractitionerRepository = (*PractitionerRepository)(nil)

// PractitionerRepository implements output.PractitionerRepository on pgx.
type PractitionerRepository struct {
	db DBTX
}

// NewPractitionerRepository creates a PractitionerRepository.
func NewPractitionerRepository(db DBTX) *PractitionerRepository {
	return &PractitionerRepository{db: db}
}

const createPractitioner = `
INSERT INTO practitioners (user_id, username, locale, current_day, completed_days, reminders_enabled, last_active_at)
VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, now()))
RETURNING id, created_at, updated_at`

func (r *PractitionerRepository) Create(ctx context.Context, p *entities.Practitioner) error {
	var row practitionerRow
	err := r.db.QueryRow(ctx, createPractitioner,
		p.UserID,
		p.Username,
		p.Locale,
		int32(p.CurrentDay),
		completedDaysParam(p.CompletedDays),
		p.RemindersEnabled,
		timeToPgtypeTimestamptz(p.LastActiveAt),
	).Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create practitioner: %w", err)
	}
	p.ID = uint(row.ID)
	p.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	p.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}

const getPractitionerByUserID = `SELECT ` + practitionerColumns + ` FROM practitioners WHERE user_id = $1`

func (r *PractitionerRepository) FindByUserID(ctx context.Context, userID string) (*entities.Practitioner, error) {
	row, err := scanPractitioner(r.db.QueryRow(ctx, getPractitionerByUserID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPractitionerNotFound
		}
		return nil, fmt.Errorf("get practitioner by user id: %w", err)
	}
	p := practitionerToDomain(row)
	return &p, nil
}

const updatePractitioner = `
UPDATE practitioners
SET username = $2,
    locale = $3,
    current_day = $4,
    completed_days = $5,
    reminders_enabled = $6,
    last_active_at = $7,
    reminded_at = $8,
    updated_at = now()
WHERE user_id = $1`

func (r *PractitionerRepository) Update(ctx context.Context, p *entities.Practitioner) error {
	tag, err := r.db.Exec(ctx, updatePractitioner,
		p.UserID,
		p.Username,
		p.Locale,
		int32(p.CurrentDay),
		completedDaysParam(p.CompletedDays),
		p.RemindersEnabled,
		timeToPgtypeTimestamptz(p.LastActiveAt),
		timeToPgtypeTimestamptz(p.RemindedAt),
	)
	if err != nil {
		return fmt.Errorf("update practitioner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPractitionerNotFound
	}
	return nil
}

const findPractitionersNeedingReminder = `SELECT ` + practitionerColumns + `
FROM practitioners
WHERE reminders_enabled
  AND last_active_at < $1
  AND (reminded_at IS NULL OR reminded_at < last_active_at)
ORDER BY last_active_at`

func (r *PractitionerRepository) FindNeedingReminder(ctx context.Context, inactiveSince time.Time) ([]entities.Practitioner, error) {
	rows, err := r.db.Query(ctx, findPractitionersNeedingReminder, timeToPgtypeTimestamptz(inactiveSince))
	if err != nil {
		return nil, fmt.Errorf("find practitioners needing reminder: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Practitioner, error) {
		pr, err := scanPractitioner(row)
		if err != nil {
			return entities.Practitioner{}, err
		}
		return practitionerToDomain(pr), nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan practitioners needing reminder: %w", err)
	}
	return out, nil
}

const markPractitionerReminded = `UPDATE practitioners SET reminded_at = $2 WHERE id = $1`

func (r *PractitionerRepository) MarkReminded(ctx context.Context, id uint, at time.Time) error {
	tag, err := r.db.Exec(ctx, markPractitionerReminded, int64(id), timeToPgtypeTimestamptz(at))
	if err != nil {
		return fmt.Errorf("mark practitioner reminded: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPractitionerNotFound
	}
	return nil
}

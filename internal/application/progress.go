package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"yogabot/internal/domain"
	"yogabot/internal/domain/entities"
	"yogabot/internal/domain/timeline"
	"yogabot/internal/ports/input"
	"yogabot/internal/ports/output"
)

var _ input.ProgressUseCase = (*ProgressService)(nil)

// ProgressService owns practitioner state. It validates every day id
// before it reaches the timeline classifier.
type ProgressService struct {
	repo output.PractitionerRepository
	now  func() time.Time
}

// NewProgressService creates a ProgressService. A nil clock means time.Now.
func NewProgressService(repo output.PractitionerRepository, clock func() time.Time) *ProgressService {
	if clock == nil {
		clock = time.Now
	}
	return &ProgressService{repo: repo, now: clock}
}

// Enroll returns the practitioner for userID, creating one at day 1 when
// none exists yet.
func (s *ProgressService) Enroll(ctx context.Context, userID, username, locale string) (*entities.Practitioner, error) {
	p, err := s.repo.FindByUserID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrPractitionerNotFound) {
		return nil, fmt.Errorf("find practitioner: %w", err)
	}
	if !domain.IsSupportedLocale(locale) {
		locale = domain.DefaultLocale
	}
	now := s.now()
	p = &entities.Practitioner{
		UserID:           userID,
		Username:         username,
		Locale:           locale,
		CurrentDay:       1,
		RemindersEnabled: true,
		LastActiveAt:     now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create practitioner: %w", err)
	}
	return p, nil
}

func (s *ProgressService) GetPractitioner(ctx context.Context, userID string) (*entities.Practitioner, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// CompleteDay adds day to the completed set. Completing the current day
// moves the current day to the next one still open.
func (s *ProgressService) CompleteDay(ctx context.Context, userID string, day int) (*entities.Practitioner, error) {
	d, ok := timeline.DayByID(day)
	if !ok {
		return nil, domain.ErrDayOutOfRange
	}
	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress := p.Progress()
	if progress.IsCompleted(d) {
		return nil, domain.ErrDayAlreadyCompleted
	}
	if !progress.IsAccessible(d) {
		return nil, domain.ErrDayLocked
	}

	completed := append(progress.CompletedDays(), day)
	sort.Ints(completed)
	p.CompletedDays = completed
	if progress.IsCurrent(d) {
		if next := p.Progress().Stats().NextAvailable; next != timeline.NoDay {
			p.CurrentDay = next
		}
	}
	p.LastActiveAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update practitioner: %w", err)
	}
	return p, nil
}

func (s *ProgressService) SetLocale(ctx context.Context, userID, locale string) (*entities.Practitioner, error) {
	if !domain.IsSupportedLocale(locale) {
		return nil, domain.ErrUnsupportedLocale
	}
	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.Locale = locale
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update practitioner: %w", err)
	}
	return p, nil
}

func (s *ProgressService) SetReminders(ctx context.Context, userID string, enabled bool) (*entities.Practitioner, error) {
	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.RemindersEnabled = enabled
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update practitioner: %w", err)
	}
	return p, nil
}

// Reset puts the practitioner back on day 1 with nothing completed.
func (s *ProgressService) Reset(ctx context.Context, userID string) (*entities.Practitioner, error) {
	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.CurrentDay = 1
	p.CompletedDays = nil
	p.LastActiveAt = s.now()
	p.RemindedAt = time.Time{}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update practitioner: %w", err)
	}
	return p, nil
}

// PractitionersNeedingReminder lists practitioners with reminders on, an
// unfinished program, no activity for at least after, and no reminder
// since their last activity.
func (s *ProgressService) PractitionersNeedingReminder(ctx context.Context, now time.Time, after time.Duration) ([]entities.Practitioner, error) {
	candidates, err := s.repo.FindNeedingReminder(ctx, now.Add(-after))
	if err != nil {
		return nil, fmt.Errorf("find practitioners needing reminder: %w", err)
	}
	out := make([]entities.Practitioner, 0, len(candidates))
	for i := range candidates {
		if candidates[i].Finished() {
			continue
		}
		out = append(out, candidates[i])
	}
	return out, nil
}

func (s *ProgressService) MarkReminded(ctx context.Context, practitionerID uint, at time.Time) error {
	if err := s.repo.MarkReminded(ctx, practitionerID, at); err != nil {
		return fmt.Errorf("mark reminded: %w", err)
	}
	return nil
}

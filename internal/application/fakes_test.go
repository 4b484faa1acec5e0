package application_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"yogabot/internal/domain"
	"yogabot/internal/domain/entities"
)

type memoryRepo struct {
	mu       sync.Mutex
	nextID   uint
	byUserID map[string]entities.Practitioner
	err      error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byUserID: map[string]entities.Practitioner{}}
}

func (r *memoryRepo) Create(_ context.Context, p *entities.Practitioner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	p.ID = r.nextID
	r.byUserID[p.UserID] = clone(*p)
	return nil
}

func (r *memoryRepo) FindByUserID(_ context.Context, userID string) (*entities.Practitioner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.byUserID[userID]
	if !ok {
		return nil, domain.ErrPractitionerNotFound
	}
	out := clone(p)
	return &out, nil
}

func (r *memoryRepo) Update(_ context.Context, p *entities.Practitioner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byUserID[p.UserID]; !ok {
		return domain.ErrPractitionerNotFound
	}
	r.byUserID[p.UserID] = clone(*p)
	return nil
}

func (r *memoryRepo) FindNeedingReminder(_ context.Context, inactiveSince time.Time) ([]entities.Practitioner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []entities.Practitioner
	for _, p := range r.byUserID {
		if !p.RemindersEnabled || !p.LastActiveAt.Before(inactiveSince) {
			continue
		}
		if !p.RemindedAt.IsZero() && !p.RemindedAt.Before(p.LastActiveAt) {
			continue
		}
		out = append(out, clone(p))
	}
	return out, nil
}

func (r *memoryRepo) MarkReminded(_ context.Context, id uint, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, p := range r.byUserID {
		if p.ID == id {
			p.RemindedAt = at
			r.byUserID[k] = p
			return nil
		}
	}
	return domain.ErrPractitionerNotFound
}

func clone(p entities.Practitioner) entities.Practitioner {
	p.CompletedDays = append([]int(nil), p.CompletedDays...)
	return p
}

// echoTranslator renders "<locale>:<key>" followed by the data, so tests
// can see exactly what was asked for.
type echoTranslator struct{}

func (echoTranslator) T(locale, key string, data map[string]any) string {
	if data == nil {
		return locale + ":" + key
	}
	return fmt.Sprintf("%s:%s %v", locale, key, data)
}

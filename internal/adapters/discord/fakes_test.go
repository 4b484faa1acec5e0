package discord

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

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
	r.byUserID[p.UserID] = clonePractitioner(*p)
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
	out := clonePractitioner(p)
	return &out, nil
}

func (r *memoryRepo) Update(_ context.Context, p *entities.Practitioner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUserID[p.UserID]; !ok {
		return domain.ErrPractitionerNotFound
	}
	r.byUserID[p.UserID] = clonePractitioner(*p)
	return nil
}

func (r *memoryRepo) FindNeedingReminder(_ context.Context, inactiveSince time.Time) ([]entities.Practitioner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Practitioner
	for _, p := range r.byUserID {
		if !p.RemindersEnabled || !p.LastActiveAt.Before(inactiveSince) {
			continue
		}
		if !p.RemindedAt.IsZero() && !p.RemindedAt.Before(p.LastActiveAt) {
			continue
		}
		out = append(out, clonePractitioner(p))
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

func (r *memoryRepo) get(userID string) entities.Practitioner {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clonePractitioner(r.byUserID[userID])
}

func clonePractitioner(p entities.Practitioner) entities.Practitioner {
	p.CompletedDays = append([]int(nil), p.CompletedDays...)
	return p
}

type sentDM struct {
	userID  string
	content string
}

// fakeMessenger records direct messages instead of talking to Discord.
type fakeMessenger struct {
	sent      []sentDM
	failUsers map[string]bool
}

func (m *fakeMessenger) UserChannelCreate(recipientID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if m.failUsers[recipientID] {
		return nil, errors.New("cannot send messages to this user")
	}
	return &discordgo.Channel{ID: "dm-" + recipientID, Recipients: []*discordgo.User{{ID: recipientID}}}, nil
}

func (m *fakeMessenger) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	userID := channelID[len("dm-"):]
	m.sent = append(m.sent, sentDM{userID: userID, content: content})
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

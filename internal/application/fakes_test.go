package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"igrejaconnect/internal/domain"
	"igrejaconnect/internal/domain/entities"
)

// In-memory fakes for the output ports. The event and user fakes mirror the
// store contract: set operations are idempotent and the participant counter
// decrement is clamped at zero.

type memEventRepo struct {
	events      map[string]*entities.Event
	addErr      error
	removeErr   error
	addCalls    int
	removeCalls int
}

func newMemEventRepo(events ...*entities.Event) *memEventRepo {
	r := &memEventRepo{events: make(map[string]*entities.Event)}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *memEventRepo) Create(_ context.Context, event *entities.Event) error {
	if event.ID == "" {
		event.ID = fmt.Sprintf("event-%d", len(r.events)+1)
	}
	r.events[event.ID] = event
	return nil
}

func (r *memEventRepo) FindByID(_ context.Context, id string) (*entities.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *e
	clone.ParticipantIDs = append([]string(nil), e.ParticipantIDs...)
	return &clone, nil
}

func (r *memEventRepo) List(_ context.Context) ([]entities.Event, error) {
	out := make([]entities.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	return out, nil
}

func (r *memEventRepo) FindByDateRange(_ context.Context, from, to time.Time) ([]entities.Event, error) {
	var out []entities.Event
	for _, e := range r.events {
		if !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memEventRepo) Update(_ context.Context, id string, patch entities.EventPatch) (*entities.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	e.UpdatedAt = time.Now()
	clone := *e
	return &clone, nil
}

func (r *memEventRepo) AddParticipant(_ context.Context, eventID, userID string) (int, error) {
	r.addCalls++
	if r.addErr != nil {
		return 0, r.addErr
	}
	e, ok := r.events[eventID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if !e.HasParticipant(userID) {
		e.ParticipantIDs = append(e.ParticipantIDs, userID)
		e.ParticipantCount++
	}
	return e.ParticipantCount, nil
}

func (r *memEventRepo) RemoveParticipant(_ context.Context, eventID, userID string) (int, error) {
	r.removeCalls++
	if r.removeErr != nil {
		return 0, r.removeErr
	}
	e, ok := r.events[eventID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if e.HasParticipant(userID) {
		ids := e.ParticipantIDs[:0]
		for _, id := range e.ParticipantIDs {
			if id != userID {
				ids = append(ids, id)
			}
		}
		e.ParticipantIDs = ids
		if e.ParticipantCount > 0 {
			e.ParticipantCount--
		}
	}
	return e.ParticipantCount, nil
}

type memUserRepo struct {
	users        map[string]*entities.User
	subscribeErr error
	pushErr      error
}

func newMemUserRepo(users ...*entities.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*entities.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(_ context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	clone.SubscribedEventIDs = append([]string(nil), u.SubscribedEventIDs...)
	return &clone, nil
}

func (r *memUserRepo) Update(_ context.Context, id string, patch entities.ProfilePatch) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.DisplayName != nil {
		u.DisplayName = *patch.DisplayName
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.Address != nil {
		u.Address = *patch.Address
	}
	u.UpdatedAt = time.Now()
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) AddSubscribedEvent(_ context.Context, userID, eventID string) error {
	if r.subscribeErr != nil {
		return r.subscribeErr
	}
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	if !u.IsSubscribed(eventID) {
		u.SubscribedEventIDs = append(u.SubscribedEventIDs, eventID)
	}
	return nil
}

func (r *memUserRepo) RemoveSubscribedEvent(_ context.Context, userID, eventID string) error {
	if r.subscribeErr != nil {
		return r.subscribeErr
	}
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	ids := u.SubscribedEventIDs[:0]
	for _, id := range u.SubscribedEventIDs {
		if id != eventID {
			ids = append(ids, id)
		}
	}
	u.SubscribedEventIDs = ids
	return nil
}

func (r *memUserRepo) SetPushToken(_ context.Context, userID, token string) error {
	if r.pushErr != nil {
		return r.pushErr
	}
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	u.PushToken = token
	return nil
}

type fakeProvider struct {
	identities map[string]string // email -> id
	names      map[string]string // id -> display name
	issued     int
	revokeSubs []func(string)
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		identities: make(map[string]string),
		names:      make(map[string]string),
	}
}

func (p *fakeProvider) Register(_ context.Context, email, password string) (string, error) {
	if _, exists := p.identities[email]; exists {
		return "", domain.ErrDuplicateEmail
	}
	if len(password) < 6 {
		return "", domain.ErrWeakPassword
	}
	id := fmt.Sprintf("uid-%d", len(p.identities)+1)
	p.identities[email] = id
	return id, nil
}

func (p *fakeProvider) Authenticate(_ context.Context, email, _ string) (string, error) {
	id, ok := p.identities[email]
	if !ok {
		return "", domain.ErrNotFound
	}
	return id, nil
}

func (p *fakeProvider) UpdateDisplayName(_ context.Context, userID, displayName string) error {
	p.names[userID] = displayName
	return nil
}

func (p *fakeProvider) SendPasswordReset(_ context.Context, email string) error {
	if _, ok := p.identities[email]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (p *fakeProvider) IssueToken(userID string) (string, error) {
	p.issued++
	return "token-" + userID, nil
}

func (p *fakeProvider) VerifyToken(token string) (string, error) {
	return "", errors.New("not implemented in fake")
}

func (p *fakeProvider) OnSessionRevoked(fn func(string)) {
	p.revokeSubs = append(p.revokeSubs, fn)
}

func (p *fakeProvider) revoke(userID string) {
	for _, fn := range p.revokeSubs {
		fn(userID)
	}
}

type fakePush struct {
	sent    []string // tokens that received a message
	sendErr error
}

func (g *fakePush) ValidToken(token string) bool {
	return token != "" && token != "invalid"
}

func (g *fakePush) Send(_ context.Context, token, _, _ string) error {
	if g.sendErr != nil {
		return g.sendErr
	}
	g.sent = append(g.sent, token)
	return nil
}

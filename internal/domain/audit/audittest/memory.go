// Package audittest provides an in-memory audit.StoreAPI for tests.
package audittest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"aisg/internal/domain/audit"
)

type Store struct {
	mu       sync.Mutex
	now      func() time.Time
	audits   map[string]audit.Audit
	messages map[string][]audit.ChatMessage
	// PingErr is returned from Ping when set.
	PingErr error
}

func NewStore() *Store {
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	var tick int
	return &Store{
		now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
		audits:   map[string]audit.Audit{},
		messages: map[string][]audit.ChatMessage{},
	}
}

func (s *Store) CreateAudit(_ context.Context, a audit.Audit) (audit.Audit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.CreatedAt = s.now()
	s.audits[a.ID] = a
	return a, nil
}

func (s *Store) GetAudit(_ context.Context, id string) (audit.Audit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.audits[id]
	if !ok {
		return audit.Audit{}, audit.ErrNotFound
	}
	return a, nil
}

func (s *Store) ListAudits(_ context.Context, nameFilter string) ([]audit.Audit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(strings.TrimSpace(nameFilter))
	out := []audit.Audit{}
	for _, a := range s.audits {
		if needle != "" && !strings.Contains(strings.ToLower(a.Input.Name), needle) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) DeleteAudit(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.audits[id]; !ok {
		return audit.ErrNotFound
	}
	delete(s.audits, id)
	delete(s.messages, id)
	return nil
}

func (s *Store) CreateChatMessage(_ context.Context, msg audit.ChatMessage) (audit.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.audits[msg.AuditID]; !ok {
		return audit.ChatMessage{}, audit.ErrNotFound
	}
	msg.CreatedAt = s.now()
	s.messages[msg.AuditID] = append(s.messages[msg.AuditID], msg)
	return msg, nil
}

func (s *Store) ListChatMessages(_ context.Context, auditID string) ([]audit.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]audit.ChatMessage, len(s.messages[auditID]))
	copy(out, s.messages[auditID])
	return out, nil
}

func (s *Store) DeleteChatMessages(_ context.Context, auditID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.messages, auditID)
	return nil
}

func (s *Store) Ping(context.Context) error {
	return s.PingErr
}

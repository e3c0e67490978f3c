package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"aisg/internal/domain/scoring"
)

// Observer receives one call per stored audit.
type Observer interface {
	ObserveAudit(zone string)
}

type Service struct {
	store    StoreAPI
	clock    func() time.Time
	random   scoring.RandomSource
	observer Observer
}

type Option func(*Service)

func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

func WithRandom(rnd scoring.RandomSource) Option {
	return func(s *Service) { s.random = rnd }
}

func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}

func NewService(store StoreAPI, opts ...Option) *Service {
	s := &Service{
		store:  store,
		clock:  time.Now,
		random: scoring.NewRandomSource(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates, scores and persists one submission.
func (s *Service) Create(ctx context.Context, in scoring.Input) (Audit, error) {
	if issues := Validate(in); len(issues) > 0 {
		return Audit{}, &ValidationError{Issues: issues}
	}
	in = Normalize(in)
	result := scoring.Compute(in, s.clock(), s.random)

	created, err := s.store.CreateAudit(ctx, Audit{
		ID:     uuid.NewString(),
		Input:  in,
		Result: result,
	})
	if err != nil {
		return Audit{}, fmt.Errorf("create audit: %w", err)
	}
	if s.observer != nil {
		s.observer.ObserveAudit(string(result.ZonaFinal))
	}
	slog.Info("audit created", "audit_id", created.ID, "zone", result.ZonaFinal, "profile", result.Profil, "reality", result.TotalRealityScore)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (Audit, error) {
	if !validID(id) {
		return Audit{}, ErrNotFound
	}
	return s.store.GetAudit(ctx, id)
}

func (s *Service) List(ctx context.Context, nameFilter string) ([]Audit, error) {
	return s.store.ListAudits(ctx, nameFilter)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	if err := s.store.DeleteAudit(ctx, id); err != nil {
		return err
	}
	slog.Info("audit deleted", "audit_id", id)
	return nil
}

func (s *Service) Messages(ctx context.Context, auditID string) ([]ChatMessage, error) {
	if _, err := s.Get(ctx, auditID); err != nil {
		return nil, err
	}
	return s.store.ListChatMessages(ctx, auditID)
}

func (s *Service) AppendMessage(ctx context.Context, auditID string, role Role, content string) (ChatMessage, error) {
	return s.store.CreateChatMessage(ctx, ChatMessage{
		ID:      uuid.NewString(),
		AuditID: auditID,
		Role:    role,
		Content: content,
	})
}

func (s *Service) ClearMessages(ctx context.Context, auditID string) error {
	if _, err := s.Get(ctx, auditID); err != nil {
		return err
	}
	return s.store.DeleteChatMessages(ctx, auditID)
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

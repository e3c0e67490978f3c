package coach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"aisg/internal/domain/audit"
)

// Audits is the part of audit.Service the coach needs.
type Audits interface {
	Get(ctx context.Context, id string) (audit.Audit, error)
	Messages(ctx context.Context, auditID string) ([]audit.ChatMessage, error)
	AppendMessage(ctx context.Context, auditID string, role audit.Role, content string) (audit.ChatMessage, error)
	ClearMessages(ctx context.Context, auditID string) error
}

// Observer receives one call per completion attempt.
type Observer interface {
	ObserveCompletion(outcome string)
}

type Service struct {
	audits    Audits
	completer Completer
	limiter   *rate.Limiter
	timeout   time.Duration
	observer  Observer
}

type Option func(*Service)

// WithRequestsPerMinute caps outbound model calls. Requests over the cap
// fail fast with ErrRateLimited.
func WithRequestsPerMinute(rpm int) Option {
	return func(s *Service) {
		if rpm > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(float64(rpm)/60.0), max(1, rpm/4))
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}

// NewService builds the coach. A nil completer yields ErrDisabled on Ask.
func NewService(audits Audits, completer Completer, opts ...Option) *Service {
	s := &Service{audits: audits, completer: completer, timeout: 30 * time.Second}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Enabled() bool {
	return s.completer != nil
}

// Ask stores the question, asks the model with the audit as context and
// stores the answer.
func (s *Service) Ask(ctx context.Context, auditID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}
	a, err := s.audits.Get(ctx, auditID)
	if err != nil {
		return "", err
	}
	if s.completer == nil {
		return "", ErrDisabled
	}

	history, err := s.audits.Messages(ctx, auditID)
	if err != nil {
		return "", fmt.Errorf("load chat history: %w", err)
	}
	if _, err := s.audits.AppendMessage(ctx, auditID, audit.RoleUser, message); err != nil {
		return "", fmt.Errorf("save chat message: %w", err)
	}

	if s.limiter != nil && !s.limiter.Allow() {
		s.observe("rate_limited")
		return "", fmt.Errorf("%w: local request budget exhausted", ErrRateLimited)
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	prompt := Prompt{
		System:  SystemPrompt(a),
		History: recentTurns(history),
		Message: message,
	}
	slog.Debug("coach request", "audit_id", auditID, "turns", len(prompt.History)+1)
	reply, err := s.completer.Complete(callCtx, prompt)
	if err != nil {
		err = classify(err)
		if errors.Is(err, ErrRateLimited) {
			s.observe("rate_limited")
		} else {
			s.observe("failed")
		}
		slog.Warn("coach completion failed", "audit_id", auditID, "err", err)
		return "", err
	}
	s.observe("ok")

	reply = strings.TrimSpace(reply)
	if reply == "" {
		reply = fallbackReply
	}
	if _, err := s.audits.AppendMessage(ctx, auditID, audit.RoleAssistant, reply); err != nil {
		return "", fmt.Errorf("save chat reply: %w", err)
	}
	return reply, nil
}

func (s *Service) History(ctx context.Context, auditID string) ([]audit.ChatMessage, error) {
	return s.audits.Messages(ctx, auditID)
}

func (s *Service) Clear(ctx context.Context, auditID string) error {
	return s.audits.ClearMessages(ctx, auditID)
}

func (s *Service) observe(outcome string) {
	if s.observer != nil {
		s.observer.ObserveCompletion(outcome)
	}
}

package audit

import "context"

type StoreAPI interface {
	CreateAudit(ctx context.Context, a Audit) (Audit, error)
	GetAudit(ctx context.Context, id string) (Audit, error)
	ListAudits(ctx context.Context, nameFilter string) ([]Audit, error)
	DeleteAudit(ctx context.Context, id string) error
	CreateChatMessage(ctx context.Context, msg ChatMessage) (ChatMessage, error)
	ListChatMessages(ctx context.Context, auditID string) ([]ChatMessage, error)
	DeleteChatMessages(ctx context.Context, auditID string) error
	Ping(ctx context.Context) error
}

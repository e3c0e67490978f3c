package audit

import (
	"context"
	"fmt"
)

func (s *Store) CreateChatMessage(ctx context.Context, msg ChatMessage) (ChatMessage, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO chat_messages (id, audit_id, role, content)
    VALUES ($1,$2,$3,$4)
    RETURNING created_at
  `, msg.ID, msg.AuditID, string(msg.Role), msg.Content).Scan(&msg.CreatedAt)
	if err != nil {
		return ChatMessage{}, fmt.Errorf("insert chat message: %w", err)
	}
	return msg, nil
}

func (s *Store) ListChatMessages(ctx context.Context, auditID string) ([]ChatMessage, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id::text, audit_id::text, role, content, created_at
    FROM chat_messages
    WHERE audit_id = $1
    ORDER BY created_at ASC, id ASC
  `, auditID)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	out := []ChatMessage{}
	for rows.Next() {
		var msg ChatMessage
		var role string
		if err := rows.Scan(&msg.ID, &msg.AuditID, &role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		msg.Role = Role(role)
		out = append(out, msg)
	}
	return out, rows.Err()
}

func (s *Store) DeleteChatMessages(ctx context.Context, auditID string) error {
	if _, err := s.DB.Exec(ctx, "DELETE FROM chat_messages WHERE audit_id = $1", auditID); err != nil {
		return fmt.Errorf("delete chat messages: %w", err)
	}
	return nil
}

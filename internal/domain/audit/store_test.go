package audit_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"aisg/internal/domain/audit"
	"aisg/internal/domain/audit/audittest"
	"aisg/internal/platform/config"
	"aisg/internal/platform/db"
)

func TestStoreRoundTrip(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := db.Connect(ctx, config.Config{DatabaseURL: dbURL})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()
	if err := db.Migrate(ctx, pool, "../../../migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svc := newService(audit.NewStore(pool), nil)
	created, err := svc.Create(ctx, audittest.ValidInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer func() { _ = svc.Delete(ctx, created.ID) }()

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Result.TotalRealityScore != created.Result.TotalRealityScore {
		t.Fatalf("expected reality %d, got %d", created.Result.TotalRealityScore, got.Result.TotalRealityScore)
	}

	for filter, want := range map[string]bool{"rina wij": true, "Rina_Wijaya": false, "%": false} {
		listed, err := svc.List(ctx, filter)
		if err != nil {
			t.Fatalf("list %q: %v", filter, err)
		}
		found := false
		for _, a := range listed {
			found = found || a.ID == created.ID
		}
		if found != want {
			t.Fatalf("list %q: expected found=%v", filter, want)
		}
	}

	if _, err := svc.AppendMessage(ctx, created.ID, audit.RoleUser, "first"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := svc.AppendMessage(ctx, created.ID, audit.RoleAssistant, "second"); err != nil {
		t.Fatalf("append: %v", err)
	}
	msgs, err := svc.Messages(ctx, created.ID)
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Content != "first" {
		t.Fatalf("expected oldest first, got %+v", msgs)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, audit.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	msgs, err = audit.NewStore(pool).ListChatMessages(ctx, created.ID)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected cascade delete, got %d messages", len(msgs))
	}
}

package audit_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"aisg/internal/domain/audit"
	"aisg/internal/domain/audit/audittest"
	"aisg/internal/domain/scoring"
)

type zoneCounter map[string]int

func (z zoneCounter) ObserveAudit(zone string) { z[zone]++ }

type firstQuote struct{}

func (firstQuote) IntN(int) int { return 0 }

func newService(store audit.StoreAPI, observer audit.Observer) *audit.Service {
	now := time.Date(2025, time.May, 15, 9, 0, 0, 0, time.UTC)
	return audit.NewService(store,
		audit.WithClock(func() time.Time { return now }),
		audit.WithRandom(firstQuote{}),
		audit.WithObserver(observer),
	)
}

func TestServiceCreateScoresAndStores(t *testing.T) {
	ctx := context.Background()
	store := audittest.NewStore()
	zones := zoneCounter{}
	svc := newService(store, zones)

	created, err := svc.Create(ctx, audittest.ValidInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp, got %+v", created)
	}
	if created.Result.ZonaFinal == "" || len(created.Result.Pillars) != scoring.PillarCount {
		t.Fatalf("expected computed result, got %+v", created.Result)
	}
	if created.Result.AuditReport.Progress.Quarter != "Q2" {
		t.Fatalf("expected injected clock to drive Q2, got %s", created.Result.AuditReport.Progress.Quarter)
	}
	if created.Result.Magic.Quote != scoring.Quotes()[0] {
		t.Fatalf("expected injected random source to pick the first quote")
	}
	if zones[string(created.Result.ZonaFinal)] != 1 {
		t.Fatalf("expected observer to see zone %s, got %v", created.Result.ZonaFinal, zones)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Input.Name != "Rina Wijaya" {
		t.Fatalf("expected stored name, got %q", got.Input.Name)
	}
}

func TestServiceCreateConcurrentWithDefaultRandom(t *testing.T) {
	ctx := context.Background()
	store := audittest.NewStore()
	svc := audit.NewService(store)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	quotes := make(chan string, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := svc.Create(ctx, audittest.ValidInput())
			if err != nil {
				errs <- err
				return
			}
			quotes <- created.Result.Magic.Quote
		}()
	}
	wg.Wait()
	close(errs)
	close(quotes)

	for err := range errs {
		t.Fatalf("concurrent create failed: %v", err)
	}
	for q := range quotes {
		if !slices.Contains(scoring.Quotes(), q) {
			t.Fatalf("unexpected quote %q", q)
		}
	}
	listed, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != workers {
		t.Fatalf("expected %d audits, got %d", workers, len(listed))
	}
}

func TestServiceCreateRejectsInvalidInput(t *testing.T) {
	svc := newService(audittest.NewStore(), nil)
	in := audittest.ValidInput()
	in.Answers = nil

	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, audit.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var verr *audit.ValidationError
	if !errors.As(err, &verr) || len(verr.Issues) == 0 {
		t.Fatalf("expected validation issues, got %v", err)
	}
}

func TestServiceListNewestFirstWithFilter(t *testing.T) {
	ctx := context.Background()
	svc := newService(audittest.NewStore(), nil)

	for _, name := range []string{"Andi", "Rina", "Andini"} {
		in := audittest.ValidInput()
		in.Name = name
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 || all[0].Input.Name != "Andini" || all[2].Input.Name != "Andi" {
		t.Fatalf("expected newest first, got %d audits", len(all))
	}

	filtered, err := svc.List(ctx, "and")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(filtered))
	}
}

func TestServiceDeleteCascadesMessages(t *testing.T) {
	ctx := context.Background()
	store := audittest.NewStore()
	svc := newService(store, nil)

	created, err := svc.Create(ctx, audittest.ValidInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.AppendMessage(ctx, created.ID, audit.RoleUser, "halo"); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, audit.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	msgs, _ := store.ListChatMessages(ctx, created.ID)
	if len(msgs) != 0 {
		t.Fatalf("expected messages removed, got %d", len(msgs))
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, audit.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestServiceRejectsMalformedIDs(t *testing.T) {
	svc := newService(audittest.NewStore(), nil)
	if _, err := svc.Get(context.Background(), "not-a-uuid"); !errors.Is(err, audit.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

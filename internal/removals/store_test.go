package removals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bcgov/gh-org-report/internal/models"
)

func TestNewRemovalRecord(t *testing.T) {
	record := models.NewRemovalRecord("my-org", "Alice", "no repository access", 90)

	if record.PK != "ORG#my-org" {
		t.Fatalf("expected PK ORG#my-org, got %s", record.PK)
	}
	if record.SK != "USER#alice" {
		t.Fatalf("expected SK USER#alice, got %s", record.SK)
	}
	if record.Login != "alice" {
		t.Fatalf("expected normalized login, got %s", record.Login)
	}
	if record.Reason != "no repository access" {
		t.Fatalf("unexpected reason %s", record.Reason)
	}
	if record.RemovedAt.IsZero() {
		t.Fatal("expected removed_at set")
	}
	expectedTTL := time.Now().UTC().AddDate(0, 0, 90).Unix()
	// Allow 60 seconds tolerance for test execution time
	if record.TTL < expectedTTL-60 || record.TTL > expectedTTL+60 {
		t.Fatalf("TTL %d is not within expected range around %d", record.TTL, expectedTTL)
	}
}

func TestMockStoreTracking(t *testing.T) {
	store := &MockStore{}
	ctx := t.Context()

	record := models.NewRemovalRecord("test-org", "bob", "left the team", 30)
	if err := store.SaveRemoval(ctx, record); err != nil {
		t.Fatalf("SaveRemoval failed: %v", err)
	}
	if len(store.Saved) != 1 || store.Saved[0].Login != "bob" {
		t.Fatalf("expected bob tracked, got %#v", store.Saved)
	}

	records, err := store.ListRemovals(ctx, "test-org")
	if err != nil {
		t.Fatalf("ListRemovals failed: %v", err)
	}
	if records != nil {
		t.Fatalf("expected no records without a list func, got %v", records)
	}
}

func TestMockStoreInjectedError(t *testing.T) {
	store := &MockStore{
		ListRemovalsFunc: func(ctx context.Context, org string) ([]models.RemovalRecord, error) {
			return nil, errors.New("boom")
		},
	}
	if _, err := store.ListRemovals(t.Context(), "test-org"); err == nil {
		t.Fatal("expected injected error")
	}
}

package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/bcgov/gh-org-report/internal/github"
	"github.com/bcgov/gh-org-report/internal/models"
	"github.com/bcgov/gh-org-report/internal/removals"
)

func planActions() []models.ReconcileAction {
	return PlanActions(models.ReconcilePlan{
		UsersToInvite: []string{"amy"},
		UsersToRemove: []string{"bob"},
	})
}

func TestExecuteActionsDryRun(t *testing.T) {
	client := &github.MockClient{}

	actions := ExecuteActions(context.Background(), client, "dst-org", planActions(), true, nil, 0)
	if len(client.Invited) != 0 || len(client.Removed) != 0 {
		t.Fatalf("expected no API calls in dry-run, got invites %v removals %v", client.Invited, client.Removed)
	}
	for _, action := range actions {
		if action.Executed {
			t.Fatalf("expected no executed actions in dry-run, got %#v", action)
		}
	}
}

func TestExecuteActionsRunsPlan(t *testing.T) {
	client := &github.MockClient{}

	actions := ExecuteActions(context.Background(), client, "dst-org", planActions(), false, nil, 0)
	if len(client.Invited) != 1 || client.Invited[0] != "amy" {
		t.Fatalf("expected amy invited, got %v", client.Invited)
	}
	if len(client.Removed) != 1 || client.Removed[0] != "bob" {
		t.Fatalf("expected bob removed, got %v", client.Removed)
	}
	for _, action := range actions {
		if !action.Executed || action.Timestamp == nil {
			t.Fatalf("expected executed action with timestamp, got %#v", action)
		}
	}
}

func TestExecuteActionsRecordsFailureAndContinues(t *testing.T) {
	client := &github.MockClient{
		InviteErr: errors.New("boom"),
	}

	actions := ExecuteActions(context.Background(), client, "dst-org", planActions(), false, nil, 0)
	if actions[0].Executed || actions[0].Error == nil {
		t.Fatalf("expected failed invite recorded, got %#v", actions[0])
	}
	// The removal after the failed invite still runs.
	if len(client.Removed) != 1 {
		t.Fatalf("expected removal to proceed after invite failure, got %v", client.Removed)
	}
}

func TestExecuteActionsTracksRemovals(t *testing.T) {
	client := &github.MockClient{}
	store := &removals.MockStore{}

	ExecuteActions(context.Background(), client, "dst-org", planActions(), false, store, 30)
	if len(store.Saved) != 1 {
		t.Fatalf("expected 1 tracked removal, got %d", len(store.Saved))
	}
	record := store.Saved[0]
	if record.Login != "bob" || record.Org != "dst-org" {
		t.Fatalf("unexpected removal record %#v", record)
	}
}

func TestExecuteActionsStoreFailureIsNonFatal(t *testing.T) {
	client := &github.MockClient{}
	store := &removals.MockStore{
		SaveRemovalFunc: func(ctx context.Context, record models.RemovalRecord) error {
			return errors.New("table missing")
		},
	}

	actions := ExecuteActions(context.Background(), client, "dst-org", planActions(), false, store, 30)
	for _, action := range actions {
		if !action.Executed {
			t.Fatalf("expected action executed despite store failure, got %#v", action)
		}
	}
}

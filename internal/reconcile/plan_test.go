package reconcile

import (
	"reflect"
	"testing"

	"github.com/bcgov/gh-org-report/internal/models"
)

func set(logins ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(logins))
	for _, login := range logins {
		s[login] = struct{}{}
	}
	return s
}

func TestComputePlan(t *testing.T) {
	cases := []struct {
		name   string
		sets   Sets
		invite []string
		remove []string
	}{
		{
			name: "invite missing members, remove non-collaborators",
			sets: Sets{
				SourceMembers:          set("a", "b", "c"),
				DestinationMembers:     set("b"),
				RemovedFromDestination: set("c"),
				RepoCollaborators:      set("a"),
			},
			invite: []string{"a"},
			remove: []string{"b", "c"},
		},
		{
			name: "collaborators are kept",
			sets: Sets{
				SourceMembers:      set("a", "b"),
				DestinationMembers: set("a", "b"),
				RepoCollaborators:  set("a", "b"),
			},
			invite: []string{},
			remove: []string{},
		},
		{
			name: "removed logins are never re-invited",
			sets: Sets{
				SourceMembers:          set("a"),
				DestinationMembers:     set(),
				RemovedFromDestination: set("a"),
				RepoCollaborators:      set("a"),
			},
			invite: []string{},
			remove: []string{},
		},
		{
			name:   "empty source",
			sets:   Sets{},
			invite: []string{},
			remove: []string{},
		},
		{
			name: "non-source logins are untouched",
			sets: Sets{
				SourceMembers:      set("a"),
				DestinationMembers: set("a", "stray"),
				RepoCollaborators:  set("a"),
			},
			invite: []string{},
			remove: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := ComputePlan("src-org", "dst-org", tc.sets)
			if !reflect.DeepEqual(plan.UsersToInvite, tc.invite) {
				t.Fatalf("invites: expected %v, got %v", tc.invite, plan.UsersToInvite)
			}
			if !reflect.DeepEqual(plan.UsersToRemove, tc.remove) {
				t.Fatalf("removals: expected %v, got %v", tc.remove, plan.UsersToRemove)
			}
		})
	}
}

func TestComputePlanIsDeterministic(t *testing.T) {
	sets := Sets{
		SourceMembers:      set("zed", "amy", "mia", "bob"),
		DestinationMembers: set("zed", "amy", "mia", "bob"),
		RepoCollaborators:  set(),
	}
	first := ComputePlan("src-org", "dst-org", sets)
	for i := 0; i < 10; i++ {
		again := ComputePlan("src-org", "dst-org", sets)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("expected identical plans, got %v and %v", first, again)
		}
	}
	if !reflect.DeepEqual(first.UsersToRemove, []string{"amy", "bob", "mia", "zed"}) {
		t.Fatalf("expected sorted removals, got %v", first.UsersToRemove)
	}
}

func TestPlanActionsOrdersInvitesFirst(t *testing.T) {
	plan := models.ReconcilePlan{
		UsersToInvite: []string{"amy"},
		UsersToRemove: []string{"bob", "mia"},
	}
	actions := PlanActions(plan)
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(actions))
	}
	if actions[0].Type != models.ActionInvite || actions[0].Login != "amy" {
		t.Fatalf("expected invite first, got %#v", actions[0])
	}
	if actions[1].Type != models.ActionRemove || actions[2].Type != models.ActionRemove {
		t.Fatalf("expected removals after invites, got %#v", actions[1:])
	}
}

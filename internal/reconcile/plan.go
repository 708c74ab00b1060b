// Package reconcile implements the cross-org membership policy:
// comparing a source org's member set against a destination org to
// decide who to invite and who to remove.
package reconcile

import (
	"sort"

	"github.com/bcgov/gh-org-report/internal/models"
)

// Sets holds the immutable membership snapshots a reconcile run
// computes over. All logins are normalized. Concurrent mutation of
// either org during a run is not guarded against; the policy operates
// on these snapshots alone.
type Sets struct {
	// SourceMembers is the source org's member set.
	SourceMembers map[string]struct{}
	// DestinationMembers is the destination org's member set.
	DestinationMembers map[string]struct{}
	// RemovedFromDestination lists logins previously removed from the
	// destination org. They are never re-invited.
	RemovedFromDestination map[string]struct{}
	// RepoCollaborators lists logins with push-or-higher access on any
	// non-archived source-org repository.
	RepoCollaborators map[string]struct{}
}

// ComputePlan applies the membership policy:
//
//	invite = source − destination − removed
//	remove = (source ∖ repo-collaborators) ∩ (destination ∪ removed)
//
// A previously removed login that is no longer a destination member can
// still appear in the removal list; executing that removal fails with a
// 404, which is treated as permanent and non-fatal. Output is sorted.
func ComputePlan(sourceOrg string, destinationOrg string, sets Sets) models.ReconcilePlan {
	invite := make([]string, 0)
	remove := make([]string, 0)

	for login := range sets.SourceMembers {
		if _, inDest := sets.DestinationMembers[login]; !inDest {
			if _, removed := sets.RemovedFromDestination[login]; !removed {
				invite = append(invite, login)
			}
		}

		if _, collaborator := sets.RepoCollaborators[login]; collaborator {
			continue
		}
		_, inDest := sets.DestinationMembers[login]
		_, removed := sets.RemovedFromDestination[login]
		if inDest || removed {
			remove = append(remove, login)
		}
	}

	sort.Strings(invite)
	sort.Strings(remove)
	return models.ReconcilePlan{
		SourceOrg:      sourceOrg,
		DestinationOrg: destinationOrg,
		UsersToInvite:  invite,
		UsersToRemove:  remove,
	}
}

// PlanActions expands a plan into executable actions, invites first.
func PlanActions(plan models.ReconcilePlan) []models.ReconcileAction {
	actions := make([]models.ReconcileAction, 0, len(plan.UsersToInvite)+len(plan.UsersToRemove))
	for _, login := range plan.UsersToInvite {
		actions = append(actions, models.ReconcileAction{
			Type:   models.ActionInvite,
			Login:  login,
			Reason: "source member missing from destination organization",
		})
	}
	for _, login := range plan.UsersToRemove {
		actions = append(actions, models.ReconcileAction{
			Type:   models.ActionRemove,
			Login:  login,
			Reason: "no push-or-higher access on any active source repository",
		})
	}
	return actions
}

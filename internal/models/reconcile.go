package models

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// ActionType is the kind of membership action a reconcile run performs.
type ActionType string

const (
	ActionInvite ActionType = "invite"
	ActionRemove ActionType = "remove"
)

// ReconcilePlan is the outcome of the cross-org membership policy:
// who to invite into the destination org and who to remove from it.
// Both lists are sorted so output is deterministic run to run.
type ReconcilePlan struct {
	SourceOrg      string   `json:"source_org"`
	DestinationOrg string   `json:"destination_org"`
	UsersToInvite  []string `json:"users_to_invite"`
	UsersToRemove  []string `json:"users_to_remove"`
}

// ReconcileAction is a single planned invite or removal, carrying its
// execution state after the run.
type ReconcileAction struct {
	Type      ActionType `json:"type"`
	Login     string     `json:"login"`
	Reason    string     `json:"reason"`
	Executed  bool       `json:"executed"`
	Error     *string    `json:"error,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// LogFields returns structured logging fields for this action.
func (a *ReconcileAction) LogFields() logrus.Fields {
	fields := logrus.Fields{
		"action": a.Type,
		"login":  a.Login,
		"reason": a.Reason,
	}
	if a.Error != nil {
		fields["error"] = *a.Error
	}
	return fields
}

// ReconcileSummary provides aggregate statistics for one reconcile run.
type ReconcileSummary struct {
	SourceMembers      int `json:"source_members"`
	DestinationMembers int `json:"destination_members"`
	RemovedListed      int `json:"removed_listed"`
	RepoCollaborators  int `json:"repo_collaborators"`
	Invites            int `json:"invites"`
	Removals           int `json:"removals"`
	ActionsExecuted    int `json:"actions_executed"`
	ActionsFailed      int `json:"actions_failed"`
}

// String returns a one-line human-readable summary.
func (s ReconcileSummary) String() string {
	return fmt.Sprintf(
		"reconcile completed: source %d members, destination %d members, "+
			"removed list: %d, repo collaborators: %d, "+
			"invites: %d, removals: %d, executed: %d, failed: %d",
		s.SourceMembers, s.DestinationMembers, s.RemovedListed, s.RepoCollaborators,
		s.Invites, s.Removals, s.ActionsExecuted, s.ActionsFailed,
	)
}

// ReconcileResult contains the outcome of a reconcile run.
type ReconcileResult struct {
	DryRun     bool              `json:"dry_run"`
	StartTime  time.Time         `json:"start_time"`
	EndTime    time.Time         `json:"end_time"`
	DurationMs int64             `json:"duration_ms"`
	Plan       ReconcilePlan     `json:"plan"`
	Actions    []ReconcileAction `json:"actions"`
	Summary    ReconcileSummary  `json:"summary"`
}

// IsSuccess returns true if no action failed.
func (r *ReconcileResult) IsSuccess() bool {
	return r.Summary.ActionsFailed == 0
}

package models

import (
	"fmt"
	"time"
)

// AssociationType says how a collaborator got access to a repository.
type AssociationType string

const (
	AssociationDirect     AssociationType = "direct"
	AssociationTeamMember AssociationType = "team_member"
)

// Collaborator is one row in a repository report. The same login can
// appear several times on one repository: once per granting team plus a
// direct grant. Duplicates are preserved on purpose so downstream
// flattening sees every grant.
type Collaborator struct {
	Login           string          `json:"login"`
	IsMember        bool            `json:"is_member"`
	AssociationType AssociationType `json:"association_type"`
	RoleName        string          `json:"role_name"`
}

// RepositoryReport aggregates one repository's collaborators and the
// booleans derived from them. Derived flags depend only on the report's
// own collaborator list and the org member set, never on other
// repositories.
//
// HasWorkflows and HasWebhooks are reserved fields and always false.
type RepositoryReport struct {
	RepoName              string         `json:"repo_name"`
	Archived              bool           `json:"archived"`
	Disabled              bool           `json:"disabled"`
	HasAdmin              bool           `json:"has_admin"`
	HasMemberAdmin        bool           `json:"has_member_admin"`
	HasAdminTeam          bool           `json:"has_admin_team"`
	HasWorkflows          bool           `json:"has_workflows"`
	HasWebhooks           bool           `json:"has_webhooks"`
	HasLinkedCollaborator bool           `json:"has_linked_collaborator"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
	Collaborators         []Collaborator `json:"collaborators"`
}

// ReportSummary holds aggregate statistics for one report run.
type ReportSummary struct {
	Organization     string `json:"organization"`
	TotalRepos       int    `json:"total_repos"`
	ReposReported    int    `json:"repos_reported"`
	ReposFailed      int    `json:"repos_failed"`
	OrgMembers       int    `json:"org_members"`
	Teams            int    `json:"teams"`
	CollaboratorRows int    `json:"collaborator_rows"`
	ReposWithAdmin   int    `json:"repos_with_admin"`
	ReposWithLinked  int    `json:"repos_with_linked"`
	DurationMs       int64  `json:"duration_ms"`
}

// String returns a one-line human-readable summary.
func (s ReportSummary) String() string {
	return fmt.Sprintf(
		"report completed: org %s, repos %d reported / %d failed of %d, "+
			"members: %d, teams: %d, collaborator rows: %d, with admin: %d, with linked: %d",
		s.Organization, s.ReposReported, s.ReposFailed, s.TotalRepos,
		s.OrgMembers, s.Teams, s.CollaboratorRows, s.ReposWithAdmin, s.ReposWithLinked,
	)
}

package interfaces

import (
	"context"
	"iter"

	"github.com/bcgov/gh-org-report/internal/models"
)

// GitHubClient defines the GitHub operations the reporter needs.
//
// List operations return lazy, finite, single-use sequences: each page
// is fetched only as the caller advances, so a caller that stops early
// never forces full pagination. A sequence yields a non-nil error at
// most once, as its final element.
type GitHubClient interface {
	OrgMembers(ctx context.Context, org string) iter.Seq2[models.Member, error]
	OrgTeams(ctx context.Context, org string) iter.Seq2[models.Team, error]
	TeamMembers(ctx context.Context, org string, slug string) iter.Seq2[models.Member, error]
	OrgRepositories(ctx context.Context, org string) iter.Seq2[models.Repository, error]
	RepoCollaborators(ctx context.Context, org string, repo string, affiliation string) iter.Seq2[models.CollaboratorGrant, error]
	RepoTeams(ctx context.Context, org string, repo string) iter.Seq2[models.Team, error]
	CodeScanningAlerts(ctx context.Context, org string, repo string) iter.Seq2[models.SecurityAlert, error]

	InviteMember(ctx context.Context, org string, login string) error
	RemoveMember(ctx context.Context, org string, login string) error
}

// RemovalStore defines persistent tracking of executed org removals.
type RemovalStore interface {
	// SaveRemoval stores one executed removal.
	SaveRemoval(ctx context.Context, record models.RemovalRecord) error

	// ListRemovals returns all tracked removals for an org.
	ListRemovals(ctx context.Context, org string) ([]models.RemovalRecord, error)
}

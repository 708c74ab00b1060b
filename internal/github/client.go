// Package github wraps the GitHub REST API behind lazy paginated
// sequences with unified retry and error classification.
package github

import (
	"context"
	"fmt"
	"iter"

	"github.com/bcgov/gh-org-report/internal/models"
	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

type orgService interface {
	ListMembers(ctx context.Context, org string, opts *github.ListMembersOptions) ([]*github.User, *github.Response, error)
	EditOrgMembership(ctx context.Context, user, org string, membership *github.Membership) (*github.Membership, *github.Response, error)
	RemoveMember(ctx context.Context, org, user string) (*github.Response, error)
}

type teamService interface {
	ListTeams(ctx context.Context, org string, opts *github.ListOptions) ([]*github.Team, *github.Response, error)
	ListTeamMembersBySlug(ctx context.Context, org, slug string, opts *github.TeamListTeamMembersOptions) ([]*github.User, *github.Response, error)
}

type repoService interface {
	ListByOrg(ctx context.Context, org string, opts *github.RepositoryListByOrgOptions) ([]*github.Repository, *github.Response, error)
	ListCollaborators(ctx context.Context, owner, repo string, opts *github.ListCollaboratorsOptions) ([]*github.User, *github.Response, error)
	ListTeams(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.Team, *github.Response, error)
}

type scanService interface {
	ListAlertsForRepo(ctx context.Context, owner, repo string, opts *github.AlertListOptions) ([]*github.Alert, *github.Response, error)
}

// Client implements GitHub organization, team, and repository reads
// plus the two membership mutations the reconciler needs.
type Client struct {
	orgs  orgService
	teams teamService
	repos repoService
	scans scanService
	retry RetryPolicy
}

// NewClient creates a GitHub client using a personal access token.
func NewClient(token string, retry RetryPolicy) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("github token is required")
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(httpClient)
	return &Client{
		orgs:  client.Organizations,
		teams: client.Teams,
		repos: client.Repositories,
		scans: client.CodeScanning,
		retry: retry,
	}, nil
}

// OrgMembers lists the organization's members.
func (c *Client) OrgMembers(ctx context.Context, org string) iter.Seq2[models.Member, error] {
	endpoint := fmt.Sprintf("GET /orgs/%s/members", org)
	return paginate(ctx, c.retry, endpoint,
		func(ctx context.Context, page int) ([]*github.User, *github.Response, error) {
			opts := &github.ListMembersOptions{ListOptions: listOptions(page)}
			return c.orgs.ListMembers(ctx, org, opts)
		},
		func(user *github.User) models.Member {
			return models.Member{Login: user.GetLogin()}
		})
}

// OrgTeams lists the organization's teams.
func (c *Client) OrgTeams(ctx context.Context, org string) iter.Seq2[models.Team, error] {
	endpoint := fmt.Sprintf("GET /orgs/%s/teams", org)
	return paginate(ctx, c.retry, endpoint,
		func(ctx context.Context, page int) ([]*github.Team, *github.Response, error) {
			opts := listOptions(page)
			return c.teams.ListTeams(ctx, org, &opts)
		},
		convertTeam)
}

// TeamMembers lists the members of one team by slug.
func (c *Client) TeamMembers(ctx context.Context, org string, slug string) iter.Seq2[models.Member, error] {
	endpoint := fmt.Sprintf("GET /orgs/%s/teams/%s/members", org, slug)
	return paginate(ctx, c.retry, endpoint,
		func(ctx context.Context, page int) ([]*github.User, *github.Response, error) {
			opts := &github.TeamListTeamMembersOptions{ListOptions: listOptions(page)}
			return c.teams.ListTeamMembersBySlug(ctx, org, slug, opts)
		},
		func(user *github.User) models.Member {
			return models.Member{Login: user.GetLogin()}
		})
}

// OrgRepositories lists the organization's repositories.
func (c *Client) OrgRepositories(ctx context.Context, org string) iter.Seq2[models.Repository, error] {
	endpoint := fmt.Sprintf("GET /orgs/%s/repos", org)
	return paginate(ctx, c.retry, endpoint,
		func(ctx context.Context, page int) ([]*github.Repository, *github.Response, error) {
			opts := &github.RepositoryListByOrgOptions{ListOptions: listOptions(page)}
			return c.repos.ListByOrg(ctx, org, opts)
		},
		func(repo *github.Repository) models.Repository {
			return models.Repository{
				Name:      repo.GetName(),
				Archived:  repo.GetArchived(),
				Disabled:  repo.GetDisabled(),
				CreatedAt: repo.GetCreatedAt().Time,
				UpdatedAt: repo.GetUpdatedAt().Time,
			}
		})
}

// RepoCollaborators lists a repository's collaborators filtered by
// affiliation ("direct" or "all").
func (c *Client) RepoCollaborators(ctx context.Context, org string, repo string, affiliation string) iter.Seq2[models.CollaboratorGrant, error] {
	endpoint := fmt.Sprintf("GET /repos/%s/%s/collaborators", org, repo)
	return paginate(ctx, c.retry, endpoint,
		func(ctx context.Context, page int) ([]*github.User, *github.Response, error) {
			opts := &github.ListCollaboratorsOptions{
				Affiliation: affiliation,
				ListOptions: listOptions(page),
			}
			return c.repos.ListCollaborators(ctx, org, repo, opts)
		},
		func(user *github.User) models.CollaboratorGrant {
			return models.CollaboratorGrant{
				Login:    user.GetLogin(),
				RoleName: user.GetRoleName(),
			}
		})
}

// RepoTeams lists the teams granted access to a repository, with the
// permission each grants.
func (c *Client) RepoTeams(ctx context.Context, org string, repo string) iter.Seq2[models.Team, error] {
	endpoint := fmt.Sprintf("GET /repos/%s/%s/teams", org, repo)
	return paginate(ctx, c.retry, endpoint,
		func(ctx context.Context, page int) ([]*github.Team, *github.Response, error) {
			opts := listOptions(page)
			return c.repos.ListTeams(ctx, org, repo, &opts)
		},
		convertTeam)
}

// CodeScanningAlerts lists a repository's code scanning alerts.
func (c *Client) CodeScanningAlerts(ctx context.Context, org string, repo string) iter.Seq2[models.SecurityAlert, error] {
	endpoint := fmt.Sprintf("GET /repos/%s/%s/code-scanning/alerts", org, repo)
	return paginate(ctx, c.retry, endpoint,
		func(ctx context.Context, page int) ([]*github.Alert, *github.Response, error) {
			opts := &github.AlertListOptions{ListOptions: listOptions(page)}
			return c.scans.ListAlertsForRepo(ctx, org, repo, opts)
		},
		func(alert *github.Alert) models.SecurityAlert {
			return models.SecurityAlert{
				Number:    alert.GetNumber(),
				Tool:      alert.GetTool().GetName(),
				Rule:      alert.GetRule().GetDescription(),
				State:     alert.GetState(),
				CreatedAt: alert.GetCreatedAt().Time,
			}
		})
}

// InviteMember invites a user into the organization by login. Setting
// membership for a non-member creates an invitation.
func (c *Client) InviteMember(ctx context.Context, org string, login string) error {
	if org == "" || login == "" {
		return fmt.Errorf("org and login are required")
	}
	endpoint := fmt.Sprintf("PUT /orgs/%s/memberships/%s", org, login)
	err := c.retry.Do(ctx, func() error {
		membership := &github.Membership{Role: github.String("member")}
		_, _, err := c.orgs.EditOrgMembership(ctx, login, org, membership)
		return err
	})
	return apiError(endpoint, err)
}

// RemoveMember removes a member from the organization.
func (c *Client) RemoveMember(ctx context.Context, org string, login string) error {
	if org == "" || login == "" {
		return fmt.Errorf("org and login are required")
	}
	endpoint := fmt.Sprintf("DELETE /orgs/%s/members/%s", org, login)
	err := c.retry.Do(ctx, func() error {
		_, err := c.orgs.RemoveMember(ctx, org, login)
		return err
	})
	return apiError(endpoint, err)
}

func convertTeam(team *github.Team) models.Team {
	return models.Team{
		Slug:       team.GetSlug(),
		Permission: team.GetPermission(),
	}
}

func listOptions(page int) github.ListOptions {
	return github.ListOptions{PerPage: 100, Page: page}
}

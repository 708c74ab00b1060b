package github

import (
	"context"
	"iter"

	"github.com/bcgov/gh-org-report/internal/models"
)

// MockClient implements interfaces.GitHubClient for testing. Fixture
// maps are keyed by org, "org/slug", or "org/repo" as appropriate;
// Errors can inject a failure for any of those keys.
type MockClient struct {
	Members        map[string][]models.Member            // org
	Teams          map[string][]models.Team              // org
	TeamRosters    map[string][]models.Member            // org/slug
	Repositories   map[string][]models.Repository        // org
	Collaborators  map[string][]models.CollaboratorGrant // org/repo/affiliation
	RepoTeamGrants map[string][]models.Team              // org/repo
	Alerts         map[string][]models.SecurityAlert     // org/repo
	Errors         map[string]error

	Invited   []string
	Removed   []string
	InviteErr error
	RemoveErr error
}

func (m *MockClient) OrgMembers(ctx context.Context, org string) iter.Seq2[models.Member, error] {
	return mockSeq(m.Members[org], m.Errors[org])
}

func (m *MockClient) OrgTeams(ctx context.Context, org string) iter.Seq2[models.Team, error] {
	return mockSeq(m.Teams[org], m.Errors[org+"/teams"])
}

func (m *MockClient) TeamMembers(ctx context.Context, org string, slug string) iter.Seq2[models.Member, error] {
	key := org + "/" + slug
	return mockSeq(m.TeamRosters[key], m.Errors[key])
}

func (m *MockClient) OrgRepositories(ctx context.Context, org string) iter.Seq2[models.Repository, error] {
	return mockSeq(m.Repositories[org], m.Errors[org+"/repos"])
}

func (m *MockClient) RepoCollaborators(ctx context.Context, org string, repo string, affiliation string) iter.Seq2[models.CollaboratorGrant, error] {
	key := org + "/" + repo
	return mockSeq(m.Collaborators[key+"/"+affiliation], m.Errors[key+"/collaborators"])
}

func (m *MockClient) RepoTeams(ctx context.Context, org string, repo string) iter.Seq2[models.Team, error] {
	key := org + "/" + repo
	return mockSeq(m.RepoTeamGrants[key], m.Errors[key+"/teams"])
}

func (m *MockClient) CodeScanningAlerts(ctx context.Context, org string, repo string) iter.Seq2[models.SecurityAlert, error] {
	key := org + "/" + repo
	return mockSeq(m.Alerts[key], m.Errors[key+"/alerts"])
}

func (m *MockClient) InviteMember(ctx context.Context, org string, login string) error {
	if m.InviteErr != nil {
		return m.InviteErr
	}
	m.Invited = append(m.Invited, login)
	return nil
}

func (m *MockClient) RemoveMember(ctx context.Context, org string, login string) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.Removed = append(m.Removed, login)
	return nil
}

// mockSeq yields items then, if set, a final error.
func mockSeq[T any](items []T, err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
		if err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

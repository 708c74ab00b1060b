package reconcile

import (
	"context"
	"iter"

	"github.com/bcgov/gh-org-report/internal/github"
	"github.com/bcgov/gh-org-report/internal/interfaces"
	"github.com/bcgov/gh-org-report/internal/models"
	"github.com/sirupsen/logrus"
)

// BuildSets fetches the membership snapshots for one reconcile run.
// removed is the already-loaded removed-members set (CSV merged with
// any tracked removals).
func BuildSets(ctx context.Context, client interfaces.GitHubClient, sourceOrg string, destinationOrg string, removed map[string]struct{}) (Sets, error) {
	source, err := memberSet(client.OrgMembers(ctx, sourceOrg))
	if err != nil {
		return Sets{}, err
	}
	destination, err := memberSet(client.OrgMembers(ctx, destinationOrg))
	if err != nil {
		return Sets{}, err
	}
	collaborators, err := collaboratorSet(ctx, client, sourceOrg)
	if err != nil {
		return Sets{}, err
	}
	if removed == nil {
		removed = map[string]struct{}{}
	}
	return Sets{
		SourceMembers:          source,
		DestinationMembers:     destination,
		RemovedFromDestination: removed,
		RepoCollaborators:      collaborators,
	}, nil
}

// collaboratorSet gathers logins with push-or-higher access on any
// non-archived repository of org. A repository whose collaborators
// cannot be read due to a permanent error is skipped.
func collaboratorSet(ctx context.Context, client interfaces.GitHubClient, org string) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	for repo, err := range client.OrgRepositories(ctx, org) {
		if err != nil {
			return nil, err
		}
		if repo.Archived {
			continue
		}
		grants, err := github.Collect(client.RepoCollaborators(ctx, org, repo.Name, "all"))
		if err != nil {
			if github.IsPermanent(err) {
				logrus.WithError(err).WithFields(logrus.Fields{
					"org":  org,
					"repo": repo.Name,
				}).Warn("skipping repository collaborators")
				continue
			}
			return nil, err
		}
		for _, grant := range grants {
			if models.RoleAtLeastWrite(grant.RoleName) {
				set[models.LoginKey(grant.Login)] = struct{}{}
			}
		}
	}
	return set, nil
}

func memberSet(seq iter.Seq2[models.Member, error]) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	for member, err := range seq {
		if err != nil {
			return nil, err
		}
		set[models.LoginKey(member.Login)] = struct{}{}
	}
	return set, nil
}

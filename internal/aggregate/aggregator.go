// Package aggregate builds one RepositoryReport per repository by
// merging direct collaborators with team-derived collaborators and
// computing the derived booleans.
package aggregate

import (
	"context"
	"time"

	"github.com/bcgov/gh-org-report/internal/github"
	"github.com/bcgov/gh-org-report/internal/interfaces"
	"github.com/bcgov/gh-org-report/internal/models"
	"github.com/sirupsen/logrus"
)

// Aggregator runs the per-repository report pipeline. Repositories are
// processed strictly sequentially to stay inside API rate limits.
type Aggregator struct {
	client interfaces.GitHubClient
}

// New creates an Aggregator.
func New(client interfaces.GitHubClient) *Aggregator {
	return &Aggregator{client: client}
}

// Run produces a report for every repository in org. linked is the
// externally supplied linked-members set (may be nil). Failures
// fetching one repository's data are logged and skipped; failures on
// org-level listings abort the run.
func (a *Aggregator) Run(ctx context.Context, org string, linked map[string]struct{}) ([]models.RepositoryReport, models.ReportSummary, error) {
	start := time.Now()
	summary := models.ReportSummary{Organization: org}

	members, err := a.loadMemberSet(ctx, org)
	if err != nil {
		return nil, summary, err
	}
	summary.OrgMembers = len(members)

	teamMembers, err := a.loadTeamMembers(ctx, org)
	if err != nil {
		return nil, summary, err
	}
	summary.Teams = len(teamMembers)

	logrus.WithFields(logrus.Fields{
		"org":     org,
		"members": len(members),
		"teams":   len(teamMembers),
	}).Info("organization loaded")

	reports := make([]models.RepositoryReport, 0)
	for repo, repoErr := range a.client.OrgRepositories(ctx, org) {
		if repoErr != nil {
			return nil, summary, repoErr
		}
		summary.TotalRepos++

		report, buildErr := a.buildRepoReport(ctx, org, repo, teamMembers, members, linked)
		if buildErr != nil {
			summary.ReposFailed++
			logrus.WithError(buildErr).WithFields(logrus.Fields{
				"org":  org,
				"repo": repo.Name,
			}).Warn("skipping repository")
			continue
		}

		reports = append(reports, report)
		summary.ReposReported++
		summary.CollaboratorRows += len(report.Collaborators)
		if report.HasAdmin {
			summary.ReposWithAdmin++
		}
		if report.HasLinkedCollaborator {
			summary.ReposWithLinked++
		}
		logrus.WithFields(logrus.Fields{
			"repo":          repo.Name,
			"collaborators": len(report.Collaborators),
		}).Debug("repository reported")
	}

	summary.DurationMs = time.Since(start).Milliseconds()
	return reports, summary, nil
}

func (a *Aggregator) buildRepoReport(ctx context.Context, org string, repo models.Repository, teamMembers map[string][]string, members, linked map[string]struct{}) (models.RepositoryReport, error) {
	direct, err := github.Collect(a.client.RepoCollaborators(ctx, org, repo.Name, "direct"))
	if err != nil {
		return models.RepositoryReport{}, err
	}
	repoTeams, err := github.Collect(a.client.RepoTeams(ctx, org, repo.Name))
	if err != nil {
		return models.RepositoryReport{}, err
	}
	return BuildReport(repo, direct, repoTeams, teamMembers, members, linked), nil
}

// loadMemberSet materializes the org member listing into a normalized
// login set.
func (a *Aggregator) loadMemberSet(ctx context.Context, org string) (map[string]struct{}, error) {
	members := make(map[string]struct{})
	for member, err := range a.client.OrgMembers(ctx, org) {
		if err != nil {
			return nil, err
		}
		members[models.LoginKey(member.Login)] = struct{}{}
	}
	return members, nil
}

// loadTeamMembers cross-references the team listing with per-team
// member listings, keyed by slug. A team whose roster cannot be read
// due to a permanent error contributes no collaborators; other errors
// abort.
func (a *Aggregator) loadTeamMembers(ctx context.Context, org string) (map[string][]string, error) {
	rosters := make(map[string][]string)
	for team, err := range a.client.OrgTeams(ctx, org) {
		if err != nil {
			return nil, err
		}
		logins, memberErr := github.Collect(a.client.TeamMembers(ctx, org, team.Slug))
		if memberErr != nil {
			if github.IsPermanent(memberErr) {
				logrus.WithError(memberErr).WithFields(logrus.Fields{
					"org":  org,
					"team": team.Slug,
				}).Warn("skipping team roster")
				rosters[team.Slug] = nil
				continue
			}
			return nil, memberErr
		}
		names := make([]string, 0, len(logins))
		for _, member := range logins {
			names = append(names, member.Login)
		}
		rosters[team.Slug] = names
	}
	return rosters, nil
}

// BuildReport computes one repository's report from already-fetched
// inputs. Direct collaborators come first, then team-derived ones, in
// listing order, without deduplication.
func BuildReport(repo models.Repository, direct []models.CollaboratorGrant, repoTeams []models.Team, teamMembers map[string][]string, members, linked map[string]struct{}) models.RepositoryReport {
	collaborators := make([]models.Collaborator, 0, len(direct))
	for _, grant := range direct {
		_, isMember := members[models.LoginKey(grant.Login)]
		collaborators = append(collaborators, models.Collaborator{
			Login:           grant.Login,
			IsMember:        isMember,
			AssociationType: models.AssociationDirect,
			RoleName:        grant.RoleName,
		})
	}
	for _, team := range repoTeams {
		for _, login := range teamMembers[team.Slug] {
			collaborators = append(collaborators, models.Collaborator{
				Login:           login,
				IsMember:        true,
				AssociationType: models.AssociationTeamMember,
				RoleName:        team.Permission,
			})
		}
	}

	report := models.RepositoryReport{
		RepoName:      repo.Name,
		Archived:      repo.Archived,
		Disabled:      repo.Disabled,
		CreatedAt:     repo.CreatedAt,
		UpdatedAt:     repo.UpdatedAt,
		Collaborators: collaborators,
	}
	for _, collab := range collaborators {
		admin := models.IsAdminRole(collab.RoleName)
		if admin {
			report.HasAdmin = true
		}
		if admin && collab.IsMember && collab.AssociationType == models.AssociationDirect {
			report.HasMemberAdmin = true
		}
		if admin && collab.AssociationType == models.AssociationTeamMember {
			report.HasAdminTeam = true
		}
		if _, ok := linked[models.LoginKey(collab.Login)]; ok {
			report.HasLinkedCollaborator = true
		}
	}
	return report
}

package report

import (
	"fmt"
	"io"

	"github.com/bcgov/gh-org-report/internal/models"
	"github.com/olekukonko/tablewriter"
)

// RenderSummary renders the report run summary as a table.
func RenderSummary(w io.Writer, summary models.ReportSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Organization", summary.Organization})
	table.Append([]string{"Repositories", fmt.Sprintf("%d", summary.TotalRepos)})
	table.Append([]string{"Reported", fmt.Sprintf("%d", summary.ReposReported)})
	table.Append([]string{"Failed", fmt.Sprintf("%d", summary.ReposFailed)})
	table.Append([]string{"Org Members", fmt.Sprintf("%d", summary.OrgMembers)})
	table.Append([]string{"Teams", fmt.Sprintf("%d", summary.Teams)})
	table.Append([]string{"Collaborator Rows", fmt.Sprintf("%d", summary.CollaboratorRows)})
	table.Append([]string{"Repos With Admin", fmt.Sprintf("%d", summary.ReposWithAdmin)})
	table.Append([]string{"Repos With Linked", fmt.Sprintf("%d", summary.ReposWithLinked)})
	table.Render()
}

// RenderPlan renders a reconcile plan as a table, one row per planned
// action.
func RenderPlan(w io.Writer, plan models.ReconcilePlan) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Action", "Login"})
	for _, login := range plan.UsersToInvite {
		table.Append([]string{string(models.ActionInvite), login})
	}
	for _, login := range plan.UsersToRemove {
		table.Append([]string{string(models.ActionRemove), login})
	}
	table.Render()
}

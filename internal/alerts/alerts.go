// Package alerts reports code scanning alerts for a repository,
// grouped per scanning tool.
package alerts

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/bcgov/gh-org-report/internal/github"
	"github.com/bcgov/gh-org-report/internal/interfaces"
	"github.com/bcgov/gh-org-report/internal/models"
	"github.com/olekukonko/tablewriter"
)

// ToolGroup is the set of alerts raised by one scanning tool.
type ToolGroup struct {
	Tool   string
	Alerts []models.SecurityAlert
}

// Fetch lists a repository's alerts and groups them by tool, tools
// sorted descending by name, alerts in listing order.
func Fetch(ctx context.Context, client interfaces.GitHubClient, org string, repo string) ([]ToolGroup, error) {
	alerts, err := github.Collect(client.CodeScanningAlerts(ctx, org, repo))
	if err != nil {
		return nil, err
	}
	return GroupByTool(alerts), nil
}

// GroupByTool groups alerts per scanning tool.
func GroupByTool(alerts []models.SecurityAlert) []ToolGroup {
	byTool := make(map[string][]models.SecurityAlert)
	for _, alert := range alerts {
		byTool[alert.Tool] = append(byTool[alert.Tool], alert)
	}

	tools := make([]string, 0, len(byTool))
	for tool := range byTool {
		tools = append(tools, tool)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(tools)))

	groups := make([]ToolGroup, 0, len(tools))
	for _, tool := range tools {
		groups = append(groups, ToolGroup{Tool: tool, Alerts: byTool[tool]})
	}
	return groups
}

// Render renders the grouped alerts as tables, one per tool.
func Render(w io.Writer, org string, repo string, groups []ToolGroup) {
	if len(groups) == 0 {
		fmt.Fprintf(w, "No code scanning alerts found for %s/%s\n", org, repo)
		return
	}
	for _, group := range groups {
		fmt.Fprintf(w, "Tool: %s (%d alerts)\n", group.Tool, len(group.Alerts))
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Number", "Rule", "State", "Created"})
		for _, alert := range group.Alerts {
			table.Append([]string{
				fmt.Sprintf("%d", alert.Number),
				alert.Rule,
				alert.State,
				alert.CreatedAt.Format("2006-01-02"),
			})
		}
		table.Render()
	}
}

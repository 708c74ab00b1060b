package cmd

import (
	"os"

	"github.com/bcgov/gh-org-report/internal/config"
	"github.com/bcgov/gh-org-report/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagOrg           string
	flagOutput        string
	flagLinkedMembers string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a repository collaborator report for an organization",
	Long: `Collects every repository in the organization along with its direct and
team-derived collaborators, and writes the result as a JSON report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("org") {
			cfg.GitHub.Organization = flagOrg
		}
		if cmd.Flags().Changed("output") {
			cfg.Report.Output = flagOutput
		}
		if cmd.Flags().Changed("linked-members") {
			cfg.Report.LinkedMembersFile = flagLinkedMembers
		}
		if err := config.ValidateReport(cfg); err != nil {
			return err
		}

		summary, err := runners.Report(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		logrus.WithField("organization", cfg.GitHub.Organization).Info(summary.String())
		report.RenderSummary(os.Stdout, *summary)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&flagOrg, "org", "", "GitHub organization to report on")
	reportCmd.Flags().StringVar(&flagOutput, "output", "", "Path of the JSON report file")
	reportCmd.Flags().StringVar(&flagLinkedMembers, "linked-members", "", "CSV file of linked member logins")
	rootCmd.AddCommand(reportCmd)
}

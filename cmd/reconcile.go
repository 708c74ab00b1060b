package cmd

import (
	"encoding/json"
	"os"

	"github.com/bcgov/gh-org-report/internal/config"
	"github.com/bcgov/gh-org-report/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagSourceOrg      string
	flagDestOrg        string
	flagRemovedMembers string
	flagExecute        bool
	flagJSON           bool
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile membership between two organizations",
	Long: `Compares the source organization's membership against the destination
organization, plans invitations and removals, and optionally executes them.
Runs in dry-run mode unless --execute is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("source-org") {
			cfg.Reconcile.SourceOrg = flagSourceOrg
		}
		if cmd.Flags().Changed("dest-org") {
			cfg.Reconcile.DestinationOrg = flagDestOrg
		}
		if cmd.Flags().Changed("removed-members") {
			cfg.Reconcile.RemovedMembersFile = flagRemovedMembers
		}
		if flagExecute {
			cfg.Reconcile.DryRun = false
		}
		if err := config.ValidateReconcile(cfg); err != nil {
			return err
		}

		result, err := runners.Reconcile(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"source_org":      cfg.Reconcile.SourceOrg,
			"destination_org": cfg.Reconcile.DestinationOrg,
			"dry_run":         result.DryRun,
		}).Info(result.Summary.String())
		if flagJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(result); err != nil {
				return err
			}
		} else {
			report.RenderPlan(os.Stdout, result.Plan)
		}
		if !result.IsSuccess() {
			logrus.Warnf("%d actions failed, see log for details", result.Summary.ActionsFailed)
		}
		return nil
	},
}

func init() {
	reconcileCmd.Flags().StringVar(&flagSourceOrg, "source-org", "", "Organization that is the source of truth for membership")
	reconcileCmd.Flags().StringVar(&flagDestOrg, "dest-org", "", "Organization whose membership is adjusted")
	reconcileCmd.Flags().StringVar(&flagRemovedMembers, "removed-members", "", "CSV file of logins already removed from the destination")
	reconcileCmd.Flags().BoolVar(&flagExecute, "execute", false, "Execute the planned actions instead of a dry run")
	reconcileCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the full result as JSON instead of a table")
	rootCmd.AddCommand(reconcileCmd)
}

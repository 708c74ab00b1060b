package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts <repository>",
	Short: "Show open code scanning alerts for a repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("org") {
			cfg.GitHub.Organization = flagOrg
		}
		if cfg.GitHub.Organization == "" {
			return fmt.Errorf("github organization is required, set --org or GITHUB_ORG")
		}
		return runners.Alerts(cmd.Context(), cfg, args[0])
	},
}

func init() {
	alertsCmd.Flags().StringVar(&flagOrg, "org", "", "GitHub organization the repository belongs to")
	rootCmd.AddCommand(alertsCmd)
}

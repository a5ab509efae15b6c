package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mailfleet/mailfleet/internal/config"
	"github.com/mailfleet/mailfleet/pkg/roster"
)

var checkRosterPath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the campaign file and roster without sending",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkRosterPath, "roster", "", "recipient table to validate (.xlsx or .csv)")
}

func runCheck(_ *cobra.Command, _ []string) error {
	campaign, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	tmpl, err := campaign.ResolveTemplate()
	if err != nil {
		return err
	}

	cfg, badAddrs := campaign.CampaignConfig(tmpl)
	for _, addr := range badAddrs {
		log.Warn("invalid cc/bcc address", "address", addr)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Info("campaign ok",
		"sender", cfg.SenderAddress,
		"endpoint", fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		"cc", len(cfg.CC),
		"bcc", len(cfg.BCC))

	if checkRosterPath == "" {
		return nil
	}

	table, err := roster.Load(checkRosterPath)
	if err != nil {
		return err
	}
	for _, row := range table.Invalid {
		log.Warn("roster row with invalid address", "row", row.Row, "address", row.Address)
	}
	log.Info("roster ok",
		"recipients", len(table.Recipients),
		"invalid_rows", len(table.Invalid))
	return nil
}

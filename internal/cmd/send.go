package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mailfleet/mailfleet"
	"github.com/mailfleet/mailfleet/internal/config"
	"github.com/mailfleet/mailfleet/pkg/logger"
	"github.com/mailfleet/mailfleet/pkg/markup"
	"github.com/mailfleet/mailfleet/pkg/roster"
	"github.com/mailfleet/mailfleet/pkg/sanitizer"
)

var (
	rosterPath string
	outPath    string
	dryRun     bool
	sanitize   bool
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Dispatch the campaign to every recipient in the roster",
	RunE:  runSend,
}

func init() {
	sendCmd.Flags().StringVar(&rosterPath, "roster", "", "recipient table (.xlsx or .csv)")
	sendCmd.Flags().StringVar(&outPath, "out", "results.csv", "results CSV path")
	sendCmd.Flags().BoolVar(&dryRun, "dry-run", false, "render a preview without connecting or sending")
	sendCmd.Flags().BoolVar(&sanitize, "sanitize", false, "sanitize rendered bodies before sending")
	_ = sendCmd.MarkFlagRequired("roster")
}

func runSend(cmd *cobra.Command, _ []string) error {
	campaign, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	tmpl, err := campaign.ResolveTemplate()
	if err != nil {
		return err
	}
	interval, err := campaign.Interval()
	if err != nil {
		return err
	}

	table, err := roster.Load(rosterPath)
	if err != nil {
		return err
	}
	for _, row := range table.Invalid {
		log.Warn("skipping roster row with invalid address", "row", row.Row, "address", row.Address)
	}
	if len(table.Recipients) == 0 {
		return fmt.Errorf("roster %s has no valid recipients", rosterPath)
	}

	cfg, badAddrs := campaign.CampaignConfig(tmpl)
	for _, addr := range badAddrs {
		log.Warn("ignoring invalid cc/bcc address", "address", addr)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if dryRun {
		return previewCampaign(cmd, cfg, table)
	}

	opts := []mailfleet.Option{
		mailfleet.WithSendInterval(interval),
		mailfleet.WithProgress(func(done, total int, last mailfleet.Outcome) {
			log.Info("sent",
				"progress", fmt.Sprintf("%d/%d", done, total),
				"recipient", last.Label,
				"status", string(last.Status))
		}),
	}
	if verbose {
		// charmbracelet's logger doubles as a slog handler, so dispatcher
		// logs (with run_id) land in the same stream as CLI output.
		opts = append(opts, mailfleet.WithLogger(
			slog.New(logger.NewLogHandlerDecorator(log.Default(), logger.RunIDExtractor)),
		))
	}
	if sanitize {
		opts = append(opts, mailfleet.WithBodyFilter(sanitizer.EmailBody))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, runErr := mailfleet.New(opts...).Run(ctx, cfg, table.Recipients)

	// Write whatever was recorded, even after a failed or cancelled run:
	// the outcome log is the operator's record of who was reached.
	if len(results) > 0 {
		if err := writeResults(results, outPath); err != nil {
			return errors.Join(runErr, err)
		}
		log.Info("results written",
			"path", outPath,
			"total", len(results),
			"succeeded", results.Succeeded(),
			"failed", results.Failed())
	}
	return runErr
}

func previewCampaign(cmd *cobra.Command, cfg mailfleet.Config, table *roster.Table) error {
	first := table.Recipients[0]
	rendered := markup.Render(cfg.Template, first.DisplayName)
	if sanitize {
		rendered.HTML = sanitizer.EmailBody(rendered.HTML)
	}

	log.Info("dry run: no connection attempted",
		"recipients", len(table.Recipients),
		"preview_for", first.Label())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Subject: %s\n", cfg.Subject)
	if len(cfg.CC) > 0 {
		fmt.Fprintf(out, "Cc: %v\n", cfg.CC)
	}
	fmt.Fprintf(out, "\n%s\n", rendered.HTML)
	return nil
}

func writeResults(results mailfleet.Results, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := results.WriteCSV(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Package cmd provides the CLI commands for mailfleet.
package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mailfleet",
	Short: "Personalized bulk email campaign dispatcher",
	Long: `Mailfleet sends a personalized email campaign to every recipient in a
roster file, rendering a shared template per recipient over one
authenticated SMTP session and recording one outcome per send, so a
single bad address never aborts the run.

Example:
  mailfleet check -c campaign.yaml --roster companies.xlsx
  mailfleet send  -c campaign.yaml --roster companies.xlsx --out results.csv
  mailfleet send  -c campaign.yaml --roster companies.csv --dry-run`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "campaign.yaml", "campaign file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(checkCmd)
}

func initLogging() {
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

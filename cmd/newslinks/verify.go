package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"govbr-newslinks/internal/updater"
)

var verifyFlags struct {
	mapping string
	timeout time.Duration
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Probe mapped news URLs for live RSS feeds",
	Long: `Verify loads the agency mapping and checks each news URL for a live RSS
feed (gov.br portals publish one at <url>/RSS). The mapping itself is never
modified; this is a read-only health check of the recorded URLs.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyFlags.mapping, "mapping", "data/output/site_urls.yaml", "mapping YAML to verify")
	verifyCmd.Flags().DurationVar(&verifyFlags.timeout, "timeout", 30*time.Second, "per-feed timeout")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	agencies, err := updater.LoadMapping(verifyFlags.mapping)
	if err != nil {
		return err
	}

	checker := updater.NewFeedChecker(verifyFlags.timeout, rootLog)
	statuses := checker.Check(cmd.Context(), agencies)

	ok := 0
	for _, s := range statuses {
		if s.OK() {
			ok++
			fmt.Printf("✅ %s: %s\n", s.Agency, s.FeedURL)
		} else {
			fmt.Printf("❌ %s: sem feed em %s\n", s.Agency, s.NewsURL)
		}
	}

	fmt.Println()
	fmt.Printf("📊 %d/%d agências com feed RSS ativo\n", ok, len(statuses))
	return nil
}

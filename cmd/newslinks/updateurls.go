package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"govbr-newslinks/internal/scraper"
	"govbr-newslinks/internal/updater"
)

var updateFlags struct {
	csvFile    string
	mappingIn  string
	mappingOut string
}

var updateURLsCmd = &cobra.Command{
	Use:   "update-urls",
	Short: "Reconcile scraped links with the authoritative mapping",
	Long: `Update-urls compares the scraped CSV against the authoritative YAML
mapping. Unknown agencies with a scraped link are added; scraped links that
disagree with the mapping are reported as discrepancies and never overwrite
the authoritative value. The updated mapping is written to --out.`,
	RunE: runUpdateURLs,
}

func init() {
	updateURLsCmd.Flags().StringVar(&updateFlags.csvFile, "csv", "data/stage/scraped_urls.csv", "scraped CSV to read")
	updateURLsCmd.Flags().StringVar(&updateFlags.mappingIn, "mapping", "data/input/site_urls.yaml", "authoritative mapping YAML")
	updateURLsCmd.Flags().StringVar(&updateFlags.mappingOut, "out", "data/output/site_urls.yaml", "updated mapping YAML to write")

	rootCmd.AddCommand(updateURLsCmd)
}

func runUpdateURLs(cmd *cobra.Command, args []string) error {
	roster, err := scraper.LoadRoster(updateFlags.csvFile)
	if err != nil {
		return err
	}

	rows := make([]updater.ScrapedRow, 0, roster.Len())
	for i := 0; i < roster.Len(); i++ {
		rows = append(rows, updater.ScrapedRow{Portal: roster.Portal(i), News: roster.News(i)})
	}

	agencies, err := updater.LoadMapping(updateFlags.mappingIn)
	if err != nil {
		return err
	}

	rec := updater.NewReconciler(rootLog)
	updated, discrepancies := rec.Reconcile(rows, agencies)

	fmt.Println(updater.Report(discrepancies))

	if err := updater.SaveMapping(updated, updateFlags.mappingOut); err != nil {
		return err
	}

	correct := len(agencies) - len(discrepancies)
	fmt.Println()
	fmt.Println("✅ Atualização concluída!")
	fmt.Printf("📊 %d/%d URLs corretos\n", correct, len(agencies))
	fmt.Printf("💾 YAML atualizado salvo em: %s\n", updateFlags.mappingOut)
	return nil
}

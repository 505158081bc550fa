package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"govbr-newslinks/internal/scraper"
)

var scrapeFlags struct {
	input     string
	output    string
	timeout   time.Duration
	delay     time.Duration
	userAgent string
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Resolve news links for every site in the roster CSV",
	Long: `Scrape reads the agency roster CSV, visits each portal that has no news
link yet and records the resolved link in the Noticias column. Sites where
no link is found stay empty; only a missing input file or a malformed CSV
aborts the run.`,
	RunE: runScrape,
}

func init() {
	defaults := scraper.DefaultConfig()

	scrapeCmd.Flags().StringVar(&scrapeFlags.input, "input", "data/input/all-govbr-sites.csv", "roster CSV to read")
	scrapeCmd.Flags().StringVar(&scrapeFlags.output, "output", "data/stage/scraped_urls.csv", "CSV to write results to")
	scrapeCmd.Flags().DurationVar(&scrapeFlags.timeout, "timeout", defaults.Timeout, "per-request timeout")
	scrapeCmd.Flags().DurationVar(&scrapeFlags.delay, "delay", defaults.Delay, "pause between requests")
	scrapeCmd.Flags().StringVar(&scrapeFlags.userAgent, "user-agent", defaults.UserAgent, "User-Agent header")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg := scraper.Config{
		Timeout:   scrapeFlags.timeout,
		Delay:     scrapeFlags.delay,
		UserAgent: scrapeFlags.userAgent,
	}

	batch := scraper.NewBatch(cfg, rootLog)
	total, withNews, err := batch.Run(scrapeFlags.input, scrapeFlags.output)
	if err != nil {
		return err
	}

	fmt.Println("✅ Raspagem concluída!")
	fmt.Printf("📊 %d/%d sites com links de notícias\n", withNews, total)
	if total > 0 {
		fmt.Printf("📈 Taxa de sucesso: %.1f%%\n", float64(withNews)/float64(total)*100)
	}
	fmt.Printf("💾 Resultados salvos em: %s\n", scrapeFlags.output)
	return nil
}

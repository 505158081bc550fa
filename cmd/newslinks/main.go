// Command newslinks finds the news-section link of gov.br agency portals
// and keeps the authoritative agency→news-URL mapping up to date.
//
// Typical run:
//
//	newslinks scrape --input data/input/all-govbr-sites.csv --output data/stage/scraped_urls.csv
//	newslinks update-urls --csv data/stage/scraped_urls.csv --mapping data/input/site_urls.yaml --out data/output/site_urls.yaml
//	newslinks verify --mapping data/output/site_urls.yaml
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"govbr-newslinks/internal/logging"
)

var (
	flagLogLevel  string
	flagLogFormat string
	flagVerbose   bool

	// rootLog is built once in PersistentPreRun and handed to every
	// component; packages never log through a global of their own.
	rootLog zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "newslinks",
	Short:         "News URL scraper for Brazilian government websites",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := flagLogLevel
		if level == "" {
			if flagVerbose {
				level = "debug"
			} else {
				level = os.Getenv("LOG_LEVEL")
			}
		}
		rootLog = logging.New(logging.Config{Level: level, Format: flagLogFormat})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "console", "log format: console or json")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "shortcut for --log-level=debug")
}

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

// Lambda: scan
//
// Resolves news links for a batch of gov.br portal URLs supplied in the
// invocation event. Stateless; roster and mapping files stay with the CLI.
//
// Environment variables:
//   - TIMEOUT_SECONDS: per-request timeout (default: 30)
//   - USER_AGENT:      User-Agent header (default: the scraper default)
//   - LOG_LEVEL:       zerolog level (default: info)
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/lambda"

	"govbr-newslinks/internal/logging"
	"govbr-newslinks/internal/scraper"
)

// Request is the invocation payload.
type Request struct {
	Portals []string `json:"portals"`
}

// Response reports the resolved links; portals with no discoverable news
// section map to an empty string.
type Response struct {
	Results map[string]string `json:"results"`
	Found   int               `json:"found"`
	Missed  int               `json:"missed"`
}

// Handler resolves each portal in the event sequentially.
func Handler(ctx context.Context, req Request) (Response, error) {
	log := logging.New(logging.Config{Level: os.Getenv("LOG_LEVEL"), Format: "json"})

	if len(req.Portals) == 0 {
		return Response{}, fmt.Errorf("no portals in event")
	}

	cfg := loadConfig()
	fetcher := scraper.NewFetcher(cfg)
	resolver := scraper.NewResolver(log)

	resp := Response{Results: make(map[string]string, len(req.Portals))}
	for _, portal := range req.Portals {
		link := ""
		page, err := fetcher.Fetch(portal)
		if err != nil {
			log.Error().Str("portal", portal).Err(err).Msg("fetch failed")
		} else {
			link = resolver.Resolve(page, portal)
		}

		resp.Results[portal] = link
		if link != "" {
			resp.Found++
		} else {
			resp.Missed++
		}
	}

	log.Info().Int("found", resp.Found).Int("missed", resp.Missed).Msg("scan finished")
	return resp, nil
}

// loadConfig reads the fetcher settings from the environment. The request
// delay is not used here: Lambda invocations are already rate limited by
// the scheduler.
func loadConfig() scraper.Config {
	cfg := scraper.DefaultConfig()
	cfg.Delay = 0

	if ts := os.Getenv("TIMEOUT_SECONDS"); ts != "" {
		if val, err := strconv.Atoi(ts); err == nil && val > 0 {
			cfg.Timeout = time.Duration(val) * time.Second
		}
	}
	if ua := os.Getenv("USER_AGENT"); ua != "" {
		cfg.UserAgent = ua
	}
	return cfg
}

func main() {
	lambda.Start(Handler)
}

package scraper

import (
	"time"

	"github.com/rs/zerolog"
)

// saveEvery controls how often progress is flushed to the output file during
// a long batch, so an interrupted run loses at most a handful of sites.
const saveEvery = 5

// Batch drives a sequential scrape over an agency roster. Sites are
// independent of each other; a per-site miss is recorded as an empty cell
// and never stops the run.
type Batch struct {
	fetcher  *Fetcher
	resolver *Resolver
	delay    time.Duration
	log      zerolog.Logger
}

// NewBatch wires a fetcher and resolver from cfg.
func NewBatch(cfg Config, log zerolog.Logger) *Batch {
	return &Batch{
		fetcher:  NewFetcher(cfg),
		resolver: NewResolver(log),
		delay:    cfg.Delay,
		log:      log,
	}
}

// Run loads the roster at inputPath, resolves a news link for every row that
// does not have one yet, and writes the result to outputPath. It returns the
// total row count and how many rows ended up with a news link. Only roster
// I/O errors abort the run.
func (b *Batch) Run(inputPath, outputPath string) (total, withNews int, err error) {
	roster, err := LoadRoster(inputPath)
	if err != nil {
		return 0, 0, err
	}
	b.log.Info().Str("file", inputPath).Int("rows", roster.Len()).Msg("roster loaded")

	pending := roster.Pending()
	if len(pending) == 0 {
		b.log.Info().Msg("every site already has a news link")
		return roster.Len(), roster.WithNews(), nil
	}
	b.log.Info().Int("sites", len(pending)).Msg("resolving sites without a news link")

	for n, i := range pending {
		portal := roster.Portal(i)
		b.log.Info().Int("current", n+1).Int("of", len(pending)).Str("portal", portal).Msg("processing site")

		roster.SetNews(i, b.resolveSite(portal))

		if b.delay > 0 {
			time.Sleep(b.delay)
		}
		if (n+1)%saveEvery == 0 {
			if err := roster.Save(outputPath); err != nil {
				return 0, 0, err
			}
			b.log.Info().Int("processed", n+1).Msg("progress saved")
		}
	}

	if err := roster.Save(outputPath); err != nil {
		return 0, 0, err
	}

	total = roster.Len()
	withNews = roster.WithNews()
	b.log.Info().
		Int("total", total).
		Int("withNews", withNews).
		Int("withoutNews", total-withNews).
		Float64("successRate", float64(withNews)/float64(total)*100).
		Msg("batch finished")
	return total, withNews, nil
}

// resolveSite fetches one portal and resolves its news link. Fetch failures
// degrade to an absent result.
func (b *Batch) resolveSite(portal string) string {
	page, err := b.fetcher.Fetch(portal)
	if err != nil {
		b.log.Error().Str("portal", portal).Err(err).Msg("fetch failed")
		return ""
	}
	return b.resolver.Resolve(page, portal)
}

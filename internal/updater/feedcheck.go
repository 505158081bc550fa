package updater

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"
)

// FeedStatus is the probe result for one agency's news URL.
type FeedStatus struct {
	Agency  string
	NewsURL string
	FeedURL string
	Title   string
	Err     error
}

// OK reports whether a live feed was found.
func (s FeedStatus) OK() bool { return s.Err == nil }

// FeedChecker probes the news URLs in a mapping for live RSS feeds. gov.br
// news sections expose a feed at <url>/RSS; the page URL itself is tried as
// a fallback for portals that serve the feed directly.
type FeedChecker struct {
	parser  *gofeed.Parser
	timeout time.Duration
	log     zerolog.Logger
}

// NewFeedChecker creates a checker with the given per-feed timeout.
func NewFeedChecker(timeout time.Duration, log zerolog.Logger) *FeedChecker {
	return &FeedChecker{
		parser:  gofeed.NewParser(),
		timeout: timeout,
		log:     log,
	}
}

// Check probes every agency in the mapping and returns one status per
// agency, sorted by agency code. The mapping is never modified.
func (c *FeedChecker) Check(ctx context.Context, agencies map[string]string) []FeedStatus {
	codes := make([]string, 0, len(agencies))
	for code := range agencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]FeedStatus, 0, len(codes))
	for _, code := range codes {
		status := c.checkOne(ctx, code, agencies[code])
		if status.OK() {
			c.log.Info().Str("agency", code).Str("feed", status.FeedURL).Msg("feed found")
		} else {
			c.log.Warn().Str("agency", code).Err(status.Err).Msg("no feed found")
		}
		out = append(out, status)
	}
	return out
}

func (c *FeedChecker) checkOne(ctx context.Context, agency, newsURL string) FeedStatus {
	status := FeedStatus{Agency: agency, NewsURL: newsURL}

	candidates := []string{strings.TrimRight(newsURL, "/") + "/RSS", newsURL}
	for _, feedURL := range candidates {
		probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
		feed, err := c.parser.ParseURLWithContext(feedURL, probeCtx)
		cancel()

		if err == nil {
			status.FeedURL = feedURL
			status.Title = feed.Title
			status.Err = nil
			return status
		}
		status.Err = err
	}
	return status
}

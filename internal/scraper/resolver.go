package scraper

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Search phrases, tried in this order by Resolve.
const (
	phraseNews       = "notícias"
	phraseLatestNews = "últimas notícias"
	phraseMoreNews   = "mais notícias"
)

// Scoring weights for disambiguating between multiple matching anchors.
// Tuned against the gov.br portal corpus; tunable, not load-bearing.
const (
	scoreComunicacao = 100 // institutional-communication sections
	scoreUltimas     = 50  // "últimas notícias" style anchors
	scoreShortPath   = 10  // shorter, more direct paths
	scoreNoticias    = 5   // "noticias" somewhere in the URL
	maxPathSlashes   = 6
)

// promoKeywords marks anchors that point at promotional or event-specific
// news pages rather than the agency's main news section.
var promoKeywords = []string{"g20", "evento", "campanha", "especial", "promocao"}

// Resolver finds the news-section link of a single gov.br portal page.
// It holds no mutable state; one Resolver is safe to reuse across sites.
type Resolver struct {
	log zerolog.Logger
}

// NewResolver creates a Resolver that logs its strategy decisions to log.
func NewResolver(log zerolog.Logger) *Resolver {
	return &Resolver{log: log}
}

// Resolve returns the best news link for the page as an absolute URL, or ""
// when no strategy finds one. Strategies are tried in order, first hit wins:
//
//  1. "Notícias" anchors inside the footer container
//  2. "Últimas Notícias" anywhere on the page
//  3. "Mais Notícias" anywhere on the page
//  4. Generic "Notícias" anywhere on the page, with promotional anchors
//     filtered out
//
// An empty result is a normal outcome, not an error.
func (r *Resolver) Resolve(page Page, baseURL string) string {
	if link := r.searchFooter(page, baseURL); link != "" {
		return link
	}
	if link := r.searchWholePage(page, baseURL, phraseLatestNews, "latest-news"); link != "" {
		return link
	}
	if link := r.searchWholePage(page, baseURL, phraseMoreNews, "more-news"); link != "" {
		return link
	}
	if link := r.searchGeneric(page, baseURL); link != "" {
		return link
	}

	r.log.Info().Str("url", baseURL).Msg("no news link found by any strategy")
	return ""
}

// searchFooter looks for "notícias" anchors scoped to the footer container.
func (r *Resolver) searchFooter(page Page, baseURL string) string {
	anchors, ok := page.FooterAnchors()
	if !ok {
		r.log.Warn().Str("url", baseURL).Msg("footer container not found, skipping footer strategy")
		return ""
	}

	candidates := matchByText(anchors, phraseNews)
	if len(candidates) == 0 {
		return ""
	}

	best := candidates[0]
	if len(candidates) > 1 {
		best = r.selectBest(candidates, baseURL)
	}

	link := absoluteURL(baseURL, best.Href)
	if link != "" {
		r.log.Info().Str("url", baseURL).Str("link", link).Msg("news link found in footer")
	}
	return link
}

// searchWholePage runs the tiered text match for phrase across all anchors
// and takes the first candidate.
func (r *Resolver) searchWholePage(page Page, baseURL, phrase, strategy string) string {
	r.log.Info().Str("url", baseURL).Str("strategy", strategy).Msg("trying page-wide fallback")

	candidates := matchByText(page.Anchors(), phrase)
	if len(candidates) == 0 {
		return ""
	}

	link := absoluteURL(baseURL, candidates[0].Href)
	if link != "" {
		r.log.Info().Str("url", baseURL).Str("strategy", strategy).Str("link", link).Msg("news link found")
	}
	return link
}

// searchGeneric is the last-resort strategy: any "notícias" anchor on the
// page, with promotional anchors filtered out first. If filtering removes
// every candidate the unfiltered set is used instead.
func (r *Resolver) searchGeneric(page Page, baseURL string) string {
	r.log.Info().Str("url", baseURL).Msg("trying generic news fallback")

	candidates := matchByText(page.Anchors(), phraseNews)
	if len(candidates) == 0 {
		return ""
	}

	filtered := make([]Anchor, 0, len(candidates))
	for _, a := range candidates {
		if !isPromotional(a) {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) > 0 {
		candidates = filtered
	}

	best := candidates[0]
	if len(candidates) > 1 {
		best = r.selectBest(candidates, baseURL)
	}

	link := absoluteURL(baseURL, best.Href)
	if link != "" {
		r.log.Info().Str("url", baseURL).Str("link", link).Msg("generic news link found")
	}
	return link
}

func isPromotional(a Anchor) bool {
	text := strings.ToLower(a.Text)
	href := strings.ToLower(a.Href)
	for _, kw := range promoKeywords {
		if strings.Contains(text, kw) || strings.Contains(href, kw) {
			return true
		}
	}
	return false
}

// matchByText compares each anchor's trimmed, lowercased text against the
// phrase using three priority tiers: exact equality, then suffix, then
// prefix. Only the first non-empty tier is returned; tiers never mix.
// Anchors without an href can never be selected and are dropped here.
func matchByText(anchors []Anchor, phrase string) []Anchor {
	phrase = strings.ToLower(strings.TrimSpace(phrase))

	var exact, suffix, prefix []Anchor
	for _, a := range anchors {
		if a.Href == "" {
			continue
		}
		text := strings.ToLower(strings.TrimSpace(a.Text))
		if text == "" {
			continue
		}
		switch {
		case text == phrase:
			exact = append(exact, a)
		case strings.HasSuffix(text, phrase):
			suffix = append(suffix, a)
		case strings.HasPrefix(text, phrase):
			prefix = append(prefix, a)
		}
	}

	switch {
	case len(exact) > 0:
		return exact
	case len(suffix) > 0:
		return suffix
	default:
		return prefix
	}
}

// selectBest scores every candidate and returns the highest scorer. Ties go
// to the earliest candidate, so the choice is stable for a given input order.
func (r *Resolver) selectBest(candidates []Anchor, baseURL string) Anchor {
	best := candidates[0]
	bestScore := -1

	for _, a := range candidates {
		score := scoreAnchor(a, baseURL)
		if score > bestScore {
			best = a
			bestScore = score
		}
	}

	r.log.Info().Int("score", bestScore).Str("text", best.Text).Msg("selected best news candidate")
	return best
}

func scoreAnchor(a Anchor, baseURL string) int {
	abs := strings.ToLower(absoluteURL(baseURL, a.Href))
	text := strings.ToLower(a.Text)

	score := 0
	if strings.Contains(abs, "comunicacao") {
		score += scoreComunicacao
	}
	if strings.Contains(text, "ultimas") {
		score += scoreUltimas
	}
	if strings.Count(abs, "/") <= maxPathSlashes {
		score += scoreShortPath
	}
	if strings.Contains(abs, "noticias") {
		score += scoreNoticias
	}
	return score
}

// absoluteURL resolves href against baseURL. Hrefs starting with "/" or not
// starting with "http" are treated as relative; anything else is already
// absolute and returned as-is, so the function is idempotent.
func absoluteURL(baseURL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if !strings.HasPrefix(href, "/") && strings.HasPrefix(href, "http") {
		return href
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

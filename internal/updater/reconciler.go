// Package updater reconciles scraped news links against the authoritative
// agency mapping and reports disagreements.
package updater

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// agencyPattern extracts the agency code from a gov.br portal URL, e.g.
// "mec" from https://www.gov.br/mec/pt-br. Other domains are out of scope.
var agencyPattern = regexp.MustCompile(`https://www\.gov\.br/([^/]+)/pt-br`)

// ScrapedRow is one scraped result: the portal the scrape started from and
// the news URL it extracted (empty when nothing was found).
type ScrapedRow struct {
	Portal string
	News   string
}

// Discrepancy records a scraped URL that disagrees with the authoritative
// one and is not explainable as a narrower variant of it.
type Discrepancy struct {
	Agency       string
	PortalURL    string
	ExtractedURL string
	CorrectURL   string
}

// Reconciler validates scraped rows against the authoritative mapping.
type Reconciler struct {
	log zerolog.Logger
}

// NewReconciler creates a Reconciler that logs its decisions to log.
func NewReconciler(log zerolog.Logger) *Reconciler {
	return &Reconciler{log: log}
}

// ExtractAgencyCode returns the agency code embedded in a portal URL, or ""
// when the URL does not follow the gov.br portal pattern.
func ExtractAgencyCode(portalURL string) string {
	m := agencyPattern.FindStringSubmatch(portalURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// Reconcile classifies every scraped row against the authoritative mapping
// and returns the updated mapping plus the discrepancies, in input order.
//
// Rules per agency:
//   - portal URL without an agency code: row is skipped entirely
//   - agency unknown to the mapping: added when a news URL was extracted
//   - extracted URL empty: authoritative entry left untouched
//   - extracted equals authoritative, or is contained in it (trailing slash
//     insensitive): valid, left untouched
//   - anything else: a Discrepancy; the authoritative entry is never
//     overwritten with the scraped value
//
// The input mapping is not mutated; existing entries are never deleted.
func (r *Reconciler) Reconcile(rows []ScrapedRow, authoritative map[string]string) (map[string]string, []Discrepancy) {
	updated := make(map[string]string, len(authoritative))
	for code, u := range authoritative {
		updated[code] = u
	}

	var discrepancies []Discrepancy
	for _, row := range rows {
		agency := ExtractAgencyCode(row.Portal)
		if agency == "" {
			continue
		}

		extracted := strings.TrimSpace(row.News)

		correct, known := authoritative[agency]
		if !known {
			if extracted != "" {
				updated[agency] = extracted
				r.log.Info().Str("agency", agency).Str("url", extracted).Msg("new agency added")
			}
			continue
		}

		if extracted == "" || extracted == strings.TrimSpace(correct) {
			continue
		}

		if isURLContained(extracted, correct) {
			r.log.Info().Str("agency", agency).Msg("extracted URL valid, contained in authoritative URL")
			continue
		}

		discrepancies = append(discrepancies, Discrepancy{
			Agency:       agency,
			PortalURL:    row.Portal,
			ExtractedURL: extracted,
			CorrectURL:   correct,
		})
	}

	r.log.Info().Int("discrepancies", len(discrepancies)).Msg("reconciliation finished")
	return updated, discrepancies
}

// isURLContained reports whether extracted is a substring of correct once
// both are trimmed and stripped of trailing slashes, so "https://x/a" and
// "https://x/a/" compare equal.
func isURLContained(extracted, correct string) bool {
	if extracted == "" || correct == "" {
		return false
	}
	e := strings.TrimRight(strings.TrimSpace(extracted), "/")
	c := strings.TrimRight(strings.TrimSpace(correct), "/")
	return strings.Contains(c, e)
}

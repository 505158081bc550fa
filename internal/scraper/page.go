package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// footerSelector is the structural marker gov.br portals use for the
// site-wide footer region.
const footerSelector = "div.footer-wrapper"

// Anchor is a hyperlink extracted from a page: its visible text and the raw
// href attribute (possibly relative, possibly empty).
type Anchor struct {
	Text string
	Href string
}

// Page exposes the anchor structure the resolver needs, keeping it decoupled
// from any specific HTML parser.
type Page interface {
	// Anchors returns every anchor on the page, in document order.
	Anchors() []Anchor

	// FooterAnchors returns the anchors inside the footer container, or
	// ok=false when the page has no footer container.
	FooterAnchors() (anchors []Anchor, ok bool)
}

// goqueryPage adapts a parsed goquery document to the Page interface.
type goqueryPage struct {
	doc *goquery.Document
}

// ParsePage wraps a parsed document.
func ParsePage(doc *goquery.Document) Page {
	return &goqueryPage{doc: doc}
}

func (p *goqueryPage) Anchors() []Anchor {
	return collectAnchors(p.doc.Find("a"))
}

func (p *goqueryPage) FooterAnchors() ([]Anchor, bool) {
	footer := p.doc.Find(footerSelector).First()
	if footer.Length() == 0 {
		return nil, false
	}
	return collectAnchors(footer.Find("a")), true
}

func collectAnchors(sel *goquery.Selection) []Anchor {
	out := make([]Anchor, 0, sel.Length())
	sel.Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		out = append(out, Anchor{
			Text: strings.TrimSpace(a.Text()),
			Href: strings.TrimSpace(href),
		})
	})
	return out
}

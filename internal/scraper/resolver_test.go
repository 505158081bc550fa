package scraper

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePage lets tests hand the resolver an exact anchor layout without
// going through an HTML parser.
type fakePage struct {
	anchors []Anchor
	footer  []Anchor
	noFoot  bool
}

func (p *fakePage) Anchors() []Anchor { return p.anchors }

func (p *fakePage) FooterAnchors() ([]Anchor, bool) {
	if p.noFoot {
		return nil, false
	}
	return p.footer, true
}

func newTestResolver() *Resolver {
	return NewResolver(zerolog.Nop())
}

func TestAbsoluteURL(t *testing.T) {
	base := "https://ex.gov.br"

	assert.Equal(t, "https://ex.gov.br/noticias", absoluteURL(base, "/noticias"))
	assert.Equal(t, "https://ex.gov.br/noticias", absoluteURL(base, "noticias"))
	assert.Equal(t, "https://other.gov.br/noticias", absoluteURL(base, "https://other.gov.br/noticias"))
	assert.Equal(t, "", absoluteURL(base, ""))
	assert.Equal(t, "", absoluteURL(base, "   "))
}

func TestAbsoluteURLIdempotent(t *testing.T) {
	base := "https://ex.gov.br"
	abs := absoluteURL(base, "/ultimas-noticias")
	assert.Equal(t, abs, absoluteURL(base, abs))
}

func TestMatchByTextExactTierOnly(t *testing.T) {
	anchors := []Anchor{
		{Text: "Notícias", Href: "/a"},
		{Text: "Principais Notícias", Href: "/b"},
		{Text: "Notícias Siscomex", Href: "/c"},
	}

	got := matchByText(anchors, "notícias")
	require.Len(t, got, 1, "exact match must suppress suffix/prefix tiers")
	assert.Equal(t, "/a", got[0].Href)
}

func TestMatchByTextSuffixTier(t *testing.T) {
	anchors := []Anchor{
		{Text: "Principais Notícias", Href: "/b"},
		{Text: "Notícias Siscomex", Href: "/c"},
	}

	got := matchByText(anchors, "notícias")
	require.Len(t, got, 1, "suffix tier must suppress prefix tier")
	assert.Equal(t, "/b", got[0].Href)
}

func TestMatchByTextPrefixTier(t *testing.T) {
	anchors := []Anchor{
		{Text: "Notícias Siscomex", Href: "/c"},
		{Text: "Contato", Href: "/d"},
	}

	got := matchByText(anchors, "notícias")
	require.Len(t, got, 1)
	assert.Equal(t, "/c", got[0].Href)
}

func TestMatchByTextTrimsAndLowercases(t *testing.T) {
	anchors := []Anchor{{Text: "  NOTÍCIAS  ", Href: "/a"}}

	got := matchByText(anchors, " Notícias ")
	require.Len(t, got, 1)
	assert.Equal(t, "/a", got[0].Href)
}

func TestMatchByTextDropsEmptyHref(t *testing.T) {
	anchors := []Anchor{
		{Text: "Notícias", Href: ""},
		{Text: "Principais Notícias", Href: "/b"},
	}

	// The exact match has no href and cannot be selected; the suffix tier
	// becomes the first non-empty one.
	got := matchByText(anchors, "notícias")
	require.Len(t, got, 1)
	assert.Equal(t, "/b", got[0].Href)
}

func TestSelectBestComunicacaoWins(t *testing.T) {
	r := newTestResolver()
	base := "https://ex.gov.br"

	candidates := []Anchor{
		{Text: "Ultimas Noticias", Href: "/noticias"},                               // 50+10+5
		{Text: "Notícias", Href: "/canais/comunicacao/sub/path/deep/very/noticias"}, // 100+5
	}

	best := r.selectBest(candidates, base)
	assert.Contains(t, best.Href, "comunicacao")
}

func TestSelectBestDeterministicTieBreak(t *testing.T) {
	r := newTestResolver()
	base := "https://ex.gov.br"

	candidates := []Anchor{
		{Text: "Notícias", Href: "/noticias"},
		{Text: "Notícias", Href: "/noticias-2"},
	}

	for i := 0; i < 10; i++ {
		best := r.selectBest(candidates, base)
		assert.Equal(t, "/noticias", best.Href, "ties must resolve to the first candidate")
	}
}

func TestScoreAnchor(t *testing.T) {
	base := "https://ex.gov.br"

	// short path + noticias in URL
	assert.Equal(t, 15, scoreAnchor(Anchor{Text: "Notícias", Href: "/noticias"}, base))
	// ultimas in text as well
	assert.Equal(t, 65, scoreAnchor(Anchor{Text: "ultimas noticias", Href: "/noticias"}, base))
	// nothing at all on a long path
	assert.Equal(t, 0, scoreAnchor(Anchor{Text: "Arquivo", Href: "/a/b/c/d/e/f/g"}, base))
}

func TestResolveFooterScenario(t *testing.T) {
	r := newTestResolver()
	page := &fakePage{
		footer: []Anchor{
			{Text: "Notícias", Href: "/noticias"},
			{Text: "Contato", Href: "/contato"},
		},
		anchors: []Anchor{
			{Text: "Notícias", Href: "/noticias"},
			{Text: "Contato", Href: "/contato"},
		},
	}

	assert.Equal(t, "https://ex.gov.br/noticias", r.Resolve(page, "https://ex.gov.br"))
}

func TestResolveFallsThroughToMoreNews(t *testing.T) {
	r := newTestResolver()
	page := &fakePage{
		noFoot:  true,
		anchors: []Anchor{{Text: "Mais Notícias", Href: "/mn"}},
	}

	// Footer skipped (absent), "últimas notícias" misses, "mais notícias" hits.
	assert.Equal(t, "https://ex.gov.br/mn", r.Resolve(page, "https://ex.gov.br"))
}

func TestResolveLatestNewsBeforeMoreNews(t *testing.T) {
	r := newTestResolver()
	page := &fakePage{
		noFoot: true,
		anchors: []Anchor{
			{Text: "Mais Notícias", Href: "/mn"},
			{Text: "Últimas Notícias", Href: "/un"},
		},
	}

	assert.Equal(t, "https://ex.gov.br/un", r.Resolve(page, "https://ex.gov.br"))
}

func TestResolveFooterScopedSearch(t *testing.T) {
	r := newTestResolver()
	page := &fakePage{
		footer: []Anchor{{Text: "Notícias", Href: "/footer-noticias"}},
		anchors: []Anchor{
			{Text: "Notícias", Href: "/body-noticias"},
			{Text: "Notícias", Href: "/footer-noticias"},
		},
	}

	// The body anchor also matches but the footer strategy must only see
	// anchors inside the footer container.
	assert.Equal(t, "https://ex.gov.br/footer-noticias", r.Resolve(page, "https://ex.gov.br"))
}

func TestResolveGenericFiltersPromotional(t *testing.T) {
	r := newTestResolver()
	page := &fakePage{
		noFoot: true,
		anchors: []Anchor{
			{Text: "Notícias do G20", Href: "/g20/noticias"},
			{Text: "Notícias Agro", Href: "/agro/noticias"},
		},
	}

	assert.Equal(t, "https://ex.gov.br/agro/noticias", r.Resolve(page, "https://ex.gov.br"))
}

func TestResolveGenericFallsBackWhenFilterEmptiesSet(t *testing.T) {
	r := newTestResolver()
	page := &fakePage{
		noFoot:  true,
		anchors: []Anchor{{Text: "Notícias do G20", Href: "/g20/noticias"}},
	}

	// Every candidate is promotional; the unfiltered set must be used
	// rather than giving up.
	assert.Equal(t, "https://ex.gov.br/g20/noticias", r.Resolve(page, "https://ex.gov.br"))
}

func TestResolveNothingFound(t *testing.T) {
	r := newTestResolver()
	page := &fakePage{
		footer:  []Anchor{{Text: "Contato", Href: "/contato"}},
		anchors: []Anchor{{Text: "Contato", Href: "/contato"}},
	}

	assert.Equal(t, "", r.Resolve(page, "https://ex.gov.br"))
}

func TestResolveFooterMultipleCandidatesScored(t *testing.T) {
	r := newTestResolver()
	page := &fakePage{
		footer: []Anchor{
			{Text: "Notícias", Href: "/servicos/arquivo/antigo/2019/acervo/noticias"},
			{Text: "Notícias", Href: "/canais/comunicacao/noticias"},
		},
	}

	assert.Equal(t, "https://ex.gov.br/canais/comunicacao/noticias",
		r.Resolve(page, "https://ex.gov.br"))
}

package updater

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportEmpty(t *testing.T) {
	got := Report(nil)
	assert.Equal(t, "✅ Nenhuma discrepância encontrada! Todos os URLs estão corretos.", got)
}

func TestReportListsDiscrepancies(t *testing.T) {
	got := Report([]Discrepancy{
		{
			Agency:       "mec",
			PortalURL:    "https://www.gov.br/mec/pt-br",
			ExtractedURL: "https://www.gov.br/mec/pt-br/noticias",
			CorrectURL:   "https://www.gov.br/mec/pt-br/assuntos/noticias",
		},
		{
			Agency:       "mj",
			PortalURL:    "https://www.gov.br/mj/pt-br",
			ExtractedURL: "https://www.gov.br/mj/pt-br/campanha/noticias",
			CorrectURL:   "https://www.gov.br/mj/pt-br/noticias",
		},
	})

	assert.Contains(t, got, "2 encontradas")
	assert.Contains(t, got, "1. **MEC**")
	assert.Contains(t, got, "2. **MJ**")
	assert.Contains(t, got, "❌ Extraído: https://www.gov.br/mec/pt-br/noticias")
	assert.Contains(t, got, "✅ Correto:  https://www.gov.br/mec/pt-br/assuntos/noticias")
}

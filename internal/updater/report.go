package updater

import (
	"fmt"
	"strings"
)

// Report renders the discrepancy list for humans. Output is in Portuguese,
// matching the audience of the roster files.
func Report(discrepancies []Discrepancy) string {
	if len(discrepancies) == 0 {
		return "✅ Nenhuma discrepância encontrada! Todos os URLs estão corretos."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 RELATÓRIO DE DISCREPÂNCIAS (%d encontradas)\n", len(discrepancies))
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n\n")

	for i, d := range discrepancies {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, strings.ToUpper(d.Agency))
		fmt.Fprintf(&b, "   Portal: %s\n", d.PortalURL)
		fmt.Fprintf(&b, "   ❌ Extraído: %s\n", d.ExtractedURL)
		fmt.Fprintf(&b, "   ✅ Correto:  %s\n", d.CorrectURL)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

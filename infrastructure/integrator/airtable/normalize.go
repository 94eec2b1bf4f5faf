package airtable

import "strings"

// Termos societários e qualificadores removidos do nome da marca antes do
// cruzamento.
var removeTerms = []string{
	"pvt ltd", "private limited", "pvt. ltd.", "private ltd",
	"llp", "opc", "limited", "ltd", "inc", "corp",
	"- current", "- new", "- old", "domestic", "export",
	"the ", "a ", "an ",
}

// NormalizeBrandName normaliza um nome de marca para o cruzamento: minúsculas,
// sem termos societários, espaços colapsados e apenas alfanuméricos.
func NormalizeBrandName(name string) string {
	if name == "" {
		return ""
	}

	name = strings.ToLower(strings.TrimSpace(name))

	for _, term := range removeTerms {
		name = strings.ReplaceAll(name, term, "")
	}

	name = strings.Join(strings.Fields(name), " ")

	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

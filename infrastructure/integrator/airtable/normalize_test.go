package airtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBrandName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "vazio", input: "", want: ""},
		{name: "minúsculas e espaços", input: "  Acme Corp  ", want: "acme"},
		{name: "termo societário removido", input: "Acme Pvt Ltd", want: "acme"},
		{name: "private limited removido", input: "Sunrise Private Limited", want: "sunrise"},
		{name: "qualificador de conta removido", input: "Acme - Current", want: "acme"},
		{name: "artigo inicial removido", input: "The Paper House", want: "paper house"},
		{name: "pontuação descartada", input: "Brand.Name & Co!", want: "brandname  co"},
		{name: "espaços internos colapsados", input: "Big   Bazaar", want: "big bazaar"},
		{name: "somente termos removidos resulta vazio", input: "Pvt Ltd", want: ""},
		{name: "dígitos preservados", input: "Store 24", want: "store 24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBrandName(tt.input))
		})
	}
}

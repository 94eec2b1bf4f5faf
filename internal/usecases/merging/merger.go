// Package merging contém o merge de deduplicação: dado o lote recém-buscado
// e as chaves já presentes na planilha, calcula o subconjunto realmente novo.
package merging

import (
	"github.com/AI-Growify/meta-activity-tracker/internal/domain"
)

// MergeResult é o resultado do merge de deduplicação.
type MergeResult struct {
	// ToAppend são as linhas novas, na ordem relativa original do lote.
	ToAppend []domain.LoggedRow
	// Duplicates conta as linhas descartadas por chave já existente,
	// incluindo duplicatas dentro do próprio lote.
	Duplicates int
	// Skipped conta as linhas malformadas (sem os campos da chave composta).
	Skipped int
}

// Merge é uma função pura: não modifica existingKeys nem o lote de entrada.
// A chave composta é determinística (timestamp normalizado em UTC), então
// rodar o merge de novo sobre uma janela sobreposta nunca produz duplicata.
func Merge(rows []domain.LoggedRow, existingKeys map[string]struct{}) MergeResult {
	result := MergeResult{
		ToAppend: make([]domain.LoggedRow, 0, len(rows)),
	}

	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if !row.Event.Valid() {
			result.Skipped++
			continue
		}

		key := row.DedupeKey()

		if _, exists := existingKeys[key]; exists {
			result.Duplicates++
			continue
		}
		if _, inBatch := seen[key]; inBatch {
			result.Duplicates++
			continue
		}

		seen[key] = struct{}{}
		result.ToAppend = append(result.ToAppend, row)
	}

	return result
}

// Keys retorna o conjunto de chaves compostas das linhas.
func Keys(rows []domain.LoggedRow) map[string]struct{} {
	keys := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		keys[row.DedupeKey()] = struct{}{}
	}
	return keys
}

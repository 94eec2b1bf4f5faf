package merging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AI-Growify/meta-activity-tracker/internal/domain"
)

func row(accountID string, timestamp time.Time, activityType string) domain.LoggedRow {
	return domain.LoggedRow{
		Event: domain.ActivityEvent{
			BrandExternalID: accountID,
			AccountID:       accountID,
			Timestamp:       timestamp,
			ActivityType:    activityType,
		},
	}
}

func TestMerge(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		rows           []domain.LoggedRow
		existingKeys   map[string]struct{}
		wantKeys       []string
		wantDuplicates int
		wantSkipped    int
	}{
		{
			name: "chave já existente na planilha é descartada",
			rows: []domain.LoggedRow{
				row("B1", base, "click"),
				row("B1", base, "impression"),
			},
			existingKeys: map[string]struct{}{
				"B1|2024-01-01T00:00:00Z|click": {},
			},
			wantKeys:       []string{"B1|2024-01-01T00:00:00Z|impression"},
			wantDuplicates: 1,
		},
		{
			name: "duplicata dentro do próprio lote mantém a primeira ocorrência",
			rows: []domain.LoggedRow{
				row("B1", base, "update"),
				row("B1", base, "update"),
				row("B2", base, "update"),
			},
			existingKeys: map[string]struct{}{},
			wantKeys: []string{
				"B1|2024-01-01T00:00:00Z|update",
				"B2|2024-01-01T00:00:00Z|update",
			},
			wantDuplicates: 1,
		},
		{
			name: "linha malformada é pulada sem afetar as demais",
			rows: []domain.LoggedRow{
				row("", base, "update"),
				row("B1", time.Time{}, "update"),
				row("B1", base, ""),
				row("B1", base, "update"),
			},
			existingKeys: map[string]struct{}{},
			wantKeys:     []string{"B1|2024-01-01T00:00:00Z|update"},
			wantSkipped:  3,
		},
		{
			name:         "lote vazio produz resultado vazio",
			rows:         nil,
			existingKeys: map[string]struct{}{},
			wantKeys:     []string{},
		},
		{
			name: "timestamps iguais em fusos diferentes colidem na mesma chave",
			rows: []domain.LoggedRow{
				row("B1", base, "update"),
				row("B1", base.In(time.FixedZone("IST", 5*3600+1800)), "update"),
			},
			existingKeys:   map[string]struct{}{},
			wantKeys:       []string{"B1|2024-01-01T00:00:00Z|update"},
			wantDuplicates: 1,
		},
		{
			name: "ordem relativa do lote é preservada",
			rows: []domain.LoggedRow{
				row("B3", base.Add(2*time.Hour), "update"),
				row("B1", base, "update"),
				row("B2", base.Add(time.Hour), "update"),
			},
			existingKeys: map[string]struct{}{},
			wantKeys: []string{
				"B3|2024-01-01T02:00:00Z|update",
				"B1|2024-01-01T00:00:00Z|update",
				"B2|2024-01-01T01:00:00Z|update",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Merge(tt.rows, tt.existingKeys)

			gotKeys := make([]string, 0, len(result.ToAppend))
			for _, r := range result.ToAppend {
				gotKeys = append(gotKeys, r.DedupeKey())
			}

			assert.Equal(t, tt.wantKeys, gotKeys)
			assert.Equal(t, tt.wantDuplicates, result.Duplicates)
			assert.Equal(t, tt.wantSkipped, result.Skipped)
		})
	}
}

// Rodar o merge de novo com as chaves já gravadas não pode produzir nada novo.
func TestMerge_Idempotence(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := []domain.LoggedRow{
		row("B1", base, "create"),
		row("B2", base.Add(time.Minute), "update"),
		row("B3", base.Add(2*time.Minute), "delete"),
	}

	first := Merge(rows, map[string]struct{}{})
	assert.Len(t, first.ToAppend, 3)

	existing := Keys(first.ToAppend)
	second := Merge(rows, existing)

	assert.Empty(t, second.ToAppend)
	assert.Equal(t, 3, second.Duplicates)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := []domain.LoggedRow{row("B1", base, "create")}
	existing := map[string]struct{}{"B9|2024-01-01T00:00:00Z|x": {}}

	Merge(rows, existing)

	assert.Len(t, existing, 1)
	assert.Equal(t, "B1", rows[0].Event.BrandExternalID)
}

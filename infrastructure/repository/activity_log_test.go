package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/AI-Growify/meta-activity-tracker/infrastructure/repository/mocks"
	"github.com/AI-Growify/meta-activity-tracker/internal/domain"
)

func sampleRow(timestamp time.Time) domain.LoggedRow {
	return domain.LoggedRow{
		Event: domain.ActivityEvent{
			Brand:           "Acme Corp",
			BrandExternalID: "act_123",
			AccountID:       "act_123",
			AccountName:     "Acme Ads",
			ActorName:       "Maria Silva",
			ActivityType:    "Campaign updated",
			RawEventType:    "update_campaign_run_status",
			Timestamp:       timestamp,
			HierarchyLevel:  domain.HierarchyLevelCampaign,
			Campaign:        domain.NewCampaignInfo(),
			AdSet:           domain.NewAdSetInfo(),
			Ad:              domain.NewAdInfo(),
			ChangedFrom:     "PAUSED",
			ChangedTo:       "ACTIVE",
			ObjectName:      "Summer Sale",
			ObjectID:        "c-1",
			ObjectType:      "campaign_group",
		},
		Match: domain.BrandMatch{
			MatchedBrand: "Acme Pvt Ltd",
			FBManager:    "Rahul",
			BrandManager: "Priya",
			CurrentTeam:  "Alpha",
		},
		FetchDate: timestamp.Add(time.Hour),
	}
}

// A chave recomputada a partir da linha serializada tem que ser idêntica à
// chave do evento original, mesmo quando o timestamp veio em outro fuso.
func TestKeyRoundTrip(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	timestamps := []time.Time{
		time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 15, 30, 0, 0, ist),
	}

	for _, timestamp := range timestamps {
		row := sampleRow(timestamp)
		values := rowValues(row)

		assert.Len(t, values, len(activityLogHeader))

		key, ok := keyFromRow(values)
		assert.True(t, ok)
		assert.Equal(t, row.DedupeKey(), key)
	}
}

func TestKeyFromRow(t *testing.T) {
	tests := []struct {
		name string
		row  []interface{}
	}{
		{name: "linha curta", row: []interface{}{"a", "b"}},
		{name: "linha vazia", row: nil},
		{
			name: "timestamp ilegível",
			row: func() []interface{} {
				values := rowValues(sampleRow(time.Now()))
				values[colTimestamp] = "yesterday"
				return values
			}(),
		},
		{
			name: "conta ausente",
			row: func() []interface{} {
				values := rowValues(sampleRow(time.Now()))
				values[colAccountID] = ""
				return values
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := keyFromRow(tt.row)
			assert.False(t, ok)
		})
	}
}

func TestActivityLogRepository_ExistingKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputa as chaves das linhas persistidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockStore(ctrl)
		repo := NewActivityLogRepository(store)

		persisted := rowValues(sampleRow(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)))

		store.EXPECT().EnsureSheet(ctx, ActivityLogSheet, activityLogHeader).Return(nil)
		store.EXPECT().ReadDataRows(ctx, ActivityLogSheet).Return([][]interface{}{
			persisted,
			{"linha", "ilegível"},
		}, nil)

		keys, err := repo.ExistingKeys(ctx)

		assert.NoError(t, err)
		assert.Len(t, keys, 1)
		assert.Contains(t, keys, "act_123|2024-06-01T10:00:00Z|Campaign updated")
	})

	t.Run("erro de leitura é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockStore(ctrl)
		repo := NewActivityLogRepository(store)

		store.EXPECT().EnsureSheet(ctx, ActivityLogSheet, activityLogHeader).Return(nil)
		store.EXPECT().ReadDataRows(ctx, ActivityLogSheet).Return(nil, errors.New("quota exceeded"))

		keys, err := repo.ExistingKeys(ctx)

		assert.Error(t, err)
		assert.Nil(t, keys)
	})
}

func TestActivityLogRepository_LatestTimestamp(t *testing.T) {
	ctx := context.Background()

	t.Run("retorna o timestamp mais recente, ignorando células ilegíveis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockStore(ctrl)
		repo := NewActivityLogRepository(store)

		newest := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)

		store.EXPECT().EnsureSheet(ctx, ActivityLogSheet, activityLogHeader).Return(nil)
		store.EXPECT().ReadDataRows(ctx, ActivityLogSheet).Return([][]interface{}{
			rowValues(sampleRow(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))),
			rowValues(sampleRow(newest)),
			{"linha", "curta"},
			func() []interface{} {
				values := rowValues(sampleRow(time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)))
				values[colTimestamp] = "yesterday"
				return values
			}(),
		}, nil)

		latest, err := repo.LatestTimestamp(ctx)

		assert.NoError(t, err)
		assert.True(t, latest.Equal(newest))
	})

	t.Run("planilha vazia retorna zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockStore(ctrl)
		repo := NewActivityLogRepository(store)

		store.EXPECT().EnsureSheet(ctx, ActivityLogSheet, activityLogHeader).Return(nil)
		store.EXPECT().ReadDataRows(ctx, ActivityLogSheet).Return(nil, nil)

		latest, err := repo.LatestTimestamp(ctx)

		assert.NoError(t, err)
		assert.True(t, latest.IsZero())
	})

	t.Run("erro de leitura é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockStore(ctrl)
		repo := NewActivityLogRepository(store)

		store.EXPECT().EnsureSheet(ctx, ActivityLogSheet, activityLogHeader).Return(nil)
		store.EXPECT().ReadDataRows(ctx, ActivityLogSheet).Return(nil, errors.New("quota exceeded"))

		_, err := repo.LatestTimestamp(ctx)

		assert.Error(t, err)
	})
}

func TestActivityLogRepository_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("lote vazio não toca na planilha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockStore(ctrl)
		repo := NewActivityLogRepository(store)

		written, err := repo.Append(ctx, nil)

		assert.NoError(t, err)
		assert.Zero(t, written)
	})

	t.Run("grava uma linha por evento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockStore(ctrl)
		repo := NewActivityLogRepository(store)

		rows := []domain.LoggedRow{
			sampleRow(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
			sampleRow(time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC)),
		}

		store.EXPECT().EnsureSheet(ctx, ActivityLogSheet, activityLogHeader).Return(nil)
		store.EXPECT().
			AppendRows(ctx, ActivityLogSheet, gomock.Len(2)).
			Return(nil)

		written, err := repo.Append(ctx, rows)

		assert.NoError(t, err)
		assert.Equal(t, 2, written)
	})
}

func TestRunLogRepository_AppendRun(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	repo := NewRunLogRepository(store)

	summary := domain.RunSummary{
		Timestamp: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		RunNumber: "42",
		Action:    "✅ Tracker Completed",
		Details:   "3 new activities",
		Count:     3,
		TimeRange: "2024-06-01T08:00:00Z to 2024-06-01T09:30:00Z",
		Status:    domain.RunStatusSuccess,
	}

	store.EXPECT().EnsureSheet(ctx, RunLogSheet, runLogHeader).Return(nil)
	store.EXPECT().
		AppendRows(ctx, RunLogSheet, [][]interface{}{{
			"2024-06-01T10:00:00Z",
			"42",
			"✅ Tracker Completed",
			"3 new activities",
			"3",
			"2024-06-01T08:00:00Z to 2024-06-01T09:30:00Z",
			domain.RunStatusSuccess,
		}}).
		Return(nil)

	err := repo.AppendRun(ctx, summary)

	assert.NoError(t, err)
}

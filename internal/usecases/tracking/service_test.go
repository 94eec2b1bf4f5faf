package tracking

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/airtable"
	repomocks "github.com/AI-Growify/meta-activity-tracker/infrastructure/repository/mocks"
	"github.com/AI-Growify/meta-activity-tracker/internal/config"
	"github.com/AI-Growify/meta-activity-tracker/internal/domain"
	"github.com/AI-Growify/meta-activity-tracker/internal/usecases/tracking/mocks"
	"github.com/AI-Growify/meta-activity-tracker/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

type pipelineFixture struct {
	service      *Service
	brandLoader  *mocks.MockBrandLoader
	fetcher      *mocks.MockActivityFetcher
	activityRepo *repomocks.MockActivityLogRepository
	runLogRepo   *repomocks.MockRunLogRepository
	runLog       *[]domain.RunSummary
}

func newPipelineFixture(t *testing.T) pipelineFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	brandLoader := mocks.NewMockBrandLoader(ctrl)
	fetcher := mocks.NewMockActivityFetcher(ctrl)
	activityRepo := repomocks.NewMockActivityLogRepository(ctrl)
	runLogRepo := repomocks.NewMockRunLogRepository(ctrl)

	// Captura todas as linhas de run-log para inspecionar no final
	runLog := &[]domain.RunSummary{}
	runLogRepo.EXPECT().
		AppendRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, summary domain.RunSummary) error {
			*runLog = append(*runLog, summary)
			return nil
		}).
		AnyTimes()

	service := NewService(&config.Config{}, brandLoader, fetcher, activityRepo, runLogRepo)

	return pipelineFixture{
		service:      service,
		brandLoader:  brandLoader,
		fetcher:      fetcher,
		activityRepo: activityRepo,
		runLogRepo:   runLogRepo,
		runLog:       runLog,
	}
}

func event(accountID string, timestamp time.Time, activityType, brand string) domain.ActivityEvent {
	return domain.ActivityEvent{
		Brand:           brand,
		BrandExternalID: accountID,
		AccountID:       accountID,
		Timestamp:       timestamp,
		ActivityType:    activityType,
	}
}

func TestServiceRun(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	directory := airtable.NewBrandDirectory([]domain.BrandRecord{
		{BrandName: "Acme Corp", FBManager: "Rahul", CurrentTeam: "Alpha"},
	})

	t.Run("grava apenas os eventos novos e registra o resumo", func(t *testing.T) {
		f := newPipelineFixture(t)

		events := []domain.ActivityEvent{
			event("act_1", base.Add(time.Hour), "Campaign updated", "Acme Corp"),
			event("act_1", base, "Campaign created", "Acme Corp"),
		}

		f.activityRepo.EXPECT().LatestTimestamp(gomock.Any()).Return(time.Time{}, nil)
		f.brandLoader.EXPECT().LoadBrandDirectory(gomock.Any()).Return(directory, nil)
		f.fetcher.EXPECT().FetchActivities(gomock.Any(),12).Return(events, nil)
		f.activityRepo.EXPECT().ExistingKeys(gomock.Any()).Return(map[string]struct{}{
			"act_1|2024-06-01T10:00:00Z|Campaign created": {},
		}, nil)
		f.activityRepo.EXPECT().
			Append(gomock.Any(),gomock.Len(1)).
			DoAndReturn(func(_ context.Context, rows []domain.LoggedRow) (int, error) {
				assert.Equal(t, "Campaign updated", rows[0].Event.ActivityType)
				assert.Equal(t, "Acme Corp", rows[0].Match.MatchedBrand)
				assert.Equal(t, "Rahul", rows[0].Match.FBManager)
				return len(rows), nil
			})

		report, err := f.service.Run(ctx, 12)

		assert.NoError(t, err)
		assert.Equal(t, 2, report.Fetched)
		assert.Equal(t, 1, report.Written)
		assert.Equal(t, 1, report.Duplicates)
		assert.Zero(t, report.Skipped)

		log := *f.runLog
		assert.Len(t, log, 3)
		assert.Equal(t, "📋 First Run", log[0].Action)
		assert.Equal(t, domain.RunStatusInProgress, log[0].Status)
		assert.Equal(t, "🚀 Tracker Started", log[1].Action)
		assert.Equal(t, domain.RunStatusInProgress, log[1].Status)
		assert.Equal(t, "✅ Tracker Completed", log[2].Action)
		assert.Equal(t, domain.RunStatusSuccess, log[2].Status)
		assert.Equal(t, 1, log[2].Count)
	})

	t.Run("janela sem novidades ainda registra a execução", func(t *testing.T) {
		f := newPipelineFixture(t)

		f.activityRepo.EXPECT().LatestTimestamp(gomock.Any()).Return(time.Time{}, nil)
		f.brandLoader.EXPECT().LoadBrandDirectory(gomock.Any()).Return(directory, nil)
		f.fetcher.EXPECT().FetchActivities(gomock.Any(),12).Return([]domain.ActivityEvent{}, nil)
		f.activityRepo.EXPECT().ExistingKeys(gomock.Any()).Return(map[string]struct{}{}, nil)
		f.activityRepo.EXPECT().Append(gomock.Any(),gomock.Len(0)).Return(0, nil)

		report, err := f.service.Run(ctx, 12)

		assert.NoError(t, err)
		assert.Zero(t, report.Written)
		assert.Equal(t, "N/A", report.TimeRange)

		log := *f.runLog
		assert.Len(t, log, 3)
		assert.Equal(t, "ℹ️ No New Activities", log[2].Action)
		assert.Equal(t, domain.RunStatusSuccess, log[2].Status)
		assert.Zero(t, log[2].Count)
	})

	t.Run("falha no Airtable marca a execução como falha", func(t *testing.T) {
		f := newPipelineFixture(t)

		f.activityRepo.EXPECT().LatestTimestamp(gomock.Any()).Return(time.Time{}, nil)
		f.brandLoader.EXPECT().
			LoadBrandDirectory(gomock.Any()).
			Return(nil, errors.New("rate limited"))

		report, err := f.service.Run(ctx, 12)

		assert.Nil(t, report)

		var fetchErr *domain.UpstreamFetchError
		assert.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "airtable", fetchErr.Source)

		log := *f.runLog
		assert.Len(t, log, 3)
		assert.Equal(t, "❌ Tracker Failed", log[2].Action)
		assert.Equal(t, domain.RunStatusFailed, log[2].Status)
	})

	t.Run("falha no Meta marca a execução como falha", func(t *testing.T) {
		f := newPipelineFixture(t)

		f.activityRepo.EXPECT().LatestTimestamp(gomock.Any()).Return(time.Time{}, nil)
		f.brandLoader.EXPECT().LoadBrandDirectory(gomock.Any()).Return(directory, nil)
		f.fetcher.EXPECT().
			FetchActivities(gomock.Any(),12).
			Return(nil, errors.New("token expirado"))

		_, err := f.service.Run(ctx, 12)

		var fetchErr *domain.UpstreamFetchError
		assert.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "meta", fetchErr.Source)
	})

	t.Run("falha na gravação vira WriteError", func(t *testing.T) {
		f := newPipelineFixture(t)

		events := []domain.ActivityEvent{
			event("act_1", base, "Campaign updated", "Acme Corp"),
		}

		f.activityRepo.EXPECT().LatestTimestamp(gomock.Any()).Return(time.Time{}, nil)
		f.brandLoader.EXPECT().LoadBrandDirectory(gomock.Any()).Return(directory, nil)
		f.fetcher.EXPECT().FetchActivities(gomock.Any(),12).Return(events, nil)
		f.activityRepo.EXPECT().ExistingKeys(gomock.Any()).Return(map[string]struct{}{}, nil)
		f.activityRepo.EXPECT().
			Append(gomock.Any(),gomock.Any()).
			Return(0, errors.New("quota exceeded"))

		_, err := f.service.Run(ctx, 12)

		var writeErr *domain.WriteError
		assert.ErrorAs(t, err, &writeErr)
		assert.Equal(t, "Meta_Activities_Log", writeErr.Sheet)

		log := *f.runLog
		assert.Equal(t, domain.RunStatusFailed, log[len(log)-1].Status)
	})

	t.Run("marca desconhecida não descarta o evento", func(t *testing.T) {
		f := newPipelineFixture(t)

		events := []domain.ActivityEvent{
			event("act_9", base, "Campaign updated", "Totally Unknown Brand"),
		}

		f.activityRepo.EXPECT().LatestTimestamp(gomock.Any()).Return(time.Time{}, nil)
		f.brandLoader.EXPECT().LoadBrandDirectory(gomock.Any()).Return(directory, nil)
		f.fetcher.EXPECT().FetchActivities(gomock.Any(),12).Return(events, nil)
		f.activityRepo.EXPECT().ExistingKeys(gomock.Any()).Return(map[string]struct{}{}, nil)
		f.activityRepo.EXPECT().
			Append(gomock.Any(),gomock.Len(1)).
			DoAndReturn(func(_ context.Context, rows []domain.LoggedRow) (int, error) {
				assert.Equal(t, domain.UnknownBrandMatch, rows[0].Match)
				return len(rows), nil
			})

		report, err := f.service.Run(ctx, 12)

		assert.NoError(t, err)
		assert.Equal(t, 1, report.Written)
	})

	t.Run("janela ampliada pela última entrada da planilha", func(t *testing.T) {
		f := newPipelineFixture(t)

		// Última entrada há 24h30m: gap 24.5h → busca 24+2 = 26h
		latest := time.Now().Add(-24*time.Hour - 30*time.Minute)

		f.activityRepo.EXPECT().LatestTimestamp(gomock.Any()).Return(latest, nil)
		f.brandLoader.EXPECT().LoadBrandDirectory(gomock.Any()).Return(directory, nil)
		f.fetcher.EXPECT().FetchActivities(gomock.Any(),26).Return([]domain.ActivityEvent{}, nil)
		f.activityRepo.EXPECT().ExistingKeys(gomock.Any()).Return(map[string]struct{}{}, nil)
		f.activityRepo.EXPECT().Append(gomock.Any(),gomock.Len(0)).Return(0, nil)

		_, err := f.service.Run(ctx, 12)

		assert.NoError(t, err)

		log := *f.runLog
		assert.Len(t, log, 3)
		assert.Equal(t, "🔍 Smart Fetch Calculated", log[0].Action)
		assert.Equal(t, domain.RunStatusInProgress, log[0].Status)
		assert.Contains(t, log[0].Details, "Last: "+latest.UTC().Format("2006-01-02 15:04:05"))
		assert.Contains(t, log[0].Details, "Fetching: 26h")
		assert.Equal(t, "Fetching last 26 hours", log[1].Details)
	})

	t.Run("erro ao ler o último timestamp cai na janela padrão", func(t *testing.T) {
		f := newPipelineFixture(t)

		f.activityRepo.EXPECT().
			LatestTimestamp(gomock.Any()).
			Return(time.Time{}, errors.New("quota exceeded"))
		f.brandLoader.EXPECT().LoadBrandDirectory(gomock.Any()).Return(directory, nil)
		f.fetcher.EXPECT().FetchActivities(gomock.Any(),12).Return([]domain.ActivityEvent{}, nil)
		f.activityRepo.EXPECT().ExistingKeys(gomock.Any()).Return(map[string]struct{}{}, nil)
		f.activityRepo.EXPECT().Append(gomock.Any(),gomock.Len(0)).Return(0, nil)

		_, err := f.service.Run(ctx, 12)

		assert.NoError(t, err)

		log := *f.runLog
		assert.Equal(t, "📋 First Run", log[0].Action)
		assert.Equal(t, "Fetching last 12 hours", log[0].Details)
	})
}

func TestTimeRange(t *testing.T) {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("sem linhas", func(t *testing.T) {
		assert.Equal(t, "N/A", timeRange(nil))
	})

	t.Run("do mais antigo ao mais recente independente da ordem", func(t *testing.T) {
		rows := []domain.LoggedRow{
			{Event: domain.ActivityEvent{Timestamp: base.Add(2 * time.Hour)}},
			{Event: domain.ActivityEvent{Timestamp: base}},
			{Event: domain.ActivityEvent{Timestamp: base.Add(time.Hour)}},
		}

		assert.Equal(t, "2024-06-01T10:00:00Z to 2024-06-01T12:00:00Z", timeRange(rows))
	})
}

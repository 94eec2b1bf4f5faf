package tracking

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/airtable"
	"github.com/AI-Growify/meta-activity-tracker/infrastructure/repository"
	"github.com/AI-Growify/meta-activity-tracker/internal/config"
	"github.com/AI-Growify/meta-activity-tracker/internal/domain"
	"github.com/AI-Growify/meta-activity-tracker/internal/usecases/merging"
	"github.com/AI-Growify/meta-activity-tracker/pkg/log"
	"github.com/AI-Growify/meta-activity-tracker/pkg/utils"
	"github.com/sirupsen/logrus"
)

// RunReport resume uma execução do pipeline.
type RunReport struct {
	Fetched    int
	Written    int
	Duplicates int
	Skipped    int
	TimeRange  string
}

// Service orquestra o pipeline sequencial de uma execução:
// carregar marcas → buscar atividades → cruzar → deduplicar → gravar → run-log.
type Service struct {
	cfg          *config.Config
	brandLoader  BrandLoader
	fetcher      ActivityFetcher
	activityRepo repository.ActivityLogRepository
	runLogRepo   repository.RunLogRepository
}

func NewService(
	cfg *config.Config,
	brandLoader BrandLoader,
	fetcher ActivityFetcher,
	activityRepo repository.ActivityLogRepository,
	runLogRepo repository.RunLogRepository,
) *Service {
	return &Service{
		cfg:          cfg,
		brandLoader:  brandLoader,
		fetcher:      fetcher,
		activityRepo: activityRepo,
		runLogRepo:   runLogRepo,
	}
}

// Run executa uma passada completa do pipeline. Mesmo sem atividades novas a
// linha de resumo é gravada com contagem zero.
func (s *Service) Run(ctx context.Context, lookbackHours int) (*RunReport, error) {
	startedAt := time.Now()
	runNumber := runNumber()

	// Propaga um id de execução para correlacionar os logs desta passada
	ctx, _ = log.WithRunID(ctx)

	lookbackHours = s.effectiveWindow(ctx, runNumber, lookbackHours)

	log.ForContext(ctx).WithFields(log.Fields{
		"run_number":     runNumber,
		"lookback_hours": lookbackHours,
	}).Info("Iniciando execução do tracker")

	s.appendRunLog(ctx, domain.RunSummary{
		Timestamp: startedAt,
		RunNumber: runNumber,
		Action:    "🚀 Tracker Started",
		Details:   fmt.Sprintf("Fetching last %d hours", lookbackHours),
		Status:    domain.RunStatusInProgress,
	})

	directory, err := s.brandLoader.LoadBrandDirectory(ctx)
	if err != nil {
		fetchErr := &domain.UpstreamFetchError{Source: "airtable", Err: err}
		s.markRunFailed(ctx, runNumber, fetchErr)
		return nil, fetchErr
	}

	events, err := s.fetcher.FetchActivities(ctx, lookbackHours)
	if err != nil {
		fetchErr := &domain.UpstreamFetchError{Source: "meta", Err: err}
		s.markRunFailed(ctx, runNumber, fetchErr)
		return nil, fetchErr
	}

	rows := s.mapBrands(events, directory)

	existingKeys, err := s.activityRepo.ExistingKeys(ctx)
	if err != nil {
		fetchErr := &domain.UpstreamFetchError{Source: "sheets", Err: err}
		s.markRunFailed(ctx, runNumber, fetchErr)
		return nil, fetchErr
	}

	result := merging.Merge(rows, existingKeys)

	log.ForContext(ctx).WithFields(log.Fields{
		"fetched":    len(events),
		"existing":   len(existingKeys),
		"new":        len(result.ToAppend),
		"duplicates": result.Duplicates,
		"skipped":    result.Skipped,
	}).Info("Deduplicação concluída")

	written, err := s.activityRepo.Append(ctx, result.ToAppend)
	if err != nil {
		writeErr := &domain.WriteError{Sheet: repository.ActivityLogSheet, Err: err}
		s.markRunFailed(ctx, runNumber, writeErr)
		return nil, writeErr
	}

	timeRange := timeRange(result.ToAppend)

	report := &RunReport{
		Fetched:    len(events),
		Written:    written,
		Duplicates: result.Duplicates,
		Skipped:    result.Skipped,
		TimeRange:  timeRange,
	}

	action := "✅ Tracker Completed"
	details := fmt.Sprintf("%d new activities in %s. Range: %s", written, time.Since(startedAt).Round(time.Second), timeRange)
	if written == 0 {
		action = "ℹ️ No New Activities"
		details = fmt.Sprintf("No new activities in last %dh", lookbackHours)
	}

	s.appendRunLog(ctx, domain.RunSummary{
		Timestamp: time.Now(),
		RunNumber: runNumber,
		Action:    action,
		Details:   details,
		Count:     written,
		TimeRange: timeRange,
		Status:    domain.RunStatusSuccess,
	})

	log.ForContext(ctx).WithFields(log.Fields{
		"written":    written,
		"duplicates": report.Duplicates,
		"skipped":    report.Skipped,
		"duration":   time.Since(startedAt).String(),
	}).Info("Execução do tracker concluída")

	return report, nil
}

// effectiveWindow ajusta a janela de busca a partir do timestamp mais recente
// já gravado na planilha: horas desde a última entrada mais 2h de folga, para
// cobrir eventual atraso entre execuções. Planilha vazia ou ilegível cai na
// janela padrão.
func (s *Service) effectiveWindow(ctx context.Context, runNumber string, lookbackHours int) int {
	latest, err := s.activityRepo.LatestTimestamp(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível ler o último timestamp da planilha, usando a janela padrão")
		latest = time.Time{}
	}

	if latest.IsZero() {
		s.appendRunLog(ctx, domain.RunSummary{
			Timestamp: time.Now(),
			RunNumber: runNumber,
			Action:    "📋 First Run",
			Details:   fmt.Sprintf("Fetching last %d hours", lookbackHours),
			Status:    domain.RunStatusInProgress,
		})
		return lookbackHours
	}

	gapHours := time.Since(latest).Hours()
	adjusted := int(gapHours) + 2

	log.ForContext(ctx).WithFields(log.Fields{
		"last_entry":     latest.UTC().Format(time.RFC3339),
		"gap_hours":      fmt.Sprintf("%.1f", gapHours),
		"adjusted_hours": adjusted,
	}).Info("Janela de busca ajustada pela última entrada da planilha")

	s.appendRunLog(ctx, domain.RunSummary{
		Timestamp: time.Now(),
		RunNumber: runNumber,
		Action:    "🔍 Smart Fetch Calculated",
		Details: fmt.Sprintf("Last: %s, Gap: %.1fh, Fetching: %dh",
			latest.UTC().Format("2006-01-02 15:04:05"), gapHours, adjusted),
		Status: domain.RunStatusInProgress,
	})

	return adjusted
}

// mapBrands cruza cada evento com o diretório de marcas e monta as linhas a
// persistir. Marca sem correspondência recebe Unknown, nunca descarta o evento.
func (s *Service) mapBrands(events []domain.ActivityEvent, directory *airtable.BrandDirectory) []domain.LoggedRow {
	fetchDate := time.Now()

	rows := make([]domain.LoggedRow, 0, len(events))
	unmapped := 0
	for _, event := range events {
		match := directory.Match(event.Brand)
		if match.MatchedBrand == "" {
			unmapped++
		}

		rows = append(rows, domain.LoggedRow{
			Event:     event,
			Match:     match,
			FetchDate: fetchDate,
		})
	}

	if unmapped > 0 {
		logrus.WithFields(logrus.Fields{
			"unmapped": unmapped,
			"total":    len(rows),
		}).Warn("Atividades sem marca correspondente no diretório")
	}

	return rows
}

// markRunFailed grava a linha de falha no run-log, sem falhar de novo se o
// run-log também estiver indisponível.
func (s *Service) markRunFailed(ctx context.Context, runNumber string, runErr error) {
	s.appendRunLog(ctx, domain.RunSummary{
		Timestamp: time.Now(),
		RunNumber: runNumber,
		Action:    "❌ Tracker Failed",
		Details:   runErr.Error(),
		Status:    domain.RunStatusFailed,
	})
}

// appendRunLog grava no run-log em modo melhor-esforço: falha vira warning.
func (s *Service) appendRunLog(ctx context.Context, summary domain.RunSummary) {
	if err := s.runLogRepo.AppendRun(ctx, summary); err != nil {
		logrus.WithError(err).Warn("Não foi possível gravar no run-log")
	}
}

// runNumber identifica a execução: o número do run do GitHub Actions quando
// agendada, ou um id curto para execuções manuais.
func runNumber() string {
	if number := os.Getenv("GITHUB_RUN_NUMBER"); number != "" {
		return number
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "manual"
	}
	return "manual-" + id
}

// timeRange formata o intervalo de timestamps das linhas novas.
func timeRange(rows []domain.LoggedRow) string {
	if len(rows) == 0 {
		return "N/A"
	}

	oldest := rows[0].Event.Timestamp
	newest := rows[0].Event.Timestamp
	for _, row := range rows[1:] {
		if row.Event.Timestamp.Before(oldest) {
			oldest = row.Event.Timestamp
		}
		if row.Event.Timestamp.After(newest) {
			newest = row.Event.Timestamp
		}
	}

	return fmt.Sprintf("%s to %s",
		oldest.UTC().Format(time.RFC3339),
		newest.UTC().Format(time.RFC3339),
	)
}

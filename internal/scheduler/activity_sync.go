package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/AI-Growify/meta-activity-tracker/internal/config"
	"github.com/AI-Growify/meta-activity-tracker/internal/usecases/tracking"
)

// ActivitySyncConfig representa a configuração do agendador do modo daemon.
type ActivitySyncConfig struct {
	CronSchedule  string
	LookbackHours int
}

// Tracker executa uma passada do pipeline de atividades. Implementado por
// tracking.Service.
type Tracker interface {
	Run(ctx context.Context, lookbackHours int) (*tracking.RunReport, error)
}

// ActivitySyncService gerencia o agendamento das execuções do tracker quando
// rodando em modo daemon, com guarda contra execuções sobrepostas no mesmo
// processo.
type ActivitySyncService struct {
	scheduler           *gocron.Scheduler
	config              ActivitySyncConfig
	tracker             Tracker
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewActivitySyncService cria uma nova instância do agendador.
func NewActivitySyncService(tracker Tracker, appConfig *config.Config) *ActivitySyncService {
	syncConfig := ActivitySyncConfig{
		CronSchedule:  appConfig.Sync.CronSchedule,
		LookbackHours: appConfig.Sync.LookbackHours,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"lookback_hours": syncConfig.LookbackHours,
	}).Info("Configuração do agendador de sincronização de atividades carregada")

	return &ActivitySyncService{
		scheduler: scheduler,
		config:    syncConfig,
		tracker:   tracker,
	}
}

// Start inicia o agendador e bloqueia até o contexto ser cancelado.
func (s *ActivitySyncService) Start(ctx context.Context) error {
	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de atividades")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncActivities(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de atividades: %w", err)
	}

	s.scheduler.StartAsync()

	<-ctx.Done()
	logrus.Info("Parando agendador de sincronização de atividades")
	s.scheduler.Stop()

	return nil
}

// syncActivities executa uma passada do tracker, ignorando disparos enquanto
// outra execução está em andamento.
func (s *ActivitySyncService) syncActivities(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de atividades já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	report, err := s.tracker.Run(ctx, s.config.LookbackHours)
	if err != nil {
		logrus.WithError(err).Error("Erro na execução agendada do tracker")
		return
	}

	logrus.WithFields(logrus.Fields{
		"written":    report.Written,
		"duplicates": report.Duplicates,
	}).Info("Execução agendada do tracker concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync dispara manualmente uma sincronização fora do cron.
func (s *ActivitySyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de atividades já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de atividades")
	go s.syncActivities(ctx)
}

// GetStatus retorna o status atual do agendador.
func (s *ActivitySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_hours":    s.config.LookbackHours,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

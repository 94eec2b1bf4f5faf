package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/airtable"
	"github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/airtable/airtableclient"
	"github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/meta"
	"github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/meta/metaclient"
	"github.com/AI-Growify/meta-activity-tracker/infrastructure/repository"
	"github.com/AI-Growify/meta-activity-tracker/infrastructure/sheets/sheetsclient"
	"github.com/AI-Growify/meta-activity-tracker/internal/config"
	"github.com/AI-Growify/meta-activity-tracker/internal/scheduler"
	"github.com/AI-Growify/meta-activity-tracker/internal/usecases/tracking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	daemon := flag.Bool("daemon", false, "executa em modo daemon com agendamento via cron")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Error("Configuração inválida")
		os.Exit(1)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	lookbackHours := parseLookbackHours(flag.Args(), cfg.Sync.LookbackHours)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sheetsClient, err := sheetsclient.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao Google Sheets")
		os.Exit(1)
	}

	activityRepo := repository.NewActivityLogRepository(sheetsClient)
	runLogRepo := repository.NewRunLogRepository(sheetsClient)

	metaIntegrator := meta.New(cfg, metaclient.NewClient(cfg))
	brandLoader := airtable.New(cfg, airtableclient.NewClient(cfg))

	tracker := tracking.NewService(cfg, brandLoader, metaIntegrator, activityRepo, runLogRepo)

	if *daemon {
		syncService := scheduler.NewActivitySyncService(tracker, cfg)
		if err := syncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de atividades")
			os.Exit(1)
		}
		return
	}

	report, err := tracker.Run(ctx, lookbackHours)
	if err != nil {
		logrus.WithError(err).Error("Execução do tracker falhou")
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"fetched":    report.Fetched,
		"written":    report.Written,
		"duplicates": report.Duplicates,
		"skipped":    report.Skipped,
	}).Info("Execução do tracker concluída")
}

// parseLookbackHours lê a janela de busca do primeiro argumento posicional.
// Valores inválidos ou ausentes caem no padrão configurado.
func parseLookbackHours(args []string, fallback int) int {
	if len(args) == 0 {
		return fallback
	}

	hours, err := strconv.Atoi(args[0])
	if err != nil || hours <= 0 {
		logrus.Warnf("Janela de busca inválida: %q, usando %d horas", args[0], fallback)
		return fallback
	}

	return hours
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

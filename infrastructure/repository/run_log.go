package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/AI-Growify/meta-activity-tracker/internal/domain"
	"github.com/sirupsen/logrus"
)

// RunLogSheet é a aba secundária: uma linha de resumo por execução.
const RunLogSheet = "GitHub_Actions_Log"

var runLogHeader = []string{
	"Timestamp", "Run Number", "Action", "Details",
	"Activities Count", "Time Range", "Status",
}

// RunLogRepository persiste os metadados de execução.
type RunLogRepository interface {
	AppendRun(ctx context.Context, summary domain.RunSummary) error
}

type runLogRepository struct {
	store Store
}

func NewRunLogRepository(store Store) RunLogRepository {
	return &runLogRepository{store: store}
}

// AppendRun grava uma linha de resumo da execução no run-log.
func (r *runLogRepository) AppendRun(ctx context.Context, summary domain.RunSummary) error {
	if err := r.store.EnsureSheet(ctx, RunLogSheet, runLogHeader); err != nil {
		return err
	}

	row := []interface{}{
		summary.Timestamp.UTC().Format(time.RFC3339),
		summary.RunNumber,
		summary.Action,
		summary.Details,
		strconv.Itoa(summary.Count),
		summary.TimeRange,
		summary.Status,
	}

	if err := r.store.AppendRows(ctx, RunLogSheet, [][]interface{}{row}); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"action": summary.Action,
		"status": summary.Status,
		"count":  summary.Count,
	}).Debug("Linha de resumo gravada no run-log")

	return nil
}

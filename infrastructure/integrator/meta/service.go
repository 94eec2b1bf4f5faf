package meta

import (
	"context"
	"sort"
	"time"

	metadomain "github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/meta/domain"
	"github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/meta/metaclient"
	"github.com/AI-Growify/meta-activity-tracker/internal/config"
	"github.com/AI-Growify/meta-activity-tracker/internal/domain"
	"github.com/AI-Growify/meta-activity-tracker/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MetaIntegrator é o fetcher de atividades: converte uma janela de lookback
// em uma sequência de ActivityEvent.
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchActivities busca as atividades humanas de todas as contas dentro da
// janela de lookback, com hierarquia resolvida, ordenadas da mais recente
// para a mais antiga. Retorna slice vazio quando não há atividades.
func (s *MetaIntegrator) FetchActivities(ctx context.Context, lookbackHours int) ([]domain.ActivityEvent, error) {
	since := time.Now().UTC().Add(-time.Duration(lookbackHours) * time.Hour)

	logrus.WithFields(logrus.Fields{
		"lookback_hours": lookbackHours,
		"since":          since.Format(time.RFC3339),
	}).Info("Iniciando busca de atividades do Meta")

	accounts, err := s.Client.GetAdAccounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar contas de anúncios do Meta")
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta de anúncios encontrada")
		return []domain.ActivityEvent{}, nil
	}

	delay := time.Duration(s.cfg.Sync.RequestDelayMillis) * time.Millisecond

	events := make([]domain.ActivityEvent, 0)
	skipped := 0
	for i, account := range accounts {
		accountEvents, accountSkipped, err := s.processAccount(ctx, account, since)
		if err != nil {
			return nil, err
		}

		events = append(events, accountEvents...)
		skipped += accountSkipped

		// Pausa entre contas para não sobrecarregar a API
		if delay > 0 && i < len(accounts)-1 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})

	logrus.WithFields(logrus.Fields{
		"activities": len(events),
		"skipped":    skipped,
		"accounts":   len(accounts),
	}).Info("Busca de atividades do Meta concluída")

	return events, nil
}

// processAccount busca e converte as atividades humanas de uma conta.
// Eventos sem os campos mínimos são contados como pulados.
func (s *MetaIntegrator) processAccount(ctx context.Context, account metadomain.AdAccount, since time.Time) ([]domain.ActivityEvent, int, error) {
	activities, err := s.Client.GetAccountActivities(ctx, account.ID, since)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "erro ao buscar atividades da conta %s", account.ID)
	}

	if len(activities) == 0 {
		return nil, 0, nil
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"account_name": account.Name,
		"activities":   len(activities),
	}).Debug("Processando atividades da conta")

	events := make([]domain.ActivityEvent, 0, len(activities))
	skipped := 0
	for _, activity := range activities {
		if !IsHumanActivity(activity) {
			continue
		}

		event, ok := s.toEvent(ctx, account, activity)
		if !ok {
			skipped++
			continue
		}

		events = append(events, event)
	}

	return events, skipped, nil
}

// toEvent converte uma atividade da Graph API em ActivityEvent, resolvendo a
// hierarquia e os dados de mudança. Retorna ok=false quando a atividade não
// tem os campos mínimos.
func (s *MetaIntegrator) toEvent(ctx context.Context, account metadomain.AdAccount, activity metadomain.Activity) (domain.ActivityEvent, bool) {
	timestamp, err := utils.ParseEventTime(activity.EventTime)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"event_time": activity.EventTime,
		}).Warn("Atividade com event_time inválido. Pulando.")
		return domain.ActivityEvent{}, false
	}

	activityType := activity.TranslatedEventType
	if activityType == "" {
		activityType = activity.EventType
	}

	h := s.buildHierarchy(ctx, activity)
	changedFrom, changedTo := parseExtraData(activity.ExtraData)

	actor := activity.ActorName
	if actor == "" {
		actor = "Unknown"
	}

	event := domain.ActivityEvent{
		Brand:           account.Brand(),
		BrandExternalID: account.ID,
		AccountID:       account.ID,
		AccountName:     account.Name,
		ActorName:       actor,
		ActivityType:    activityType,
		RawEventType:    activity.EventType,
		Timestamp:       timestamp,
		HierarchyLevel:  h.Level,
		Campaign:        h.Campaign,
		AdSet:           h.AdSet,
		Ad:              h.Ad,
		ChangedFrom:     changedFrom,
		ChangedTo:       changedTo,
		ObjectName:      activity.ObjectName,
		ObjectID:        activity.ObjectID,
		ObjectType:      activity.ObjectType,
	}

	if !event.Valid() {
		return domain.ActivityEvent{}, false
	}

	return event, true
}

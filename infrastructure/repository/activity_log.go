package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/AI-Growify/meta-activity-tracker/internal/domain"
	"github.com/AI-Growify/meta-activity-tracker/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ActivityLogSheet é a aba principal: uma linha por atividade deduplicada.
const ActivityLogSheet = "Meta_Activities_Log"

// Cabeçalho da aba de atividades, na ordem de gravação.
var activityLogHeader = []string{
	"Brand", "Matched_Airtable_Brand", "FB_Manager", "Brand_Manager", "Current_Team",
	"Actor", "Action", "Hierarchy_Level", "Timestamp",
	"Campaign_Name", "Campaign_Status", "Campaign_Objective",
	"Campaign_Budget_Type", "Campaign_Budget", "Campaign_Bid_Strategy",
	"AdSet_Name", "AdSet_Status", "AdSet_Optimization_Goal", "AdSet_Billing_Event",
	"Age_Targeting", "Gender_Targeting", "Location_Targeting",
	"Ad_Name", "Ad_Status", "Ad_Preview_Link",
	"Changed_From", "Changed_To",
	"Account_ID", "Account_Name",
	"Object_Name", "Object_ID", "Object_Type_Raw", "Raw_Event_Type", "Fetch_Date",
}

// Índices das colunas usadas para reconstruir a chave de deduplicação ao ler
// a aba de volta.
const (
	colAction    = 6
	colTimestamp = 8
	colAccountID = 27
)

// ActivityLogRepository persiste e relê as atividades na aba principal.
type ActivityLogRepository interface {
	ExistingKeys(ctx context.Context) (map[string]struct{}, error)
	LatestTimestamp(ctx context.Context) (time.Time, error)
	Append(ctx context.Context, rows []domain.LoggedRow) (int, error)
}

type activityLogRepository struct {
	store Store
}

func NewActivityLogRepository(store Store) ActivityLogRepository {
	return &activityLogRepository{store: store}
}

// ExistingKeys lê a aba inteira e recomputa a chave composta de cada linha.
// Linhas com timestamp ilegível são ignoradas com aviso: elas nunca poderiam
// colidir com uma chave recém-gerada.
func (r *activityLogRepository) ExistingKeys(ctx context.Context) (map[string]struct{}, error) {
	if err := r.store.EnsureSheet(ctx, ActivityLogSheet, activityLogHeader); err != nil {
		return nil, err
	}

	rows, err := r.store.ReadDataRows(ctx, ActivityLogSheet)
	if err != nil {
		return nil, err
	}

	keys := make(map[string]struct{}, len(rows))
	unparsable := 0
	for _, row := range rows {
		key, ok := keyFromRow(row)
		if !ok {
			unparsable++
			continue
		}
		keys[key] = struct{}{}
	}

	if unparsable > 0 {
		logrus.WithField("rows", unparsable).Warn("Linhas existentes sem chave de deduplicação reconstituível")
	}

	logrus.WithField("existing_keys", len(keys)).Info("Chaves existentes carregadas da planilha")

	return keys, nil
}

// keyFromRow reconstrói a chave composta a partir das colunas persistidas,
// normalizando o timestamp para UTC como na gravação.
func keyFromRow(row []interface{}) (string, bool) {
	if len(row) <= colAccountID {
		return "", false
	}

	accountID := cellString(row[colAccountID])
	action := cellString(row[colAction])
	timestampRaw := cellString(row[colTimestamp])
	if accountID == "" || action == "" || timestampRaw == "" {
		return "", false
	}

	timestamp, err := utils.ParseEventTime(timestampRaw)
	if err != nil {
		return "", false
	}

	event := domain.ActivityEvent{
		BrandExternalID: accountID,
		ActivityType:    action,
		Timestamp:       timestamp,
	}

	return event.DedupeKey(), true
}

// LatestTimestamp varre a coluna de timestamp e retorna o mais recente, usado
// para calcular a janela efetiva de busca. Retorna zero quando a aba está
// vazia ou nenhum timestamp é legível.
func (r *activityLogRepository) LatestTimestamp(ctx context.Context) (time.Time, error) {
	if err := r.store.EnsureSheet(ctx, ActivityLogSheet, activityLogHeader); err != nil {
		return time.Time{}, err
	}

	rows, err := r.store.ReadDataRows(ctx, ActivityLogSheet)
	if err != nil {
		return time.Time{}, err
	}

	var latest time.Time
	for _, row := range rows {
		if len(row) <= colTimestamp {
			continue
		}
		raw := cellString(row[colTimestamp])
		if raw == "" {
			continue
		}
		timestamp, err := utils.ParseEventTime(raw)
		if err != nil {
			continue
		}
		if timestamp.After(latest) {
			latest = timestamp
		}
	}

	return latest, nil
}

// Append grava as linhas novas ao final da aba e retorna a quantidade
// gravada.
func (r *activityLogRepository) Append(ctx context.Context, rows []domain.LoggedRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	if err := r.store.EnsureSheet(ctx, ActivityLogSheet, activityLogHeader); err != nil {
		return 0, err
	}

	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		values = append(values, rowValues(row))
	}

	if err := r.store.AppendRows(ctx, ActivityLogSheet, values); err != nil {
		return 0, err
	}

	logrus.WithField("rows", len(rows)).Info("Atividades gravadas na planilha")

	return len(rows), nil
}

// rowValues serializa uma LoggedRow na ordem do cabeçalho. O timestamp é
// gravado em RFC3339 UTC para que a chave recomputada na leitura seja
// idêntica à da gravação.
func rowValues(row domain.LoggedRow) []interface{} {
	e := row.Event
	return []interface{}{
		e.Brand, row.Match.MatchedBrand, row.Match.FBManager, row.Match.BrandManager, row.Match.CurrentTeam,
		e.ActorName, e.ActivityType, e.HierarchyLevel, e.Timestamp.UTC().Format(time.RFC3339),
		e.Campaign.Name, e.Campaign.Status, e.Campaign.Objective,
		e.Campaign.BudgetType, e.Campaign.Budget, e.Campaign.BidStrategy,
		e.AdSet.Name, e.AdSet.Status, e.AdSet.OptimizationGoal, e.AdSet.BillingEvent,
		e.AdSet.AgeTargeting, e.AdSet.GenderTargeting, e.AdSet.LocationTargeting,
		e.Ad.Name, e.Ad.Status, e.Ad.PreviewLink,
		e.ChangedFrom, e.ChangedTo,
		e.AccountID, e.AccountName,
		e.ObjectName, e.ObjectID, e.ObjectType, e.RawEventType,
		row.FetchDate.UTC().Format(time.RFC3339),
	}
}

func cellString(cell interface{}) string {
	if cell == nil {
		return ""
	}
	if str, ok := cell.(string); ok {
		return str
	}
	return fmt.Sprintf("%v", cell)
}

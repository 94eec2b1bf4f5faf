package meta

import (
	"strings"

	metadomain "github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/meta/domain"
)

// Eventos gerados pelo próprio Meta (cobrança, revisão, otimização
// automática) que nunca representam ação humana.
var excludedEventTypes = map[string]struct{}{
	"ad_account_update_spend_limit":       {},
	"ad_account_reset_spend_limit":        {},
	"ad_account_billing_charge":           {},
	"ad_account_billing_charge_failed":    {},
	"ad_account_billing_decline":          {},
	"ad_review_approved":                  {},
	"ad_review_declined":                  {},
	"automatic_placement_optimization":    {},
	"campaign_budget_optimization":        {},
	"auto_bid_adjustment":                 {},
	"delivery_insights_notification":      {},
}

// Verbos de ação que indicam atividade iniciada por humano.
var includedActions = []string{
	"create", "update", "delete", "pause", "resume", "archive",
	"edit", "change", "modify", "activate", "deactivate",
}

// Atores que representam o sistema, não uma pessoa.
var systemActors = map[string]struct{}{
	"meta":      {},
	"facebook":  {},
	"system":    {},
	"automated": {},
}

// IsHumanActivity filtra as atividades para manter apenas as iniciadas por
// humanos: descarta tipos de evento excluídos, aceita verbos de ação
// conhecidos e, por fim, aceita qualquer evento com um ator que não seja o
// sistema.
func IsHumanActivity(activity metadomain.Activity) bool {
	eventType := strings.ToLower(activity.EventType)
	translated := strings.ToLower(activity.TranslatedEventType)

	if _, excluded := excludedEventTypes[eventType]; excluded {
		return false
	}

	for _, action := range includedActions {
		if strings.Contains(eventType, action) || strings.Contains(translated, action) {
			return true
		}
	}

	if activity.ActorName != "" {
		if _, system := systemActors[strings.ToLower(activity.ActorName)]; !system {
			return true
		}
	}

	return false
}

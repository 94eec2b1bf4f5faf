package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	metadomain "github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/meta/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GetAccountActivities busca as atividades de uma conta desde o instante
// informado, seguindo paging.next até esgotar.
func (c *MetaClient) GetAccountActivities(ctx context.Context, accountID string, since time.Time) ([]metadomain.Activity, error) {
	baseURL := fmt.Sprintf("%s/%s/activities", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("since", since.Format("2006-01-02T15:04:05"))
	params.Add("limit", "500")
	params.Add("fields", "event_type,event_time,actor_name,object_name,object_type,object_id,translated_event_type,extra_data")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	next := baseURL + "?" + params.Encode()

	activities := make([]metadomain.Activity, 0)
	for next != "" {
		body, err := c.doGet(ctx, next)
		if err != nil {
			// Conta sem permissão de leitura de atividades não derruba a
			// execução: retorna vazio e segue para a próxima conta.
			if errors.Is(err, ErrObjectUnavailable) {
				logrus.WithField("account_id", accountID).Warn("Atividades indisponíveis para a conta. Pulando.")
				return nil, nil
			}
			return nil, errors.Wrapf(err, "erro ao buscar atividades da conta %s", accountID)
		}

		var response metadomain.ResponseActivities
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		activities = append(activities, response.Data...)
		next = response.Paging.Next
	}

	return activities, nil
}

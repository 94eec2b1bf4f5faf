package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/meta/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GetAdAccounts lista todas as contas de anúncios acessíveis pelo token,
// seguindo paging.next até esgotar.
func (c *MetaClient) GetAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error) {
	baseURL := fmt.Sprintf("%s/me/adaccounts", c.Cfg.Meta.URL)

	params := url.Values{}
	params.Add("fields", "id,name,account_status,business_name,currency,timezone_name")
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	next := baseURL + "?" + params.Encode()

	accounts := make([]metadomain.AdAccount, 0)
	for next != "" {
		body, err := c.doGet(ctx, next)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao listar contas de anúncios")
		}

		var response metadomain.ResponseAdAccounts
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		accounts = append(accounts, response.Data...)
		next = response.Paging.Next
	}

	logrus.WithField("accounts", len(accounts)).Info("Contas de anúncios do Meta encontradas")

	return accounts, nil
}

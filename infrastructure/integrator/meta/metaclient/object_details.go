package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/meta/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// getObjectDetails consulta /{object-id} com os campos informados e decodifica
// em out. Retorna ErrObjectUnavailable para IDs inválidos ou objetos
// inacessíveis.
func (c *MetaClient) getObjectDetails(ctx context.Context, objectID, fields string, out any) error {
	if !IsValidMetaID(objectID) {
		logrus.WithField("object_id", objectID).Debug("ID de objeto inválido. Pulando.")
		return errors.Wrap(ErrObjectUnavailable, "id inválido")
	}

	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, objectID)

	params := url.Values{}
	params.Add("fields", fields)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.doGet(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	return nil
}

// GetCampaignDetails busca os detalhes de uma campanha. Retorna nil sem erro
// quando o objeto não está acessível.
func (c *MetaClient) GetCampaignDetails(ctx context.Context, campaignID string) (*metadomain.CampaignDetails, error) {
	var details metadomain.CampaignDetails
	err := c.getObjectDetails(ctx, campaignID,
		"id,name,status,effective_status,objective,daily_budget,lifetime_budget,bid_strategy",
		&details,
	)
	if err != nil {
		if errors.Is(err, ErrObjectUnavailable) {
			return nil, nil
		}
		return nil, err
	}

	return &details, nil
}

// GetAdSetDetails busca os detalhes de um conjunto de anúncios. Retorna nil
// sem erro quando o objeto não está acessível.
func (c *MetaClient) GetAdSetDetails(ctx context.Context, adSetID string) (*metadomain.AdSetDetails, error) {
	var details metadomain.AdSetDetails
	err := c.getObjectDetails(ctx, adSetID,
		"id,name,status,effective_status,campaign_id,optimization_goal,billing_event,targeting",
		&details,
	)
	if err != nil {
		if errors.Is(err, ErrObjectUnavailable) {
			return nil, nil
		}
		return nil, err
	}

	return &details, nil
}

// GetAdDetails busca os detalhes de um anúncio. Retorna nil sem erro quando o
// objeto não está acessível.
func (c *MetaClient) GetAdDetails(ctx context.Context, adID string) (*metadomain.AdDetails, error) {
	var details metadomain.AdDetails
	err := c.getObjectDetails(ctx, adID,
		"id,name,status,effective_status,adset_id,preview_shareable_link",
		&details,
	)
	if err != nil {
		if errors.Is(err, ErrObjectUnavailable) {
			return nil, nil
		}
		return nil, err
	}

	return &details, nil
}

package metaclient

import (
	"context"
	"io"
	"net/http"
	"time"

	metadomain "github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/meta/domain"
	"github.com/AI-Growify/meta-activity-tracker/internal/config"
	"github.com/AI-Growify/meta-activity-tracker/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrObjectUnavailable indica que o objeto consultado não está acessível
// (400, 403 ou 404 da Graph API). É um pulo por objeto, nunca uma falha da
// execução inteira.
var ErrObjectUnavailable = errors.New("meta: objeto indisponível")

const (
	requestTimeout = 30 * time.Second
	retryAttempts  = 3
	retryBackoff   = 500 * time.Millisecond
	retryMaxDelay  = 5 * time.Second
)

type Client interface {
	GetAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error)
	GetAccountActivities(ctx context.Context, accountID string, since time.Time) ([]metadomain.Activity, error)
	GetCampaignDetails(ctx context.Context, campaignID string) (*metadomain.CampaignDetails, error)
	GetAdSetDetails(ctx context.Context, adSetID string) (*metadomain.AdSetDetails, error)
	GetAdDetails(ctx context.Context, adID string) (*metadomain.AdDetails, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg:        cfg,
		httpClient: utils.NewHTTPClient(requestTimeout),
	}
}

// doGet executa um GET contra a Graph API com retry limitado para falhas
// transitórias (429 e 5xx). 400/403/404 retornam ErrObjectUnavailable sem
// retry.
func (c *MetaClient) doGet(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	err := utils.Retry(ctx, retryAttempts, retryBackoff, retryMaxDelay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar a requisição")
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao fazer a requisição, tentando novamente")
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			body = data
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return errors.Errorf("meta: status transitório %d", resp.StatusCode)
		default:
			return utils.Permanent(c.handleErrorResponse(resp.StatusCode, data))
		}
	})
	if err != nil {
		return nil, err
	}

	return body, nil
}

// handleErrorResponse decodifica o envelope de erro da Graph API e classifica
// a falha.
func (c *MetaClient) handleErrorResponse(status int, body []byte) error {
	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		logrus.WithFields(logrus.Fields{
			"status":     status,
			"code":       errResp.Error.Code,
			"subcode":    errResp.Error.ErrorSubcode,
			"type":       errResp.Error.Type,
			"fbtrace_id": errResp.Error.FBTraceID,
		}).Warn("Graph API retornou erro")

		if errResp.IsTokenExpired() {
			return errors.Errorf("meta: token de acesso expirado (code %d)", errResp.Error.Code)
		}
	}

	switch status {
	case http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound:
		return errors.Wrapf(ErrObjectUnavailable, "status %d", status)
	default:
		return errors.Errorf("meta: status inesperado %d", status)
	}
}

// IsValidMetaID valida se um ID parece um ID de objeto válido do Meta:
// somente dígitos, entre 10 e 25 caracteres.
func IsValidMetaID(objectID string) bool {
	if len(objectID) < 10 || len(objectID) > 25 {
		return false
	}

	for _, r := range objectID {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

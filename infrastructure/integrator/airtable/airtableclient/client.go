package airtableclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/AI-Growify/meta-activity-tracker/internal/config"
	"github.com/AI-Growify/meta-activity-tracker/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	requestTimeout = 30 * time.Second
	retryAttempts  = 3
	retryBackoff   = 500 * time.Millisecond
	retryMaxDelay  = 5 * time.Second

	// Pausa entre páginas para respeitar o rate limit do Airtable (5 req/s)
	pageDelay = 100 * time.Millisecond
)

// Record é um registro bruto do Airtable: id + campos dinâmicos.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// recordsResponse é a resposta paginada do endpoint de listagem.
type recordsResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}

type Client interface {
	ListRecords(ctx context.Context) ([]Record, error)
}

type AirtableClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AirtableClient{
		cfg:        cfg,
		httpClient: utils.NewHTTPClient(requestTimeout),
	}
}

// ListRecords busca todos os registros da tabela, seguindo o offset de
// paginação até esgotar.
func (c *AirtableClient) ListRecords(ctx context.Context) ([]Record, error) {
	records := make([]Record, 0)
	offset := ""

	for {
		page, nextOffset, err := c.listPage(ctx, offset)
		if err != nil {
			return nil, err
		}

		records = append(records, page...)

		if nextOffset == "" {
			break
		}
		offset = nextOffset

		select {
		case <-time.After(pageDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	logrus.WithField("records", len(records)).Info("Registros de marcas carregados do Airtable")

	return records, nil
}

// listPage busca uma página de registros.
func (c *AirtableClient) listPage(ctx context.Context, offset string) ([]Record, string, error) {
	reqURL := c.cfg.Airtable.URL
	if offset != "" {
		params := url.Values{}
		params.Add("offset", offset)
		reqURL += "?" + params.Encode()
	}

	var body []byte
	err := utils.Retry(ctx, retryAttempts, retryBackoff, retryMaxDelay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.Airtable.Token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao consultar o Airtable, tentando novamente")
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
			return errors.Errorf("airtable: status transitório %d", resp.StatusCode)
		default:
			return utils.Permanent(errors.Errorf("airtable: status inesperado %d", resp.StatusCode))
		}
	})
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao listar registros do Airtable")
	}

	var response recordsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, "", err
	}

	return response.Records, response.Offset, nil
}

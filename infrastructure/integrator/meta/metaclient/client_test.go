package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AI-Growify/meta-activity-tracker/internal/config"
)

func newTestClient(serverURL string) *MetaClient {
	cfg := &config.Config{}
	cfg.Meta.URL = serverURL
	cfg.Meta.AccessToken = "test-token"

	return NewClient(cfg).(*MetaClient)
}

func TestGetCampaignDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("objeto indisponível não é retentado", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"message":"Unsupported get request","type":"GraphMethodException","code":100,"fbtrace_id":"AbCdEf"}}`))
		}))
		defer server.Close()

		details, err := newTestClient(server.URL).GetCampaignDetails(ctx, "12345678901234")

		assert.NoError(t, err)
		assert.Nil(t, details)
		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("token expirado falha sem retry", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"error_subcode":463}}`))
		}))
		defer server.Close()

		details, err := newTestClient(server.URL).GetCampaignDetails(ctx, "12345678901234")

		assert.Error(t, err)
		assert.Nil(t, details)
		assert.Contains(t, err.Error(), "token de acesso expirado")
		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("erro transitório é retentado até responder", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requests.Add(1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"id":"12345678901234","name":"Campanha Verão","status":"ACTIVE"}`))
		}))
		defer server.Close()

		details, err := newTestClient(server.URL).GetCampaignDetails(ctx, "12345678901234")

		assert.NoError(t, err)
		assert.NotNil(t, details)
		assert.Equal(t, "Campanha Verão", details.Name)
		assert.Equal(t, int32(3), requests.Load())
	})
}

package platformclient

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	platformdomain "github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/platform/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
)

func newTestClient(baseURL, apiKey string) Client {
	return NewClient(&config.Config{
		Platform: config.Platform{
			BaseURL: baseURL,
			APIKey:  apiKey,
		},
	})
}

func TestGetMetricsPerformance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/web/v1/metrics/performance", r.URL.Path)
		assert.Equal(t, "chave-secreta", r.URL.Query().Get("secure_api_key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total_users": 100,
			"active_users": 80,
			"inactive_users": 20,
			"new_users": {"last_24h": 5, "last_7d": 20, "last_30d": 50},
			"users_by_type": {"Customer": 70, "Artist": 30}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "chave-secreta")

	response, err := client.GetMetricsPerformance()
	require.NoError(t, err)

	assert.Equal(t, 100, response.TotalUsers)
	assert.Equal(t, 80, response.ActiveUsers)
	assert.Equal(t, 20, response.InactiveUsers)
	assert.Equal(t, 5, response.NewUsers.Last24h)
	assert.Equal(t, 20, response.NewUsers.Last7d)
	assert.Equal(t, 50, response.NewUsers.Last30d)
	assert.Equal(t, 70, response.UsersByType["Customer"])
}

func TestGetMetricsPerformance_ChaveAusente(t *testing.T) {
	client := newTestClient("http://localhost", "")

	_, err := client.GetMetricsPerformance()
	assert.True(t, errors.Is(err, platformdomain.ErrMissingAPIKey))
}

func TestGetMetricsPerformance_StatusNao2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "chave-secreta")

	_, err := client.GetMetricsPerformance()
	assert.True(t, errors.Is(err, platformdomain.ErrUnreachable))
}

func TestGetMetricsPerformance_PlataformaInacessivel(t *testing.T) {
	// Servidor já encerrado simula falha de rede
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL, "chave-secreta")

	_, err := client.GetMetricsPerformance()
	assert.True(t, errors.Is(err, platformdomain.ErrUnreachable))
}

func TestGetMetricsPerformance_PayloadMalformado(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_users": "cem"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "chave-secreta")

	_, err := client.GetMetricsPerformance()
	assert.True(t, errors.Is(err, platformdomain.ErrMalformedPayload))
}

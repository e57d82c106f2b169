package platformclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	platformdomain "github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/platform/domain"
)

const metricsPerformancePath = "/web/v1/metrics/performance"

// GetMetricsPerformance faz uma única requisição GET autenticada pela chave
// secure_api_key e decodifica o snapshot de métricas. Não há retry: uma falha
// exige nova ação explícita do usuário.
func (c *PlatformClient) GetMetricsPerformance() (*platformdomain.MetricsPerformanceResponse, error) {
	if c.config.Platform.APIKey == "" {
		return nil, platformdomain.ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Platform.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, metricsPerformancePath)

	// A chave é repassada como query param, conforme o contrato da plataforma.
	query := endpoint.Query()
	query.Set("secure_api_key", c.config.Platform.APIKey)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(platformdomain.ErrUnreachable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(platformdomain.ErrUnreachable, "status: %s", resp.Status)
	}

	var response platformdomain.MetricsPerformanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(platformdomain.ErrMalformedPayload, err.Error())
	}

	return &response, nil
}

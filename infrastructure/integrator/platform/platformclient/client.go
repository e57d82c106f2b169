package platformclient

import (
	"net/http"
	"time"

	platformdomain "github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/platform/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
)

type Client interface {
	GetMetricsPerformance() (*platformdomain.MetricsPerformanceResponse, error)
}

type PlatformClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API da plataforma.
func NewClient(cfg *config.Config) Client {
	return &PlatformClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

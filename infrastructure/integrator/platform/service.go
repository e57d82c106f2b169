package platform

import (
	"github.com/sirupsen/logrus"
	platformdomain "github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/platform/domain"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/platform/platformclient"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

// PlatformIntegrator expõe o snapshot de métricas da plataforma já convertido
// para o tipo forte do domínio.
type PlatformIntegrator interface {
	GetPerformanceSnapshot() (*domain.PerformanceSnapshot, error)
}

type PlatformService struct {
	cfg    *config.Config
	Client platformclient.Client
}

func New(cfg *config.Config, client platformclient.Client) PlatformIntegrator {
	return &PlatformService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *PlatformService) GetPerformanceSnapshot() (*domain.PerformanceSnapshot, error) {
	resp, err := s.Client.GetMetricsPerformance()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao obter snapshot de métricas da plataforma")
		return nil, err
	}

	return factoryPerformanceSnapshot(resp), nil
}

// factoryPerformanceSnapshot converte a resposta bruta da API no snapshot do
// domínio. O universo de tipos de usuário é fixo: tipos ausentes no payload
// entram com zero.
func factoryPerformanceSnapshot(resp *platformdomain.MetricsPerformanceResponse) *domain.PerformanceSnapshot {
	return &domain.PerformanceSnapshot{
		TotalUsers:    resp.TotalUsers,
		ActiveUsers:   resp.ActiveUsers,
		InactiveUsers: resp.InactiveUsers,
		NewUsers: domain.NewUserCounts{
			Last24h: resp.NewUsers.Last24h,
			Last7d:  resp.NewUsers.Last7d,
			Last30d: resp.NewUsers.Last30d,
		},
		UsersByType: domain.UserTypeCounts{
			Customer: resp.UsersByType["Customer"],
			Artist:   resp.UsersByType["Artist"],
			Business: resp.UsersByType["Business"],
		},
	}
}

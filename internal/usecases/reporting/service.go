package reporting

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/platform"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/loading"
)

// Service implementa tanto a interface SnapshotReporter quanto SessionReporter
type Service struct {
	platformService platform.PlatformIntegrator
	sessions        loading.Sessioner
	now             func() time.Time
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(platformService platform.PlatformIntegrator, sessions loading.Sessioner) CombinedReporter {
	return &Service{
		platformService: platformService,
		sessions:        sessions,
		now:             time.Now,
	}
}

// WithClock substitui a referência de "agora" usada nas janelas móveis.
// Usado em testes para tornar os cálculos determinísticos.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetPerformanceSnapshot obtém o panorama pré-agregado de usuários da
// plataforma externa. Sem retry; o cliente dispara a ação novamente.
func (s *Service) GetPerformanceSnapshot() (*domain.PerformanceSnapshot, error) {
	snapshot, err := s.platformService.GetPerformanceSnapshot()
	if err != nil {
		logrus.WithError(err).Error("Erro ao obter panorama de usuários da plataforma")
		return nil, err
	}

	return snapshot, nil
}

// GetSessionSummary calcula os resumos escalares, a distribuição por plano e
// as janelas móveis do conjunto filtrado da sessão.
func (s *Service) GetSessionSummary(sessionID string, filters *domain.DashboardFilters) (*domain.DashboardSummaryResponse, error) {
	filtered, err := s.filteredCustomers(sessionID, filters)
	if err != nil {
		return nil, err
	}

	now := s.now()

	return &domain.DashboardSummaryResponse{
		Summary:       Summarize(filtered, now),
		PlanBreakdown: PlanBreakdown(filtered),
		NewCustomers:  TrailingSignupCounts(filtered, now),
		Filters:       filters,
	}, nil
}

// GetSessionGrowth calcula a série cumulativa e as contagens mensais do
// conjunto filtrado da sessão.
func (s *Service) GetSessionGrowth(sessionID string, filters *domain.DashboardFilters) (*domain.GrowthResponse, error) {
	filtered, err := s.filteredCustomers(sessionID, filters)
	if err != nil {
		return nil, err
	}

	return &domain.GrowthResponse{
		Cumulative: CumulativeSeries(filtered),
		Monthly:    MonthlySignups(filtered),
		Filters:    filters,
	}, nil
}

// GetSessionCustomers retorna o conjunto filtrado ordenado do mais recente
// para o mais antigo.
func (s *Service) GetSessionCustomers(sessionID string, filters *domain.DashboardFilters) ([]domain.Customer, error) {
	filtered, err := s.filteredCustomers(sessionID, filters)
	if err != nil {
		return nil, err
	}

	// Ordenação estável: registros da mesma data mantêm a ordem do conjunto
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	return filtered, nil
}

func (s *Service) filteredCustomers(sessionID string, filters *domain.DashboardFilters) ([]domain.Customer, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	filtered := filtering.Apply(session.Customers, filters)

	if len(filtered) == 0 {
		// Conjunto vazio não é erro; o dashboard exibe valores zerados
		logrus.WithFields(logrus.Fields{
			"session_id": sessionID,
		}).Warn("Nenhum registro corresponde aos filtros informados")
	}

	return filtered, nil
}

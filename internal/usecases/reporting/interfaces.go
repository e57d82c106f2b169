package reporting

import (
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

// SnapshotReporter define a interface para obter o panorama de usuários da
// plataforma externa
type SnapshotReporter interface {
	// GetPerformanceSnapshot obtém o panorama pré-agregado de usuários
	GetPerformanceSnapshot() (*domain.PerformanceSnapshot, error)
}

// SessionReporter define a interface para os relatórios de crescimento de
// clientes calculados sobre uma sessão de dataset
type SessionReporter interface {
	// GetSessionSummary calcula os resumos escalares, a distribuição por
	// plano e as janelas móveis do conjunto filtrado
	GetSessionSummary(sessionID string, filters *domain.DashboardFilters) (*domain.DashboardSummaryResponse, error)

	// GetSessionGrowth calcula a série cumulativa e as contagens mensais do
	// conjunto filtrado
	GetSessionGrowth(sessionID string, filters *domain.DashboardFilters) (*domain.GrowthResponse, error)

	// GetSessionCustomers retorna o conjunto filtrado ordenado do mais
	// recente para o mais antigo
	GetSessionCustomers(sessionID string, filters *domain.DashboardFilters) ([]domain.Customer, error)
}

// CombinedReporter é a interface completa que combina o panorama da
// plataforma e os relatórios de sessão
type CombinedReporter interface {
	SnapshotReporter
	SessionReporter
}

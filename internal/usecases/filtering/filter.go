package filtering

import (
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

// Apply restringe o conjunto de registros aos filtros do dashboard. O
// intervalo de datas é inclusivo nas duas pontas e cada filtro ausente é
// ignorado; os filtros presentes são combinados com AND. A ordem relativa
// dos registros de entrada é preservada e a entrada nunca é modificada.
func Apply(customers []domain.Customer, filters *domain.DashboardFilters) []domain.Customer {
	if filters == nil {
		filters = &domain.DashboardFilters{}
	}

	filtered := make([]domain.Customer, 0, len(customers))
	for _, customer := range customers {
		if !matches(customer, filters) {
			continue
		}
		filtered = append(filtered, customer)
	}

	return filtered
}

func matches(customer domain.Customer, filters *domain.DashboardFilters) bool {
	if filters.StartDate != nil && customer.Date.Before(*filters.StartDate) {
		return false
	}

	if filters.EndDate != nil && customer.Date.After(*filters.EndDate) {
		return false
	}

	if filters.Plan != "" && customer.Plan != filters.Plan {
		return false
	}

	return true
}

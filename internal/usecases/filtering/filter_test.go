package filtering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func sampleCustomers() []domain.Customer {
	return []domain.Customer{
		{Date: date(2024, 1, 10), CustomerID: "CUST001", CustomerName: "Ana", Plan: "Basic"},
		{Date: date(2024, 2, 5), CustomerID: "CUST002", CustomerName: "Bruno", Plan: "Premium"},
		{Date: date(2024, 2, 20), CustomerID: "CUST003", CustomerName: "Carla", Plan: "Basic"},
		{Date: date(2024, 3, 1), CustomerID: "CUST004", CustomerName: "Davi", Plan: "Enterprise"},
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		filters *domain.DashboardFilters
		wantIDs []string
	}{
		{
			name:    "sem filtros retorna todos",
			filters: &domain.DashboardFilters{},
			wantIDs: []string{"CUST001", "CUST002", "CUST003", "CUST004"},
		},
		{
			name:    "filtros nulos equivalem a sem filtros",
			filters: nil,
			wantIDs: []string{"CUST001", "CUST002", "CUST003", "CUST004"},
		},
		{
			name:    "intervalo de datas inclusivo nas duas pontas",
			filters: &domain.DashboardFilters{StartDate: datePtr(2024, 2, 5), EndDate: datePtr(2024, 3, 1)},
			wantIDs: []string{"CUST002", "CUST003", "CUST004"},
		},
		{
			name:    "apenas data inicial",
			filters: &domain.DashboardFilters{StartDate: datePtr(2024, 2, 6)},
			wantIDs: []string{"CUST003", "CUST004"},
		},
		{
			name:    "apenas data final",
			filters: &domain.DashboardFilters{EndDate: datePtr(2024, 2, 5)},
			wantIDs: []string{"CUST001", "CUST002"},
		},
		{
			name:    "apenas plano",
			filters: &domain.DashboardFilters{Plan: "Basic"},
			wantIDs: []string{"CUST001", "CUST003"},
		},
		{
			name:    "datas e plano combinados com AND",
			filters: &domain.DashboardFilters{StartDate: datePtr(2024, 2, 1), EndDate: datePtr(2024, 3, 31), Plan: "Basic"},
			wantIDs: []string{"CUST003"},
		},
		{
			name:    "intervalo sem correspondência retorna vazio",
			filters: &domain.DashboardFilters{StartDate: datePtr(2025, 1, 1)},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleCustomers(), tt.filters)

			gotIDs := make([]string, 0, len(got))
			for _, customer := range got {
				gotIDs = append(gotIDs, customer.CustomerID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestApply_PreservaEntrada(t *testing.T) {
	customers := sampleCustomers()

	filtered := Apply(customers, &domain.DashboardFilters{Plan: "Premium"})
	require.Len(t, filtered, 1)

	// A entrada não é modificada pela filtragem
	assert.Equal(t, sampleCustomers(), customers)
}

func TestApply_ConjuntoVazio(t *testing.T) {
	filtered := Apply(nil, &domain.DashboardFilters{Plan: "Basic"})
	assert.Empty(t, filtered)
}

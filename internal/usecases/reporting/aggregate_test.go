package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/filtering"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func growthCustomers() []domain.Customer {
	return []domain.Customer{
		{Date: date(2024, 1, 1), CustomerID: "CUST001", CustomerName: "Ana", Plan: "Basic"},
		{Date: date(2024, 1, 15), CustomerID: "CUST002", CustomerName: "Bruno", Plan: "Premium"},
		{Date: date(2024, 2, 1), CustomerID: "CUST003", CustomerName: "Carla", Plan: "Basic"},
	}
}

func TestSummarize(t *testing.T) {
	now := date(2024, 2, 11)

	summary := Summarize(growthCustomers(), now)

	assert.Equal(t, 3, summary.TotalCustomers)

	// 3 clientes em 2 meses calendário (jan e fev)
	assert.Equal(t, 1.5, summary.AvgPerMonth)

	// Basic tem 2 clientes contra 1 do Premium
	assert.Equal(t, "Basic", summary.MostPopularPlan)

	require.NotNil(t, summary.LatestCustomer)
	assert.Equal(t, "CUST003", summary.LatestCustomer.CustomerID)

	require.NotNil(t, summary.DaysSinceLatest)
	assert.Equal(t, 10, *summary.DaysSinceLatest)
}

func TestSummarize_MesesSemCadastroContamNoDivisor(t *testing.T) {
	customers := []domain.Customer{
		{Date: date(2024, 1, 1), CustomerID: "CUST001", Plan: "Basic"},
		{Date: date(2024, 4, 1), CustomerID: "CUST002", Plan: "Basic"},
	}

	summary := Summarize(customers, date(2024, 4, 2))

	// Intervalo jan..abr cobre 4 meses calendário, mesmo sem cadastros em fev e mar
	assert.Equal(t, 0.5, summary.AvgPerMonth)
}

func TestSummarize_EmpateDePlanoVencePrimeiroVisto(t *testing.T) {
	customers := []domain.Customer{
		{Date: date(2024, 1, 1), CustomerID: "CUST001", Plan: "Premium"},
		{Date: date(2024, 1, 2), CustomerID: "CUST002", Plan: "Basic"},
		{Date: date(2024, 1, 3), CustomerID: "CUST003", Plan: "Basic"},
		{Date: date(2024, 1, 4), CustomerID: "CUST004", Plan: "Premium"},
	}

	summary := Summarize(customers, date(2024, 1, 5))
	assert.Equal(t, "Premium", summary.MostPopularPlan)
}

func TestSummarize_EmpateDeDataVenceUltimoVisto(t *testing.T) {
	customers := []domain.Customer{
		{Date: date(2024, 1, 10), CustomerID: "CUST001", Plan: "Basic"},
		{Date: date(2024, 1, 10), CustomerID: "CUST002", Plan: "Premium"},
	}

	summary := Summarize(customers, date(2024, 1, 11))

	require.NotNil(t, summary.LatestCustomer)
	assert.Equal(t, "CUST002", summary.LatestCustomer.CustomerID)
}

func TestSummarize_ConjuntoVazio(t *testing.T) {
	summary := Summarize(nil, date(2024, 1, 1))

	assert.Equal(t, 0, summary.TotalCustomers)
	assert.Zero(t, summary.AvgPerMonth)
	assert.Empty(t, summary.MostPopularPlan)
	assert.Nil(t, summary.LatestCustomer)
	assert.Nil(t, summary.DaysSinceLatest)
}

func TestPlanBreakdown(t *testing.T) {
	breakdown := PlanBreakdown(growthCustomers())

	require.Len(t, breakdown, 2)
	assert.Equal(t, domain.PlanCount{Plan: "Basic", Count: 2}, breakdown[0])
	assert.Equal(t, domain.PlanCount{Plan: "Premium", Count: 1}, breakdown[1])
}

func TestPlanBreakdown_SomaIgualAoTotal(t *testing.T) {
	customers := growthCustomers()

	total := 0
	for _, count := range PlanBreakdown(customers) {
		total += count.Count
	}

	assert.Equal(t, len(customers), total)
}

func TestPlanBreakdown_ConjuntoVazio(t *testing.T) {
	assert.Empty(t, PlanBreakdown(nil))
}

func TestTrailingSignupCounts(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	customers := []domain.Customer{
		{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), CustomerID: "CUST001"},
		{Date: date(2024, 1, 28), CustomerID: "CUST002"},
		{Date: date(2024, 1, 10), CustomerID: "CUST003"},
		{Date: date(2023, 12, 1), CustomerID: "CUST004"},
	}

	windows := TrailingSignupCounts(customers, now)

	assert.Equal(t, 1, windows.Last24h)
	assert.Equal(t, 2, windows.Last7d)
	assert.Equal(t, 3, windows.Last30d)
}

func TestTrailingSignupCounts_CorteInclusivo(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	customers := []domain.Customer{
		// Exatamente no instante de corte da janela de 7 dias
		{Date: date(2024, 1, 25), CustomerID: "CUST001"},
	}

	windows := TrailingSignupCounts(customers, now)
	assert.Equal(t, 1, windows.Last7d)
}

func TestCumulativeSeries(t *testing.T) {
	customers := append(growthCustomers(), domain.Customer{
		Date: date(2024, 1, 15), CustomerID: "CUST004", Plan: "Basic",
	})

	series := CumulativeSeries(customers)

	// Datas repetidas somam em um único ponto
	require.Len(t, series, 3)

	assert.Equal(t, domain.GrowthPoint{Date: date(2024, 1, 1), Signups: 1, Cumulative: 1}, series[0])
	assert.Equal(t, domain.GrowthPoint{Date: date(2024, 1, 15), Signups: 2, Cumulative: 3}, series[1])
	assert.Equal(t, domain.GrowthPoint{Date: date(2024, 2, 1), Signups: 1, Cumulative: 4}, series[2])
}

func TestCumulativeSeries_NaoDecrescente(t *testing.T) {
	series := CumulativeSeries(growthCustomers())

	for i := 1; i < len(series); i++ {
		assert.GreaterOrEqual(t, series[i].Cumulative, series[i-1].Cumulative)
	}

	// O último ponto acumula o conjunto inteiro
	require.NotEmpty(t, series)
	assert.Equal(t, 3, series[len(series)-1].Cumulative)
}

func TestMonthlySignups(t *testing.T) {
	monthly := MonthlySignups(growthCustomers())

	require.Len(t, monthly, 2)
	assert.Equal(t, domain.MonthlyCount{Month: "01-2024", Signups: 2}, monthly[0])
	assert.Equal(t, domain.MonthlyCount{Month: "02-2024", Signups: 1}, monthly[1])
}

func TestAggregation_FiltroSemCorrespondencia(t *testing.T) {
	filtered := filtering.Apply(growthCustomers(), &domain.DashboardFilters{Plan: "Enterprise"})
	require.Empty(t, filtered)

	// Conjunto vazio produz agregados zerados, nunca erro
	summary := Summarize(filtered, date(2024, 2, 11))
	assert.Equal(t, 0, summary.TotalCustomers)
	assert.Empty(t, PlanBreakdown(filtered))
	assert.Empty(t, CumulativeSeries(filtered))
	assert.Empty(t, MonthlySignups(filtered))
	assert.Equal(t, &domain.SignupWindows{}, TrailingSignupCounts(filtered, date(2024, 2, 11)))
}

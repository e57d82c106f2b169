package domain

import "time"

// DashboardFilters restringe um conjunto de registros antes da agregação.
// Datas formam um intervalo inclusivo [StartDate, EndDate]; Plan vazio
// significa todos os planos.
type DashboardFilters struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Plan      string     `json:"plan,omitempty"`
}

// PlanCount é a contagem de clientes de um plano específico.
type PlanCount struct {
	Plan  string `json:"plan"`
	Count int    `json:"count"`
}

// GrowthPoint é um ponto da série cumulativa de crescimento. Registros na
// mesma data são somados em um único ponto.
type GrowthPoint struct {
	Date       time.Time `json:"date"`
	Signups    int       `json:"signups"`
	Cumulative int       `json:"cumulative"`
}

// MonthlyCount é a contagem de cadastros de um mês calendário (formato mm-yyyy).
type MonthlyCount struct {
	Month   string `json:"month"`
	Signups int    `json:"signups"`
}

// SignupWindows contém as contagens de cadastros nas janelas móveis de
// 24h/7d/30d, todas calculadas contra a mesma referência de "agora".
type SignupWindows struct {
	Last24h int `json:"last_24h"`
	Last7d  int `json:"last_7d"`
	Last30d int `json:"last_30d"`
}

// CustomerSummary reúne os resumos escalares exibidos nos cartões do
// dashboard. Conjunto vazio produz valores zerados, nunca erro.
type CustomerSummary struct {
	TotalCustomers  int       `json:"total_customers"`
	AvgPerMonth     float64   `json:"avg_per_month"`
	MostPopularPlan string    `json:"most_popular_plan,omitempty"`
	LatestCustomer  *Customer `json:"latest_customer,omitempty"`
	DaysSinceLatest *int      `json:"days_since_latest,omitempty"`
}

// DashboardSummaryResponse é a resposta do endpoint de resumo do dashboard.
type DashboardSummaryResponse struct {
	Summary       *CustomerSummary  `json:"summary"`
	PlanBreakdown []PlanCount       `json:"plan_breakdown"`
	NewCustomers  *SignupWindows    `json:"new_customers"`
	Filters       *DashboardFilters `json:"filters"`
}

// GrowthResponse é a resposta do endpoint de séries de crescimento.
type GrowthResponse struct {
	Cumulative []GrowthPoint     `json:"cumulative"`
	Monthly    []MonthlyCount    `json:"monthly"`
	Filters    *DashboardFilters `json:"filters"`
}

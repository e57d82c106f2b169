package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/pkg/utils"
)

// Formato de exibição dos meses calendário (mm-yyyy)
const monthLayout = "01-2006"

// Summarize calcula os resumos escalares do conjunto. Determinístico para um
// mesmo conjunto e uma mesma referência de "agora"; conjunto vazio produz
// resumo zerado, nunca erro.
func Summarize(customers []domain.Customer, now time.Time) *domain.CustomerSummary {
	summary := &domain.CustomerSummary{
		TotalCustomers: len(customers),
	}

	if len(customers) == 0 {
		return summary
	}

	summary.AvgPerMonth = averagePerMonth(customers)
	summary.MostPopularPlan = mostPopularPlan(customers)

	latest := latestCustomer(customers)
	summary.LatestCustomer = latest

	days := int(now.Sub(latest.Date).Hours() / 24)
	summary.DaysSinceLatest = &days

	return summary
}

// averagePerMonth divide o total de clientes pelos meses calendário cobertos
// pelo intervalo de datas do conjunto. Meses sem cadastro dentro do
// intervalo contam no divisor.
func averagePerMonth(customers []domain.Customer) float64 {
	minDate := customers[0].Date
	maxDate := customers[0].Date

	for _, customer := range customers[1:] {
		if customer.Date.Before(minDate) {
			minDate = customer.Date
		}
		if customer.Date.After(maxDate) {
			maxDate = customer.Date
		}
	}

	months := (maxDate.Year()-minDate.Year())*12 + int(maxDate.Month()) - int(minDate.Month()) + 1

	return utils.RoundWithTwoDecimalPlace(float64(len(customers)) / float64(months))
}

// mostPopularPlan retorna o plano com mais clientes. Em caso de empate vence
// o plano que apareceu primeiro no conjunto.
func mostPopularPlan(customers []domain.Customer) string {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, customer := range customers {
		if _, seen := counts[customer.Plan]; !seen {
			order = append(order, customer.Plan)
		}
		counts[customer.Plan]++
	}

	var popular string
	var best int
	for _, plan := range order {
		if counts[plan] > best {
			popular = plan
			best = counts[plan]
		}
	}

	return popular
}

// latestCustomer retorna o cliente com a data mais recente. Em caso de
// empate vence o último visto na ordem do conjunto.
func latestCustomer(customers []domain.Customer) *domain.Customer {
	latest := customers[0]
	for _, customer := range customers[1:] {
		if !customer.Date.Before(latest.Date) {
			latest = customer
		}
	}

	return &latest
}

// PlanBreakdown conta os clientes por plano observado no conjunto, do plano
// mais popular para o menos popular. A soma das contagens é sempre igual ao
// total do conjunto.
func PlanBreakdown(customers []domain.Customer) []domain.PlanCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, customer := range customers {
		if _, seen := counts[customer.Plan]; !seen {
			order = append(order, customer.Plan)
		}
		counts[customer.Plan]++
	}

	breakdown := make([]domain.PlanCount, 0, len(order))
	for _, plan := range order {
		breakdown = append(breakdown, domain.PlanCount{Plan: plan, Count: counts[plan]})
	}

	// Empates mantêm a ordem de primeira aparição no conjunto
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Count > breakdown[j].Count
	})

	return breakdown
}

// TrailingSignupCounts conta os cadastros nas janelas móveis de 24h, 7 dias
// e 30 dias, todas calculadas contra a mesma referência de "agora". O
// instante de corte de cada janela é inclusivo.
func TrailingSignupCounts(customers []domain.Customer, now time.Time) *domain.SignupWindows {
	windows := &domain.SignupWindows{}

	cutoff24h := now.Add(-24 * time.Hour)
	cutoff7d := now.AddDate(0, 0, -7)
	cutoff30d := now.AddDate(0, 0, -30)

	for _, customer := range customers {
		if !customer.Date.Before(cutoff24h) {
			windows.Last24h++
		}
		if !customer.Date.Before(cutoff7d) {
			windows.Last7d++
		}
		if !customer.Date.Before(cutoff30d) {
			windows.Last30d++
		}
	}

	return windows
}

// CumulativeSeries calcula a série de total acumulado ordenada por data.
// Registros na mesma data são somados em um único ponto; a série resultante
// é não-decrescente por construção.
func CumulativeSeries(customers []domain.Customer) []domain.GrowthPoint {
	signups := make(map[time.Time]int)
	for _, customer := range customers {
		signups[customer.Date]++
	}

	dates := make([]time.Time, 0, len(signups))
	for date := range signups {
		dates = append(dates, date)
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	series := make([]domain.GrowthPoint, 0, len(dates))
	cumulative := 0
	for _, date := range dates {
		cumulative += signups[date]
		series = append(series, domain.GrowthPoint{
			Date:       date,
			Signups:    signups[date],
			Cumulative: cumulative,
		})
	}

	return series
}

// MonthlySignups conta os cadastros por mês calendário observado no
// conjunto, em ordem cronológica.
func MonthlySignups(customers []domain.Customer) []domain.MonthlyCount {
	counts := make(map[time.Time]int)
	for _, customer := range customers {
		month := time.Date(customer.Date.Year(), customer.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		counts[month]++
	}

	months := make([]time.Time, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j])
	})

	monthly := make([]domain.MonthlyCount, 0, len(months))
	for _, month := range months {
		monthly = append(monthly, domain.MonthlyCount{
			Month:   month.Format(monthLayout),
			Signups: counts[month],
		})
	}

	return monthly
}

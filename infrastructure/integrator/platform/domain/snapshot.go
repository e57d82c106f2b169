package platformdomain

// MetricsPerformanceResponse é a forma bruta do JSON retornado pelo endpoint
// /web/v1/metrics/performance da plataforma. A conversão para o tipo forte do
// domínio acontece na fronteira do adaptador.
type MetricsPerformanceResponse struct {
	TotalUsers    int             `json:"total_users"`
	ActiveUsers   int             `json:"active_users"`
	InactiveUsers int             `json:"inactive_users"`
	NewUsers      NewUsersPayload `json:"new_users"`
	UsersByType   map[string]int  `json:"users_by_type"`
}

// NewUsersPayload contém as contagens de novos cadastros por período.
type NewUsersPayload struct {
	Last24h int `json:"last_24h"`
	Last7d  int `json:"last_7d"`
	Last30d int `json:"last_30d"`
}

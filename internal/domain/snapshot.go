package domain

// NewUserCounts contém as contagens de novos cadastros por janela móvel.
type NewUserCounts struct {
	Last24h int `json:"last_24h"`
	Last7d  int `json:"last_7d"`
	Last30d int `json:"last_30d"`
}

// UserTypeCounts contém a quebra de usuários por tipo. O universo de tipos é
// conhecido de antemão, então tipos sem usuários aparecem com zero.
type UserTypeCounts struct {
	Customer int `json:"Customer"`
	Artist   int `json:"Artist"`
	Business int `json:"Business"`
}

// PerformanceSnapshot é o objeto de métricas agregadas retornado pela API da
// plataforma em uma única consulta. Os valores são exibidos como recebidos;
// o invariante active+inactive <= total é confiado à origem, não revalidado.
type PerformanceSnapshot struct {
	TotalUsers    int            `json:"total_users"`
	ActiveUsers   int            `json:"active_users"`
	InactiveUsers int            `json:"inactive_users"`
	NewUsers      NewUserCounts  `json:"new_users"`
	UsersByType   UserTypeCounts `json:"users_by_type"`
}

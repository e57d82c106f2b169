package domain

import "time"

// Customer representa um registro individual de cliente carregado do dataset.
// O conjunto de registros é imutável durante a sessão; filtros produzem
// visões derivadas, nunca alteram o conjunto original.
type Customer struct {
	Date         time.Time `json:"date"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	Plan         string    `json:"plan"`
}

package utils

import "time"

// ParseDate converte uma string yyyy-mm-dd em data. String vazia retorna nil,
// indicando filtro ausente.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

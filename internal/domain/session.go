package domain

import "time"

// DatasetSession é o estado de sessão que possui um conjunto de registros
// carregado. Cada sessão mantém uma cópia independente; não há
// compartilhamento entre sessões nem escrita após o carregamento.
type DatasetSession struct {
	ID        string     `json:"id"`
	Source    string     `json:"source"`
	LoadedAt  time.Time  `json:"loaded_at"`
	Customers []Customer `json:"-"`
}

// TotalRecords retorna o tamanho do conjunto carregado.
func (s *DatasetSession) TotalRecords() int {
	return len(s.Customers)
}

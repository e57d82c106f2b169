package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

// Colunas obrigatórias do arquivo, nesta ordem exata.
var expectedHeader = []string{"date", "customer_id", "customer_name", "email", "plan"}

// Classes de falha do adaptador de arquivo. Cada uma é reportada como erro
// distinto; nenhum valor é coagido silenciosamente.
var (
	ErrDatasetNotFound = errors.New("arquivo de dataset não encontrado")
	ErrSchemaMismatch  = errors.New("schema do dataset inválido")
	ErrInvalidDate     = errors.New("data inválida no dataset")
	ErrDuplicateID     = errors.New("customer_id duplicado no dataset")
)

type Loader interface {
	LoadCustomers(path string) ([]domain.Customer, error)
}

type CSVLoader struct{}

func NewCSVLoader() Loader {
	return &CSVLoader{}
}

// LoadCustomers lê o arquivo de registros de clientes com o schema fixo
// date,customer_id,customer_name,email,plan (uma linha de cabeçalho, uma
// linha por cliente). O conjunto retornado preserva a ordem do arquivo.
func (l *CSVLoader) LoadCustomers(path string) ([]domain.Customer, error) {
	if path == "" {
		return nil, errors.Wrap(ErrDatasetNotFound, "caminho do dataset não configurado")
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrDatasetNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(ErrSchemaMismatch, "não foi possível ler o cabeçalho")
	}

	if err := validateHeader(header); err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0)
	seenIDs := make(map[string]bool)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(ErrSchemaMismatch, err.Error())
		}

		date, err := time.Parse(time.DateOnly, row[0])
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidDate, "valor: %q", row[0])
		}

		// customer_id deve ser único em todo o conjunto
		if seenIDs[row[1]] {
			return nil, errors.Wrapf(ErrDuplicateID, "valor: %q", row[1])
		}
		seenIDs[row[1]] = true

		customers = append(customers, domain.Customer{
			Date:         date,
			CustomerID:   row[1],
			CustomerName: row[2],
			Email:        row[3],
			Plan:         row[4],
		})
	}

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"records": len(customers),
	}).Info("Dataset de clientes carregado com sucesso")

	return customers, nil
}

func validateHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return errors.Wrapf(ErrSchemaMismatch, "esperadas %d colunas, encontradas %d", len(expectedHeader), len(header))
	}

	for i, column := range expectedHeader {
		if header[i] != column {
			return errors.Wrapf(ErrSchemaMismatch, "coluna %d deveria ser %q, encontrada %q", i, column, header[i])
		}
	}

	return nil
}

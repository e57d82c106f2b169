package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "customers.csv")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func TestLoadCustomers(t *testing.T) {
	loader := NewCSVLoader()

	path := writeDataset(t, "date,customer_id,customer_name,email,plan\n"+
		"2024-01-01,CUST001,Ana Souza,ana@example.com,Basic\n"+
		"2024-01-15,CUST002,Bruno Lima,bruno@example.com,Premium\n"+
		"2024-02-01,CUST003,Carla Dias,carla@example.com,Basic\n")

	customers, err := loader.LoadCustomers(path)
	require.NoError(t, err)
	require.Len(t, customers, 3)

	// A ordem do arquivo é preservada
	assert.Equal(t, "CUST001", customers[0].CustomerID)
	assert.Equal(t, "Ana Souza", customers[0].CustomerName)
	assert.Equal(t, "ana@example.com", customers[0].Email)
	assert.Equal(t, "Basic", customers[0].Plan)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), customers[0].Date)
	assert.Equal(t, "CUST003", customers[2].CustomerID)
}

func TestLoadCustomers_OnlyHeader(t *testing.T) {
	loader := NewCSVLoader()

	path := writeDataset(t, "date,customer_id,customer_name,email,plan\n")

	customers, err := loader.LoadCustomers(path)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestLoadCustomers_FileNotFound(t *testing.T) {
	loader := NewCSVLoader()

	_, err := loader.LoadCustomers(filepath.Join(t.TempDir(), "nao-existe.csv"))
	assert.True(t, errors.Is(err, ErrDatasetNotFound))
}

func TestLoadCustomers_EmptyPath(t *testing.T) {
	loader := NewCSVLoader()

	_, err := loader.LoadCustomers("")
	assert.True(t, errors.Is(err, ErrDatasetNotFound))
}

func TestLoadCustomers_SchemaMismatch(t *testing.T) {
	loader := NewCSVLoader()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "coluna renomeada",
			content: "date,id,customer_name,email,plan\n2024-01-01,CUST001,Ana,ana@example.com,Basic\n",
		},
		{
			name:    "coluna ausente",
			content: "date,customer_id,customer_name,email\n2024-01-01,CUST001,Ana,ana@example.com\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDataset(t, tt.content)

			_, err := loader.LoadCustomers(path)
			assert.True(t, errors.Is(err, ErrSchemaMismatch))
		})
	}
}

func TestLoadCustomers_InvalidDate(t *testing.T) {
	loader := NewCSVLoader()

	path := writeDataset(t, "date,customer_id,customer_name,email,plan\n"+
		"01/02/2024,CUST001,Ana Souza,ana@example.com,Basic\n")

	_, err := loader.LoadCustomers(path)
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func TestLoadCustomers_DuplicateID(t *testing.T) {
	loader := NewCSVLoader()

	path := writeDataset(t, "date,customer_id,customer_name,email,plan\n"+
		"2024-01-01,CUST001,Ana Souza,ana@example.com,Basic\n"+
		"2024-01-02,CUST001,Outra Ana,outra@example.com,Premium\n")

	_, err := loader.LoadCustomers(path)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

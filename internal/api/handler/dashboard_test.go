package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/reporting"
)

func writeDataset(t *testing.T, rows string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "customers.csv")
	content := "date,customer_id,customer_name,email,plan\n" + rows
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newSessionStack(t *testing.T) (loading.Sessioner, reporting.SessionReporter, string) {
	t.Helper()

	path := writeDataset(t, "2024-01-01,CUST001,Ana Souza,ana@example.com,Basic\n"+
		"2024-02-01,CUST002,Bruno Lima,bruno@example.com,Premium\n")

	cfg := &config.Config{
		Dataset: config.Dataset{Path: path},
	}

	sessions := loading.NewService(dataset.NewCSVLoader(), cfg)
	reports := reporting.NewService(nil, sessions)

	return sessions, reports, path
}

func withSessionID(r *http.Request, sessionID string) *http.Request {
	params := httprouter.Params{{Key: "id", Value: sessionID}}
	return r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, params))
}

func TestOpenSession_UsaApenasCaminhoConfigurado(t *testing.T) {
	sessions, _, path := newSessionStack(t)

	// O corpo da requisição não escolhe a origem do dataset
	body := strings.NewReader(`{"path":"/etc/passwd"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/sessions", body)
	rec := httptest.NewRecorder()

	OpenSession(sessions).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, path, resp.Source)
	assert.Equal(t, 2, resp.TotalRecords)
}

func TestOpenSession_SemCaminhoConfigurado(t *testing.T) {
	sessions := loading.NewService(dataset.NewCSVLoader(), &config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/sessions", nil)
	rec := httptest.NewRecorder()

	OpenSession(sessions).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "CFG_002")
}

func TestExportSessionCustomers(t *testing.T) {
	sessions, reports, _ := newSessionStack(t)

	session, err := sessions.Open("")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/sessions/"+session.ID+"/customers/export", nil)
	rec := httptest.NewRecorder()

	ExportSessionCustomers(reports).ServeHTTP(rec, withSessionID(req, session.ID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	filename := fmt.Sprintf("customers_%s.csv", time.Now().Format("20060102"))
	assert.Equal(t, fmt.Sprintf("attachment; filename=%q", filename), rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3)

	// Colunas na ordem do dataset de origem; registros do mais recente para o mais antigo
	assert.Equal(t, "date,customer_id,customer_name,email,plan", lines[0])
	assert.Equal(t, "2024-02-01,CUST002,Bruno Lima,bruno@example.com,Premium", lines[1])
	assert.Equal(t, "2024-01-01,CUST001,Ana Souza,ana@example.com,Basic", lines[2])
}

func TestExportSessionCustomers_SessaoInexistente(t *testing.T) {
	_, reports, _ := newSessionStack(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/sessions/nao-existe/customers/export", nil)
	rec := httptest.NewRecorder()

	ExportSessionCustomers(reports).ServeHTTP(rec, withSessionID(req, "nao-existe"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SES_001")
}

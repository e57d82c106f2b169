package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/growth-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/growth-dashboard-api/pkg/log"
	"github.com/vfg2006/growth-dashboard-api/pkg/utils"
)

type SessionResponse struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	LoadedAt     time.Time `json:"loaded_at"`
	TotalRecords int       `json:"total_records"`
}

func newSessionResponse(session *domain.DatasetSession) SessionResponse {
	return SessionResponse{
		ID:           session.ID,
		Source:       session.Source,
		LoadedAt:     session.LoadedAt,
		TotalRecords: session.TotalRecords(),
	}
}

// OpenSession carrega o dataset de clientes e abre uma nova sessão. A origem
// vem exclusivamente da configuração do servidor; o cliente nunca escolhe o
// caminho do arquivo.
func OpenSession(service loading.Sessioner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session, err := service.Open("")
		if err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to open dataset session")

			writeDatasetError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"session_id":      session.ID,
			"session_records": session.TotalRecords(),
		}).Info("dashboard: dataset session opened")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newSessionResponse(session))
	})
}

// RefreshSession relê a origem da sessão, substituindo o conjunto inteiro
func RefreshSession(service loading.Sessioner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		session, err := service.Refresh(sessionID)
		if err != nil {
			logger.WithFields(log.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Error("dashboard: failed to refresh dataset session")

			writeDatasetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(newSessionResponse(session))
	})
}

// CloseSession descarta a sessão e seus registros
func CloseSession(service loading.Sessioner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Close(sessionID); err != nil {
			writeDatasetError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// GetSessionSummary retorna os cartões escalares, a distribuição por plano e
// as janelas móveis do conjunto filtrado
func GetSessionSummary(service reporting.SessionReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		response, err := service.GetSessionSummary(sessionID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Error("dashboard: failed to build session summary")

			writeDatasetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetSessionGrowth retorna a série cumulativa e as contagens mensais do
// conjunto filtrado
func GetSessionGrowth(service reporting.SessionReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		response, err := service.GetSessionGrowth(sessionID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Error("dashboard: failed to build growth series")

			writeDatasetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetSessionCustomers retorna a tabela filtrada, do registro mais recente
// para o mais antigo
func GetSessionCustomers(service reporting.SessionReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		customers, err := service.GetSessionCustomers(sessionID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Error("dashboard: failed to list session customers")

			writeDatasetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customers); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ExportSessionCustomers devolve o conjunto filtrado como arquivo CSV para
// download, nas mesmas colunas do dataset de origem
func ExportSessionCustomers(service reporting.SessionReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		customers, err := service.GetSessionCustomers(sessionID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Error("dashboard: failed to export session customers")

			writeDatasetError(w, err)
			return
		}

		filename := fmt.Sprintf("customers_%s.csv", time.Now().Format("20060102"))

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		writer := csv.NewWriter(w)

		if err := writer.Write([]string{"date", "customer_id", "customer_name", "email", "plan"}); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to write export header")
			return
		}

		for _, customer := range customers {
			record := []string{
				customer.Date.Format(time.DateOnly),
				customer.CustomerID,
				customer.CustomerName,
				customer.Email,
				customer.Plan,
			}
			if err := writer.Write(record); err != nil {
				logger.WithField("error", err.Error()).Error("dashboard: failed to write export record")
				return
			}
		}

		writer.Flush()
		if err := writer.Error(); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to flush export")
		}
	})
}

// parseFilters monta os filtros do dashboard a partir da query string. Datas
// inválidas interrompem a requisição com VAL_003.
func parseFilters(w http.ResponseWriter, r *http.Request) (*domain.DashboardFilters, bool) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start_date inválido", nil)
		return nil, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end_date inválido", nil)
		return nil, false
	}

	return &domain.DashboardFilters{
		StartDate: startDate,
		EndDate:   endDate,
		Plan:      r.URL.Query().Get("plan"),
	}, true
}

// writeDatasetError converte as classes de falha das sessões de dataset nos
// códigos padronizados da API
func writeDatasetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, loading.ErrSessionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão de dataset não encontrada", nil)

	case errors.Is(err, loading.ErrMissingPath), errors.Is(err, dataset.ErrDatasetNotFound):
		apiErrors.WriteError(w, apiErrors.ErrMissingDatasetPath, "Dataset de clientes não encontrado", nil)

	case errors.Is(err, dataset.ErrSchemaMismatch), errors.Is(err, dataset.ErrInvalidDate), errors.Is(err, dataset.ErrDuplicateID):
		apiErrors.WriteError(w, apiErrors.ErrDatasetSchema, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar sessão de dataset", nil)
	}
}

package handler

import (
	"net/http"

	"github.com/pkg/errors"
	platformdomain "github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/platform/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/growth-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/growth-dashboard-api/pkg/log"
)

// GetPerformanceSnapshot retorna o panorama pré-agregado de usuários da
// plataforma externa para os cartões de visão geral
func GetPerformanceSnapshot(service reporting.SnapshotReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("metrics: fetching performance snapshot from platform")

		snapshot, err := service.GetPerformanceSnapshot()
		if err != nil {
			logger.WithField("error", err.Error()).Error("metrics: failed to fetch performance snapshot")

			// Nenhum dado parcial é exibido; cada classe de falha tem seu código
			switch {
			case errors.Is(err, platformdomain.ErrMissingAPIKey):
				apiErrors.WriteError(w, apiErrors.ErrMissingAPIKey, "Chave da API da plataforma não configurada", nil)

			case errors.Is(err, platformdomain.ErrUnreachable):
				apiErrors.WriteError(w, apiErrors.ErrPlatformUnreachable, "Plataforma indisponível; tente novamente", nil)

			case errors.Is(err, platformdomain.ErrMalformedPayload):
				apiErrors.WriteError(w, apiErrors.ErrMalformedPayload, "Resposta da plataforma em formato inesperado", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter panorama de usuários", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithField("error", err.Error()).Error("metrics: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

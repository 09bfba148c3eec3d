package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

// CronJobTypeDatasetReload define o tipo de cron job que será executada
const (
	CronJobTypeDatasetReload = "dataset-reload"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DatasetReloadService *scheduler.DatasetReloadService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDatasetReload:
			if services.DatasetReloadService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga do dataset não disponível", nil)
				return
			}

			if err := services.DatasetReloadService.ReloadDataset(r.Context()); err != nil {
				writeReloadError(w, err)
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset-reload", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job executada com sucesso",
			"type":    cronType,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta da cron job")
		}
	}
}

// writeReloadError mapeia falhas estruturais da origem de dados para os
// códigos de erro da API.
func writeReloadError(w http.ResponseWriter, err error) {
	var schemaErr *domain.SchemaError
	if errors.As(err, &schemaErr) {
		apiErrors.WriteError(w, apiErrors.ErrDatasetSchema, schemaErr.Error(), map[string]any{
			"column": schemaErr.Column,
		})
		return
	}

	var dateErr *domain.DateParseError
	if errors.As(err, &dateErr) {
		apiErrors.WriteError(w, apiErrors.ErrDatasetDateParse, dateErr.Error(), map[string]any{
			"value": dateErr.Value,
			"row":   dateErr.Row,
		})
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao recarregar o dataset", nil)
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"dataset-reload": services.DatasetReloadService.Status(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Erro ao enviar status das cron jobs")
		}
	}
}

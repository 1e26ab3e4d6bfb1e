package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/seller-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/seller-metrics-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDatasetReload = "dataset-reload"
)

// ManualSyncer é implementado pelos agendadores que aceitam execução manual
type ManualSyncer interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DatasetReloadSyncService ManualSyncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDatasetReload:
			if services.DatasetReloadSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga de arquivos não disponível", nil)
				return
			}
			if err := services.DatasetReloadSyncService.TriggerManualSync(); err != nil {
				logger.WithError(err).Error("Erro ao iniciar recarga manual de arquivos")
				apiErrors.WriteError(w, apiErrors.ErrSchedulerFailed, err.Error(), nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset-reload", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DatasetReloadSyncService != nil {
			status[CronJobTypeDatasetReload] = services.DatasetReloadSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}

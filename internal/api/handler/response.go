package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/seller-metrics-api/infrastructure/ingestion"
	"github.com/vfg2006/seller-metrics-api/internal/usecases/metrics"
	"github.com/vfg2006/seller-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/seller-metrics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros dos serviços para o envelope padrão da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		schemaErr *metrics.SchemaError
		valueErr  *metrics.ValueError
		sizeErr   *http.MaxBytesError
	)

	switch {
	case errors.As(err, &schemaErr):
		apiErrors.WriteError(w, apiErrors.ErrMissingColumns, schemaErr.Error(), map[string]any{
			"dataset":         schemaErr.Dataset,
			"missing_columns": schemaErr.Missing,
		})
	case errors.As(err, &valueErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, valueErr.Error(), map[string]any{
			"dataset": valueErr.Dataset,
			"row":     valueErr.Row,
			"column":  valueErr.Column,
			"value":   valueErr.Value,
		})
	case errors.Is(err, reporting.ErrNoSnapshot):
		apiErrors.WriteError(w, apiErrors.ErrNoSnapshot, err.Error(), nil)
	case errors.Is(err, reporting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, metrics.ErrMissingDataset):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, ingestion.ErrUnsupportedFormat), errors.Is(err, ingestion.ErrEmptyTable):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, ingestion.ErrFileTooLarge), errors.As(err, &sizeErr):
		apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro inesperado ao processar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

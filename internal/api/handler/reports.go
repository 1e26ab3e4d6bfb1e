package handler

import (
	"net/http"

	"github.com/vfg2006/seller-metrics-api/internal/domain"
	"github.com/vfg2006/seller-metrics-api/internal/usecases/reporting"
)

// defaultEfficiencyPeriod é usado quando o parâmetro period não é informado
const defaultEfficiencyPeriod = domain.PeriodLater

// GetAttritionReport retorna os vendedores perdidos entre os dois períodos
func GetAttritionReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Attrition()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

// GetEfficiencyReport classifica os vendedores do período informado em ?period=
func GetEfficiencyReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := defaultEfficiencyPeriod
		if value := r.URL.Query().Get("period"); value != "" {
			parsed, ok := domain.ParsePeriod(value)
			if !ok {
				writeServiceError(w, r, reporting.ErrInvalidPeriod)
				return
			}
			period = parsed
		}

		report, err := service.Efficiency(period)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

func GetDeltaReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Delta()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

// GetDragSummary retorna a decomposição da perda de GMV entre churn e vendedores ativos
func GetDragSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Drag()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}

// Package metrics expõe os contadores Prometheus da aplicação
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "seller_metrics"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	// ReportsComputed conta os relatórios calculados por tipo e resultado
	ReportsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_computed_total",
		Help:      "Total de relatórios calculados.",
	}, []string{"report", "status"})

	// SnapshotLoads conta as tentativas de carregar um novo par de conjuntos de dados
	SnapshotLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_loads_total",
		Help:      "Total de carregamentos de conjuntos de dados.",
	}, []string{"source", "status"})

	// LoadedSellers mostra quantos vendedores distintos existem em cada período carregado
	LoadedSellers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "loaded_sellers",
		Help:      "Vendedores distintos no snapshot atual.",
	}, []string{"period"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status_code"})
)

// ObserveReport registra o resultado do cálculo de um relatório
func ObserveReport(report string, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	ReportsComputed.WithLabelValues(report, status).Inc()
}

// Handler retorna o handler HTTP de exposição das métricas
func Handler() http.Handler {
	return promhttp.Handler()
}

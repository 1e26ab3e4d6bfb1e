// Package metrics implementa o cálculo das métricas de vendedores entre dois períodos:
// churn, eficiência de GMV por clique e variação de GMV entre vendedores ativos.
package metrics

import (
	"github.com/vfg2006/seller-metrics-api/internal/domain"
)

// Settings é a configuração explícita do engine, resolvida uma vez no carregamento
type Settings struct {
	Columns    domain.ColumnMapping
	Thresholds domain.EfficiencyThresholds
}

// Engine calcula os relatórios a partir de tabelas já carregadas em memória.
// Não guarda estado entre chamadas.
type Engine struct {
	settings Settings
}

// NewEngine cria um novo engine de métricas
func NewEngine(settings Settings) *Engine {
	return &Engine{settings: settings}
}

// Settings retorna a configuração usada pelo engine
func (e *Engine) Settings() Settings {
	return e.settings
}

// Validate verifica se a tabela possui as colunas obrigatórias
func (e *Engine) Validate(table *domain.Table, withClicks bool) error {
	if table == nil {
		return ErrMissingDataset
	}
	_, err := resolveColumns(table, e.settings.Columns, withClicks)
	return err
}

// Aggregate valida a tabela e retorna um registro por vendedor, ordenado por seller id
func (e *Engine) Aggregate(table *domain.Table, withClicks bool) ([]domain.SellerPeriodRecord, error) {
	agg, err := e.aggregate(table, withClicks)
	if err != nil {
		return nil, err
	}
	return agg.records, nil
}

func (e *Engine) aggregate(table *domain.Table, withClicks bool) (*aggregation, error) {
	if table == nil {
		return nil, ErrMissingDataset
	}

	cols, err := resolveColumns(table, e.settings.Columns, withClicks)
	if err != nil {
		return nil, err
	}

	return aggregate(table, e.settings.Columns, cols)
}

// aggregatePair valida as duas tabelas antes de agregar qualquer uma delas
func (e *Engine) aggregatePair(earlier, later *domain.Table) (*aggregation, *aggregation, error) {
	if err := e.Validate(earlier, false); err != nil {
		return nil, nil, err
	}
	if err := e.Validate(later, false); err != nil {
		return nil, nil, err
	}

	earlierAgg, err := e.aggregate(earlier, false)
	if err != nil {
		return nil, nil, err
	}
	laterAgg, err := e.aggregate(later, false)
	if err != nil {
		return nil, nil, err
	}

	return earlierAgg, laterAgg, nil
}

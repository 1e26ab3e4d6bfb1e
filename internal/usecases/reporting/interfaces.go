package reporting

import (
	"github.com/vfg2006/seller-metrics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Reporter calcula os relatórios sobre o snapshot carregado no momento
type Reporter interface {
	// Snapshot retorna as informações do par de conjuntos de dados atual
	Snapshot() (*domain.SnapshotInfo, error)

	// Attrition retorna os vendedores do período anterior sem GMV no período posterior
	Attrition() (*domain.AttritionReport, error)

	// Efficiency classifica os vendedores de um período pelo GMV por clique
	Efficiency(period domain.Period) (*domain.EfficiencyReport, error)

	// Delta retorna a variação de GMV dos vendedores presentes nos dois períodos
	Delta() (*domain.DeltaReport, error)

	// Drag combina a perda por churn com a variação dos vendedores ativos
	Drag() (*domain.DragSummary, error)
}

// DatasetLoader substitui o par de conjuntos de dados usado pelos relatórios
type DatasetLoader interface {
	Load(source string, earlier, later *domain.Table) (*domain.SnapshotInfo, error)
}

// SnapshotService é a interface completa exposta pela API
type SnapshotService interface {
	Reporter
	DatasetLoader
}

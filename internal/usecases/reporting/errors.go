package reporting

import "errors"

var (
	// ErrNoSnapshot indica que nenhum par de conjuntos de dados foi carregado ainda
	ErrNoSnapshot = errors.New("nenhum conjunto de dados carregado")
	// ErrInvalidPeriod indica um período diferente de earlier/later
	ErrInvalidPeriod = errors.New("período inválido: use earlier ou later")
)

package metrics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/seller-metrics-api/internal/domain"
)

var (
	// ErrMissingDataset indica que uma das tabelas não foi informada
	ErrMissingDataset = errors.New("conjunto de dados não informado")
	// ErrInvalidValue indica uma célula numérica que não pôde ser interpretada
	ErrInvalidValue = errors.New("valor inválido")
)

// SchemaError indica colunas obrigatórias ausentes em um conjunto de dados.
// É sempre retornado antes de qualquer agregação.
type SchemaError struct {
	Dataset domain.Period
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset %s: colunas obrigatórias ausentes: %s", e.Dataset, strings.Join(e.Missing, ", "))
}

// ValueError identifica a célula que gerou ErrInvalidValue
type ValueError struct {
	Dataset domain.Period
	Row     int // linha de dados, começando em 1 (sem contar o cabeçalho)
	Column  string
	Value   string
	Reason  string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("dataset %s, linha %d, coluna %q: %s (%q)", e.Dataset, e.Row, e.Column, e.Reason, e.Value)
}

// Unwrap permite errors.Is(err, ErrInvalidValue)
func (e *ValueError) Unwrap() error {
	return ErrInvalidValue
}

// IsSchemaError verifica se o erro é (ou envolve) um SchemaError
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

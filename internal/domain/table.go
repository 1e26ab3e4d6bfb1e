// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "strings"

// Period identifica qual dos dois snapshots uma tabela representa
type Period string

const (
	PeriodEarlier Period = "earlier"
	PeriodLater   Period = "later"
)

// ParsePeriod converte o valor recebido (query string, config) em Period
func ParsePeriod(value string) (Period, bool) {
	switch Period(strings.ToLower(strings.TrimSpace(value))) {
	case PeriodEarlier:
		return PeriodEarlier, true
	case PeriodLater:
		return PeriodLater, true
	}
	return "", false
}

// Table representa um arquivo tabular já lido, sem interpretação das colunas
type Table struct {
	Label    Period     `json:"label"`
	FileName string     `json:"file_name"`
	Header   []string   `json:"header"`
	Rows     [][]string `json:"-"`
}

// ColumnIndex retorna a posição da coluna no cabeçalho, ignorando espaços nas bordas
func (t *Table) ColumnIndex(name string) int {
	name = strings.TrimSpace(name)
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// Cell retorna o valor da célula ou vazio quando a linha é mais curta que o cabeçalho
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// ColumnMapping define quais colunas do arquivo contêm os campos do vendedor
type ColumnMapping struct {
	SellerID string `json:"seller_id_column"`
	GMV      string `json:"gmv_column"`
	Clicks   string `json:"clicks_column"`
}

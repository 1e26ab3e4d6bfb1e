package metrics

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/seller-metrics-api/internal/domain"
)

var amountReplacer = strings.NewReplacer("$", "", " ", "", "\u00a0", "")

// Vírgula só é aceita como separador de milhar no formato americano (1,234,567.89)
var thousandsPattern = regexp.MustCompile(`^-?\d{1,3}(,\d{3})+(\.\d*)?$`)

var maxClicks = decimal.NewFromInt(math.MaxInt64)

// aggregation é o resultado da soma por vendedor de uma tabela
type aggregation struct {
	records []domain.SellerPeriodRecord // ordenados por seller id
	index   map[string]int
}

func (a *aggregation) get(sellerID string) (domain.SellerPeriodRecord, bool) {
	i, ok := a.index[sellerID]
	if !ok {
		return domain.SellerPeriodRecord{}, false
	}
	return a.records[i], true
}

// aggregate soma GMV e cliques de todas as linhas com o mesmo vendedor.
// Linhas sem identificador são ignoradas; células numéricas vazias valem zero.
func aggregate(table *domain.Table, mapping domain.ColumnMapping, cols resolvedColumns) (*aggregation, error) {
	sums := make(map[string]*domain.SellerPeriodRecord)

	for i := range table.Rows {
		sellerID := strings.TrimSpace(table.Cell(i, cols.sellerID))
		if sellerID == "" {
			continue
		}

		gmv, err := parseAmount(table.Cell(i, cols.gmv))
		if err != nil {
			return nil, valueError(table, i, mapping.GMV, cols.gmv, err)
		}

		var clicks int64
		if cols.clicks >= 0 {
			clicks, err = parseCount(table.Cell(i, cols.clicks))
			if err != nil {
				return nil, valueError(table, i, mapping.Clicks, cols.clicks, err)
			}
		}

		record, ok := sums[sellerID]
		if !ok {
			record = &domain.SellerPeriodRecord{SellerID: sellerID, GMV: decimal.Zero}
			sums[sellerID] = record
		}
		if clicks > math.MaxInt64-record.Clicks {
			return nil, valueError(table, i, mapping.Clicks, cols.clicks, parseFailure("soma de cliques do vendedor excede o limite"))
		}
		record.GMV = record.GMV.Add(gmv)
		record.Clicks += clicks
	}

	ids := make([]string, 0, len(sums))
	for id := range sums {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result := &aggregation{
		records: make([]domain.SellerPeriodRecord, len(ids)),
		index:   make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		result.records[i] = *sums[id]
		result.index[id] = i
	}

	return result, nil
}

type parseFailure string

func (p parseFailure) Error() string { return string(p) }

func parseAmount(raw string) (decimal.Decimal, error) {
	clean := amountReplacer.Replace(strings.TrimSpace(raw))
	if clean == "" {
		return decimal.Zero, nil
	}
	if strings.ContainsAny(clean, "eE") {
		return decimal.Zero, parseFailure("notação científica não suportada")
	}
	if strings.Contains(clean, ",") {
		if !thousandsPattern.MatchString(clean) {
			return decimal.Zero, parseFailure("vírgula fora da posição de separador de milhar")
		}
		clean = strings.ReplaceAll(clean, ",", "")
	}

	value, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, parseFailure("não é um número")
	}
	if value.IsNegative() {
		return decimal.Zero, parseFailure("valor negativo")
	}

	return value, nil
}

func parseCount(raw string) (int64, error) {
	value, err := parseAmount(raw)
	if err != nil {
		return 0, err
	}
	if !value.IsInteger() {
		return 0, parseFailure("quantidade de cliques não inteira")
	}
	if value.GreaterThan(maxClicks) {
		return 0, parseFailure("quantidade de cliques fora do intervalo")
	}
	return value.IntPart(), nil
}

func valueError(table *domain.Table, row int, column string, col int, cause error) error {
	return &ValueError{
		Dataset: table.Label,
		Row:     row + 1,
		Column:  column,
		Value:   table.Cell(row, col),
		Reason:  cause.Error(),
	}
}

package metrics

import (
	"github.com/vfg2006/seller-metrics-api/internal/domain"
)

// resolvedColumns guarda as posições das colunas já validadas; clicks é -1 quando não requerido
type resolvedColumns struct {
	sellerID int
	gmv      int
	clicks   int
}

// resolveColumns valida o cabeçalho da tabela contra o mapeamento configurado.
// Todas as colunas ausentes são reportadas juntas, na ordem do mapeamento.
func resolveColumns(table *domain.Table, mapping domain.ColumnMapping, withClicks bool) (resolvedColumns, error) {
	cols := resolvedColumns{
		sellerID: table.ColumnIndex(mapping.SellerID),
		gmv:      table.ColumnIndex(mapping.GMV),
		clicks:   -1,
	}

	var missing []string
	if cols.sellerID < 0 {
		missing = append(missing, mapping.SellerID)
	}
	if cols.gmv < 0 {
		missing = append(missing, mapping.GMV)
	}
	if withClicks {
		cols.clicks = table.ColumnIndex(mapping.Clicks)
		if cols.clicks < 0 {
			missing = append(missing, mapping.Clicks)
		}
	}

	if len(missing) > 0 {
		return cols, &SchemaError{Dataset: table.Label, Missing: missing}
	}

	return cols, nil
}

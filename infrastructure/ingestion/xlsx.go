package ingestion

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// parseXLSX lê a primeira planilha da pasta de trabalho com os valores brutos das células
func parseXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyTable
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "planilha %s", sheets[0])
	}

	return rows, nil
}

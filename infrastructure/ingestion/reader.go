// Package ingestion lê arquivos CSV e XLSX em tabelas de texto, sem interpretar as colunas
package ingestion

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/seller-metrics-api/internal/domain"
)

var (
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado (use .csv ou .xlsx)")
	ErrEmptyTable        = errors.New("arquivo sem cabeçalho")
	ErrFileTooLarge      = errors.New("arquivo maior que o limite permitido")
)

//go:generate mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks

// TableReader define a leitura de um conjunto de dados a partir de um arquivo
type TableReader interface {
	ReadFile(path string, label domain.Period) (*domain.Table, error)
	ReadTable(name string, r io.Reader, label domain.Period) (*domain.Table, error)
}

// Reader implementa TableReader para arquivos .csv e .xlsx
type Reader struct {
	maxBytes int64
}

// New cria um leitor; maxBytes <= 0 desativa o limite de tamanho
func New(maxBytes int64) *Reader {
	return &Reader{maxBytes: maxBytes}
}

// ReadFile abre o arquivo do caminho informado e o converte em tabela
func (r *Reader) ReadFile(path string, label domain.Period) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ingestion: erro ao abrir %s", path)
	}
	defer f.Close()

	return r.ReadTable(filepath.Base(path), f, label)
}

// ReadTable escolhe o formato pela extensão do nome do arquivo
func (r *Reader) ReadTable(name string, src io.Reader, label domain.Period) (*domain.Table, error) {
	data, err := r.readAll(src)
	if err != nil {
		return nil, errors.Wrapf(err, "ingestion: erro ao ler %s", name)
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		rows, err = parseCSV(data)
	case ".xlsx":
		rows, err = parseXLSX(bytes.NewReader(data))
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "ingestion: %s", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "ingestion: erro ao interpretar %s", name)
	}

	table, err := buildTable(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "ingestion: %s", name)
	}
	table.Label = label
	table.FileName = name

	return table, nil
}

func (r *Reader) readAll(src io.Reader) ([]byte, error) {
	if r.maxBytes <= 0 {
		return io.ReadAll(src)
	}

	data, err := io.ReadAll(io.LimitReader(src, r.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > r.maxBytes {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

// buildTable separa o cabeçalho, remove linhas em branco e completa linhas curtas
func buildTable(rows [][]string) (*domain.Table, error) {
	var header []string
	start := 0
	for ; start < len(rows); start++ {
		if !isBlank(rows[start]) {
			header = rows[start]
			break
		}
	}
	if header == nil {
		return nil, ErrEmptyTable
	}

	table := &domain.Table{
		Header: header,
		Rows:   make([][]string, 0, len(rows)-start-1),
	}

	for _, row := range rows[start+1:] {
		if isBlank(row) {
			continue
		}
		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

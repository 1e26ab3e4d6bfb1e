package domain

import "time"

type DatasetInfo struct {
	Label       Period `json:"label"`
	FileName    string `json:"file_name"`
	RowCount    int    `json:"row_count"`
	SellerCount int    `json:"seller_count"`
}

// SnapshotInfo descreve o par de tabelas carregado atualmente
type SnapshotInfo struct {
	ID       string      `json:"id"`
	LoadedAt time.Time   `json:"loaded_at"`
	Earlier  DatasetInfo `json:"earlier"`
	Later    DatasetInfo `json:"later"`
}

package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	snapshotIDLength = 12
)

// GenerateSnapshotID gera o identificador de um par de conjuntos de dados carregado
func GenerateSnapshotID() (string, error) {
	return gonanoid.Generate(characters, snapshotIDLength)
}

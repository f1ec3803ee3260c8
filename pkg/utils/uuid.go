package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	reportIDLength = 12
)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateReportID gera o identificador de um relatório de recomendações
func GenerateReportID() (string, error) {
	return gonanoid.Generate(characters, reportIDLength)
}

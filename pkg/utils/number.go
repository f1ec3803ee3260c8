package utils

import (
	"math"
	"strconv"
	"strings"
)

// RoundWithTwoDecimalPlace arredonda para duas casas com empate para o par (5.625 -> 5.62)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	if err != nil {
		return f
	}

	if rounded == 0 {
		// evita "-0" nas respostas
		return 0
	}

	return rounded
}

// FormatDecimal formata um número na menor representação, sempre com casa decimal
// (20 -> "20.0", 33.33 -> "33.33"). Valores a partir de 1e16 ou abaixo de 1e-4 usam
// notação científica (1e+16). Infinitos viram "inf"/"-inf".
func FormatDecimal(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	if abs := math.Abs(f); abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

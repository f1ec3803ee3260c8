package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrNoRecords indica que nenhum registro diário foi informado
	ErrNoRecords = errors.New("nenhum registro diário informado")
	// ErrInvalidRecord indica um registro diário fora do contrato de entrada
	ErrInvalidRecord = errors.New("registro diário inválido")
)

// DailyRecord representa a atividade de um dia de negócio
type DailyRecord struct {
	Date          string  `json:"date"`
	Sales         float64 `json:"sales"`
	Cost          float64 `json:"cost"`
	CustomerCount int     `json:"number_of_customers"`
}

// FallbackYesterday é usado como "ontem" quando só existe um registro.
// CustomerCount = 1 mantém o CAC de ontem finito.
var FallbackYesterday = DailyRecord{Sales: 0, Cost: 0, CustomerCount: 1}

// ValidationError descreve qual campo de qual registro violou o contrato
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: campo %s %s", ErrInvalidRecord.Error(), e.Field, e.Reason)
	}
	return fmt.Sprintf("%s (índice %d): campo %s %s", ErrInvalidRecord.Error(), e.Index, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRecord
}

// Validate verifica o registro na fronteira de ingestão
func (r DailyRecord) Validate() error {
	return r.validate(-1)
}

func (r DailyRecord) validate(index int) error {
	if r.Date == "" {
		return &ValidationError{Index: index, Field: "date", Reason: "é obrigatório"}
	}

	if _, err := time.Parse(time.DateOnly, r.Date); err != nil {
		return &ValidationError{Index: index, Field: "date", Reason: fmt.Sprintf("deve estar no formato YYYY-MM-DD (recebido %q)", r.Date)}
	}

	if math.IsNaN(r.Sales) || math.IsInf(r.Sales, 0) || r.Sales < 0 {
		return &ValidationError{Index: index, Field: "sales", Reason: "deve ser um número finito não negativo"}
	}

	if math.IsNaN(r.Cost) || math.IsInf(r.Cost, 0) || r.Cost < 0 {
		return &ValidationError{Index: index, Field: "cost", Reason: "deve ser um número finito não negativo"}
	}

	if r.CustomerCount < 0 {
		return &ValidationError{Index: index, Field: "number_of_customers", Reason: "não pode ser negativo"}
	}

	return nil
}

// ValidateRecords valida uma sequência de registros, parando no primeiro erro
func ValidateRecords(records []DailyRecord) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	for i, record := range records {
		if err := record.validate(i); err != nil {
			return err
		}
	}

	return nil
}

// ValidateUniqueDates rejeita a sequência que repete uma data; o índice é o da repetição
func ValidateUniqueDates(records []DailyRecord) error {
	seen := make(map[string]int, len(records))

	for i, record := range records {
		if first, ok := seen[record.Date]; ok {
			return &ValidationError{Index: i, Field: "date", Reason: fmt.Sprintf("repete a data do índice %d", first)}
		}
		seen[record.Date] = i
	}

	return nil
}

// DailyRecordInput é o formato recebido pela API. Campos ausentes ficam nil,
// o que permite distinguir "não informado" de zero.
type DailyRecordInput struct {
	Date          *string  `json:"date"`
	Sales         *float64 `json:"sales"`
	Cost          *float64 `json:"cost"`
	CustomerCount *int     `json:"number_of_customers"`
}

// RecordsFromInput converte a entrada da API, exigindo todos os campos de cada registro
func RecordsFromInput(inputs []DailyRecordInput) ([]DailyRecord, error) {
	records := make([]DailyRecord, 0, len(inputs))

	for i, in := range inputs {
		switch {
		case in.Date == nil:
			return nil, &ValidationError{Index: i, Field: "date", Reason: "é obrigatório"}
		case in.Sales == nil:
			return nil, &ValidationError{Index: i, Field: "sales", Reason: "é obrigatório"}
		case in.Cost == nil:
			return nil, &ValidationError{Index: i, Field: "cost", Reason: "é obrigatório"}
		case in.CustomerCount == nil:
			return nil, &ValidationError{Index: i, Field: "number_of_customers", Reason: "é obrigatório"}
		}

		records = append(records, DailyRecord{
			Date:          *in.Date,
			Sales:         *in.Sales,
			Cost:          *in.Cost,
			CustomerCount: *in.CustomerCount,
		})
	}

	return records, nil
}

// ParsedDate retorna a data do registro como time.Time
func (r DailyRecord) ParsedDate() (time.Time, error) {
	return time.Parse(time.DateOnly, r.Date)
}

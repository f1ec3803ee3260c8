// Package csvloader lê registros diários de arquivos CSV e os valida antes do pipeline
package csvloader

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/internal/domain"
)

const (
	ColumnDate      = "date"
	ColumnSales     = "sales"
	ColumnCost      = "cost"
	ColumnCustomers = "number_of_customers"
)

var requiredColumns = []string{ColumnDate, ColumnSales, ColumnCost, ColumnCustomers}

// ErrMissingColumn indica que o cabeçalho não possui uma coluna obrigatória
var ErrMissingColumn = errors.New("coluna obrigatória ausente no CSV")

// Load abre o arquivo e delega para Read
func Load(path string) ([]domain.DailyRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir arquivo %s", path)
	}
	defer file.Close()

	records, err := Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"records": len(records),
	}).Info("csvloader: registros diários carregados")

	return records, nil
}

// Read interpreta o CSV com cabeçalho e devolve os registros em ordem cronológica.
// Qualquer linha inválida interrompe a leitura com erro indicando a linha.
func Read(r io.Reader) ([]domain.DailyRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, domain.ErrNoRecords
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho")
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]domain.DailyRecord, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha")
		}

		line, _ := reader.FieldPos(0)

		record, err := parseRow(row, columns)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}

		if err := record.Validate(); err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, domain.ErrNoRecords
	}

	// datas YYYY-MM-DD ordenam corretamente como texto
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})

	return records, nil
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, errors.Wrap(ErrMissingColumn, name)
		}
	}

	return columns, nil
}

func parseRow(row []string, columns map[string]int) (domain.DailyRecord, error) {
	field := func(name string) string {
		return strings.TrimSpace(row[columns[name]])
	}

	sales, err := strconv.ParseFloat(field(ColumnSales), 64)
	if err != nil {
		return domain.DailyRecord{}, &domain.ValidationError{Index: -1, Field: ColumnSales, Reason: "não é um número"}
	}

	cost, err := strconv.ParseFloat(field(ColumnCost), 64)
	if err != nil {
		return domain.DailyRecord{}, &domain.ValidationError{Index: -1, Field: ColumnCost, Reason: "não é um número"}
	}

	customers, err := parseCustomers(field(ColumnCustomers))
	if err != nil {
		return domain.DailyRecord{}, &domain.ValidationError{Index: -1, Field: ColumnCustomers, Reason: "não é um número inteiro"}
	}

	return domain.DailyRecord{
		Date:          field(ColumnDate),
		Sales:         sales,
		Cost:          cost,
		CustomerCount: customers,
	}, nil
}

// parseCustomers aceita "100" e também "100.0", formato comum em planilhas exportadas
func parseCustomers(value string) (int, error) {
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != float64(int(f)) {
		return 0, errors.Errorf("valor inválido %q", value)
	}

	return int(f), nil
}

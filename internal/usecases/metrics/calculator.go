// Package metrics calcula as métricas dia contra dia a partir dos registros diários
package metrics

import (
	"math"

	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
)

// Calculate compara o último registro ("hoje") com o penúltimo ("ontem").
// Com um único registro, ontem é domain.FallbackYesterday.
// Denominadores zerados não geram erro: variação vira 0 e CAC vira +Inf.
func Calculate(records []domain.DailyRecord) (*domain.MetricsSnapshot, error) {
	if len(records) == 0 {
		return nil, domain.ErrNoRecords
	}

	today := records[len(records)-1]
	yesterday := domain.FallbackYesterday
	if len(records) > 1 {
		yesterday = records[len(records)-2]
	}

	todayCAC := CAC(today)
	yesterdayCAC := CAC(yesterday)

	return &domain.MetricsSnapshot{
		Profit:         utils.RoundWithTwoDecimalPlace(today.Sales - today.Cost),
		SalesPctChange: utils.RoundWithTwoDecimalPlace(PercentChange(today.Sales, yesterday.Sales)),
		CostPctChange:  utils.RoundWithTwoDecimalPlace(PercentChange(today.Cost, yesterday.Cost)),
		TodayCAC:       utils.RoundWithTwoDecimalPlace(todayCAC),
		YesterdayCAC:   utils.RoundWithTwoDecimalPlace(yesterdayCAC),
		CACIncreasePct: utils.RoundWithTwoDecimalPlace(cacIncrease(todayCAC, yesterdayCAC)),
	}, nil
}

// PercentChange retorna a variação percentual de previous para current, ou 0 se previous for zero
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// CAC é o custo de aquisição por cliente; +Inf quando não houve clientes
func CAC(record domain.DailyRecord) float64 {
	if record.CustomerCount == 0 {
		return math.Inf(1)
	}
	return record.Cost / float64(record.CustomerCount)
}

// cacIncrease mantém o comportamento histórico: CAC de ontem infinito resulta em 0,
// mesmo que o CAC de hoje seja finito.
func cacIncrease(todayCAC, yesterdayCAC float64) float64 {
	if math.IsInf(yesterdayCAC, 0) {
		return 0
	}
	return PercentChange(todayCAC, yesterdayCAC)
}

// Package pipeline encadeia ingestão, cálculo de métricas e recomendações
package pipeline

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/advising"
	"github.com/vfg2006/business-advisor-api/internal/usecases/metrics"
)

// Run executa as três etapas em sequência, cada uma recebendo a saída da anterior
func Run(records []domain.DailyRecord) (*domain.PipelineResult, error) {
	rawData, err := Ingest(records)
	if err != nil {
		return nil, err
	}

	logrus.WithField("records", len(rawData)).Debug("pipeline: dados de entrada recebidos")

	processed, err := metrics.Calculate(rawData)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"profit":           processed.Profit,
		"sales_pct_change": processed.SalesPctChange,
		"cost_pct_change":  processed.CostPctChange,
		"today_cac":        processed.TodayCAC,
		"yesterday_cac":    processed.YesterdayCAC,
		"cac_increase_pct": processed.CACIncreasePct,
	}).Debug("pipeline: métricas calculadas")

	recommendation := advising.Recommend(*processed)

	logrus.WithFields(logrus.Fields{
		"profit_or_loss":  recommendation.ProfitOrLoss,
		"alerts":          len(recommendation.Alerts),
		"recommendations": len(recommendation.Recommendations),
	}).Debug("pipeline: recomendações geradas")

	return &domain.PipelineResult{
		RawData:        rawData,
		Processed:      processed,
		Recommendation: &recommendation,
	}, nil
}

// Ingest valida os registros e devolve uma cópia própria da sequência
func Ingest(records []domain.DailyRecord) ([]domain.DailyRecord, error) {
	if err := domain.ValidateRecords(records); err != nil {
		return nil, err
	}

	rawData := make([]domain.DailyRecord, len(records))
	copy(rawData, records)

	return rawData, nil
}

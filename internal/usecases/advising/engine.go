// Package advising transforma métricas em status, alertas e recomendações
package advising

import (
	"fmt"

	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
)

// Limites fixos das regras
const (
	CACIncreaseThreshold = 20.0
	SalesGrowthThreshold = 0.0
)

const (
	AlertNegativeProfit = "Negative profit detected."
	alertCACIncrease    = "CAC increased by %s%%."

	RecommendationReduceCosts      = "Reduce costs if profit is negative."
	RecommendationReviewMarketing  = "Review marketing campaigns if CAC increased significantly."
	RecommendationIncreaseAdBudget = "Consider increasing advertising budget if sales are growing."
)

// rule pode adicionar um alerta e/ou uma recomendação
type rule struct {
	applies        func(m domain.MetricsSnapshot) bool
	alert          func(m domain.MetricsSnapshot) string
	recommendation string
}

// rules são avaliadas sempre nesta ordem
var rules = []rule{
	{
		applies:        func(m domain.MetricsSnapshot) bool { return m.Profit < 0 },
		alert:          func(domain.MetricsSnapshot) string { return AlertNegativeProfit },
		recommendation: RecommendationReduceCosts,
	},
	{
		applies:        func(m domain.MetricsSnapshot) bool { return m.CACIncreasePct > CACIncreaseThreshold },
		alert:          func(m domain.MetricsSnapshot) string { return CACIncreaseAlert(m.CACIncreasePct) },
		recommendation: RecommendationReviewMarketing,
	},
	{
		applies:        func(m domain.MetricsSnapshot) bool { return m.SalesPctChange > SalesGrowthThreshold },
		recommendation: RecommendationIncreaseAdBudget,
	},
}

// Recommend aplica as regras sobre as métricas e devolve um novo resultado
func Recommend(m domain.MetricsSnapshot) domain.AdvisoryResult {
	result := domain.AdvisoryResult{
		ProfitOrLoss:    domain.StatusLoss,
		Alerts:          []string{},
		Recommendations: []string{},
	}

	if m.Profit >= 0 {
		result.ProfitOrLoss = domain.StatusProfit
	}

	for _, r := range rules {
		if !r.applies(m) {
			continue
		}

		if r.alert != nil {
			result.Alerts = append(result.Alerts, r.alert(m))
		}

		if r.recommendation != "" {
			result.Recommendations = append(result.Recommendations, r.recommendation)
		}
	}

	return result
}

// CACIncreaseAlert monta o alerta de aumento de CAC com o percentual arredondado
func CACIncreaseAlert(pct float64) string {
	return fmt.Sprintf(alertCACIncrease, utils.FormatDecimal(pct))
}

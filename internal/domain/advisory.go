package domain

import "time"

// Status indica se o dia fechou com lucro ou prejuízo
type Status string

const (
	StatusProfit Status = "profit"
	StatusLoss   Status = "loss"
)

// AdvisoryResult é o resultado final: status, alertas e recomendações.
// A ordem dos alertas e recomendações segue a ordem de avaliação das regras.
type AdvisoryResult struct {
	ProfitOrLoss    Status   `json:"profit_or_loss"`
	Alerts          []string `json:"alerts"`
	Recommendations []string `json:"recommendations"`
}

// PipelineResult é o estado terminal do pipeline com as três etapas preenchidas
type PipelineResult struct {
	RawData        []DailyRecord    `json:"raw_data"`
	Processed      *MetricsSnapshot `json:"processed"`
	Recommendation *AdvisoryResult  `json:"recommendation"`
}

// AdvisoryReport é um resultado do pipeline persistido para uma conta
type AdvisoryReport struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Date        time.Time       `json:"date"`
	Metrics     MetricsSnapshot `json:"metrics"`
	Advisory    AdvisoryResult  `json:"advisory"`
	RecordCount int             `json:"record_count"`
	CreatedAt   time.Time       `json:"created_at"`
}

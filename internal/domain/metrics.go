package domain

import (
	"fmt"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MetricsSnapshot contém as métricas dia contra dia de uma execução.
// Todos os valores já vêm arredondados em duas casas decimais.
type MetricsSnapshot struct {
	Profit         float64 `json:"profit"`
	SalesPctChange float64 `json:"sales_pct_change"`
	CostPctChange  float64 `json:"cost_pct_change"`
	TodayCAC       float64 `json:"today_cac"`
	YesterdayCAC   float64 `json:"yesterday_cac"`
	CACIncreasePct float64 `json:"cac_increase_pct"`
}

// metricValue serializa infinitos como string, já que JSON não possui esse literal
type metricValue float64

const (
	positiveInfinity = "Infinity"
	negativeInfinity = "-Infinity"
)

func (v metricValue) MarshalJSON() ([]byte, error) {
	f := float64(v)
	switch {
	case math.IsInf(f, 1):
		return []byte(strconv.Quote(positiveInfinity)), nil
	case math.IsInf(f, -1):
		return []byte(strconv.Quote(negativeInfinity)), nil
	case math.IsNaN(f):
		return nil, fmt.Errorf("métrica inválida: NaN")
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

func (v *metricValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case positiveInfinity:
			*v = metricValue(math.Inf(1))
		case negativeInfinity:
			*v = metricValue(math.Inf(-1))
		default:
			return fmt.Errorf("métrica inválida: %q", s)
		}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = metricValue(f)
	return nil
}

type metricsSnapshotJSON struct {
	Profit         metricValue `json:"profit"`
	SalesPctChange metricValue `json:"sales_pct_change"`
	CostPctChange  metricValue `json:"cost_pct_change"`
	TodayCAC       metricValue `json:"today_cac"`
	YesterdayCAC   metricValue `json:"yesterday_cac"`
	CACIncreasePct metricValue `json:"cac_increase_pct"`
}

func (m MetricsSnapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(metricsSnapshotJSON{
		Profit:         metricValue(m.Profit),
		SalesPctChange: metricValue(m.SalesPctChange),
		CostPctChange:  metricValue(m.CostPctChange),
		TodayCAC:       metricValue(m.TodayCAC),
		YesterdayCAC:   metricValue(m.YesterdayCAC),
		CACIncreasePct: metricValue(m.CACIncreasePct),
	})
}

func (m *MetricsSnapshot) UnmarshalJSON(data []byte) error {
	var aux metricsSnapshotJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*m = MetricsSnapshot{
		Profit:         float64(aux.Profit),
		SalesPctChange: float64(aux.SalesPctChange),
		CostPctChange:  float64(aux.CostPctChange),
		TodayCAC:       float64(aux.TodayCAC),
		YesterdayCAC:   float64(aux.YesterdayCAC),
		CACIncreasePct: float64(aux.CACIncreasePct),
	}
	return nil
}

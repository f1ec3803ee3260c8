package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsSnapshot_JSON(t *testing.T) {
	t.Run("valores finitos", func(t *testing.T) {
		m := MetricsSnapshot{
			Profit:         1000,
			SalesPctChange: 20,
			CostPctChange:  33.33,
			TodayCAC:       20,
			YesterdayCAC:   15,
			CACIncreasePct: 33.33,
		}

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"profit": 1000,
			"sales_pct_change": 20,
			"cost_pct_change": 33.33,
			"today_cac": 20,
			"yesterday_cac": 15,
			"cac_increase_pct": 33.33
		}`, string(data))
	})

	t.Run("infinito vira string e volta", func(t *testing.T) {
		m := MetricsSnapshot{Profit: -10, TodayCAC: math.Inf(1), YesterdayCAC: 0.5, CACIncreasePct: math.Inf(1)}

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"today_cac":"Infinity"`)

		var decoded MetricsSnapshot
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, math.IsInf(decoded.TodayCAC, 1))
		assert.True(t, math.IsInf(decoded.CACIncreasePct, 1))
		assert.Equal(t, -10.0, decoded.Profit)
		assert.Equal(t, 0.5, decoded.YesterdayCAC)
	})

	t.Run("NaN não é serializável", func(t *testing.T) {
		_, err := json.Marshal(MetricsSnapshot{Profit: math.NaN()})
		assert.Error(t, err)
	})

	t.Run("string desconhecida é rejeitada", func(t *testing.T) {
		var decoded MetricsSnapshot
		assert.Error(t, json.Unmarshal([]byte(`{"profit":"lots"}`), &decoded))
	})
}

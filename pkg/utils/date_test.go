package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOrToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	t.Run("sem data usa o dia atual sem horário", func(t *testing.T) {
		got, err := ParseDateOrToday("", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("data informada", func(t *testing.T) {
		got, err := ParseDateOrToday("2024-01-02", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("formato inválido", func(t *testing.T) {
		_, err := ParseDateOrToday("02/01/2024", now)
		assert.Error(t, err)
	})
}

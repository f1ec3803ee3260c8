package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyJson(t *testing.T) {
	t.Run("struct é indentado com tab", func(t *testing.T) {
		out, err := PrettyJson(map[string]int{"a": 1})
		require.NoError(t, err)
		assert.Equal(t, "{\n\t\"a\": 1\n}", out)
	})

	t.Run("bytes são decodificados antes", func(t *testing.T) {
		out, err := PrettyJson([]byte(`{"a":1}`))
		require.NoError(t, err)
		assert.Equal(t, "{\n\t\"a\": 1\n}", out)
	})

	t.Run("bytes inválidos retornam erro", func(t *testing.T) {
		_, err := PrettyJson([]byte(`{`))
		assert.Error(t, err)
	})
}

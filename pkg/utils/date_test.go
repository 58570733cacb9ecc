package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "Meio do mês",
			input:    time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC),
			expected: "2025-06",
		},
		{
			name:     "Primeiro dia do mês",
			input:    time.Date(2025, 7, 1, 5, 0, 0, 0, time.UTC),
			expected: "2025-06",
		},
		{
			name:     "Dia 31 não pode normalizar para o próprio mês",
			input:    time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			expected: "2025-02",
		},
		{
			name:     "Dia 31 de maio volta para abril",
			input:    time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC),
			expected: "2025-04",
		},
		{
			name:     "Dia 29 em março de ano não bissexto volta para fevereiro",
			input:    time.Date(2025, 3, 29, 12, 0, 0, 0, time.UTC),
			expected: "2025-02",
		},
		{
			name:     "Virada de ano",
			input:    time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC),
			expected: "2024-12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PreviousPeriod(tt.input))
		})
	}
}

func TestPeriodBounds(t *testing.T) {
	start, end, err := PeriodBounds("2025-06")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), end)

	_, _, err = PeriodBounds("junho de 2025")
	assert.Error(t, err)
}

func TestPeriodOf(t *testing.T) {
	assert.Equal(t, "2025-06", PeriodOf(time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC)))
}

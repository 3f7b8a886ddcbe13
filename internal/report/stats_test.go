package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/report"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, report.Mean(nil))
	assert.Equal(t, 2.0, report.Mean([]float64{1, 2, 3}))
}

func TestPopStdDev(t *testing.T) {
	// Population stddev of {2,4,4,4,5,5,7,9} is exactly 2.
	assert.InDelta(t, 2.0, report.PopStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
	assert.Equal(t, 0.0, report.PopStdDev([]float64{5, 5, 5}))
}

func TestPearson(t *testing.T) {
	t.Run("perfect positive", func(t *testing.T) {
		r, ok := report.Pearson([]float64{1, 2, 3}, []float64{10, 20, 30})
		assert.True(t, ok)
		assert.InDelta(t, 1.0, r, 1e-9)
	})

	t.Run("perfect negative", func(t *testing.T) {
		r, ok := report.Pearson([]float64{1, 2, 3}, []float64{30, 20, 10})
		assert.True(t, ok)
		assert.InDelta(t, -1.0, r, 1e-9)
	})

	t.Run("zero variance is undefined", func(t *testing.T) {
		_, ok := report.Pearson([]float64{5, 5, 5}, []float64{10, 20, 30})
		assert.False(t, ok)
		_, ok = report.Pearson([]float64{1, 2, 3}, []float64{7, 7, 7})
		assert.False(t, ok)
	})

	t.Run("single point is undefined", func(t *testing.T) {
		_, ok := report.Pearson([]float64{1}, []float64{2})
		assert.False(t, ok)
	})

	t.Run("mismatched lengths are undefined", func(t *testing.T) {
		_, ok := report.Pearson([]float64{1, 2}, []float64{1})
		assert.False(t, ok)
	})
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0.00%", report.FormatPercent(0))
	assert.Equal(t, "33.33%", report.FormatPercent(33.333333))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, report.Round2(1.234))
	assert.Equal(t, 1.24, report.Round2(1.236))
}

package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowth(t *testing.T) {
	assert.Equal(t, 50.0, Growth(150, 100))
	assert.Equal(t, -25.0, Growth(75, 100))
	assert.Equal(t, 100.0, Growth(10, 0))
	assert.Equal(t, 0.0, Growth(0, 0))
	assert.Equal(t, -100.0, Growth(-10, 0))
}

func TestGrowth_NegativeBaseline(t *testing.T) {
	assert.Equal(t, 50.0, Growth(-50, -100))
	assert.Equal(t, -100.0, Growth(-200, -100))
	assert.Equal(t, 200.0, Growth(100, -100))
}

func TestGrowth_NeverInfOrNaN(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, 1e9}
	for _, cur := range values {
		for _, prev := range values {
			g := Growth(cur, prev)
			assert.False(t, math.IsInf(g, 0) || math.IsNaN(g), "cur=%v prev=%v", cur, prev)
		}
	}
}

func TestFormatChange(t *testing.T) {
	assert.Equal(t, "+12.5%", FormatChange(12.5))
	assert.Equal(t, "-3.0%", FormatChange(-3))
	assert.Equal(t, "+0.0%", FormatChange(0))
}

func TestTrendMatchesGrowthSign(t *testing.T) {
	pairs := [][2]float64{{100, 50}, {50, 100}, {0, 0}, {10, 0}, {0, 10}, {100, 100}, {-50, -100}, {-100, 0}}
	for _, p := range pairs {
		m := NewCurrencyMetric(p[0], p[1])
		g := Growth(p[0], p[1])
		require.NotNil(t, m.Change)
		assert.Equal(t, roundChange(g) >= 0, m.Trend == TrendUp, "cur=%v prev=%v", p[0], p[1])
		assert.Equal(t, FormatChange(roundChange(g)), *m.Change)
		assert.Equal(t, p[0], m.RawValue)
	}
}

func TestNewCountMetric(t *testing.T) {
	m := NewCountMetric(1234, 1000)
	assert.Equal(t, "1.234", m.Value)
	assert.Equal(t, "+23.4%", *m.Change)
	assert.Equal(t, 1234.0, m.RawValue)
}

func TestNewPercentMetric_UsesPoints(t *testing.T) {
	m := NewPercentMetric(4.5, 5)
	assert.Equal(t, "4.5%", m.Value)
	assert.Equal(t, "-0.5%", *m.Change)
	assert.Equal(t, TrendDown, m.Trend)
}

func TestNewStaticMetric(t *testing.T) {
	m := NewStaticMetric("Rp0", 0)
	assert.Nil(t, m.Change)
	assert.Equal(t, TrendUp, m.Trend)
}

func TestNewMetric_TinyDropRoundsToFlat(t *testing.T) {
	m := NewCurrencyMetric(99996, 100000)
	require.NotNil(t, m.Change)
	assert.Equal(t, "+0.0%", *m.Change)
	assert.Equal(t, TrendUp, m.Trend)

	m = NewCurrencyMetric(99900, 100000)
	assert.Equal(t, "-0.1%", *m.Change)
	assert.Equal(t, TrendDown, m.Trend)
}

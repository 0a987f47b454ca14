// Package report calcula as métricas dos painéis a partir de agregados brutos.
package report

import (
	"fmt"
	"math"
)

// Trend é a direção da variação
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// StatMetric separa o valor formatado para exibição do valor bruto usado em ordenação
type StatMetric struct {
	Value    string  `json:"value"`
	Change   *string `json:"change,omitempty"`
	Trend    Trend   `json:"trend"`
	RawValue float64 `json:"rawValue"`
}

// Growth retorna (current-previous)/|previous|*100, então a melhora de um valor
// negativo também cresce. Com previous zero retorna 100, -100 ou 0 conforme o sinal de current.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		switch {
		case current > 0:
			return 100
		case current < 0:
			return -100
		}
		return 0
	}
	return (current - previous) / math.Abs(previous) * 100
}

// roundChange arredonda para a casa decimal exibida; -0 vira 0
func roundChange(g float64) float64 {
	r := math.Round(g*10) / 10
	if r == 0 {
		return 0
	}
	return r
}

// FormatChange formata a variação com sinal explícito e uma casa decimal
func FormatChange(g float64) string {
	if g >= 0 {
		return fmt.Sprintf("+%.1f%%", g)
	}
	return fmt.Sprintf("%.1f%%", g)
}

// TrendOf retorna up para variação não negativa
func TrendOf(g float64) Trend {
	if g >= 0 {
		return TrendUp
	}
	return TrendDown
}

func newMetric(value string, raw, change float64) StatMetric {
	change = roundChange(change)
	c := FormatChange(change)
	return StatMetric{Value: value, Change: &c, Trend: TrendOf(change), RawValue: raw}
}

// NewCurrencyMetric cria uma métrica monetária comparada ao período anterior
func NewCurrencyMetric(current, previous float64) StatMetric {
	return newMetric(FormatPrice(current), current, Growth(current, previous))
}

// NewCountMetric cria uma métrica de contagem comparada ao período anterior
func NewCountMetric(current, previous int) StatMetric {
	return newMetric(FormatCount(current), float64(current), Growth(float64(current), float64(previous)))
}

// NewPercentMetric cria uma métrica percentual; a variação é em pontos percentuais
func NewPercentMetric(current, previous float64) StatMetric {
	return newMetric(fmt.Sprintf("%.1f%%", current), current, current-previous)
}

// NewStaticMetric cria uma métrica sem comparação
func NewStaticMetric(value string, raw float64) StatMetric {
	return StatMetric{Value: value, Trend: TrendUp, RawValue: raw}
}

package analytics

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidPeriod = errors.New("período de análise inválido")

// Period define a granularidade do snapshot
type Period string

const (
	PeriodDaily   Period = "DAILY"
	PeriodWeekly  Period = "WEEKLY"
	PeriodMonthly Period = "MONTHLY"
)

// StoreAnalytics é um snapshot periódico de uma loja, gravado somente pelo job de consolidação
type StoreAnalytics struct {
	ID             string    `json:"id"`
	StoreID        string    `json:"storeId"`
	Period         Period    `json:"period"`
	PeriodStart    time.Time `json:"periodStart"`
	Views          int       `json:"views"`
	Visitors       int       `json:"visitors"`
	Orders         int       `json:"orders"`
	Revenue        float64   `json:"revenue"`
	ConversionRate float64   `json:"conversionRate"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewSnapshot cria o snapshot e calcula a taxa de conversão (pedidos / visitantes, em %)
func NewSnapshot(storeID string, period Period, start time.Time, views, visitors, orders int, revenue float64) (*StoreAnalytics, error) {
	switch period {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
	default:
		return nil, ErrInvalidPeriod
	}

	return &StoreAnalytics{
		ID:             uuid.New().String(),
		StoreID:        storeID,
		Period:         period,
		PeriodStart:    start,
		Views:          views,
		Visitors:       visitors,
		Orders:         orders,
		Revenue:        revenue,
		ConversionRate: ConversionRate(orders, visitors),
		CreatedAt:      time.Now(),
	}, nil
}

// ConversionRate retorna pedidos sobre visitantes em porcentagem; zero sem visitantes
func ConversionRate(orders, visitors int) float64 {
	if visitors <= 0 {
		return 0
	}
	return float64(orders) / float64(visitors) * 100
}

// Totals soma um conjunto de snapshots
type Totals struct {
	Views    int
	Visitors int
	Orders   int
	Revenue  float64
}

// Sum acumula os snapshots informados
func Sum(items []*StoreAnalytics) Totals {
	var t Totals
	for _, a := range items {
		t.Views += a.Views
		t.Visitors += a.Visitors
		t.Orders += a.Orders
		t.Revenue += a.Revenue
	}
	return t
}

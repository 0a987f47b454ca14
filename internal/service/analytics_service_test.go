package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/analytics"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedTraffic struct {
	views, visitors int
	err             error
}

func (f fixedTraffic) Counts(context.Context, string, time.Time) (int, int, error) {
	return f.views, f.visitors, f.err
}

func TestWeekStart(t *testing.T) {
	// 2024-03-14 é uma quinta-feira
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), weekStart(day))

	sunday := time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), weekStart(sunday))

	monday := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, weekStart(monday))
}

func TestAnalyticsService_Rollup(t *testing.T) {
	stores := new(mocks.StoreRepository)
	orders := new(mocks.OrderRepository)
	repo := new(mocks.AnalyticsRepository)
	ctx := context.Background()
	day := time.Date(2024, 3, 14, 15, 30, 0, 0, time.UTC)
	midnight := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	stores.On("ListActiveIDs", ctx).Return([]string{"store-1"}, nil)
	orders.On("TotalsBetween", ctx, "store-1", midnight, midnight.AddDate(0, 0, 1)).
		Return(order.Totals{Orders: 5, Revenue: 500000}, nil)

	repo.On("Upsert", ctx, mock.MatchedBy(func(a *analytics.StoreAnalytics) bool {
		return a.Period == analytics.PeriodDaily && a.PeriodStart.Equal(midnight) &&
			a.Views == 400 && a.Visitors == 100 && a.ConversionRate == 5
	})).Return(nil).Once()

	weekly := []*analytics.StoreAnalytics{
		{Views: 400, Visitors: 100, Orders: 5, Revenue: 500000},
		{Views: 100, Visitors: 50, Orders: 1, Revenue: 10000},
	}
	repo.On("ListBetween", ctx, "store-1", analytics.PeriodDaily, mock.Anything, mock.Anything).Return(weekly, nil)
	repo.On("Upsert", ctx, mock.MatchedBy(func(a *analytics.StoreAnalytics) bool {
		return a.Period == analytics.PeriodWeekly && a.Orders == 6 && a.Visitors == 150 &&
			a.PeriodStart.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()
	repo.On("Upsert", ctx, mock.MatchedBy(func(a *analytics.StoreAnalytics) bool {
		return a.Period == analytics.PeriodMonthly && a.PeriodStart.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()

	svc := NewAnalyticsService(stores, orders, repo, fixedTraffic{views: 400, visitors: 100}, nil)
	n, err := svc.Rollup(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	repo.AssertExpectations(t)
}

func TestAnalyticsService_RollupSkipsFailingStore(t *testing.T) {
	stores := new(mocks.StoreRepository)
	orders := new(mocks.OrderRepository)
	repo := new(mocks.AnalyticsRepository)
	ctx := context.Background()

	stores.On("ListActiveIDs", ctx).Return([]string{"bad", "good"}, nil)
	orders.On("TotalsBetween", ctx, "bad", mock.Anything, mock.Anything).Return(order.Totals{}, errors.New("timeout"))
	orders.On("TotalsBetween", ctx, "good", mock.Anything, mock.Anything).Return(order.Totals{}, nil)
	repo.On("Upsert", ctx, mock.Anything).Return(nil)
	repo.On("ListBetween", ctx, "good", analytics.PeriodDaily, mock.Anything, mock.Anything).
		Return([]*analytics.StoreAnalytics{}, nil)

	// Sem contador de tráfego as visitas ficam zeradas
	svc := NewAnalyticsService(stores, orders, repo, nil, nil)
	n, err := svc.Rollup(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

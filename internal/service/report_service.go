package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/adapter/cache"
	"github.com/hugohenrick/toko-digital/internal/domain/analytics"
	"github.com/hugohenrick/toko-digital/internal/domain/customer"
	"github.com/hugohenrick/toko-digital/internal/domain/finance"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/internal/domain/report"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/domain/subscription"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/hugohenrick/toko-digital/pkg/logger"
)

// LowStockThreshold é o estoque a partir do qual um produto ativo aparece como baixo
const LowStockThreshold = 5

// StatsCache guarda relatórios já calculados
type StatsCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Flush(ctx context.Context) (int, error)
}

// ReportDeps agrupa as dependências do ReportService
type ReportDeps struct {
	Orders        order.Repository
	Customers     customer.Repository
	Products      product.Repository
	Finance       finance.Repository
	Users         user.Repository
	Stores        store.Repository
	Subscriptions subscription.Repository
	Analytics     analytics.Repository
	Cache         StatsCache
	Logger        logger.Logger
}

// ReportService monta os painéis a partir dos agregados dos repositórios
type ReportService struct {
	ReportDeps
	now func() time.Time
}

// NewReportService cria uma nova instância de ReportService
func NewReportService(deps ReportDeps) *ReportService {
	if deps.Cache == nil {
		deps.Cache = cache.Noop{}
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	return &ReportService{ReportDeps: deps, now: time.Now}
}

// cached devolve o relatório do cache ou o calcula e guarda.
// Falhas do cache só geram log.
func cached[T any](ctx context.Context, s *ReportService, key string, build func() (T, error)) (T, error) {
	var out T
	found, err := s.Cache.Get(ctx, key, &out)
	if err != nil {
		s.Logger.Warn("Falha ao ler relatório do cache", "key", key, "error", err)
	} else if found {
		return out, nil
	}

	out, err = build()
	if err != nil {
		var zero T
		return zero, err
	}

	if err := s.Cache.Set(ctx, key, out); err != nil {
		s.Logger.Warn("Falha ao gravar relatório no cache", "key", key, "error", err)
	}
	return out, nil
}

// DashboardStats monta o painel do lojista para o período
func (s *ReportService) DashboardStats(ctx context.Context, storeID string, p report.Period) (report.DashboardStats, error) {
	return cached(ctx, s, cache.StatsKey("store", storeID, "dashboard", string(p)), func() (report.DashboardStats, error) {
		cur, prev := p.Range(s.now())

		curOrders, err := s.Orders.TotalsBetween(ctx, storeID, cur.From, cur.To)
		if err != nil {
			return report.DashboardStats{}, err
		}
		prevOrders, err := s.Orders.TotalsBetween(ctx, storeID, prev.From, prev.To)
		if err != nil {
			return report.DashboardStats{}, err
		}

		curCustomers, err := s.Customers.CountNewBetween(ctx, storeID, cur.From, cur.To)
		if err != nil {
			return report.DashboardStats{}, err
		}
		prevCustomers, err := s.Customers.CountNewBetween(ctx, storeID, prev.From, prev.To)
		if err != nil {
			return report.DashboardStats{}, err
		}

		products, err := s.Products.Count(ctx, storeID, product.Filter{})
		if err != nil {
			return report.DashboardStats{}, err
		}
		lowStock, err := s.Products.CountLowStock(ctx, storeID, LowStockThreshold)
		if err != nil {
			return report.DashboardStats{}, err
		}

		daily, err := s.Orders.DailyTotals(ctx, storeID, cur.From, cur.To)
		if err != nil {
			return report.DashboardStats{}, err
		}

		// O catálogo não tem histórico: o total atual vale para as duas janelas
		stats := report.BuildDashboardStats(
			report.StoreTotals{Revenue: curOrders.Revenue, Orders: curOrders.Orders, Customers: curCustomers, Products: products},
			report.StoreTotals{Revenue: prevOrders.Revenue, Orders: prevOrders.Orders, Customers: prevCustomers, Products: products},
		)
		stats.LowStockProducts = lowStock
		stats.RevenueChart = report.BucketFor(p, orderRevenueSamples(daily), cur)
		return stats, nil
	})
}

// FinancialStats monta o painel financeiro. storeID vazio consolida a plataforma.
func (s *ReportService) FinancialStats(ctx context.Context, storeID string, p report.Period) (report.FinancialDashboardStats, error) {
	scope := storeID
	if scope == "" {
		scope = "platform"
	}

	return cached(ctx, s, cache.StatsKey("finance", scope, string(p)), func() (report.FinancialDashboardStats, error) {
		cur, prev := p.Range(s.now())

		curSum, err := s.Finance.SummaryBetween(ctx, storeID, cur.From, cur.To)
		if err != nil {
			return report.FinancialDashboardStats{}, err
		}
		prevSum, err := s.Finance.SummaryBetween(ctx, storeID, prev.From, prev.To)
		if err != nil {
			return report.FinancialDashboardStats{}, err
		}

		categories, err := s.Finance.TotalsByCategory(ctx, storeID, cur.From, cur.To)
		if err != nil {
			return report.FinancialDashboardStats{}, err
		}
		daily, err := s.Finance.DailyTotals(ctx, storeID, cur.From, cur.To)
		if err != nil {
			return report.FinancialDashboardStats{}, err
		}

		stats := report.BuildFinancialStats(ledger(curSum), ledger(prevSum))

		items := make([]report.CategoryBreakdown, 0, len(categories))
		for _, c := range categories {
			items = append(items, report.CategoryBreakdown{Type: string(c.Type), Category: string(c.Category), Amount: c.Total})
		}
		stats.Breakdown = report.Breakdown(items)

		income, _ := ledgerSamples(daily)
		stats.IncomeChart = report.BucketFor(p, income, cur)
		return stats, nil
	})
}

// SuperAdminStats monta o painel global da plataforma
func (s *ReportService) SuperAdminStats(ctx context.Context, p report.Period) (report.SuperAdminStats, error) {
	return cached(ctx, s, cache.StatsKey("platform", string(p)), func() (report.SuperAdminStats, error) {
		cur, prev := p.Range(s.now())
		return s.superAdminStats(ctx, cur, prev)
	})
}

func (s *ReportService) superAdminStats(ctx context.Context, cur, prev report.Window) (report.SuperAdminStats, error) {
	curTotals, err := s.platformTotals(ctx, cur, nil)
	if err != nil {
		return report.SuperAdminStats{}, err
	}
	// Usuários e lojas da janela anterior são os que já existiam no início da atual
	prevTotals, err := s.platformTotals(ctx, prev, &cur.From)
	if err != nil {
		return report.SuperAdminStats{}, err
	}

	plans, err := s.Subscriptions.CountByPlan(ctx)
	if err != nil {
		return report.SuperAdminStats{}, err
	}
	for _, pc := range plans {
		if pc.Status == subscription.StatusActive {
			curTotals.ActiveSubscriptions += pc.Count
			curTotals.SubscriptionRevenue += pc.Revenue
		}
	}
	prevTotals.ActiveSubscriptions = curTotals.ActiveSubscriptions
	prevTotals.SubscriptionRevenue = curTotals.SubscriptionRevenue

	byRole, err := s.Users.CountByRole(ctx)
	if err != nil {
		return report.SuperAdminStats{}, err
	}

	stats := report.BuildSuperAdminStats(curTotals, prevTotals)
	stats.UsersByRole = make(map[string]int, len(byRole))
	for role, n := range byRole {
		stats.UsersByRole[string(role)] = n
	}

	return stats, nil
}

// platformTotals agrega a plataforma na janela; before limita usuários e lojas aos criados antes do instante
func (s *ReportService) platformTotals(ctx context.Context, w report.Window, before *time.Time) (report.PlatformTotals, error) {
	var t report.PlatformTotals
	active := true

	users, err := s.Users.Count(ctx, user.Filter{CreatedBefore: before})
	if err != nil {
		return t, err
	}
	stores, err := s.Stores.Count(ctx, store.Filter{CreatedBefore: before})
	if err != nil {
		return t, err
	}
	activeStores, err := s.Stores.Count(ctx, store.Filter{Active: &active, CreatedBefore: before})
	if err != nil {
		return t, err
	}
	orders, err := s.Orders.TotalsBetween(ctx, "", w.From, w.To)
	if err != nil {
		return t, err
	}

	t.Users = users
	t.Stores = stores
	t.ActiveStores = activeStores
	t.Orders = orders.Orders
	t.Revenue = orders.Revenue
	return t, nil
}

// AnalyticsSummary resume os snapshots diários do período. storeID vazio consolida a plataforma.
func (s *ReportService) AnalyticsSummary(ctx context.Context, storeID string, p report.Period) (report.AnalyticsSummary, error) {
	scope := storeID
	if scope == "" {
		scope = "platform"
	}

	return cached(ctx, s, cache.StatsKey("analytics", scope, string(p)), func() (report.AnalyticsSummary, error) {
		cur, prev := p.Range(s.now())

		curSnaps, err := s.Analytics.ListBetween(ctx, storeID, analytics.PeriodDaily, cur.From, cur.To)
		if err != nil {
			return report.AnalyticsSummary{}, err
		}
		prevSnaps, err := s.Analytics.ListBetween(ctx, storeID, analytics.PeriodDaily, prev.From, prev.To)
		if err != nil {
			return report.AnalyticsSummary{}, err
		}

		summary := report.BuildAnalyticsSummary(p, analytics.Sum(curSnaps), analytics.Sum(prevSnaps))

		samples := make([]report.Sample, 0, len(curSnaps))
		for _, a := range curSnaps {
			samples = append(samples, report.Sample{At: a.PeriodStart, Amount: float64(a.Visitors)})
		}
		summary.Chart = report.BucketFor(p, samples, cur)
		return summary, nil
	})
}

// AdminReport monta o relatório por período usado na tela e no CSV
func (s *ReportService) AdminReport(ctx context.Context, p report.Period) (report.AdminReport, error) {
	return cached(ctx, s, cache.StatsKey("report", string(p)), func() (report.AdminReport, error) {
		cur, prev := p.Range(s.now())

		summary, err := s.superAdminStats(ctx, cur, prev)
		if err != nil {
			return report.AdminReport{}, err
		}

		orders, err := s.Orders.DailyTotals(ctx, "", cur.From, cur.To)
		if err != nil {
			return report.AdminReport{}, err
		}
		ledgerDaily, err := s.Finance.DailyTotals(ctx, "", cur.From, cur.To)
		if err != nil {
			return report.AdminReport{}, err
		}

		counts := make([]report.Sample, 0, len(orders))
		for _, d := range orders {
			counts = append(counts, report.Sample{At: d.Day, Amount: float64(d.Orders)})
		}
		income, expense := ledgerSamples(ledgerDaily)

		return report.AdminReport{
			Period:  p,
			Window:  cur,
			Summary: summary,
			Rows:    report.BuildReportRows(p, cur, orderRevenueSamples(orders), counts, income, expense),
		}, nil
	})
}

// BillingSummary consolida as assinaturas por plano e status
func (s *ReportService) BillingSummary(ctx context.Context) (report.BillingSummary, error) {
	return cached(ctx, s, cache.StatsKey("billing"), func() (report.BillingSummary, error) {
		counts, err := s.Subscriptions.CountByPlan(ctx)
		if err != nil {
			return report.BillingSummary{}, fmt.Errorf("erro ao contar assinaturas: %w", err)
		}
		return report.BuildBillingSummary(counts), nil
	})
}

func ledger(sum finance.Summary) report.LedgerTotals {
	return report.LedgerTotals{Income: sum.Income, Expense: sum.Expense, Transactions: sum.Count}
}

func orderRevenueSamples(daily []order.DailyTotal) []report.Sample {
	samples := make([]report.Sample, 0, len(daily))
	for _, d := range daily {
		samples = append(samples, report.Sample{At: d.Day, Amount: d.Revenue})
	}
	return samples
}

func ledgerSamples(daily []finance.DailyTotal) (income, expense []report.Sample) {
	for _, d := range daily {
		income = append(income, report.Sample{At: d.Day, Amount: d.Income})
		expense = append(expense, report.Sample{At: d.Day, Amount: d.Expense})
	}
	return income, expense
}

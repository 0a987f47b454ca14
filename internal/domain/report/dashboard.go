package report

import (
	"github.com/hugohenrick/toko-digital/internal/domain/analytics"
)

// StoreTotals são os agregados de uma loja em uma janela
type StoreTotals struct {
	Revenue   float64
	Orders    int
	Customers int
	Products  int
}

// DashboardStats é o painel do dono da loja
type DashboardStats struct {
	TotalRevenue      StatMetric `json:"totalRevenue"`
	TotalOrders       StatMetric `json:"totalOrders"`
	TotalCustomers    StatMetric `json:"totalCustomers"`
	TotalProducts     StatMetric `json:"totalProducts"`
	AverageOrderValue StatMetric `json:"averageOrderValue"`
	LowStockProducts  int        `json:"lowStockProducts"`
	RevenueChart      []Bucket   `json:"revenueChart,omitempty"`
}

// BuildDashboardStats compara a janela atual com a anterior
func BuildDashboardStats(cur, prev StoreTotals) DashboardStats {
	return DashboardStats{
		TotalRevenue:      NewCurrencyMetric(cur.Revenue, prev.Revenue),
		TotalOrders:       NewCountMetric(cur.Orders, prev.Orders),
		TotalCustomers:    NewCountMetric(cur.Customers, prev.Customers),
		TotalProducts:     NewCountMetric(cur.Products, prev.Products),
		AverageOrderValue: NewCurrencyMetric(average(cur.Revenue, cur.Orders), average(prev.Revenue, prev.Orders)),
	}
}

// LedgerTotals são as somas do livro financeiro em uma janela
type LedgerTotals struct {
	Income       float64
	Expense      float64
	Transactions int
}

// Net retorna o lucro líquido
func (l LedgerTotals) Net() float64 {
	return l.Income - l.Expense
}

// Margin retorna o lucro sobre a receita em porcentagem
func (l LedgerTotals) Margin() float64 {
	if l.Income <= 0 {
		return 0
	}
	return l.Net() / l.Income * 100
}

// CategoryBreakdown é a participação de uma categoria no total do seu tipo
type CategoryBreakdown struct {
	Type       string  `json:"type"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Formatted  string  `json:"formatted"`
	Percentage float64 `json:"percentage"`
}

// FinancialDashboardStats é o painel financeiro
type FinancialDashboardStats struct {
	TotalIncome  StatMetric          `json:"totalIncome"`
	TotalExpense StatMetric          `json:"totalExpense"`
	NetProfit    StatMetric          `json:"netProfit"`
	ProfitMargin StatMetric          `json:"profitMargin"`
	Transactions StatMetric          `json:"transactions"`
	Breakdown    []CategoryBreakdown `json:"breakdown,omitempty"`
	IncomeChart  []Bucket            `json:"incomeChart,omitempty"`
}

// BuildFinancialStats compara a janela atual com a anterior
func BuildFinancialStats(cur, prev LedgerTotals) FinancialDashboardStats {
	return FinancialDashboardStats{
		TotalIncome:  NewCurrencyMetric(cur.Income, prev.Income),
		TotalExpense: NewCurrencyMetric(cur.Expense, prev.Expense),
		NetProfit:    NewCurrencyMetric(cur.Net(), prev.Net()),
		ProfitMargin: NewPercentMetric(cur.Margin(), prev.Margin()),
		Transactions: NewCountMetric(cur.Transactions, prev.Transactions),
	}
}

// Breakdown calcula a participação percentual de cada categoria dentro do seu tipo
func Breakdown(items []CategoryBreakdown) []CategoryBreakdown {
	totals := map[string]float64{}
	for _, it := range items {
		totals[it.Type] += it.Amount
	}
	out := make([]CategoryBreakdown, 0, len(items))
	for _, it := range items {
		it.Formatted = FormatPrice(it.Amount)
		if t := totals[it.Type]; t > 0 {
			it.Percentage = it.Amount / t * 100
		}
		out = append(out, it)
	}
	return out
}

// PlatformTotals são os agregados da plataforma inteira
type PlatformTotals struct {
	Users               int
	Stores              int
	ActiveStores        int
	Orders              int
	Revenue             float64
	ActiveSubscriptions int
	SubscriptionRevenue float64
}

// SuperAdminStats é o painel global do super administrador
type SuperAdminStats struct {
	TotalUsers          StatMetric     `json:"totalUsers"`
	TotalStores         StatMetric     `json:"totalStores"`
	ActiveStores        StatMetric     `json:"activeStores"`
	TotalOrders         StatMetric     `json:"totalOrders"`
	GrossVolume         StatMetric     `json:"grossVolume"`
	ActiveSubscriptions StatMetric     `json:"activeSubscriptions"`
	MonthlyRecurring    StatMetric     `json:"monthlyRecurringRevenue"`
	UsersByRole         map[string]int `json:"usersByRole,omitempty"`
}

// BuildSuperAdminStats compara a janela atual com a anterior
func BuildSuperAdminStats(cur, prev PlatformTotals) SuperAdminStats {
	return SuperAdminStats{
		TotalUsers:          NewCountMetric(cur.Users, prev.Users),
		TotalStores:         NewCountMetric(cur.Stores, prev.Stores),
		ActiveStores:        NewCountMetric(cur.ActiveStores, prev.ActiveStores),
		TotalOrders:         NewCountMetric(cur.Orders, prev.Orders),
		GrossVolume:         NewCurrencyMetric(cur.Revenue, prev.Revenue),
		ActiveSubscriptions: NewCountMetric(cur.ActiveSubscriptions, prev.ActiveSubscriptions),
		MonthlyRecurring:    NewCurrencyMetric(cur.SubscriptionRevenue, prev.SubscriptionRevenue),
	}
}

// AnalyticsSummary resume o tráfego e a conversão de um período
type AnalyticsSummary struct {
	Period            Period     `json:"period"`
	Views             StatMetric `json:"views"`
	Visitors          StatMetric `json:"visitors"`
	Orders            StatMetric `json:"orders"`
	Revenue           StatMetric `json:"revenue"`
	ConversionRate    StatMetric `json:"conversionRate"`
	AverageOrderValue StatMetric `json:"averageOrderValue"`
	Chart             []Bucket   `json:"chart,omitempty"`
}

// BuildAnalyticsSummary compara os snapshots somados da janela atual com os da anterior
func BuildAnalyticsSummary(p Period, cur, prev analytics.Totals) AnalyticsSummary {
	return AnalyticsSummary{
		Period:            p,
		Views:             NewCountMetric(cur.Views, prev.Views),
		Visitors:          NewCountMetric(cur.Visitors, prev.Visitors),
		Orders:            NewCountMetric(cur.Orders, prev.Orders),
		Revenue:           NewCurrencyMetric(cur.Revenue, prev.Revenue),
		ConversionRate:    NewPercentMetric(analytics.ConversionRate(cur.Orders, cur.Visitors), analytics.ConversionRate(prev.Orders, prev.Visitors)),
		AverageOrderValue: NewCurrencyMetric(average(cur.Revenue, cur.Orders), average(prev.Revenue, prev.Orders)),
	}
}

func average(total float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return total / float64(n)
}

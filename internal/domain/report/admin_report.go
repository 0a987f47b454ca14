package report

import (
	"strconv"

	"github.com/hugohenrick/toko-digital/internal/domain/subscription"
)

// ReportRow é uma linha do relatório administrativo (um dia ou um mês)
type ReportRow struct {
	Label   string  `json:"label"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// AdminReport é o relatório por período de /admin/reports
type AdminReport struct {
	Period  Period          `json:"period"`
	Window  Window          `json:"window"`
	Summary SuperAdminStats `json:"summary"`
	Rows    []ReportRow     `json:"rows"`
}

// ReportHeader é a ordem das colunas do CSV exportado
var ReportHeader = []string{"period", "orders", "revenue", "income", "expense", "net"}

// BuildReportRows agrupa as séries no mesmo conjunto de buckets.
// orders traz uma amostra por dia com Amount igual à quantidade de pedidos.
func BuildReportRows(p Period, w Window, revenue, orders, income, expense []Sample) []ReportRow {
	rev := BucketFor(p, revenue, w)
	cnt := BucketFor(p, orders, w)
	inc := BucketFor(p, income, w)
	exp := BucketFor(p, expense, w)

	rows := make([]ReportRow, len(rev))
	for i := range rev {
		rows[i] = ReportRow{
			Label:   rev[i].Label,
			Orders:  int(cnt[i].Value),
			Revenue: rev[i].Value,
			Income:  inc[i].Value,
			Expense: exp[i].Value,
			Net:     inc[i].Value - exp[i].Value,
		}
	}
	return rows
}

// CSVRows converte as linhas do relatório seguindo ReportHeader
func (r AdminReport) CSVRows() [][]string {
	records := make([]map[string]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		records = append(records, map[string]string{
			"period":  row.Label,
			"orders":  strconv.Itoa(row.Orders),
			"revenue": money(row.Revenue),
			"income":  money(row.Income),
			"expense": money(row.Expense),
			"net":     money(row.Net),
		})
	}
	return Rows(ReportHeader, records)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// PlanSummary resume as assinaturas de um plano
type PlanSummary struct {
	Plan      subscription.Plan `json:"plan"`
	Price     float64           `json:"price"`
	Formatted string            `json:"formattedPrice"`
	Active    int               `json:"active"`
	Trial     int               `json:"trial"`
	Expired   int               `json:"expired"`
	Cancelled int               `json:"cancelled"`
	Revenue   float64           `json:"revenue"`
}

// BillingSummary é o resumo de cobrança de /admin/billing
type BillingSummary struct {
	MonthlyRecurring StatMetric    `json:"monthlyRecurringRevenue"`
	Active           int           `json:"active"`
	Trial            int           `json:"trial"`
	Expired          int           `json:"expired"`
	Cancelled        int           `json:"cancelled"`
	TrialConversion  StatMetric    `json:"trialConversion"`
	Plans            []PlanSummary `json:"plans"`
}

// BuildBillingSummary consolida as contagens por plano e status.
// Todos os planos aparecem, mesmo sem assinaturas.
func BuildBillingSummary(counts []subscription.PlanCount) BillingSummary {
	var b BillingSummary
	index := map[subscription.Plan]int{}
	for _, plan := range subscription.Plans() {
		price, _ := subscription.PlanPrice(plan)
		index[plan] = len(b.Plans)
		b.Plans = append(b.Plans, PlanSummary{Plan: plan, Price: price, Formatted: FormatCurrency(price)})
	}

	var mrr float64
	for _, c := range counts {
		i, ok := index[c.Plan]
		if !ok {
			continue
		}
		ps := &b.Plans[i]
		switch c.Status {
		case subscription.StatusActive:
			ps.Active += c.Count
			ps.Revenue += c.Revenue
			b.Active += c.Count
			mrr += c.Revenue
		case subscription.StatusTrial:
			ps.Trial += c.Count
			b.Trial += c.Count
		case subscription.StatusExpired:
			ps.Expired += c.Count
			b.Expired += c.Count
		case subscription.StatusCancelled:
			ps.Cancelled += c.Count
			b.Cancelled += c.Count
		}
	}

	b.MonthlyRecurring = NewStaticMetric(FormatPrice(mrr), mrr)

	var conversion float64
	if total := b.Active + b.Expired + b.Cancelled; total > 0 {
		conversion = float64(b.Active) / float64(total) * 100
	}
	b.TrialConversion = NewStaticMetric(strconv.FormatFloat(conversion, 'f', 1, 64)+"%", conversion)
	return b
}

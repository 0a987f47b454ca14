package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/subscription"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportRows(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	w := Window{From: from, To: from.AddDate(0, 0, 3)}

	rows := BuildReportRows(Period7Days, w,
		[]Sample{{At: from, Amount: 200000}, {At: from.AddDate(0, 0, 2), Amount: 50000}},
		[]Sample{{At: from, Amount: 4}, {At: from.AddDate(0, 0, 2), Amount: 1}},
		[]Sample{{At: from, Amount: 200000}},
		[]Sample{{At: from.AddDate(0, 0, 1), Amount: 30000}},
	)

	require.Len(t, rows, 3)
	assert.Equal(t, ReportRow{Label: "2024-03-01", Orders: 4, Revenue: 200000, Income: 200000, Net: 200000}, rows[0])
	assert.Equal(t, -30000.0, rows[1].Net)
	assert.Equal(t, 1, rows[2].Orders)
}

func TestAdminReportCSV(t *testing.T) {
	r := AdminReport{Rows: []ReportRow{
		{Label: "2024-03-01", Orders: 2, Revenue: 1500.5, Income: 1500.5, Expense: 500, Net: 1000.5},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ReportHeader, r.CSVRows()))
	assert.Equal(t, "period,orders,revenue,income,expense,net\n2024-03-01,2,1500.50,1500.50,500.00,1000.50\n", buf.String())

	header, rows, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, ReportHeader, header)
	assert.Equal(t, r.CSVRows(), rows)
}

func TestBuildBillingSummary(t *testing.T) {
	b := BuildBillingSummary([]subscription.PlanCount{
		{Plan: subscription.PlanBasic, Status: subscription.StatusActive, Count: 2, Revenue: 198000},
		{Plan: subscription.PlanPro, Status: subscription.StatusActive, Count: 1, Revenue: 249000},
		{Plan: subscription.PlanPro, Status: subscription.StatusTrial, Count: 3},
		{Plan: subscription.PlanFree, Status: subscription.StatusExpired, Count: 1},
		{Plan: subscription.Plan("LEGACY"), Status: subscription.StatusActive, Count: 9, Revenue: 1},
	})

	assert.Len(t, b.Plans, len(subscription.Plans()))
	assert.Equal(t, 3, b.Active)
	assert.Equal(t, 3, b.Trial)
	assert.Equal(t, 1, b.Expired)
	assert.Equal(t, 447000.0, b.MonthlyRecurring.RawValue)
	assert.Nil(t, b.MonthlyRecurring.Change)
	assert.Equal(t, 75.0, b.TrialConversion.RawValue)
	assert.Equal(t, "75.0%", b.TrialConversion.Value)
}

package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrialStatus(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		trialEnd *time.Time
		sub      *Subscription
		want     string
	}{
		{"assinatura ativa", ptr(now.Add(-48 * time.Hour)), &Subscription{Status: StatusActive}, "Subscribed"},
		{"teste vencido", ptr(now.Add(-time.Minute)), &Subscription{Status: StatusTrial}, "Trial Expired"},
		{"vencido sem assinatura", ptr(now.Add(-time.Hour)), nil, "Trial Expired"},
		{"arredonda para cima", ptr(now.Add(36 * time.Hour)), nil, "2 days left"},
		{"dia exato", ptr(now.Add(72 * time.Hour)), &Subscription{Status: StatusTrial}, "3 days left"},
		{"poucos minutos", ptr(now.Add(10 * time.Minute)), nil, "1 days left"},
		{"sem teste", nil, nil, "No Trial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrialStatus(tt.trialEnd, tt.sub, now).Text)
		})
	}
}

func TestPlanPrice(t *testing.T) {
	price, err := PlanPrice(PlanPro)
	require.NoError(t, err)
	assert.Equal(t, 249000.0, price)

	_, err = PlanPrice(Plan("GOLD"))
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestExpire(t *testing.T) {
	now := time.Now()
	s, err := NewTrial("user-1", nil, PlanBasic, 14, now.AddDate(0, 0, -15))
	require.NoError(t, err)

	assert.True(t, s.Expire(now))
	assert.Equal(t, StatusExpired, s.Status)
	assert.False(t, s.Expire(now))

	assert.ErrorIs(t, s.Cancel(now), ErrNotCancelable)
}

func TestActivate(t *testing.T) {
	now := time.Now()
	s, err := NewTrial("user-1", nil, PlanPro, 14, now)
	require.NoError(t, err)

	s.Activate(now)
	assert.Equal(t, StatusActive, s.Status)
	require.NotNil(t, s.CurrentPeriodEnd)
	assert.False(t, s.Expire(now.AddDate(0, 0, 30)))
	assert.Equal(t, "Subscribed", TrialStatus(s.TrialEndDate, s, now.AddDate(1, 0, 0)).Text)
}

func ptr(t time.Time) *time.Time { return &t }

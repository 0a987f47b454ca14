package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, Period30Days, p)

	p, err = ParsePeriod("1y")
	require.NoError(t, err)
	assert.True(t, p.Monthly())

	_, err = ParsePeriod("2w")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestRange(t *testing.T) {
	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	cur, prev := Period7Days.Range(now)

	assert.Equal(t, time.Date(2024, 6, 23, 0, 0, 0, 0, time.UTC), cur.From)
	assert.Equal(t, now, cur.To)
	assert.Equal(t, cur.From, prev.To)
	assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), prev.From)
}

func TestBucketByDay(t *testing.T) {
	w := Window{
		From: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
	}
	samples := []Sample{
		{At: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), Amount: 100},
		{At: time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC), Amount: 50},
		{At: time.Date(2024, 6, 3, 23, 59, 0, 0, time.UTC), Amount: 10},
		{At: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), Amount: 999},
	}

	buckets := BucketByDay(samples, w)
	require.Len(t, buckets, 3)
	assert.Equal(t, "2024-06-01", buckets[0].Label)
	assert.Equal(t, 150.0, buckets[0].Value)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Zero(t, buckets[1].Value)
	assert.Equal(t, 10.0, buckets[2].Value)
}

func TestBucketByMonth(t *testing.T) {
	w := Window{
		From: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	samples := []Sample{
		{At: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), Amount: 1},
		{At: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Amount: 2},
	}

	buckets := BucketFor(PeriodYear, samples, w)
	require.Len(t, buckets, 3)
	assert.Equal(t, "2024-01", buckets[0].Label)
	assert.Equal(t, 1.0, buckets[0].Value)
	assert.Equal(t, 2.0, buckets[2].Value)
}

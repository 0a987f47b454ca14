package service

import (
	"context"
	"testing"

	"github.com/hugohenrick/toko-digital/internal/adapter/events"
	"github.com/hugohenrick/toko-digital/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionService_ExpireTrials(t *testing.T) {
	repo := new(mocks.SubscriptionRepository)
	rec := &events.Recorder{}
	ctx := context.Background()

	repo.On("ExpireTrials", ctx, mock.Anything).Return(3, nil).Once()
	repo.On("ExpireTrials", ctx, mock.Anything).Return(0, nil).Once()

	svc := NewSubscriptionService(repo, rec, nil)

	n, err := svc.ExpireTrials(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = svc.ExpireTrials(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Equal(t, []string{events.SubjectSubscriptionExpired}, rec.Subjects())
}

package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
	"mesa-bounty/internal/core/port/mocks"
)

var testJob = domain.PayoutJob{ID: "job-1", CampaignID: 7, ReferralCode: "AAAA2222"}

func newTestWorker(t *testing.T) (*PayoutWorker, *mocks.MockPayoutQueue, *mocks.MockSettlementUseCase, *mocks.MockEventPublisher) {
	t.Helper()
	queue := mocks.NewMockPayoutQueue(t)
	settle := mocks.NewMockSettlementUseCase(t)
	events := mocks.NewMockEventPublisher(t)
	w := NewPayoutWorker(queue, settle, events, nil, nil, PayoutConfig{
		MaxAttempts:    3,
		BackoffInitial: time.Second,
		BackoffMax:     10 * time.Second,
	})
	return w, queue, settle, events
}

func TestProcessOnceEmptyQueue(t *testing.T) {
	w, queue, _, _ := newTestWorker(t)
	queue.EXPECT().Dequeue(mock.Anything).Return(nil, nil).Once()

	handled, err := w.ProcessOnce(context.Background())
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestProcessOnceAcksSettledJob(t *testing.T) {
	w, queue, settle, _ := newTestWorker(t)
	queue.EXPECT().Dequeue(mock.Anything).Return(&domain.PayoutDelivery{Job: testJob, Attempts: 1}, nil).Once()
	settle.EXPECT().Settle(mock.Anything, testJob).Return(port.OutcomeSettled, nil).Once()
	queue.EXPECT().Ack(mock.Anything, "job-1").Return(nil).Once()

	handled, err := w.ProcessOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestProcessOnceRetriesTransientFailure(t *testing.T) {
	w, queue, settle, _ := newTestWorker(t)
	cause := fmt.Errorf("%w: timeout", domain.ErrSettlementUnavailable)
	queue.EXPECT().Dequeue(mock.Anything).Return(&domain.PayoutDelivery{Job: testJob, Attempts: 2}, nil).Once()
	settle.EXPECT().Settle(mock.Anything, testJob).Return("", cause).Once()
	queue.EXPECT().Retry(mock.Anything, "job-1", 1500*time.Millisecond, cause.Error()).Return(nil).Once()

	handled, err := w.ProcessOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestProcessOnceDeadLettersAfterMaxAttempts(t *testing.T) {
	w, queue, settle, events := newTestWorker(t)
	cause := fmt.Errorf("%w: timeout", domain.ErrSettlementUnavailable)
	queue.EXPECT().Dequeue(mock.Anything).Return(&domain.PayoutDelivery{Job: testJob, Attempts: 3}, nil).Once()
	settle.EXPECT().Settle(mock.Anything, testJob).Return("", cause).Once()
	queue.EXPECT().Fail(mock.Anything, "job-1", cause.Error()).Return(nil).Once()
	settle.EXPECT().Abandon(mock.Anything, testJob).Return(nil).Once()
	events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventPayoutDeadLettered && e.Payload["reason"] == "retries_exhausted"
	})).Return(nil).Once()

	handled, err := w.ProcessOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestProcessOnceDeadLettersTerminalFailure(t *testing.T) {
	w, queue, settle, events := newTestWorker(t)
	cause := fmt.Errorf("%w: campaign 7", domain.ErrBudgetExhausted)
	queue.EXPECT().Dequeue(mock.Anything).Return(&domain.PayoutDelivery{Job: testJob, Attempts: 1}, nil).Once()
	settle.EXPECT().Settle(mock.Anything, testJob).Return("", cause).Once()
	queue.EXPECT().Fail(mock.Anything, "job-1", cause.Error()).Return(nil).Once()
	settle.EXPECT().Abandon(mock.Anything, testJob).Return(nil).Once()
	events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Payload["reason"] == "budget_exhausted"
	})).Return(nil).Once()

	_, err := w.ProcessOnce(context.Background())
	require.NoError(t, err)
}

func TestProcessOnceDeadLettersWhenAbandonFails(t *testing.T) {
	w, queue, settle, events := newTestWorker(t)
	cause := fmt.Errorf("%w: timeout", domain.ErrSettlementUnavailable)
	queue.EXPECT().Dequeue(mock.Anything).Return(&domain.PayoutDelivery{Job: testJob, Attempts: 3}, nil).Once()
	settle.EXPECT().Settle(mock.Anything, testJob).Return("", cause).Once()
	queue.EXPECT().Fail(mock.Anything, "job-1", cause.Error()).Return(nil).Once()
	settle.EXPECT().Abandon(mock.Anything, testJob).Return(fmt.Errorf("storage down")).Once()
	events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	handled, err := w.ProcessOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestBackoffDelayIsCapped(t *testing.T) {
	w := NewPayoutWorker(nil, nil, nil, nil, nil, PayoutConfig{BackoffInitial: time.Second, BackoffMax: 3 * time.Second})
	assert.Equal(t, time.Second, w.delay(1))
	assert.Equal(t, 1500*time.Millisecond, w.delay(2))
	assert.Equal(t, 2250*time.Millisecond, w.delay(3))
	assert.Equal(t, 3*time.Second, w.delay(10))
}

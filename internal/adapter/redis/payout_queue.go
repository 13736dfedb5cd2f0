package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"mesa-bounty/internal/core/domain"
)

// dequeueScript claims the earliest due job and hides it until the
// visibility timeout passes. KEYS: schedule, jobs, attempts, errors.
// ARGV: now (ms), visible-at for the claimed job (ms).
const dequeueScript = `
local ids = redis.call("ZRANGEBYSCORE", KEYS[1], "-inf", ARGV[1], "LIMIT", 0, 1)
if #ids == 0 then
  return false
end
local id = ids[1]
local body = redis.call("HGET", KEYS[2], id)
if not body then
  redis.call("ZREM", KEYS[1], id)
  return false
end
redis.call("ZADD", KEYS[1], ARGV[2], id)
local attempts = redis.call("HINCRBY", KEYS[3], id, 1)
local lastErr = redis.call("HGET", KEYS[4], id)
if not lastErr then
  lastErr = ""
end
return {id, body, attempts, lastErr}
`

// PayoutQueue is a port.PayoutQueue on Redis. Job bodies live in a hash and
// their schedule in a sorted set scored by the time they become visible, so
// a consumer that dies holding a job only delays it by the visibility
// timeout.
type PayoutQueue struct {
	client     *redis.Client
	dequeue    *redis.Script
	prefix     string
	visibility time.Duration
	now        func() time.Time
}

// QueueOption configures a PayoutQueue.
type QueueOption func(*PayoutQueue)

// WithClock overrides the time source used for scores.
func WithClock(now func() time.Time) QueueOption {
	return func(q *PayoutQueue) {
		if now != nil {
			q.now = now
		}
	}
}

func NewPayoutQueue(client *redis.Client, prefix string, visibility time.Duration, opts ...QueueOption) *PayoutQueue {
	q := &PayoutQueue{
		client:     client,
		dequeue:    redis.NewScript(dequeueScript),
		prefix:     prefix,
		visibility: visibility,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *PayoutQueue) key(name string) string { return q.prefix + ":" + name }

func score(t time.Time) float64 { return float64(t.UnixMilli()) }

func (q *PayoutQueue) Enqueue(ctx context.Context, job domain.PayoutJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode payout job: %w", err)
	}
	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSetNX(ctx, q.key("jobs"), job.ID, body)
		pipe.ZAddNX(ctx, q.key("schedule"), redis.Z{Score: score(q.now()), Member: job.ID})
		return nil
	})
	return err
}

func (q *PayoutQueue) Dequeue(ctx context.Context) (*domain.PayoutDelivery, error) {
	now := q.now()
	keys := []string{q.key("schedule"), q.key("jobs"), q.key("attempts"), q.key("errors")}
	res, err := q.dequeue.Run(ctx, q.client, keys, score(now), score(now.Add(q.visibility))).Slice()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dequeue payout job: %w", err)
	}
	if len(res) != 4 {
		return nil, fmt.Errorf("dequeue payout job: unexpected reply of %d elements", len(res))
	}
	body, _ := res[1].(string)
	attempts, _ := res[2].(int64)
	lastErr, _ := res[3].(string)

	var job domain.PayoutJob
	if err = json.Unmarshal([]byte(body), &job); err != nil {
		return nil, fmt.Errorf("decode payout job %v: %w", res[0], err)
	}
	return &domain.PayoutDelivery{Job: job, Attempts: int(attempts), LastError: lastErr}, nil
}

func (q *PayoutQueue) Ack(ctx context.Context, jobID string) error {
	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, q.key("schedule"), jobID)
		pipe.HDel(ctx, q.key("jobs"), jobID)
		pipe.HDel(ctx, q.key("attempts"), jobID)
		pipe.HDel(ctx, q.key("errors"), jobID)
		return nil
	})
	return err
}

func (q *PayoutQueue) Retry(ctx context.Context, jobID string, delay time.Duration, reason string) error {
	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAddXX(ctx, q.key("schedule"), redis.Z{Score: score(q.now().Add(delay)), Member: jobID})
		pipe.HSet(ctx, q.key("errors"), jobID, reason)
		return nil
	})
	return err
}

func (q *PayoutQueue) Fail(ctx context.Context, jobID string, reason string) error {
	body, err := q.client.HGet(ctx, q.key("jobs"), jobID).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}
	attempts := 0
	if raw, err := q.client.HGet(ctx, q.key("attempts"), jobID).Result(); err == nil {
		attempts, _ = strconv.Atoi(raw)
	}

	var job domain.PayoutJob
	if err = json.Unmarshal([]byte(body), &job); err != nil {
		return fmt.Errorf("decode payout job %s: %w", jobID, err)
	}
	dead, err := json.Marshal(domain.DeadPayout{
		Job:      job,
		Attempts: attempts,
		Reason:   reason,
		FailedAt: q.now().UTC(),
	})
	if err != nil {
		return err
	}

	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, q.key("dead"), jobID, dead)
		pipe.LPush(ctx, q.key("dead:index"), jobID)
		pipe.ZRem(ctx, q.key("schedule"), jobID)
		pipe.HDel(ctx, q.key("jobs"), jobID)
		pipe.HDel(ctx, q.key("attempts"), jobID)
		pipe.HDel(ctx, q.key("errors"), jobID)
		return nil
	})
	return err
}

func (q *PayoutQueue) Dead(ctx context.Context, limit int) ([]domain.DeadPayout, error) {
	if limit <= 0 {
		limit = 100
	}
	ids, err := q.client.LRange(ctx, q.key("dead:index"), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	raw, err := q.client.HMGet(ctx, q.key("dead"), ids...).Result()
	if err != nil {
		return nil, err
	}
	out := make([]domain.DeadPayout, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var d domain.DeadPayout
		if err = json.Unmarshal([]byte(s), &d); err != nil {
			return nil, fmt.Errorf("decode dead payout: %w", err)
		}
		out = append(out, d)
	}
	return out, nil
}

package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const lastRunKey = "study:last_run"

// LastRun — сводка последнего запуска генерации занятий.
type LastRun struct {
	Message           string    `json:"message"`
	TotalCreated      int       `json:"totalCreated"`
	ProfilesProcessed int       `json:"profilesProcessed"`
	Skipped           int       `json:"skipped"`
	Failed            int       `json:"failed"`
	Error             string    `json:"error,omitempty"`
	StartedAt         time.Time `json:"startedAt"`
	FinishedAt        time.Time `json:"finishedAt"`
}

type RunCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRunCache(client *redis.Client) *RunCache {
	return &RunCache{client: client, ttl: 24 * time.Hour}
}

func (c *RunCache) Save(ctx context.Context, run LastRun) error {
	body, err := json.Marshal(run)
	if err != nil {
		return errors.Wrap(err, "сериализация сводки")
	}
	if err := c.client.Set(ctx, lastRunKey, body, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "запись сводки в redis")
	}
	return nil
}

// Last возвращает nil, если сводки нет или она истекла.
func (c *RunCache) Last(ctx context.Context) (*LastRun, error) {
	cached, err := c.client.Get(ctx, lastRunKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "чтение сводки из redis")
	}
	var run LastRun
	if err := json.Unmarshal([]byte(cached), &run); err != nil {
		return nil, errors.Wrap(err, "разбор сводки")
	}
	return &run, nil
}

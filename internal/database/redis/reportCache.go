package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"

	"github.com/go-redis/redis/v8"
)

// ReportCache keeps built report summaries in Redis for a short TTL so the
// dashboard doesn't re-aggregate on every refresh.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{
		client: client,
		ttl:    ttl,
	}
}

func reportKey(month time.Month, year int) string {
	return fmt.Sprintf("report:%04d-%02d", year, int(month))
}

func (c *ReportCache) Get(ctx context.Context, month time.Month, year int) (*entity.ReportSummary, error) {
	data, err := c.client.Get(ctx, reportKey(month, year)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var summary entity.ReportSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *ReportCache) Set(ctx context.Context, summary *entity.ReportSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, reportKey(summary.Month, summary.Year), data, c.ttl).Err()
}

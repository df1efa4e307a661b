package bus

import (
	"context"
	"encoding/json"

	"github.com/emabi2002/pngsme/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const channelPrefix = "pngsme:events:"

// RedisPublisher mirrors published events onto Redis pub/sub channels so other
// processes can observe them. Publish failures are logged, never surfaced.
type RedisPublisher struct {
	client *redis.Client
	inner  Publisher
	logg   *logger.Logger
}

// NewRedisPublisher wraps an in-process publisher with Redis channel fanout.
func NewRedisPublisher(client *redis.Client, inner Publisher, logg *logger.Logger) *RedisPublisher {
	if inner == nil {
		inner = NopPublisher{}
	}
	return &RedisPublisher{client: client, inner: inner, logg: logg}
}

// Publish delivers the event in-process first, then mirrors it to Redis.
func (p *RedisPublisher) Publish(ctx context.Context, evt Event) {
	p.inner.Publish(ctx, evt)

	if p.client == nil {
		return
	}
	body, err := json.Marshal(evt)
	if err != nil {
		if p.logg != nil {
			p.logg.Error(ctx, "marshal bus event", err)
		}
		return
	}
	if err := p.client.Publish(ctx, channelPrefix+evt.Topic, body).Err(); err != nil {
		if p.logg != nil {
			p.logg.Error(ctx, "publish bus event", err)
		}
	}
}

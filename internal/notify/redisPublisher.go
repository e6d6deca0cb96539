package notify

import (
	"context"
	"fmt"

	"github.com/ds124wfegd/eventease/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(cfg *config.RedisConfig) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout+cfg.ReadTimeout)
	defer cancel()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.WithField("addr", cfg.Addr).Info("Redis publisher connected")
	return &RedisPublisher{client: client, channel: cfg.Channel}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	body, err := encode(event)
	if err != nil {
		return err
	}

	if err := p.client.Publish(ctx, p.channel, body).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.channel, err)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

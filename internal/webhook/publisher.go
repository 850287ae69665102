package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "webhook_events"
)

// SevereReportEvent - событие о создании отчета с тяжелой категорией
type SevereReportEvent struct {
	ReportID     string    `json:"report_id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters int       `json:"radius_meters"`
	CreatedAt    time.Time `json:"created_at"`
}

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event SevereReportEvent) error
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event SevereReportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

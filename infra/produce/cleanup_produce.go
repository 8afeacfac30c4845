package produce

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const StorageCleanupQueue = "storage.cleanup"

// StorageCleanupMessage carries storage keys whose synchronous removal
// failed and should be retried by the consumer.
type StorageCleanupMessage struct {
	Keys      []string `json:"keys"`
	Timestamp int64    `json:"timestamp"`
}

type CleanupService struct {
	channel *amqp.Channel
}

func InitCleanupService(channel *amqp.Channel) *CleanupService {
	_, err := channel.QueueDeclare(
		StorageCleanupQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to declare queue %s: %v", StorageCleanupQueue, err))
	}

	return &CleanupService{channel: channel}
}

func (s *CleanupService) PublishRemoveObjects(ctx context.Context, keys []string) error {
	body, err := json.Marshal(StorageCleanupMessage{
		Keys:      keys,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cleanup message: %w", err)
	}

	return s.channel.PublishWithContext(ctx,
		"",
		StorageCleanupQueue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
}

package produce

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const TagUsageQueue = "tags.usage"

// TagUsageMessage asks the consumer to bump a tag's usage counter. The
// attach operation that produced it has already succeeded.
type TagUsageMessage struct {
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
}

type TagService struct {
	channel *amqp.Channel
}

func InitTagService(channel *amqp.Channel) *TagService {
	_, err := channel.QueueDeclare(
		TagUsageQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to declare queue %s: %v", TagUsageQueue, err))
	}

	return &TagService{channel: channel}
}

// PublishTagUsage queues a usage-count increment for name.
func (s *TagService) PublishTagUsage(ctx context.Context, name string) error {
	body, err := json.Marshal(TagUsageMessage{
		Name:      name,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal tag usage message: %w", err)
	}

	return s.channel.PublishWithContext(ctx,
		"",            // default exchange
		TagUsageQueue, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
}

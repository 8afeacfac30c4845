package worker

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tnqbao/gau-dam-service/infra"
	"github.com/tnqbao/gau-dam-service/infra/produce"
	"github.com/tnqbao/gau-dam-service/repository"
)

// TagConsumer applies usage counter increments published on tag attach.
type TagConsumer struct {
	channel    *amqp.Channel
	infra      *infra.Infra
	repository *repository.Repository
}

func NewTagConsumer(channel *amqp.Channel, infra *infra.Infra, repo *repository.Repository) *TagConsumer {
	return &TagConsumer{
		channel:    channel,
		infra:      infra,
		repository: repo,
	}
}

func (c *TagConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.TagUsageQueue,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register tag usage consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Tag Consumer] Started listening on queue: %s", produce.TagUsageQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Tag Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Tag Consumer] Channel closed")
					return
				}
				c.handleTagUsage(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *TagConsumer) handleTagUsage(ctx context.Context, msg amqp.Delivery) {
	var payload produce.TagUsageMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Tag Consumer] Failed to unmarshal message")
		_ = msg.Nack(false, false)
		return
	}

	if payload.Name == "" {
		c.infra.Logger.WarningWithContextf(ctx, "[Tag Consumer] Dropping message with empty tag name")
		_ = msg.Nack(false, false)
		return
	}

	if err := c.repository.TagRepo.IncrementUsage(payload.Name); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Tag Consumer] Failed to increment usage for tag %q", payload.Name)
		_ = msg.Nack(false, true) // Requeue
		return
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Tag Consumer] Incremented usage for tag %q", payload.Name)
	_ = msg.Ack(false)
}

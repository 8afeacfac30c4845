package worker

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tnqbao/gau-dam-service/infra"
	"github.com/tnqbao/gau-dam-service/infra/produce"
)

// CleanupConsumer retries object removals that failed inline, keeping the
// bucket free of orphaned objects.
type CleanupConsumer struct {
	channel *amqp.Channel
	infra   *infra.Infra
}

func NewCleanupConsumer(channel *amqp.Channel, infra *infra.Infra) *CleanupConsumer {
	return &CleanupConsumer{
		channel: channel,
		infra:   infra,
	}
}

func (c *CleanupConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.StorageCleanupQueue,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register storage cleanup consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Cleanup Consumer] Started listening on queue: %s", produce.StorageCleanupQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Cleanup Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Cleanup Consumer] Channel closed")
					return
				}
				c.handleCleanup(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *CleanupConsumer) handleCleanup(ctx context.Context, msg amqp.Delivery) {
	var payload produce.StorageCleanupMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Cleanup Consumer] Failed to unmarshal message")
		_ = msg.Nack(false, false)
		return
	}

	if len(payload.Keys) == 0 {
		_ = msg.Ack(false)
		return
	}

	// Removal may outlive the delivery context.
	bgCtx := context.Background()

	if err := c.infra.Minio.RemoveAll(bgCtx, payload.Keys); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Cleanup Consumer] Failed to remove %d object(s)", len(payload.Keys))
		_ = msg.Nack(false, true) // Requeue
		return
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Cleanup Consumer] Removed %d orphaned object(s)", len(payload.Keys))
	_ = msg.Ack(false)
}

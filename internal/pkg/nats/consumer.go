package nats

import (
	"context"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/piresc/senyum/internal/pkg/logger"
)

// MessageHandler processes one event payload
type MessageHandler func(ctx context.Context, subject string, data []byte) error

// Subscriber is the subset of Client a Consumer needs
type Subscriber interface {
	Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error)
	QueueSubscribe(subject, queue string, handler nats.MsgHandler) (*nats.Subscription, error)
}

// Consumer owns a set of subscriptions sharing one lifetime
type Consumer struct {
	client Subscriber
	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	subs []*nats.Subscription
}

// NewConsumer creates a consumer on top of client
func NewConsumer(client Subscriber) *Consumer {
	ctx, cancel := context.WithCancel(context.Background())
	return &Consumer{client: client, ctx: ctx, cancel: cancel}
}

// Handle subscribes handler to subject; a non-empty queue load-balances
// deliveries across service replicas
func (c *Consumer) Handle(subject, queue string, handler MessageHandler) error {
	cb := c.dispatch(handler)

	var (
		sub *nats.Subscription
		err error
	)
	if queue != "" {
		sub, err = c.client.QueueSubscribe(subject, queue, cb)
	} else {
		sub, err = c.client.Subscribe(subject, cb)
	}
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()

	logger.Info("Subscribed to subject",
		logger.String("subject", subject),
		logger.String("queue", queue))
	return nil
}

func (c *Consumer) dispatch(handler MessageHandler) nats.MsgHandler {
	return func(msg *nats.Msg) {
		if c.ctx.Err() != nil {
			return
		}
		if err := handler(c.ctx, msg.Subject, msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", msg.Subject),
				logger.Err(err))
		}
	}
}

// Close unsubscribes everything and stops in-flight dispatch
func (c *Consumer) Close(_ context.Context) error {
	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sub := range c.subs {
		if sub == nil {
			continue
		}
		if err := sub.Unsubscribe(); err != nil && err != nats.ErrConnectionClosed {
			logger.Warn("Failed to unsubscribe",
				logger.String("subject", sub.Subject),
				logger.Err(err))
		}
	}
	c.subs = nil
	return nil
}

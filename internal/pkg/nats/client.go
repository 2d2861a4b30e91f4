package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/piresc/senyum/internal/pkg/logger"
)

// Client represents a NATS client for publishing and subscribing to events
type Client struct {
	conn *nats.Conn
}

// NewClient connects to url with reconnects enabled
func NewClient(url, name string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", logger.Err(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", logger.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// GetConn returns the underlying connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// Publish sends raw data to subject
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishJSON marshals v and publishes it to subject
func (c *Client) PublishJSON(ctx context.Context, subject string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	if err := c.Publish(subject, data); err != nil {
		return err
	}
	logger.DebugCtx(ctx, "Published event", logger.String("subject", subject))
	return nil
}

// Subscribe subscribes to a subject and returns a subscription
func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// QueueSubscribe subscribes as part of queue so each event reaches one member
func (c *Client) QueueSubscribe(subject, queue string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.QueueSubscribe(subject, queue, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// CheckHealth reports an error unless the connection is up
func (c *Client) CheckHealth(_ context.Context) error {
	if c.conn == nil || !c.conn.IsConnected() {
		return fmt.Errorf("nats not connected")
	}
	return nil
}

// Close drains subscriptions and closes the connection
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Drain()
}

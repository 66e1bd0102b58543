package nsq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kioracare/kiora-backend/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

// MessageHandler processes one message body. A returned error requeues the message.
type MessageHandler func(ctx context.Context, body []byte) error

// ConsumerConfig configures a Consumer
type ConsumerConfig struct {
	Topic       string
	Channel     string
	MaxAttempts uint16
	// HandlerTimeout bounds a single handler invocation
	HandlerTimeout time.Duration
}

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a consumer for a topic/channel. Call ConnectToNSQD or
// ConnectToLookupd to start receiving.
func NewConsumer(cfg ConsumerConfig, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	if cfg.MaxAttempts > 0 {
		config.MaxAttempts = cfg.MaxAttempts
	}

	consumer, err := nsq.NewConsumer(cfg.Topic, cfg.Channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)
	consumer.AddHandler(newHandler(cfg, handler))

	return &Consumer{consumer: consumer}, nil
}

func newHandler(cfg ConsumerConfig, handler MessageHandler) nsq.HandlerFunc {
	return func(message *nsq.Message) error {
		ctx := context.Background()
		if cfg.HandlerTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.HandlerTimeout)
			defer cancel()
		}

		if err := handler(ctx, message.Body); err != nil {
			logger.Warn("Error processing message, requeueing",
				logger.String("topic", cfg.Topic),
				logger.Int("attempts", int(message.Attempts)),
				logger.Err(err))
			return err
		}
		return nil
	}
}

// ConnectToNSQD connects the consumer directly to nsqd
func (c *Consumer) ConnectToNSQD(address string) error {
	if err := c.consumer.ConnectToNSQD(address); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// ConnectToLookupd connects the consumer to NSQ lookupd instances
func (c *Consumer) ConnectToLookupd(addresses []string) error {
	for _, addr := range addresses {
		if err := c.consumer.ConnectToNSQLookupd(addr); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd at %s: %w", addr, err)
		}
	}
	return nil
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop stops the consumer and waits for in-flight handlers to return
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}

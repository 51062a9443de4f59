package nsq

import (
	"fmt"

	"github.com/nsqio/go-nsq"
)

// Consumer wraps an NSQ consumer for a single topic/channel pair
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a new NSQ consumer for the given topic and channel
func NewConsumer(topic, channel string, handler nsq.Handler) (*Consumer, error) {
	config := nsq.NewConfig()
	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}

	consumer.AddHandler(handler)
	return &Consumer{consumer: consumer}, nil
}

// ConnectToNSQD connects the consumer directly to an nsqd instance
func (c *Consumer) ConnectToNSQD(address string) error {
	if err := c.consumer.ConnectToNSQD(address); err != nil {
		return fmt.Errorf("failed to connect to nsqd: %w", err)
	}
	return nil
}

// ConnectToLookupd connects the consumer through nsqlookupd discovery
func (c *Consumer) ConnectToLookupd(address string) error {
	if err := c.consumer.ConnectToNSQLookupd(address); err != nil {
		return fmt.Errorf("failed to connect to nsqlookupd: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	c.consumer.Stop()
}

package pubsub

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"form-server/internal/infra/async"
)

var (
	memoryBroker     *async.LocalBroker
	memoryBrokerOnce sync.Once
)

// GetMemoryBroker returns the process wide broker shared by memory
// publishers and consumers.
func GetMemoryBroker() *async.LocalBroker {
	memoryBrokerOnce.Do(func() {
		memoryBroker = async.NewLocalBroker()
	})
	return memoryBroker
}

type MemoryPublisherFactory struct {
	broker *async.LocalBroker
}

var _ PublisherFactory = (*MemoryPublisherFactory)(nil)

func NewMemoryPublisherFactory() *MemoryPublisherFactory {
	return &MemoryPublisherFactory{
		broker: GetMemoryBroker(),
	}
}

func (f *MemoryPublisherFactory) New(topic Topic, _ Message) (Publisher, error) {
	return &MemoryPublisher{
		broker: f.broker,
		topic:  topic,
	}, nil
}

type MemoryPublisher struct {
	broker *async.LocalBroker
	topic  Topic
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	err := p.broker.Publish(ctx, async.BrokerTopicName(p.topic), async.BrokerMessage{
		Event: string(key),
		Value: message,
	})
	// nobody listening is not a failure for a fire and forget stream
	if errors.Is(err, async.ErrTopicNotFound) {
		return nil
	}
	return err
}

type MemoryConsumerFactory struct {
	broker *async.LocalBroker
	group  string
}

var _ ConsumerFactory = (*MemoryConsumerFactory)(nil)

func NewMemoryConsumerFactory(group string) *MemoryConsumerFactory {
	return &MemoryConsumerFactory{
		broker: GetMemoryBroker(),
		group:  group,
	}
}

func (f *MemoryConsumerFactory) New() Consumer {
	return &MemoryConsumer{
		broker: f.broker,
		group:  f.group,
	}
}

type MemoryConsumer struct {
	broker *async.LocalBroker
	group  string
}

var _ Consumer = (*MemoryConsumer)(nil)

func (c *MemoryConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler, _ Prototype) error {
	brokerTopic := async.BrokerTopicName(topic)
	subscription, err := c.broker.Subscribe(brokerTopic)
	if err != nil {
		return err
	}
	defer func() {
		_ = c.broker.Unsubscribe(brokerTopic, subscription)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-subscription.Done:
			return nil
		case msg := <-subscription.Receiver:
			if err := handler(ctx, Key(msg.Event), msg.Value); err != nil {
				slog.Error("handling message",
					slog.String("topic", string(topic)),
					slog.String("group", c.group),
					slog.String("error", err.Error()))
			}
		}
	}
}

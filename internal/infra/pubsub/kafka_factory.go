package pubsub

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNoBrokers = errors.New("no kafka brokers configured")
	ErrNoTopic   = errors.New("topic is required")
)

// KafkaOptions is shared by the publisher and consumer sides so both talk to
// the same cluster and schema registry.
type KafkaOptions struct {
	Brokers           []string
	Group             string
	SchemaRegistryURL string
}

func (o KafkaOptions) validate() error {
	if len(o.Brokers) == 0 {
		return ErrNoBrokers
	}
	return nil
}

var _ PublisherFactory = (*KafkaPublisherFactory)(nil)

type KafkaPublisherFactory struct {
	opts KafkaOptions
}

func NewKafkaPublisherFactory(opts KafkaOptions) *KafkaPublisherFactory {
	return &KafkaPublisherFactory{opts: opts}
}

func (f *KafkaPublisherFactory) New(topic Topic, prototype Message) (Publisher, error) {
	if err := f.opts.validate(); err != nil {
		return nil, err
	}
	if topic == "" {
		return nil, ErrNoTopic
	}

	publisher, err := NewKafkaPublisher(f.opts.Brokers, string(topic), prototype, f.opts.SchemaRegistryURL)
	if err != nil {
		return nil, fmt.Errorf("creating publisher for %s: %w", topic, err)
	}

	return publisher, nil
}

var _ ConsumerFactory = (*KafkaConsumerFactory)(nil)

type KafkaConsumerFactory struct {
	opts KafkaOptions
}

func NewKafkaConsumerFactory(opts KafkaOptions) *KafkaConsumerFactory {
	return &KafkaConsumerFactory{opts: opts}
}

func (f *KafkaConsumerFactory) New() Consumer {
	if err := f.opts.validate(); err != nil {
		return failingConsumer{err: err}
	}
	return NewKafkaConsumer(f.opts.Brokers, f.opts.Group, f.opts.SchemaRegistryURL)
}

// failingConsumer reports a configuration error on the first Consume call.
type failingConsumer struct {
	err error
}

func (c failingConsumer) Consume(_ context.Context, _ Topic, _ MessageHandler, _ Prototype) error {
	return c.err
}

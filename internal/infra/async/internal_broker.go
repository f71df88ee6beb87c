package async

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const _receiverBuffer = 256

type BrokerTopicName string

type BrokerMessage struct {
	Event string
	Value any
	Span  trace.Span
}

type InternalBroker interface {
	Subscribe(topic BrokerTopicName) (Subscription, error)
	Unsubscribe(topic BrokerTopicName, subscription Subscription) error
	Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error
	Stop()
}

var _ InternalBroker = (*LocalBroker)(nil)

var ErrTopicNotFound = errors.New("topic not found")
var ErrSubscriptorNotFound = errors.New("subscriptor not found")

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{
		subscriptors: make(map[BrokerTopicName][]*subscriptor),
	}
}

// LocalBroker fans messages out to every subscription of a topic inside
// the process.
type LocalBroker struct {
	mu           sync.RWMutex
	subscriptors map[BrokerTopicName][]*subscriptor
}

type subscriptor struct {
	once         sync.Once
	done         chan struct{}
	subscription Subscription
}

// Subscription receives on Receiver until Done is closed. Receiver itself
// is never closed.
type Subscription struct {
	ID       string
	Receiver chan BrokerMessage
	Done     <-chan struct{}
}

func (b *LocalBroker) Subscribe(topic BrokerTopicName) (Subscription, error) {
	done := make(chan struct{})
	subscription := Subscription{
		ID:       uuid.NewString(),
		Receiver: make(chan BrokerMessage, _receiverBuffer),
		Done:     done,
	}

	b.mu.Lock()
	b.subscriptors[topic] = append(b.subscriptors[topic], &subscriptor{subscription: subscription, done: done})
	b.mu.Unlock()

	return subscription, nil
}

func (b *LocalBroker) Unsubscribe(topic BrokerTopicName, subscription Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscriptors, ok := b.subscriptors[topic]
	if !ok {
		return ErrTopicNotFound
	}

	index := slices.IndexFunc(subscriptors, func(s *subscriptor) bool { return s.subscription.ID == subscription.ID })
	if index < 0 {
		return ErrSubscriptorNotFound
	}

	subscriptors[index].close()
	b.subscriptors[topic] = slices.Delete(subscriptors, index, index+1)

	return nil
}

// Publish returns ErrTopicNotFound when nobody ever subscribed to topic.
func (b *LocalBroker) Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error {
	msg.Span = trace.SpanFromContext(ctx)

	b.mu.RLock()
	topicSubscriptors, ok := b.subscriptors[topic]
	targets := slices.Clone(topicSubscriptors)
	b.mu.RUnlock()

	if !ok {
		return ErrTopicNotFound
	}

	for _, s := range targets {
		select {
		case s.subscription.Receiver <- msg:
		case <-s.done:
		default:
			// slow subscriber: deliver in the background rather than block the publisher
			go s.deliver(msg)
		}
	}

	return nil
}

func (b *LocalBroker) Subscribers(topic BrokerTopicName) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptors[topic])
}

func (b *LocalBroker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for topic, subscriptors := range b.subscriptors {
		for _, s := range subscriptors {
			s.close()
		}
		delete(b.subscriptors, topic)
	}
}

func (s *subscriptor) deliver(msg BrokerMessage) {
	select {
	case s.subscription.Receiver <- msg:
	case <-s.done:
	}
}

func (s *subscriptor) close() {
	s.once.Do(func() {
		close(s.done)
	})
}

package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"form-server/internal/shared_kernel/avro"

	"github.com/lovoo/goka"
)

const (
	maxRetries     int = 10
	_retryInterval     = 5 * time.Second
)

// newCodec uses the Confluent wire format when a schema registry is
// configured and plain Avro with static schemas otherwise.
func newCodec(prototype any, schemaRegistryURL string) (goka.Codec, error) {
	if schemaRegistryURL == "" {
		return avro.NewAvroCodec(prototype)
	}
	return avro.NewConfluentAvroCodec(prototype, avro.NewSchemaRegistryClient(schemaRegistryURL))
}

type publisherKey struct {
	brokers           string
	topic             string
	prototypeType     string
	schemaRegistryURL string
}

type publisherInstance struct {
	publisher *SimpleKafkaPublisher
	once      sync.Once
	err       error
}

// one emitter per configuration, shared by every repository that asks for it
var (
	publishersMap   = make(map[publisherKey]*publisherInstance)
	publishersMutex sync.Mutex
)

func NewKafkaPublisher(brokers []string, topic string, prototype any, schemaRegistryURL string) (*SimpleKafkaPublisher, error) {
	key := publisherKey{
		brokers:           strings.Join(brokers, ","),
		topic:             topic,
		prototypeType:     fmt.Sprintf("%T", prototype),
		schemaRegistryURL: schemaRegistryURL,
	}

	publishersMutex.Lock()
	instance, exists := publishersMap[key]
	if !exists {
		instance = &publisherInstance{}
		publishersMap[key] = instance
	}
	publishersMutex.Unlock()

	instance.once.Do(func() {
		slog.Debug("creating kafka publisher",
			slog.String("schema_registry_url", schemaRegistryURL),
			slog.String("topic", topic),
			slog.String("prototype_type", key.prototypeType))

		codec, err := newCodec(prototype, schemaRegistryURL)
		if err != nil {
			instance.err = fmt.Errorf("creating codec: %w", err)
			return
		}

		for try := 0; try < maxRetries; try++ {
			slog.Debug("connecting to kafka brokers", slog.String("brokers", key.brokers), slog.Int("try", try+1))
			e, err := goka.NewEmitter(brokers, goka.Stream(topic), codec)
			if err == nil {
				instance.publisher = &SimpleKafkaPublisher{emitter: e}
				return
			}
			slog.Warn("kafka not ready", slog.String("error", err.Error()))
			time.Sleep(_retryInterval)
		}

		instance.err = fmt.Errorf("impossible to connect to kafka brokers after %d retries", maxRetries)
	})

	if instance.err != nil {
		return nil, instance.err
	}

	return instance.publisher, nil
}

var _ Publisher = (*SimpleKafkaPublisher)(nil)

type SimpleKafkaPublisher struct {
	emitter *goka.Emitter
}

func (p *SimpleKafkaPublisher) Publish(_ context.Context, key Key, message Message) error {
	slog.Debug("publishing message", slog.String("key", string(key)))
	if err := p.emitter.EmitSync(string(key), message); err != nil {
		return fmt.Errorf("emitting message: %w", err)
	}

	return nil
}

func (p *SimpleKafkaPublisher) Close() error {
	return p.emitter.Finish()
}

var _ Consumer = (*SimpleKafkaConsumer)(nil)

type SimpleKafkaConsumer struct {
	brokers           []string
	group             goka.Group
	schemaRegistryURL string
}

func NewKafkaConsumer(brokers []string, group string, schemaRegistryURL string) *SimpleKafkaConsumer {
	return &SimpleKafkaConsumer{
		brokers:           brokers,
		group:             goka.Group(group),
		schemaRegistryURL: schemaRegistryURL,
	}
}

func (c *SimpleKafkaConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler, prototype Prototype) error {
	codec, err := newCodec(prototype, c.schemaRegistryURL)
	if err != nil {
		return fmt.Errorf("creating codec: %w", err)
	}

	cb := func(gctx goka.Context, msg any) {
		if err := handler(gctx.Context(), Key(gctx.Key()), msg); err != nil {
			slog.Error("handling message",
				slog.String("topic", string(topic)),
				slog.String("group", string(c.group)),
				slog.String("error", err.Error()))
		}
	}

	gg := goka.DefineGroup(
		c.group,
		goka.Input(goka.Stream(topic), codec, cb),
	)
	p, err := goka.NewProcessor(c.brokers, gg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	return p.Run(ctx)
}

package pubsub

const EnvironmentLocal = "local"

type FactoryOptions struct {
	Environment       string
	KafkaBrokers      []string
	ConsumerGroup     string
	SchemaRegistryURL string
}

// Factory picks the in-memory broker for local runs and Kafka otherwise.
type Factory struct {
	publisherFactory PublisherFactory
	consumerFactory  ConsumerFactory
}

func NewFactory(opts FactoryOptions) *Factory {
	if opts.Environment == EnvironmentLocal {
		return &Factory{
			publisherFactory: NewMemoryPublisherFactory(),
			consumerFactory:  NewMemoryConsumerFactory(opts.ConsumerGroup),
		}
	}

	kafka := KafkaOptions{
		Brokers:           opts.KafkaBrokers,
		Group:             opts.ConsumerGroup,
		SchemaRegistryURL: opts.SchemaRegistryURL,
	}
	return &Factory{
		publisherFactory: NewKafkaPublisherFactory(kafka),
		consumerFactory:  NewKafkaConsumerFactory(kafka),
	}
}

func (f *Factory) GetPublisherFactory() PublisherFactory {
	return f.publisherFactory
}

func (f *Factory) GetConsumerFactory() ConsumerFactory {
	return f.consumerFactory
}

package pubsub_test

import (
	"context"
	"errors"

	"form-server/internal/infra/async"
	"form-server/internal/infra/pubsub"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type received struct {
	key   pubsub.Key
	value pubsub.Prototype
}

var _ = Describe("Memory pubsub", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		topic  pubsub.Topic
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		topic = pubsub.Topic("memory_test_" + CurrentSpecReport().LeafNodeText)
	})

	AfterEach(func() {
		cancel()
	})

	consume := func(group string, handler pubsub.MessageHandler) chan error {
		finished := make(chan error, 1)
		consumer := pubsub.NewMemoryConsumerFactory(group).New()
		go func() {
			finished <- consumer.Consume(ctx, topic, handler, "")
		}()
		Eventually(func() int {
			return pubsub.GetMemoryBroker().Subscribers(async.BrokerTopicName(topic))
		}).Should(BeNumerically(">", 0))
		return finished
	}

	It("delivers published messages with their key", func() {
		messages := make(chan received, 1)
		consume("group", func(_ context.Context, key pubsub.Key, value pubsub.Prototype) error {
			messages <- received{key: key, value: value}
			return nil
		})

		publisher, err := pubsub.NewMemoryPublisherFactory().New(topic, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(publisher.Publish(ctx, "form-1", "hello world")).To(Succeed())

		var msg received
		Eventually(messages).Should(Receive(&msg))
		Expect(msg.key).To(Equal(pubsub.Key("form-1")))
		Expect(msg.value).To(Equal("hello world"))
	})

	It("does not fail when nobody consumes the topic", func() {
		publisher, err := pubsub.NewMemoryPublisherFactory().New(topic, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(publisher.Publish(ctx, "k", "v")).To(Succeed())
	})

	It("keeps consuming after a handler error", func() {
		calls := make(chan struct{}, 2)
		consume("group", func(context.Context, pubsub.Key, pubsub.Prototype) error {
			calls <- struct{}{}
			return errors.New("boom")
		})

		publisher, _ := pubsub.NewMemoryPublisherFactory().New(topic, "")
		Expect(publisher.Publish(ctx, "a", 1)).To(Succeed())
		Expect(publisher.Publish(ctx, "b", 2)).To(Succeed())

		Eventually(calls).Should(Receive())
		Eventually(calls).Should(Receive())
	})

	It("returns once the context is cancelled", func() {
		finished := consume("group", func(context.Context, pubsub.Key, pubsub.Prototype) error { return nil })

		cancel()

		Eventually(finished).Should(Receive(BeNil()))
		Eventually(func() int {
			return pubsub.GetMemoryBroker().Subscribers(async.BrokerTopicName(topic))
		}).Should(BeZero())
	})
})

var _ = Describe("Factory", func() {
	It("uses the memory broker for local runs", func() {
		factory := pubsub.NewFactory(pubsub.FactoryOptions{Environment: pubsub.EnvironmentLocal, ConsumerGroup: "g"})

		Expect(factory.GetPublisherFactory()).To(BeAssignableToTypeOf(&pubsub.MemoryPublisherFactory{}))
		Expect(factory.GetConsumerFactory()).To(BeAssignableToTypeOf(&pubsub.MemoryConsumerFactory{}))
	})

	It("uses kafka elsewhere", func() {
		factory := pubsub.NewFactory(pubsub.FactoryOptions{
			Environment:   "production",
			KafkaBrokers:  []string{"localhost:19092"},
			ConsumerGroup: "g",
		})

		Expect(factory.GetPublisherFactory()).To(BeAssignableToTypeOf(&pubsub.KafkaPublisherFactory{}))
		Expect(factory.GetConsumerFactory()).To(BeAssignableToTypeOf(&pubsub.KafkaConsumerFactory{}))
	})
})

package async_test

import (
	"context"

	"form-server/internal/infra/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Local Broker", func() {
	var (
		broker *async.LocalBroker
		topic  async.BrokerTopicName
		ctx    context.Context
	)

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		topic = "forms"
		ctx = context.TODO()
	})

	Context("Publish", func() {
		It("fails when the topic has never been subscribed", func() {
			err := broker.Publish(ctx, topic, async.BrokerMessage{})
			Expect(err).To(MatchError(async.ErrTopicNotFound))
		})

		It("delivers to every subscription", func() {
			first, _ := broker.Subscribe(topic)
			second, _ := broker.Subscribe(topic)

			Expect(broker.Publish(ctx, topic, async.BrokerMessage{Event: "created", Value: 1})).To(Succeed())

			Eventually(first.Receiver).Should(Receive(HaveField("Event", "created")))
			Eventually(second.Receiver).Should(Receive(HaveField("Value", 1)))
		})

		It("keeps publish order for a single subscription", func() {
			subscription, _ := broker.Subscribe(topic)

			for i := range 5 {
				Expect(broker.Publish(ctx, topic, async.BrokerMessage{Value: i})).To(Succeed())
			}

			for i := range 5 {
				var msg async.BrokerMessage
				Eventually(subscription.Receiver).Should(Receive(&msg))
				Expect(msg.Value).To(Equal(i))
			}
		})
	})

	Context("Unsubscribe", func() {
		It("stops delivery and closes Done", func() {
			subscription, _ := broker.Subscribe(topic)

			Expect(broker.Unsubscribe(topic, subscription)).To(Succeed())
			Expect(broker.Subscribers(topic)).To(BeZero())
			Eventually(subscription.Done).Should(BeClosed())

			Expect(broker.Publish(ctx, topic, async.BrokerMessage{})).To(Succeed())
			Consistently(subscription.Receiver).ShouldNot(Receive())
		})

		It("reports unknown topics", func() {
			err := broker.Unsubscribe("unknown", async.Subscription{})
			Expect(err).To(MatchError(async.ErrTopicNotFound))
		})

		It("reports unknown subscriptions", func() {
			_, _ = broker.Subscribe(topic)
			err := broker.Unsubscribe(topic, async.Subscription{ID: "other"})
			Expect(err).To(MatchError(async.ErrSubscriptorNotFound))
		})
	})

	It("closes every subscription on Stop", func() {
		subscription, _ := broker.Subscribe(topic)

		broker.Stop()

		Eventually(subscription.Done).Should(BeClosed())
		Expect(broker.Subscribers(topic)).To(BeZero())
	})
})

package usecases_test

import (
	"context"
	"errors"
	"time"

	"form-server/internal/forms/usecases"
	"form-server/internal/infra/pubsub"
	"form-server/internal/shared_kernel/avro"
	mockpubsub "form-server/test/unit/doubles/infra/pubsub"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("FormEventWorker", func() {
	var (
		ctrl            *gomock.Controller
		consumerFactory *mockpubsub.MockConsumerFactory
		consumer        *mockpubsub.MockConsumer
		worker          *usecases.FormEventWorker
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		consumerFactory = mockpubsub.NewMockConsumerFactory(ctrl)
		consumer = mockpubsub.NewMockConsumer(ctrl)
		worker = usecases.NewFormEventWorker(consumerFactory)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("consumes the forms topic and handles every event shape", func() {
		var handlerErrors []error
		consumerFactory.EXPECT().New().Return(consumer)
		consumer.EXPECT().
			Consume(gomock.Any(), pubsub.Topic("forms"), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ pubsub.Topic, handler pubsub.MessageHandler, prototype pubsub.Prototype) error {
				Expect(prototype).To(BeAssignableToTypeOf(&avro.AvroFormEvent{}))

				event := avro.AvroFormEvent{
					ID:         "form-1",
					EventType:  avro.FormEventCreated,
					Name:       "Contact Form",
					OccurredAt: time.Now(),
				}
				handlerErrors = append(handlerErrors,
					handler(ctx, "form-1", &event),
					handler(ctx, "form-1", event),
					handler(ctx, "form-1", "not an event"),
				)
				return nil
			})

		finished := make(chan struct{})
		worker.Run(context.Background(), func() { close(finished) })

		Eventually(finished).Should(BeClosed())
		Expect(handlerErrors).To(HaveLen(3))
		Expect(handlerErrors[0]).NotTo(HaveOccurred())
		Expect(handlerErrors[1]).NotTo(HaveOccurred())
		Expect(handlerErrors[2]).To(MatchError(ContainSubstring("unexpected form event type")))
	})

	It("calls done when consuming fails", func() {
		consumerFactory.EXPECT().New().Return(consumer)
		consumer.EXPECT().
			Consume(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("broker unavailable"))

		doneCalled := false
		worker.Run(context.Background(), func() { doneCalled = true })

		Expect(doneCalled).To(BeTrue())
	})

	It("stops with the memory consumer once the context is cancelled", func() {
		memoryWorker := usecases.NewFormEventWorker(pubsub.NewMemoryConsumerFactory("audit"))
		ctx, cancel := context.WithCancel(context.Background())

		finished := make(chan struct{})
		go memoryWorker.Run(ctx, func() { close(finished) })

		publisher, err := pubsub.NewMemoryPublisherFactory().New("forms", &avro.AvroFormEvent{})
		Expect(err).NotTo(HaveOccurred())
		Expect(publisher.Publish(ctx, "form-2", &avro.AvroFormEvent{ID: "form-2", EventType: avro.FormEventDeleted})).To(Succeed())

		cancel()
		Eventually(finished).Should(BeClosed())
		memoryWorker.Shutdown()
	})
})

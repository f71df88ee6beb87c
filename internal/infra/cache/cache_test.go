package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"form-server/internal/infra/cache"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("RistrettoCache", func() {
	var (
		cacheInstance *cache.RistrettoCache
		ctx           context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		cacheInstance, err = cache.New(nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		cacheInstance.Close()
	})

	ginkgo.It("reads back what was set", func() {
		gomega.Expect(cacheInstance.Set(ctx, "forms-value", 7, time.Minute)).To(gomega.BeTrue())

		value, found := cacheInstance.Get(ctx, "forms-value")
		gomega.Expect(found).To(gomega.BeTrue())
		gomega.Expect(value).To(gomega.Equal(7))
	})

	ginkgo.It("forgets deleted keys", func() {
		cacheInstance.Set(ctx, "key", "value", time.Minute)
		cacheInstance.Delete(ctx, "key")

		_, found := cacheInstance.Get(ctx, "key")
		gomega.Expect(found).To(gomega.BeFalse())
	})

	ginkgo.It("expires entries after their ttl", func() {
		cacheInstance.Set(ctx, "short", "value", 50*time.Millisecond)

		gomega.Eventually(func() bool {
			_, found := cacheInstance.Get(ctx, "short")
			return found
		}).WithTimeout(2 * time.Second).Should(gomega.BeFalse())
	})

	ginkgo.It("ignores calls with a cancelled context", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		gomega.Expect(cacheInstance.Set(cancelled, "key", "value", time.Minute)).To(gomega.BeFalse())
		_, found := cacheInstance.Get(cancelled, "key")
		gomega.Expect(found).To(gomega.BeFalse())
	})

	ginkgo.Context("GetOrSet", func() {
		ginkgo.It("runs the loader once for concurrent callers", func() {
			var calls int32
			loader := func() (any, error) {
				atomic.AddInt32(&calls, 1)
				time.Sleep(20 * time.Millisecond)
				return "loaded", nil
			}

			var wg sync.WaitGroup
			for range 10 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer ginkgo.GinkgoRecover()
					value, err := cacheInstance.GetOrSet(ctx, "shared", time.Minute, loader)
					gomega.Expect(err).NotTo(gomega.HaveOccurred())
					gomega.Expect(value).To(gomega.Equal("loaded"))
				}()
			}
			wg.Wait()

			gomega.Expect(atomic.LoadInt32(&calls)).To(gomega.Equal(int32(1)))
		})

		ginkgo.It("does not cache loader failures", func() {
			boom := errors.New("boom")
			_, err := cacheInstance.GetOrSet(ctx, "failing", time.Minute, func() (any, error) { return nil, boom })
			gomega.Expect(err).To(gomega.MatchError(boom))

			value, err := cacheInstance.GetOrSet(ctx, "failing", time.Minute, func() (any, error) { return 1, nil })
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(value).To(gomega.Equal(1))
		})
	})
})

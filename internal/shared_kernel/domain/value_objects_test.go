package domain_test

import (
	"form-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Name", func() {
	It("trims surrounding whitespace", func() {
		Expect(domain.Name("  Contact Form \t").Normalize()).To(Equal(domain.Name("Contact Form")))
	})

	It("is empty when only whitespace", func() {
		Expect(domain.Name("   ").IsEmpty()).To(BeTrue())
		Expect(domain.Name(" a ").IsEmpty()).To(BeFalse())
	})

	It("keeps case", func() {
		Expect(domain.Name("Contact").Normalize()).NotTo(Equal(domain.Name("contact")))
	})
})

var _ = Describe("ID", func() {
	It("renders as its string value", func() {
		Expect(domain.ID("abc").String()).To(Equal("abc"))
		Expect(domain.ID("").IsEmpty()).To(BeTrue())
	})
})

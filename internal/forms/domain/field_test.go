package domain_test

import (
	"form-server/internal/forms/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Field", func() {
	DescribeTable("ParseFieldType",
		func(input string, expected domain.FieldType) {
			t, err := domain.ParseFieldType(input)
			Expect(err).NotTo(HaveOccurred())
			Expect(t).To(Equal(expected))
		},
		Entry("empty defaults to text", "", domain.FieldTypeText),
		Entry("text", "text", domain.FieldTypeText),
		Entry("number", "number", domain.FieldTypeNumber),
		Entry("email", "email", domain.FieldTypeEmail),
		Entry("date", "date", domain.FieldTypeDate),
		Entry("checkbox", "checkbox", domain.FieldTypeCheckbox),
		Entry("select", "select", domain.FieldTypeSelect),
	)

	It("rejects values outside the enum", func() {
		_, err := domain.ParseFieldType("Email")
		Expect(err).To(MatchError(domain.ErrInvalidFieldType))
	})

	It("builds a field with defaults", func() {
		field, err := domain.NewField("nickname", "", false)

		Expect(err).NotTo(HaveOccurred())
		Expect(field.Type).To(Equal(domain.FieldTypeText))
		Expect(field.IsRequired).To(BeFalse())
	})
})

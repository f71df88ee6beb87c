package domain_test

import (
	"time"

	"form-server/internal/forms/domain"
	"form-server/internal/infra/utils"
	shareddomain "form-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Form", func() {
	Context("Build", func() {
		It("applies defaults", func() {
			form, err := domain.NewFormBuilder().WithName("Contact Form").Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(form.ID).NotTo(BeEmpty())
			Expect(utils.IsUUID(form.ID.String())).To(BeTrue())
			Expect(form.IsVisible).To(BeTrue())
			Expect(form.IsReadOnly).To(BeFalse())
			Expect(form.Fields).To(BeEmpty())
			Expect(form.CreatedAt.Time).To(BeTemporally("~", time.Now(), time.Second))
			Expect(form.UpdatedAt).To(Equal(form.CreatedAt))
		})

		It("trims the name", func() {
			form, err := domain.NewFormBuilder().WithName("  Contact Form  ").Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(form.Name).To(Equal(shareddomain.Name("Contact Form")))
		})

		It("rejects a blank name", func() {
			_, err := domain.NewFormBuilder().WithName("   ").Build()
			Expect(err).To(MatchError(domain.ErrFormNameRequired))
		})

		It("rejects a missing name", func() {
			_, err := domain.NewFormBuilder().WithIsVisible(false).Build()
			Expect(err).To(MatchError(domain.ErrFormNameRequired))
		})

		It("keeps explicit flags", func() {
			form, err := domain.NewFormBuilder().
				WithName("Hidden").
				WithIsVisible(false).
				WithIsReadOnly(true).
				Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(form.IsVisible).To(BeFalse())
			Expect(form.IsReadOnly).To(BeTrue())
		})

		It("preserves field order", func() {
			fields := []domain.Field{
				{Name: "email", Type: domain.FieldTypeEmail, IsRequired: true},
				{Name: "age", Type: domain.FieldTypeNumber},
				{Name: "agree", Type: domain.FieldTypeCheckbox},
			}

			form, err := domain.NewFormBuilder().WithName("Ordered").WithFields(fields).Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(form.Fields).To(Equal(fields))
		})

		It("rejects unknown field types", func() {
			_, err := domain.NewFormBuilder().
				WithName("Bad").
				WithFields([]domain.Field{{Name: "x", Type: "color"}}).
				Build()

			Expect(err).To(MatchError(domain.ErrInvalidFieldType))
		})
	})

	Context("Apply", func() {
		var form domain.Form

		BeforeEach(func() {
			var err error
			form, err = domain.NewFormBuilder().WithName("Original").Build()
			Expect(err).NotTo(HaveOccurred())
			form.UpdatedAt = utils.Time{Time: time.Now().Add(-time.Hour)}
		})

		It("changes only the present attributes", func() {
			readOnly := true
			err := form.Apply(domain.FormPatch{IsReadOnly: &readOnly})

			Expect(err).NotTo(HaveOccurred())
			Expect(form.Name).To(Equal(shareddomain.Name("Original")))
			Expect(form.IsVisible).To(BeTrue())
			Expect(form.IsReadOnly).To(BeTrue())
			Expect(form.UpdatedAt.Time).To(BeTemporally("~", time.Now(), time.Second))
		})

		It("trims a new name", func() {
			name := shareddomain.Name(" Updated Form ")
			Expect(form.Apply(domain.FormPatch{Name: &name})).To(Succeed())
			Expect(form.Name).To(Equal(shareddomain.Name("Updated Form")))
		})

		It("rejects a blank name and leaves the form untouched", func() {
			name := shareddomain.Name(" ")
			err := form.Apply(domain.FormPatch{Name: &name})

			Expect(err).To(MatchError(domain.ErrFormNameRequired))
			Expect(form.Name).To(Equal(shareddomain.Name("Original")))
		})

		It("replaces the fields", func() {
			fields := []domain.Field{{Name: "when", Type: domain.FieldTypeDate}}
			Expect(form.Apply(domain.FormPatch{Fields: &fields})).To(Succeed())
			Expect(form.Fields).To(Equal(fields))
		})

		It("never changes the id", func() {
			id := form.ID
			name := shareddomain.Name("Other")
			Expect(form.Apply(domain.FormPatch{Name: &name})).To(Succeed())
			Expect(form.ID).To(Equal(id))
		})
	})

	Context("FormPatch", func() {
		It("reports emptiness", func() {
			visible := false
			Expect(domain.FormPatch{}.IsEmpty()).To(BeTrue())
			Expect(domain.FormPatch{IsVisible: &visible}.IsEmpty()).To(BeFalse())
		})

		It("rejects unknown field types", func() {
			fields := []domain.Field{{Name: "x", Type: "color"}}
			_, err := domain.FormPatch{Fields: &fields}.Normalize()
			Expect(err).To(MatchError(domain.ErrInvalidFieldType))
		})
	})
})

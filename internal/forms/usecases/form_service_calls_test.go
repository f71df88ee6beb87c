package usecases_test

import (
	"context"
	"errors"

	"form-server/internal/forms/domain"
	"form-server/internal/forms/usecases"
	mockusecases "form-server/test/unit/doubles/forms/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("FormService repository calls", func() {
	var (
		ctx        context.Context
		ctrl       *gomock.Controller
		repository *mockusecases.MockFormRepository
		service    *usecases.SimpleFormService
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		repository = mockusecases.NewMockFormRepository(ctrl)
		service = usecases.NewFormService(repository)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("does not write when the name is taken", func() {
		existing := buildForm("Contact Form")
		repository.EXPECT().FindByName(ctx, existing.Name).Return(existing, nil)
		repository.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.CreateForm(ctx, buildForm("Contact Form"))

		Expect(usecases.KindOf(err)).To(Equal(usecases.KindValidation))
		var serviceErr *usecases.Error
		Expect(errors.As(err, &serviceErr)).To(BeTrue())
		Expect(serviceErr.Message).To(Equal(usecases.MessageFormNameNotUnique))
	})

	It("checks renames against other forms only", func() {
		form := buildForm("Contact Form")
		renamed := form
		renamed.Name = "Updated Form"

		gomock.InOrder(
			repository.EXPECT().
				FindByNameExcludingID(ctx, renamed.Name, form.ID).
				Return(renamed, usecases.ErrFormNotFound),
			repository.EXPECT().
				Update(ctx, form.ID, gomock.Any()).
				Return(renamed, nil),
		)

		updated, err := service.UpdateForm(ctx, form.ID, domain.FormPatch{Name: namePtr("Updated Form")})

		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Name).To(Equal(renamed.Name))
	})

	It("skips the uniqueness check when the name is absent", func() {
		form := buildForm("Contact Form")
		visible := false
		repository.EXPECT().Update(ctx, form.ID, gomock.Any()).Return(form, nil)

		_, err := service.UpdateForm(ctx, form.ID, domain.FormPatch{IsVisible: &visible})

		Expect(err).NotTo(HaveOccurred())
	})
})

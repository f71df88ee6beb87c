package internal_test

import (
	"encoding/json"

	"form-server/internal/forms/domain"
	"form-server/internal/forms/httpapi/internal"
	"form-server/internal/infra/utils"
	shareddomain "form-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Form DTOs", func() {
	Context("FormCreateRequest", func() {
		It("applies the defaults when flags and field types are omitted", func() {
			var request internal.FormCreateRequest
			err := json.Unmarshal([]byte(`{"name":"  Contact Form ","fields":[{"name":"email","type":"email","isRequired":true},{"name":"notes"}]}`), &request)
			Expect(err).NotTo(HaveOccurred())
			Expect(request.Validate()).To(Succeed())

			form, err := request.ToForm()
			Expect(err).NotTo(HaveOccurred())
			Expect(form.Name).To(Equal(shareddomain.Name("Contact Form")))
			Expect(form.IsVisible).To(BeTrue())
			Expect(form.IsReadOnly).To(BeFalse())
			Expect(form.Fields).To(Equal([]domain.Field{
				{Name: "email", Type: domain.FieldTypeEmail, IsRequired: true},
				{Name: "notes", Type: domain.FieldTypeText},
			}))
		})

		It("keeps explicit flags", func() {
			request := internal.FormCreateRequest{
				Name:       "Hidden",
				IsVisible:  utils.Ptr(false),
				IsReadOnly: utils.Ptr(true),
			}

			form, err := request.ToForm()
			Expect(err).NotTo(HaveOccurred())
			Expect(form.IsVisible).To(BeFalse())
			Expect(form.IsReadOnly).To(BeTrue())
		})

		It("requires a name", func() {
			err := internal.FormCreateRequest{}.Validate()
			Expect(err).To(MatchError("name is required"))
		})

		It("rejects an unknown field type", func() {
			request := internal.FormCreateRequest{
				Name:   "Survey",
				Fields: []internal.FieldRequest{{Name: "rating", Type: "stars"}},
			}

			err := request.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("fields[0].type must be one of"))
		})
	})

	Context("FormUpdateRequest", func() {
		It("leaves absent members nil", func() {
			var request internal.FormUpdateRequest
			Expect(json.Unmarshal([]byte(`{"isReadOnly":false}`), &request)).To(Succeed())
			Expect(request.Validate()).To(Succeed())

			patch, err := request.ToPatch()
			Expect(err).NotTo(HaveOccurred())
			Expect(patch.Name).To(BeNil())
			Expect(patch.IsVisible).To(BeNil())
			Expect(patch.Fields).To(BeNil())
			Expect(patch.IsReadOnly).To(Equal(utils.Ptr(false)))
		})

		It("rejects a blank name", func() {
			request := internal.FormUpdateRequest{Name: utils.Ptr("   ")}
			Expect(request.Validate()).To(MatchError("name is required"))
		})

		It("rejects an unknown field type", func() {
			request := internal.FormUpdateRequest{Fields: &[]internal.FieldRequest{
				{Name: "ok", Type: "date"},
				{Name: "bad", Type: "color"},
			}}

			err := request.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(HavePrefix("fields[1].type must be one of"))
		})
	})

	Context("ToFormResponse", func() {
		It("uses camelCase members", func() {
			form, err := domain.NewFormBuilder().
				WithName("Contact Form").
				WithFields([]domain.Field{{Name: "email", Type: domain.FieldTypeEmail, IsRequired: true}}).
				Build()
			Expect(err).NotTo(HaveOccurred())

			data, err := json.Marshal(internal.ToFormResponse(form))
			Expect(err).NotTo(HaveOccurred())

			var decoded map[string]any
			Expect(json.Unmarshal(data, &decoded)).To(Succeed())
			Expect(decoded).To(HaveKeyWithValue("id", form.ID.String()))
			Expect(decoded).To(HaveKeyWithValue("isVisible", true))
			Expect(decoded).To(HaveKeyWithValue("isReadOnly", false))
			Expect(decoded).To(HaveKey("createdAt"))
			Expect(decoded).To(HaveKey("updatedAt"))
			Expect(decoded["fields"]).To(ConsistOf(map[string]any{
				"name": "email", "type": "email", "isRequired": true,
			}))
		})
	})
})

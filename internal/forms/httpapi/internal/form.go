package internal

import (
	"form-server/internal/forms/domain"
	"form-server/internal/infra/utils"
	shareddomain "form-server/internal/shared_kernel/domain"
)

type FormResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	IsVisible  bool            `json:"isVisible"`
	IsReadOnly bool            `json:"isReadOnly"`
	Fields     []FieldResponse `json:"fields"`
	CreatedAt  utils.Time      `json:"createdAt"`
	UpdatedAt  utils.Time      `json:"updatedAt"`
}

type FieldResponse struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	IsRequired bool   `json:"isRequired"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type FormCreateRequest struct {
	Name       string         `json:"name" validate:"required"`
	IsVisible  *bool          `json:"isVisible"`
	IsReadOnly *bool          `json:"isReadOnly"`
	Fields     []FieldRequest `json:"fields" validate:"dive"`
}

// FormUpdateRequest distinguishes absent members (nil) from zero values.
type FormUpdateRequest struct {
	Name       *string         `json:"name"`
	IsVisible  *bool           `json:"isVisible"`
	IsReadOnly *bool           `json:"isReadOnly"`
	Fields     *[]FieldRequest `json:"fields"`
}

type FieldRequest struct {
	Name       string `json:"name"`
	Type       string `json:"type" validate:"omitempty,oneof=text number email date checkbox select"`
	IsRequired bool   `json:"isRequired"`
}

func ToFormResponse(form domain.Form) FormResponse {
	fields := make([]FieldResponse, len(form.Fields))
	for i, f := range form.Fields {
		fields[i] = FieldResponse{
			Name:       f.Name.String(),
			Type:       string(f.Type),
			IsRequired: f.IsRequired,
		}
	}

	return FormResponse{
		ID:         form.ID.String(),
		Name:       form.Name.String(),
		IsVisible:  form.IsVisible,
		IsReadOnly: form.IsReadOnly,
		Fields:     fields,
		CreatedAt:  form.CreatedAt,
		UpdatedAt:  form.UpdatedAt,
	}
}

func ToFormResponses(forms []domain.Form) []FormResponse {
	result := make([]FormResponse, len(forms))
	for i, form := range forms {
		result[i] = ToFormResponse(form)
	}
	return result
}

func (r FormCreateRequest) ToForm() (domain.Form, error) {
	fields, err := toDomainFields(r.Fields)
	if err != nil {
		return domain.Form{}, err
	}

	builder := domain.NewFormBuilder().
		WithName(r.Name).
		WithFields(fields)
	if r.IsVisible != nil {
		builder = builder.WithIsVisible(*r.IsVisible)
	}
	if r.IsReadOnly != nil {
		builder = builder.WithIsReadOnly(*r.IsReadOnly)
	}

	return builder.Build()
}

func (r FormUpdateRequest) ToPatch() (domain.FormPatch, error) {
	patch := domain.FormPatch{
		IsVisible:  r.IsVisible,
		IsReadOnly: r.IsReadOnly,
	}

	if r.Name != nil {
		name := shareddomain.Name(*r.Name)
		patch.Name = &name
	}

	if r.Fields != nil {
		fields, err := toDomainFields(*r.Fields)
		if err != nil {
			return domain.FormPatch{}, err
		}
		patch.Fields = &fields
	}

	return patch, nil
}

func toDomainFields(requests []FieldRequest) ([]domain.Field, error) {
	fields := make([]domain.Field, 0, len(requests))
	for _, req := range requests {
		field, err := domain.NewField(req.Name, req.Type, req.IsRequired)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

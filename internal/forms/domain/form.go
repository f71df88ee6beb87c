package domain

import (
	"time"

	"form-server/internal/infra/utils"
	shareddomain "form-server/internal/shared_kernel/domain"
)

type Form struct {
	ID         shareddomain.ID
	Name       shareddomain.Name
	IsVisible  bool
	IsReadOnly bool
	Fields     []Field
	CreatedAt  utils.Time
	UpdatedAt  utils.Time
}

// Apply merges the present attributes of patch into the form.
func (f *Form) Apply(patch FormPatch) error {
	normalized, err := patch.Normalize()
	if err != nil {
		return err
	}

	f.Name = utils.ValueOr(normalized.Name, f.Name)
	f.IsVisible = utils.ValueOr(normalized.IsVisible, f.IsVisible)
	f.IsReadOnly = utils.ValueOr(normalized.IsReadOnly, f.IsReadOnly)
	if normalized.Fields != nil {
		f.Fields = append(make([]Field, 0, len(*normalized.Fields)), *normalized.Fields...)
	}
	f.UpdatedAt = utils.Time{Time: time.Now()}

	return nil
}

func NewFormBuilder() *formBuilder {
	return &formBuilder{}
}

type formBuilder struct {
	actions []formHandler
}

type formHandler func(v *Form) error

func (b *formBuilder) WithName(value string) *formBuilder {
	b.actions = append(b.actions, func(d *Form) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *formBuilder) WithIsVisible(value bool) *formBuilder {
	b.actions = append(b.actions, func(d *Form) error {
		d.IsVisible = value
		return nil
	})
	return b
}

func (b *formBuilder) WithIsReadOnly(value bool) *formBuilder {
	b.actions = append(b.actions, func(d *Form) error {
		d.IsReadOnly = value
		return nil
	})
	return b
}

func (b *formBuilder) WithFields(value []Field) *formBuilder {
	b.actions = append(b.actions, func(d *Form) error {
		for _, field := range value {
			if _, ok := fieldTypes[field.Type]; !ok {
				return ErrInvalidFieldType
			}
		}
		d.Fields = append(make([]Field, 0, len(value)), value...)
		return nil
	})
	return b
}

func (b *formBuilder) Build() (Form, error) {
	now := utils.Time{Time: time.Now()}
	result := Form{
		ID:         shareddomain.ID(utils.GenerateUUID()),
		IsVisible:  true,
		IsReadOnly: false,
		Fields:     make([]Field, 0),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Form{}, err
		}
	}

	result.Name = result.Name.Normalize()
	if result.Name.IsEmpty() {
		return Form{}, ErrFormNameRequired
	}

	return result, nil
}

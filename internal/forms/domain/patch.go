package domain

import shareddomain "form-server/internal/shared_kernel/domain"

// FormPatch carries a partial update. Nil members are left untouched.
type FormPatch struct {
	Name       *shareddomain.Name
	IsVisible  *bool
	IsReadOnly *bool
	Fields     *[]Field
}

// Normalize trims the name and checks the field types.
func (p FormPatch) Normalize() (FormPatch, error) {
	if p.Name != nil {
		name := p.Name.Normalize()
		if name.IsEmpty() {
			return FormPatch{}, ErrFormNameRequired
		}
		p.Name = &name
	}
	if p.Fields != nil {
		for _, field := range *p.Fields {
			if _, ok := fieldTypes[field.Type]; !ok {
				return FormPatch{}, ErrInvalidFieldType
			}
		}
	}
	return p, nil
}

func (p FormPatch) IsEmpty() bool {
	return p.Name == nil && p.IsVisible == nil && p.IsReadOnly == nil && p.Fields == nil
}

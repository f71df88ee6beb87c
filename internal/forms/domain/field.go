package domain

import (
	"fmt"

	shareddomain "form-server/internal/shared_kernel/domain"
)

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeEmail    FieldType = "email"
	FieldTypeDate     FieldType = "date"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeSelect   FieldType = "select"
)

var fieldTypes = map[FieldType]struct{}{
	FieldTypeText:     {},
	FieldTypeNumber:   {},
	FieldTypeEmail:    {},
	FieldTypeDate:     {},
	FieldTypeCheckbox: {},
	FieldTypeSelect:   {},
}

// ParseFieldType maps an empty value to text and rejects anything outside the enum.
func ParseFieldType(value string) (FieldType, error) {
	if value == "" {
		return FieldTypeText, nil
	}
	t := FieldType(value)
	if _, ok := fieldTypes[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFieldType, value)
	}
	return t, nil
}

// Field is one input slot of a Form. It has no identity of its own.
type Field struct {
	Name       shareddomain.Name
	Type       FieldType
	IsRequired bool
}

func NewField(name, fieldType string, isRequired bool) (Field, error) {
	t, err := ParseFieldType(fieldType)
	if err != nil {
		return Field{}, err
	}
	return Field{
		Name:       shareddomain.Name(name),
		Type:       t,
		IsRequired: isRequired,
	}, nil
}

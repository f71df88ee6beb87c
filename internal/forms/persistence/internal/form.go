package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"form-server/internal/forms/domain"
	"form-server/internal/infra/utils"
	shareddomain "form-server/internal/shared_kernel/domain"
)

// Form is the row stored in the forms table. Defaults are applied by the
// domain builder, so the boolean columns carry no gorm default: a default
// tag would overwrite an explicit false on insert.
type Form struct {
	ID         string    `gorm:"primaryKey"`
	Name       string    `gorm:"uniqueIndex;not null"`
	IsVisible  bool      `gorm:"not null"`
	IsReadOnly bool      `gorm:"not null"`
	Fields     Fields    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

func (Form) TableName() string {
	return "forms"
}

type Field struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	IsRequired bool   `json:"isRequired"`
}

// Fields keeps the ordered field list as a JSON array in a single column.
type Fields []Field

func (f Fields) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (f *Fields) Scan(src any) error {
	var data []byte

	switch val := src.(type) {
	case string:
		data = []byte(val)
	case []byte:
		data = val
	case nil:
		*f = Fields{}
		return nil
	default:
		return errors.New("invalid type for fields")
	}

	return json.Unmarshal(data, f)
}

func (m Form) ToDomain() domain.Form {
	fields := make([]domain.Field, 0, len(m.Fields))
	for _, f := range m.Fields {
		fields = append(fields, domain.Field{
			Name:       shareddomain.Name(f.Name),
			Type:       domain.FieldType(f.Type),
			IsRequired: f.IsRequired,
		})
	}

	return domain.Form{
		ID:         shareddomain.ID(m.ID),
		Name:       shareddomain.Name(m.Name),
		IsVisible:  m.IsVisible,
		IsReadOnly: m.IsReadOnly,
		Fields:     fields,
		CreatedAt:  utils.Time{Time: m.CreatedAt},
		UpdatedAt:  utils.Time{Time: m.UpdatedAt},
	}
}

func FromForm(value domain.Form) Form {
	fields := make(Fields, 0, len(value.Fields))
	for _, f := range value.Fields {
		fields = append(fields, Field{
			Name:       f.Name.String(),
			Type:       string(f.Type),
			IsRequired: f.IsRequired,
		})
	}

	return Form{
		ID:         value.ID.String(),
		Name:       value.Name.String(),
		IsVisible:  value.IsVisible,
		IsReadOnly: value.IsReadOnly,
		Fields:     fields,
		CreatedAt:  value.CreatedAt.Time,
		UpdatedAt:  value.UpdatedAt.Time,
	}
}

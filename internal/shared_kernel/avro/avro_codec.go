package avro

import (
	"fmt"
	"reflect"

	"github.com/hamba/avro/v2"
)

// AvroCodec encodes plain Avro binary against the schemas bundled with the
// server. It is used when no schema registry is configured.
type AvroCodec struct {
	prototype reflect.Type
	schema    avro.Schema
}

func NewAvroCodec(prototype any) (*AvroCodec, error) {
	def, err := schemaFor(prototype)
	if err != nil {
		return nil, err
	}

	schema, err := avro.Parse(def.schema)
	if err != nil {
		return nil, fmt.Errorf("parsing %s schema: %w", def.name, err)
	}

	t := reflect.TypeOf(prototype)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return &AvroCodec{prototype: t, schema: schema}, nil
}

func (c *AvroCodec) Encode(value any) ([]byte, error) {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("encoding nil message")
		}
		v = v.Elem()
	}
	if !v.IsValid() || v.Type() != c.prototype {
		return nil, fmt.Errorf("codec for %s cannot encode %T", c.prototype.Name(), value)
	}

	data, err := avro.Marshal(c.schema, v.Interface())
	if err != nil {
		return nil, fmt.Errorf("marshaling to Avro: %w", err)
	}

	return data, nil
}

// Decode returns a pointer to a new prototype value.
func (c *AvroCodec) Decode(data []byte) (any, error) {
	instance := reflect.New(c.prototype).Interface()

	if err := avro.Unmarshal(c.schema, data, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling from Avro: %w", err)
	}

	return instance, nil
}

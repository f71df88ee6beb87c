package avro

import (
	_ "embed"
	"fmt"
	"reflect"
	"time"
)

const (
	FormEventCreated = "created"
	FormEventUpdated = "updated"
	FormEventDeleted = "deleted"
)

// AvroFormEvent is emitted after every write on a form.
type AvroFormEvent struct {
	ID         string          `avro:"id"`
	EventType  string          `avro:"event_type"`
	Name       string          `avro:"name"`
	IsVisible  bool            `avro:"is_visible"`
	IsReadOnly bool            `avro:"is_read_only"`
	Fields     []AvroFormField `avro:"fields"`
	CreatedAt  time.Time       `avro:"created_at"`
	UpdatedAt  time.Time       `avro:"updated_at"`
	OccurredAt time.Time       `avro:"occurred_at"`
}

type AvroFormField struct {
	Name       string `avro:"name"`
	Type       string `avro:"type"`
	IsRequired bool   `avro:"is_required"`
}

//go:embed schemas/form_event.avsc
var formEventSchema string

type messageSchema struct {
	name    string
	subject string
	schema  string
}

var messageSchemas = map[string]messageSchema{
	"AvroFormEvent": {name: "FormEvent", subject: "forms", schema: formEventSchema},
}

func schemaFor(value any) (messageSchema, error) {
	if value == nil {
		return messageSchema{}, fmt.Errorf("no Avro schema for nil message")
	}
	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	def, ok := messageSchemas[t.Name()]
	if !ok {
		return messageSchema{}, fmt.Errorf("no Avro schema found for message type: %s", t.Name())
	}
	return def, nil
}

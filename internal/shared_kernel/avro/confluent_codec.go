package avro

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"form-server/internal/infra/cache"

	"github.com/linkedin/goavro/v2"
)

const (
	_defaultSchemaCacheTTL = 5 * time.Minute
	_defaultCodecCacheTTL  = 30 * time.Minute
	_magicByte             = byte(0)
	_headerSize            = 5
	_subjectSuffix         = "-value"
)

// ConfluentAvroCodec speaks the Confluent wire format: a zero magic byte,
// the big endian schema id, then the Avro binary body.
type ConfluentAvroCodec struct {
	def            messageSchema
	schemaRegistry SchemaRegistry
	schemaCache    cache.Cache
	codecCache     cache.Cache
}

func NewConfluentAvroCodec(prototype any, schemaRegistry SchemaRegistry) (*ConfluentAvroCodec, error) {
	def, err := schemaFor(prototype)
	if err != nil {
		return nil, err
	}

	schemaCache, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("creating schema cache: %w", err)
	}
	codecCache, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("creating codec cache: %w", err)
	}

	return &ConfluentAvroCodec{
		def:            def,
		schemaRegistry: schemaRegistry,
		schemaCache:    schemaCache,
		codecCache:     codecCache,
	}, nil
}

func (c *ConfluentAvroCodec) subject() string {
	return c.def.subject + _subjectSuffix
}

// schemaID returns the registered id of the bundled schema, registering it
// on first use.
func (c *ConfluentAvroCodec) schemaID(ctx context.Context) (int, error) {
	value, err := c.schemaCache.GetOrSet(ctx, c.subject(), _defaultSchemaCacheTTL, func() (any, error) {
		if id, err := c.schemaRegistry.LatestSchemaID(c.subject()); err == nil {
			return id, nil
		}
		return c.schemaRegistry.RegisterSchema(c.subject(), c.def.schema)
	})
	if err != nil {
		return 0, fmt.Errorf("resolving schema id: %w", err)
	}
	return value.(int), nil
}

func (c *ConfluentAvroCodec) codecByID(ctx context.Context, schemaID int) (*goavro.Codec, error) {
	key := fmt.Sprintf("schema_%d", schemaID)
	value, err := c.codecCache.GetOrSet(ctx, key, _defaultCodecCacheTTL, func() (any, error) {
		schema, err := c.schemaRegistry.SchemaByID(schemaID)
		if err != nil {
			return nil, err
		}
		return goavro.NewCodec(schema)
	})
	if err != nil {
		return nil, fmt.Errorf("loading codec for schema %d: %w", schemaID, err)
	}
	return value.(*goavro.Codec), nil
}

func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	native, err := toNative(value)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	schemaID, err := c.schemaID(ctx)
	if err != nil {
		return nil, err
	}

	codec, err := c.codecByID(ctx, schemaID)
	if err != nil {
		return nil, err
	}

	header := make([]byte, _headerSize)
	header[0] = _magicByte
	binary.BigEndian.PutUint32(header[1:], uint32(schemaID))

	data, err := codec.BinaryFromNative(header, native)
	if err != nil {
		return nil, fmt.Errorf("encoding to Avro: %w", err)
	}

	return data, nil
}

func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < _headerSize {
		return nil, fmt.Errorf("invalid Avro data: too short")
	}
	if data[0] != _magicByte {
		return nil, fmt.Errorf("invalid magic byte: expected 0, got %d", data[0])
	}
	schemaID := int(binary.BigEndian.Uint32(data[1:_headerSize]))

	codec, err := c.codecByID(context.Background(), schemaID)
	if err != nil {
		return nil, err
	}

	native, _, err := codec.NativeFromBinary(data[_headerSize:])
	if err != nil {
		return nil, fmt.Errorf("decoding Avro data: %w", err)
	}

	record, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decoded value is %T, not a record", native)
	}

	return fromNative(c.def, record)
}

func toNative(value any) (map[string]any, error) {
	switch v := value.(type) {
	case *AvroFormEvent:
		if v == nil {
			return nil, fmt.Errorf("encoding nil message")
		}
		return formEventToNative(*v), nil
	case AvroFormEvent:
		return formEventToNative(v), nil
	default:
		return nil, fmt.Errorf("unsupported message type for Avro conversion: %T", value)
	}
}

func fromNative(def messageSchema, record map[string]any) (any, error) {
	switch def.name {
	case "FormEvent":
		return formEventFromNative(record)
	default:
		return nil, fmt.Errorf("unsupported schema %s", def.name)
	}
}

func formEventToNative(e AvroFormEvent) map[string]any {
	fields := make([]any, 0, len(e.Fields))
	for _, f := range e.Fields {
		fields = append(fields, map[string]any{
			"name":        f.Name,
			"type":        f.Type,
			"is_required": f.IsRequired,
		})
	}

	return map[string]any{
		"id":           e.ID,
		"event_type":   e.EventType,
		"name":         e.Name,
		"is_visible":   e.IsVisible,
		"is_read_only": e.IsReadOnly,
		"fields":       fields,
		"created_at":   e.CreatedAt,
		"updated_at":   e.UpdatedAt,
		"occurred_at":  e.OccurredAt,
	}
}

func formEventFromNative(m map[string]any) (*AvroFormEvent, error) {
	rawFields, _ := m["fields"].([]any)
	fields := make([]AvroFormField, 0, len(rawFields))
	for _, raw := range rawFields {
		f, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("form field is %T, not a record", raw)
		}
		fields = append(fields, AvroFormField{
			Name:       getString(f, "name"),
			Type:       getString(f, "type"),
			IsRequired: getBool(f, "is_required"),
		})
	}

	return &AvroFormEvent{
		ID:         getString(m, "id"),
		EventType:  getString(m, "event_type"),
		Name:       getString(m, "name"),
		IsVisible:  getBool(m, "is_visible"),
		IsReadOnly: getBool(m, "is_read_only"),
		Fields:     fields,
		CreatedAt:  getTime(m, "created_at"),
		UpdatedAt:  getTime(m, "updated_at"),
		OccurredAt: getTime(m, "occurred_at"),
	}, nil
}

func getString(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func getBool(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func getTime(m map[string]any, key string) time.Time {
	switch v := m[key].(type) {
	case time.Time:
		return v
	case int64:
		return time.UnixMilli(v).UTC()
	default:
		return time.Time{}
	}
}

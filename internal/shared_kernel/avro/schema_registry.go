package avro

import (
	"fmt"

	"github.com/riferrei/srclient"
)

// SchemaRegistry is the part of a Confluent schema registry the codec
// relies on.
type SchemaRegistry interface {
	LatestSchemaID(subject string) (int, error)
	RegisterSchema(subject string, schema string) (int, error)
	SchemaByID(id int) (string, error)
}

type SchemaRegistryClient struct {
	client *srclient.SchemaRegistryClient
}

var _ SchemaRegistry = (*SchemaRegistryClient)(nil)

func NewSchemaRegistryClient(url string) *SchemaRegistryClient {
	return &SchemaRegistryClient{client: srclient.CreateSchemaRegistryClient(url)}
}

func (c *SchemaRegistryClient) LatestSchemaID(subject string) (int, error) {
	schema, err := c.client.GetLatestSchema(subject)
	if err != nil {
		return 0, fmt.Errorf("getting latest schema of %s: %w", subject, err)
	}
	return schema.ID(), nil
}

func (c *SchemaRegistryClient) RegisterSchema(subject string, schema string) (int, error) {
	registered, err := c.client.CreateSchema(subject, schema, srclient.Avro)
	if err != nil {
		return 0, fmt.Errorf("registering schema of %s: %w", subject, err)
	}
	return registered.ID(), nil
}

func (c *SchemaRegistryClient) SchemaByID(id int) (string, error) {
	schema, err := c.client.GetSchema(id)
	if err != nil {
		return "", fmt.Errorf("getting schema %d: %w", id, err)
	}
	return schema.Schema(), nil
}

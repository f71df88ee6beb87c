package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"form-server/internal/forms/domain"
	"form-server/internal/forms/persistence/internal"
	"form-server/internal/forms/usecases"
	"form-server/internal/infra/pubsub"
	"form-server/internal/infra/sql"
	"form-server/internal/shared_kernel/avro"
	shareddomain "form-server/internal/shared_kernel/domain"
)

const _formsTopic = "forms"

func NewFormRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleFormRepository, error) {
	publisher, err := publisherFactory.New(_formsTopic, &avro.AvroFormEvent{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Form{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFormRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.FormRepository = (*SimpleFormRepository)(nil)

type SimpleFormRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleFormRepository) FindAll(ctx context.Context) ([]domain.Form, error) {
	var entities []internal.Form
	err := r.orm.
		WithContext(ctx).
		Order("created_at asc").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Form, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleFormRepository) FindByID(ctx context.Context, id shareddomain.ID) (domain.Form, error) {
	return r.first(ctx, r.orm, "id = ?", id.String())
}

func (r *SimpleFormRepository) FindByName(ctx context.Context, name shareddomain.Name) (domain.Form, error) {
	return r.first(ctx, r.orm, "name = ?", name.String())
}

func (r *SimpleFormRepository) FindByNameExcludingID(
	ctx context.Context,
	name shareddomain.Name,
	excludeID shareddomain.ID,
) (domain.Form, error) {
	return r.first(ctx, r.orm, "name = ? AND id <> ?", name.String(), excludeID.String())
}

func (r *SimpleFormRepository) Create(ctx context.Context, form domain.Form) (domain.Form, error) {
	entity := internal.FromForm(form)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return domain.Form{}, fmt.Errorf("%w: %s", usecases.ErrFormNameDuplicated, err.Error())
	}
	if err != nil {
		return domain.Form{}, fmt.Errorf("creating form in database: %w", err)
	}

	created := entity.ToDomain()
	r.publish(ctx, avro.FormEventCreated, created)

	return created, nil
}

func (r *SimpleFormRepository) Update(
	ctx context.Context,
	id shareddomain.ID,
	patch domain.FormPatch,
) (domain.Form, error) {
	var updated domain.Form
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		current, err := r.first(ctx, tx, "id = ?", id.String())
		if err != nil {
			return err
		}

		if err := current.Apply(patch); err != nil {
			return err
		}

		entity := internal.FromForm(current)
		if err := tx.WithContext(ctx).Save(&entity).Error(); err != nil {
			return err
		}

		updated = entity.ToDomain()
		return nil
	})

	switch {
	case errors.Is(err, usecases.ErrFormNotFound):
		return domain.Form{}, err
	case errors.Is(err, sql.ErrDuplicatedKey):
		return domain.Form{}, fmt.Errorf("%w: %s", usecases.ErrFormNameDuplicated, err.Error())
	case err != nil:
		return domain.Form{}, fmt.Errorf("updating form in database: %w", err)
	}

	r.publish(ctx, avro.FormEventUpdated, updated)

	return updated, nil
}

func (r *SimpleFormRepository) Delete(ctx context.Context, id shareddomain.ID) (domain.Form, error) {
	var deleted domain.Form
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		current, err := r.first(ctx, tx, "id = ?", id.String())
		if err != nil {
			return err
		}

		if err := tx.WithContext(ctx).Delete(&internal.Form{}, "id = ?", id.String()).Error(); err != nil {
			return err
		}

		deleted = current
		return nil
	})

	if errors.Is(err, usecases.ErrFormNotFound) {
		return domain.Form{}, err
	}
	if err != nil {
		return domain.Form{}, fmt.Errorf("deleting form in database: %w", err)
	}

	r.publish(ctx, avro.FormEventDeleted, deleted)

	return deleted, nil
}

func (r *SimpleFormRepository) first(ctx context.Context, orm sql.ORM, query string, args ...any) (domain.Form, error) {
	var entity internal.Form
	err := orm.
		WithContext(ctx).
		Where(query, args...).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Form{}, usecases.ErrFormNotFound
	}

	if err != nil {
		return domain.Form{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

// publish runs after the write committed; a failure is logged and the
// write still stands.
func (r *SimpleFormRepository) publish(ctx context.Context, eventType string, form domain.Form) {
	event := toAvroFormEvent(eventType, form)

	slog.Debug("publishing form event",
		slog.String("id", form.ID.String()),
		slog.String("event_type", eventType))

	if err := r.publisher.Publish(ctx, pubsub.Key(form.ID), event); err != nil {
		slog.Error("publishing form event",
			slog.String("id", form.ID.String()),
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
	}
}

func toAvroFormEvent(eventType string, form domain.Form) *avro.AvroFormEvent {
	fields := make([]avro.AvroFormField, len(form.Fields))
	for i, f := range form.Fields {
		fields[i] = avro.AvroFormField{
			Name:       f.Name.String(),
			Type:       string(f.Type),
			IsRequired: f.IsRequired,
		}
	}

	return &avro.AvroFormEvent{
		ID:         form.ID.String(),
		EventType:  eventType,
		Name:       form.Name.String(),
		IsVisible:  form.IsVisible,
		IsReadOnly: form.IsReadOnly,
		Fields:     fields,
		CreatedAt:  form.CreatedAt.Time,
		UpdatedAt:  form.UpdatedAt.Time,
		OccurredAt: time.Now(),
	}
}

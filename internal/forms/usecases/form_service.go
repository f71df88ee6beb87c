package usecases

//go:generate mockgen -source=./form_service.go -destination=../../../test/unit/doubles/forms/usecases/form_service_mock.go -package=usecases -mock_names=FormService=MockFormService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"form-server/internal/forms/domain"
	shareddomain "form-server/internal/shared_kernel/domain"
)

type FormService interface {
	GetAllForms(ctx context.Context) ([]domain.Form, error)
	GetFormByID(ctx context.Context, id shareddomain.ID) (domain.Form, error)
	IsFormNameUnique(ctx context.Context, name shareddomain.Name, excludeID *shareddomain.ID) (bool, error)
	CreateForm(ctx context.Context, form domain.Form) (domain.Form, error)
	UpdateForm(ctx context.Context, id shareddomain.ID, patch domain.FormPatch) (domain.Form, error)
	DeleteForm(ctx context.Context, id shareddomain.ID) (domain.Form, error)
}

func NewFormService(repository FormRepository) *SimpleFormService {
	return &SimpleFormService{
		repository: repository,
	}
}

var _ FormService = (*SimpleFormService)(nil)

type SimpleFormService struct {
	repository FormRepository
}

func (s *SimpleFormService) GetAllForms(ctx context.Context) ([]domain.Form, error) {
	forms, err := s.repository.FindAll(ctx)
	if err != nil {
		slog.Error("listing forms", slog.String("error", err.Error()))
		return nil, infrastructureError(fmt.Errorf("listing forms: %w", err))
	}

	return forms, nil
}

// GetFormByID returns ErrFormNotFound unwrapped: absence is a normal read outcome.
func (s *SimpleFormService) GetFormByID(ctx context.Context, id shareddomain.ID) (domain.Form, error) {
	form, err := s.repository.FindByID(ctx, id)
	if errors.Is(err, ErrFormNotFound) {
		return domain.Form{}, ErrFormNotFound
	}
	if err != nil {
		slog.Error("getting form", slog.String("id", id.String()), slog.String("error", err.Error()))
		return domain.Form{}, infrastructureError(fmt.Errorf("getting form: %w", err))
	}

	return form, nil
}

func (s *SimpleFormService) IsFormNameUnique(
	ctx context.Context,
	name shareddomain.Name,
	excludeID *shareddomain.ID,
) (bool, error) {
	var err error
	if excludeID != nil {
		_, err = s.repository.FindByNameExcludingID(ctx, name, *excludeID)
	} else {
		_, err = s.repository.FindByName(ctx, name)
	}

	switch {
	case errors.Is(err, ErrFormNotFound):
		return true, nil
	case err != nil:
		return false, fmt.Errorf("looking up form by name: %w", err)
	default:
		return false, nil
	}
}

func (s *SimpleFormService) CreateForm(ctx context.Context, form domain.Form) (domain.Form, error) {
	if form.Name.IsEmpty() {
		return domain.Form{}, validationError(domain.ErrFormNameRequired.Error(), domain.ErrFormNameRequired)
	}

	unique, err := s.IsFormNameUnique(ctx, form.Name, nil)
	if err != nil {
		slog.Error("checking form name", slog.String("error", err.Error()))
		return domain.Form{}, infrastructureError(err)
	}
	if !unique {
		return domain.Form{}, validationError(MessageFormNameNotUnique, ErrFormNameDuplicated)
	}

	created, err := s.repository.Create(ctx, form)
	if errors.Is(err, ErrFormNameDuplicated) {
		return domain.Form{}, validationError(MessageFormNameNotUnique, err)
	}
	if err != nil {
		slog.Error("creating form", slog.String("error", err.Error()))
		return domain.Form{}, infrastructureError(fmt.Errorf("creating form: %w", err))
	}

	slog.Info("form created",
		slog.String("id", created.ID.String()),
		slog.String("name", created.Name.String()))

	return created, nil
}

func (s *SimpleFormService) UpdateForm(
	ctx context.Context,
	id shareddomain.ID,
	patch domain.FormPatch,
) (domain.Form, error) {
	patch, err := patch.Normalize()
	if err != nil {
		return domain.Form{}, validationError(err.Error(), err)
	}

	if patch.Name != nil {
		unique, err := s.IsFormNameUnique(ctx, *patch.Name, &id)
		if err != nil {
			slog.Error("checking form name", slog.String("error", err.Error()))
			return domain.Form{}, infrastructureError(err)
		}
		if !unique {
			return domain.Form{}, validationError(MessageFormNameNotUnique, ErrFormNameDuplicated)
		}
	}

	updated, err := s.repository.Update(ctx, id, patch)
	switch {
	case errors.Is(err, ErrFormNotFound):
		return domain.Form{}, notFoundError(err)
	case errors.Is(err, ErrFormNameDuplicated):
		return domain.Form{}, validationError(MessageFormNameNotUnique, err)
	case err != nil:
		slog.Error("updating form", slog.String("id", id.String()), slog.String("error", err.Error()))
		return domain.Form{}, infrastructureError(fmt.Errorf("updating form: %w", err))
	}

	slog.Info("form updated", slog.String("id", id.String()))

	return updated, nil
}

func (s *SimpleFormService) DeleteForm(ctx context.Context, id shareddomain.ID) (domain.Form, error) {
	deleted, err := s.repository.Delete(ctx, id)
	if errors.Is(err, ErrFormNotFound) {
		return domain.Form{}, notFoundError(err)
	}
	if err != nil {
		slog.Error("deleting form", slog.String("id", id.String()), slog.String("error", err.Error()))
		return domain.Form{}, infrastructureError(fmt.Errorf("deleting form: %w", err))
	}

	slog.Info("form deleted", slog.String("id", id.String()))

	return deleted, nil
}

package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/forms/usecases/repository_port_mock.go -package=usecases -mock_names=FormRepository=MockFormRepository

import (
	"context"
	"errors"

	"form-server/internal/forms/domain"
	shareddomain "form-server/internal/shared_kernel/domain"
)

var (
	ErrFormNotFound       = errors.New("form not found")
	ErrFormNameDuplicated = errors.New("form name duplicated")
)

// FormRepository is the only port that touches the store. Absence is
// reported as ErrFormNotFound.
type FormRepository interface {
	FindAll(ctx context.Context) ([]domain.Form, error)
	FindByID(ctx context.Context, id shareddomain.ID) (domain.Form, error)
	FindByName(ctx context.Context, name shareddomain.Name) (domain.Form, error)
	FindByNameExcludingID(ctx context.Context, name shareddomain.Name, excludeID shareddomain.ID) (domain.Form, error)
	Create(ctx context.Context, form domain.Form) (domain.Form, error)
	Update(ctx context.Context, id shareddomain.ID, patch domain.FormPatch) (domain.Form, error)
	Delete(ctx context.Context, id shareddomain.ID) (domain.Form, error)
}

package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"form-server/internal/forms/httpapi/internal"
	"form-server/internal/forms/usecases"
	"form-server/internal/infra/httpserver"
	shareddomain "form-server/internal/shared_kernel/domain"
)

const formDeletedMessage = "Form deleted"

func NewFormController(service usecases.FormService) *FormController {
	return &FormController{
		service: service,
	}
}

var _ httpserver.Controller = &FormController{}

type FormController struct {
	service usecases.FormService
}

func (c *FormController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /api/forms", c.listForms())
	router.Handle("GET /api/forms/{id}", c.getForm())
	router.Handle("POST /api/forms", c.createForm())
	router.Handle("PUT /api/forms/{id}", c.updateForm())
	router.Handle("DELETE /api/forms/{id}", c.deleteForm())
}

func (c *FormController) listForms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forms, err := c.service.GetAllForms(r.Context())
		if err != nil {
			replyWithServiceError(w, err, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormResponses(forms))
	}
}

func (c *FormController) getForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		form, err := c.service.GetFormByID(r.Context(), id)
		if err != nil {
			replyWithServiceError(w, err, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormResponse(form))
	}
}

func (c *FormController) createForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FormCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithDecodeError(w, err)
			return
		}

		if err := body.Validate(); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		form, err := body.ToForm()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := c.service.CreateForm(r.Context(), form)
		if err != nil {
			replyWithServiceError(w, err, http.StatusBadRequest)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToFormResponse(created))
	}
}

func (c *FormController) updateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		var body internal.FormUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithDecodeError(w, err)
			return
		}

		if err := body.Validate(); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		patch, err := body.ToPatch()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		updated, err := c.service.UpdateForm(r.Context(), id, patch)
		if err != nil {
			replyWithServiceError(w, err, http.StatusBadRequest)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormResponse(updated))
	}
}

func (c *FormController) deleteForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		if _, err := c.service.DeleteForm(r.Context(), id); err != nil {
			replyWithServiceError(w, err, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.MessageResponse{Message: formDeletedMessage})
	}
}

// replyWithServiceError is the single place where service failures become
// status codes. Failures carrying no kind get the endpoint's fallback.
func replyWithServiceError(w http.ResponseWriter, err error, fallback int) {
	var serviceErr *usecases.Error
	switch {
	case errors.As(err, &serviceErr):
		status := statusForKind(serviceErr.Kind)
		if status == http.StatusInternalServerError {
			slog.Error("serving form request", slog.String("error", err.Error()))
		}
		httpserver.ReplyWithError(w, status, serviceErr.Message)
	case errors.Is(err, usecases.ErrFormNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, usecases.MessageFormNotFound)
	default:
		slog.Error("serving form request", slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, fallback, err.Error())
	}
}

func statusForKind(kind usecases.ErrorKind) int {
	switch kind {
	case usecases.KindValidation:
		return http.StatusBadRequest
	case usecases.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

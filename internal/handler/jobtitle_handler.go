package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/staff-records-api/internal/dto"
	"github.com/staff-records-api/internal/service"
)

type JobTitleHandler struct {
	titleService service.JobTitleService
	validator    *validator.Validate
	logger       *slog.Logger
}

func NewJobTitleHandler(titleService service.JobTitleService, logger *slog.Logger) *JobTitleHandler {
	return &JobTitleHandler{
		titleService: titleService,
		validator:    validator.New(),
		logger:       logger,
	}
}

func (h *JobTitleHandler) Index(w http.ResponseWriter, r *http.Request) {
	model, err := h.titleService.Index(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, model)
}

func (h *JobTitleHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddJobTitleInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	if err := h.titleService.Add(r.Context(), &req); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *JobTitleHandler) Edit(w http.ResponseWriter, r *http.Request, id string) {
	var req dto.EditJobTitleInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	if err := h.titleService.Edit(r.Context(), id, &req); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// SoftDelete помечает должность удалённой
func (h *JobTitleHandler) SoftDelete(w http.ResponseWriter, r *http.Request, id string) {
	ok, err := h.titleService.SoftDelete(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondResult(h.logger, w, ok)
}

// Delete окончательно удаляет уже помеченную должность
func (h *JobTitleHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	ok, err := h.titleService.Delete(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondResult(h.logger, w, ok)
}

func (h *JobTitleHandler) Include(w http.ResponseWriter, r *http.Request, id string) {
	ok, err := h.titleService.Include(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondResult(h.logger, w, ok)
}

func (h *JobTitleHandler) EditModel(w http.ResponseWriter, r *http.Request, id string) {
	model, err := h.titleService.GenerateEditModel(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, model)
}

func (h *JobTitleHandler) Selectable(w http.ResponseWriter, r *http.Request) {
	departmentName := r.URL.Query().Get("department")

	model, err := h.titleService.Selectable(r.Context(), departmentName)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, model)
}

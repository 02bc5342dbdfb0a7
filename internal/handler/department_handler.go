package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/staff-records-api/internal/dto"
	"github.com/staff-records-api/internal/service"
)

type DepartmentHandler struct {
	deptService service.DepartmentService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewDepartmentHandler(deptService service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		deptService: deptService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (h *DepartmentHandler) Index(w http.ResponseWriter, r *http.Request) {
	model, err := h.deptService.Index(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, model)
}

func (h *DepartmentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddDepartmentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	if err := h.deptService.Add(r.Context(), &req); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *DepartmentHandler) Edit(w http.ResponseWriter, r *http.Request, id string) {
	var req dto.EditDepartmentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	if err := h.deptService.Edit(r.Context(), id, &req); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	ok, err := h.deptService.Delete(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondResult(h.logger, w, ok)
}

func (h *DepartmentHandler) Include(w http.ResponseWriter, r *http.Request, id string) {
	ok, err := h.deptService.Include(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondResult(h.logger, w, ok)
}

func (h *DepartmentHandler) EditModel(w http.ResponseWriter, r *http.Request, id string) {
	model, err := h.deptService.GenerateEditModel(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, model)
}

func (h *DepartmentHandler) Selectable(w http.ResponseWriter, r *http.Request) {
	model, err := h.deptService.Selectable(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, model)
}

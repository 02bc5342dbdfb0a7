package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/staff-records-api/internal/dto"
	"github.com/staff-records-api/internal/service"
)

// callerHeader передаёт идентификатор вызывающего; аутентификация выполняется
// внешним слоем
const callerHeader = "X-User-ID"

type RecordHandler struct {
	recordService service.RecordService
	validator     *validator.Validate
	logger        *slog.Logger
}

func NewRecordHandler(recordService service.RecordService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
		validator:     validator.New(),
		logger:        logger,
	}
}

func (h *RecordHandler) Index(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r)

	model, err := h.recordService.Index(r.Context(), r.Header.Get(callerHeader), filter)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, model)
}

func (h *RecordHandler) ByManager(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r)

	model, err := h.recordService.ByManager(r.Context(), r.Header.Get(callerHeader), filter)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, model)
}

func (h *RecordHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	model, err := h.recordService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, model)
}

func (h *RecordHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddRecordInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	if err := h.recordService.Add(r.Context(), &req); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *RecordHandler) EditByAdmin(w http.ResponseWriter, r *http.Request, id string) {
	var req dto.EditRecordInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	if err := h.recordService.EditByAdmin(r.Context(), id, &req); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *RecordHandler) EditByManager(w http.ResponseWriter, r *http.Request, id string) {
	var req dto.ManagerEditRecordInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	if err := h.recordService.EditByManager(r.Context(), id, &req); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	ok, err := h.recordService.Delete(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondResult(h.logger, w, ok)
}

func (h *RecordHandler) EditModel(w http.ResponseWriter, r *http.Request, id string) {
	model, err := h.recordService.GenerateEditModel(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, model)
}

func (h *RecordHandler) ManagerEditModel(w http.ResponseWriter, r *http.Request, id string) {
	model, err := h.recordService.GenerateManagerEditModel(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, model)
}

func (h *RecordHandler) DepartmentName(w http.ResponseWriter, r *http.Request, id string) {
	name, err := h.recordService.DepartmentNameByUserID(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]string{"department": name})
}

func (h *RecordHandler) Roles(w http.ResponseWriter, r *http.Request) {
	model, err := h.recordService.Roles(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, model)
}

func parseFilter(r *http.Request) *dto.RecordFilter {
	query := r.URL.Query()
	return &dto.RecordFilter{
		Search:     query.Get("search"),
		Department: query.Get("department"),
		JobTitle:   query.Get("job_title"),
	}
}

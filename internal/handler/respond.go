package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/staff-records-api/internal/domain"
	"github.com/staff-records-api/internal/dto"
)

// handleServiceError переводит бизнес-ошибки в HTTP статусы; словарь ошибок
// общий для всех трёх сервисов
func handleServiceError(logger *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidIdentifier):
		respondError(logger, w, http.StatusBadRequest, "identifier is missing or malformed", "")
	case errors.Is(err, domain.ErrInvalidSalary):
		respondError(logger, w, http.StatusBadRequest, "salary is out of the allowed range", "")
	case errors.Is(err, domain.ErrDepartmentNotFound):
		respondError(logger, w, http.StatusNotFound, "department not found", "")
	case errors.Is(err, domain.ErrJobTitleNotFound):
		respondError(logger, w, http.StatusNotFound, "job title not found", "")
	case errors.Is(err, domain.ErrUserNotFound):
		respondError(logger, w, http.StatusNotFound, "user record not found", "")
	case errors.Is(err, domain.ErrRoleNotFound):
		respondError(logger, w, http.StatusNotFound, "role not found", "")
	case errors.Is(err, domain.ErrDuplicateDepartmentName):
		respondError(logger, w, http.StatusConflict, "department with this name already exists", "")
	case errors.Is(err, domain.ErrDuplicateJobTitleName):
		respondError(logger, w, http.StatusConflict, "job title with this name already exists", "")
	case errors.Is(err, domain.ErrDuplicateUserRecord):
		respondError(logger, w, http.StatusConflict, "user record with this name already exists", "")
	case errors.Is(err, domain.ErrDepartmentHasEmployees):
		respondError(logger, w, http.StatusConflict, "department still has employees attached", "")
	case errors.Is(err, domain.ErrJobTitleHasEmployees):
		respondError(logger, w, http.StatusConflict, "job title still has employees attached", "")
	case errors.Is(err, domain.ErrNotManager):
		respondError(logger, w, http.StatusForbidden, "caller is not in the Manager role", "")
	case errors.Is(err, domain.ErrDirectoryRejected):
		respondError(logger, w, http.StatusBadRequest, "directory rejected the operation", err.Error())
	default:
		logger.Error("internal error", slog.Any("error", err))
		respondError(logger, w, http.StatusInternalServerError, "internal server error", "")
	}
}

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func respondError(logger *slog.Logger, w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// respondResult кодирует мягкий отказ сервиса (false) как 400, как это
// делает исходный API: повторное удаление или восстановление без удаления
func respondResult(logger *slog.Logger, w http.ResponseWriter, ok bool) {
	if !ok {
		respondError(logger, w, http.StatusBadRequest, "operation had no effect", "")
		return
	}
	respondJSON(logger, w, http.StatusOK, map[string]bool{"ok": true})
}

package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/staff-records-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	deptHandler   *DepartmentHandler
	titleHandler  *JobTitleHandler
	recordHandler *RecordHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	deptHandler *DepartmentHandler,
	titleHandler *JobTitleHandler,
	recordHandler *RecordHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:           http.NewServeMux(),
		logger:        logger,
		deptHandler:   deptHandler,
		titleHandler:  titleHandler,
		recordHandler: recordHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("/departments/", r.departmentsRouter)
	r.mux.HandleFunc("/job-titles/", r.jobTitlesRouter)
	r.mux.HandleFunc("/records/", r.recordsRouter)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// splitPath отрезает префикс ресурса и возвращает непустые сегменты пути
func splitPath(path, prefix string) []string {
	path = strings.TrimPrefix(path, prefix)
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// departmentsRouter обрабатывает все запросы к /departments/
func (r *Router) departmentsRouter(w http.ResponseWriter, req *http.Request) {
	parts := splitPath(req.URL.Path, "/departments")

	switch {
	case len(parts) == 0:
		switch req.Method {
		case http.MethodGet:
			r.deptHandler.Index(w, req)
		case http.MethodPost:
			r.deptHandler.Add(w, req)
		default:
			methodNotAllowed(w)
		}

	case len(parts) == 1 && parts[0] == "selectable":
		if req.Method == http.MethodGet {
			r.deptHandler.Selectable(w, req)
			return
		}
		methodNotAllowed(w)

	case len(parts) == 1:
		switch req.Method {
		case http.MethodPatch:
			r.deptHandler.Edit(w, req, parts[0])
		case http.MethodDelete:
			r.deptHandler.Delete(w, req, parts[0])
		default:
			methodNotAllowed(w)
		}

	case len(parts) == 2 && parts[1] == "edit":
		if req.Method == http.MethodGet {
			r.deptHandler.EditModel(w, req, parts[0])
			return
		}
		methodNotAllowed(w)

	case len(parts) == 2 && parts[1] == "include":
		if req.Method == http.MethodPost {
			r.deptHandler.Include(w, req, parts[0])
			return
		}
		methodNotAllowed(w)

	default:
		notFound(w)
	}
}

// jobTitlesRouter обрабатывает все запросы к /job-titles/
func (r *Router) jobTitlesRouter(w http.ResponseWriter, req *http.Request) {
	parts := splitPath(req.URL.Path, "/job-titles")

	switch {
	case len(parts) == 0:
		switch req.Method {
		case http.MethodGet:
			r.titleHandler.Index(w, req)
		case http.MethodPost:
			r.titleHandler.Add(w, req)
		default:
			methodNotAllowed(w)
		}

	case len(parts) == 1 && parts[0] == "selectable":
		if req.Method == http.MethodGet {
			r.titleHandler.Selectable(w, req)
			return
		}
		methodNotAllowed(w)

	case len(parts) == 1:
		switch req.Method {
		case http.MethodPatch:
			r.titleHandler.Edit(w, req, parts[0])
		case http.MethodDelete:
			r.titleHandler.Delete(w, req, parts[0])
		default:
			methodNotAllowed(w)
		}

	case len(parts) == 2 && parts[1] == "edit":
		if req.Method == http.MethodGet {
			r.titleHandler.EditModel(w, req, parts[0])
			return
		}
		methodNotAllowed(w)

	case len(parts) == 2 && parts[1] == "soft-delete":
		if req.Method == http.MethodPost {
			r.titleHandler.SoftDelete(w, req, parts[0])
			return
		}
		methodNotAllowed(w)

	case len(parts) == 2 && parts[1] == "include":
		if req.Method == http.MethodPost {
			r.titleHandler.Include(w, req, parts[0])
			return
		}
		methodNotAllowed(w)

	default:
		notFound(w)
	}
}

// recordsRouter обрабатывает все запросы к /records/
func (r *Router) recordsRouter(w http.ResponseWriter, req *http.Request) {
	parts := splitPath(req.URL.Path, "/records")

	switch {
	case len(parts) == 0:
		switch req.Method {
		case http.MethodGet:
			r.recordHandler.Index(w, req)
		case http.MethodPost:
			r.recordHandler.Add(w, req)
		default:
			methodNotAllowed(w)
		}

	case len(parts) == 1 && parts[0] == "managed":
		if req.Method == http.MethodGet {
			r.recordHandler.ByManager(w, req)
			return
		}
		methodNotAllowed(w)

	case len(parts) == 1 && parts[0] == "roles":
		if req.Method == http.MethodGet {
			r.recordHandler.Roles(w, req)
			return
		}
		methodNotAllowed(w)

	case len(parts) == 1:
		switch req.Method {
		case http.MethodGet:
			r.recordHandler.GetByID(w, req, parts[0])
		case http.MethodPatch:
			r.recordHandler.EditByAdmin(w, req, parts[0])
		case http.MethodDelete:
			r.recordHandler.Delete(w, req, parts[0])
		default:
			methodNotAllowed(w)
		}

	case len(parts) == 2 && parts[1] == "manager":
		if req.Method == http.MethodPatch {
			r.recordHandler.EditByManager(w, req, parts[0])
			return
		}
		methodNotAllowed(w)

	case len(parts) == 2 && parts[1] == "edit":
		if req.Method == http.MethodGet {
			r.recordHandler.EditModel(w, req, parts[0])
			return
		}
		methodNotAllowed(w)

	case len(parts) == 2 && parts[1] == "manager-edit":
		if req.Method == http.MethodGet {
			r.recordHandler.ManagerEditModel(w, req, parts[0])
			return
		}
		methodNotAllowed(w)

	case len(parts) == 2 && parts[1] == "department":
		if req.Method == http.MethodGet {
			r.recordHandler.DepartmentName(w, req, parts[0])
			return
		}
		methodNotAllowed(w)

	default:
		notFound(w)
	}
}

// Package httpapi exposes the task service over HTTP.
package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"todo-list-app/internal/model"
	"todo-list-app/internal/task"
)

type TaskService interface {
	List() ([]model.Task, error)
	Create(in task.CreateInput) (model.Task, error)
	Update(id int64, p task.Patch) error
	Delete(id int64) error
}

type Options struct {
	// MaxBodyBytes caps request bodies. Zero means 1 MiB.
	MaxBodyBytes int64
}

type Server struct {
	service TaskService
	logger  *log.Logger
	maxBody int64
	router  chi.Router
}

func NewServer(service TaskService, logger *log.Logger, opts Options) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	srv := &Server{
		service: service,
		logger:  logger,
		maxBody: opts.MaxBodyBytes,
		router:  chi.NewRouter(),
	}
	srv.routes()
	return srv
}

func (s *Server) routes() {
	r := s.router
	r.Use(requestID, requestLogging(s.logger), recoverPanics(s.logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(methodNotAllowed(http.MethodGet))

	r.Get("/healthz", s.handleHealth)

	r.Route("/tasks", func(r chi.Router) {
		r.MethodNotAllowed(methodNotAllowed(http.MethodGet, http.MethodPost))
		r.Get("/", s.handleListTasks)
		r.Post("/", s.handleCreateTask)

		r.Route("/{id}", func(r chi.Router) {
			r.MethodNotAllowed(methodNotAllowed(http.MethodPut, http.MethodDelete))
			r.Put("/", s.handleUpdateTask)
			r.Delete("/", s.handleDeleteTask)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func methodNotAllowed(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		writeError(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed", r.Method))
	}
}

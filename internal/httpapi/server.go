package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type Deps struct {
	ContactSvc ContactService
	Logger     zerolog.Logger

	// AllowedOrigins enables CORS when non-empty.
	AllowedOrigins []string
}

type Server struct {
	r    chi.Router
	deps Deps
}

func New(deps Deps) *Server {
	r := chi.NewRouter()
	s := &Server{r: r, deps: deps}

	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(deps.Logger))
	if len(deps.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/emails/parse", s.handleParseEmail)

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", s.handleListContacts)
			r.Post("/", s.handleCreateContact)
			r.Get("/{email}", s.handleGetContact)
			r.Delete("/{email}", s.handleDeleteContact)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.r.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

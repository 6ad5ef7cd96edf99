package server

import (
	"net/http"
	"time"

	"github.com/odia-ai/voicegate/config"
	"github.com/odia-ai/voicegate/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	h.Attach(r)

	return &Server{
		Config: cfg,

		handler: r,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) ListenAndServe() error {
	server := &http.Server{
		Addr: s.Address,

		Handler: s.handler,

		ReadHeaderTimeout: 5 * time.Second,
	}

	return server.ListenAndServe()
}

package rest

import (
	"context"
	"net/http"

	core_port "listing-admin-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	allowedOrigins []string,
	authHandler *AuthHandler,
	categoryHandler *CategoryHandler,
	listingHandler *ListingHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// AllowedOrigins - список доменов, с которых разрешены запросы
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
		// AllowCredentials - разрешает отправку cookies
		AllowCredentials: true,
		MaxAge:           300, // 5 минут
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		// Все рабочие роуты за шлагбаумом доступа
		r.Group(func(r chi.Router) {
			r.Use(AccessGateMiddleware)

			r.Get("/categories", categoryHandler.GetCategories)

			r.Get("/listings", listingHandler.FindListings)
			r.Post("/listings", listingHandler.CreateListing)
			r.Patch("/listings/{listingID}", listingHandler.UpdateListing)
			r.Put("/listings/{listingID}/status", listingHandler.ChangeStatus)
			r.Delete("/listings/{listingID}", listingHandler.DeleteListing)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Handler возвращает корневой обработчик (используется в тестах).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}

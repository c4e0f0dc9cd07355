package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/numbroker/numbroker/docs"
	adminhandlers "github.com/numbroker/numbroker/internal/handlers/admin"
	authhandlers "github.com/numbroker/numbroker/internal/handlers/auth"
	balancehandlers "github.com/numbroker/numbroker/internal/handlers/balance"
	numbershandlers "github.com/numbroker/numbroker/internal/handlers/numbers"
	"github.com/numbroker/numbroker/internal/service"
	"github.com/numbroker/numbroker/pkg/auth"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type NumbersHandler interface {
	ListServices(w http.ResponseWriter, r *http.Request)
	OpenReservation(w http.ResponseWriter, r *http.Request)
	GetReservations(w http.ResponseWriter, r *http.Request)
	CancelReservation(w http.ResponseWriter, r *http.Request)
	DeliverCode(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	AdjustBalance(w http.ResponseWriter, r *http.Request)
	DeleteService(w http.ResponseWriter, r *http.Request)
	BanUser(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	BalanceHandler BalanceHandler
	NumbersHandler NumbersHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BalanceHandler: balancehandlers.New(s.LedgerService),
		NumbersHandler: numbershandlers.New(s.ReservationService, s.PoolService, s.CatalogService),
		AdminHandler:   adminhandlers.New(s.LedgerService, s.CatalogService, s.AuthService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/balance", h.BalanceHandler.GetBalance)
				r.Get("/transactions", h.BalanceHandler.GetTransactions)
				r.Route("/reservations", func(r chi.Router) {
					r.Post("/", h.NumbersHandler.OpenReservation)
					r.Get("/", h.NumbersHandler.GetReservations)
					r.Post("/{id}/cancel", h.NumbersHandler.CancelReservation)
				})
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/services", h.NumbersHandler.ListServices)
		})

		r.Post("/webhook/{provider}", h.NumbersHandler.DeliverCode)

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
			r.Post("/balance", h.AdminHandler.AdjustBalance)
			r.Delete("/services/{id}", h.AdminHandler.DeleteService)
			r.Post("/users/{id}/ban", h.AdminHandler.BanUser)
		})
	})

	return r
}

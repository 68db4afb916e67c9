package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	agentusershandlers "github.com/nexilab/agent-credit/internal/handlers/agentusers"
	authhandlers "github.com/nexilab/agent-credit/internal/handlers/auth"
	cataloghandlers "github.com/nexilab/agent-credit/internal/handlers/catalog"
	cmsusershandlers "github.com/nexilab/agent-credit/internal/handlers/cmsusers"
	eventshandlers "github.com/nexilab/agent-credit/internal/handlers/events"
	"github.com/nexilab/agent-credit/internal/service"
	"github.com/nexilab/agent-credit/pkg/auth"
	"github.com/nexilab/agent-credit/pkg/utils"
)

type AuthHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AgentUserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Credit(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	CreateConsumable(w http.ResponseWriter, r *http.Request)
	GetConsumable(w http.ResponseWriter, r *http.Request)
	ListConsumables(w http.ResponseWriter, r *http.Request)
	UpdateConsumable(w http.ResponseWriter, r *http.Request)
	DeleteConsumable(w http.ResponseWriter, r *http.Request)
	ApplyConsumable(w http.ResponseWriter, r *http.Request)
	CreatePurchasable(w http.ResponseWriter, r *http.Request)
	GetPurchasable(w http.ResponseWriter, r *http.Request)
	ListPurchasables(w http.ResponseWriter, r *http.Request)
	UpdatePurchasable(w http.ResponseWriter, r *http.Request)
	DeletePurchasable(w http.ResponseWriter, r *http.Request)
	ApplyPurchasable(w http.ResponseWriter, r *http.Request)
}

type EventHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
}

type CMSUserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	AgentUserHandler AgentUserHandler
	CatalogHandler   CatalogHandler
	EventHandler     EventHandler
	CMSUserHandler   CMSUserHandler

	jwtService    auth.JWTServiceInterface
	adminVerifier auth.AdminVerifier
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		AgentUserHandler: agentusershandlers.New(s.AgentUserService, s.LedgerService, s.EventService),
		CatalogHandler:   cataloghandlers.New(s.CatalogService, s.LedgerService),
		EventHandler:     eventshandlers.New(s.EventService, s.LedgerService),
		CMSUserHandler:   cmsusershandlers.New(s.CMSUserService),

		jwtService:    jwtService,
		adminVerifier: s.AuthService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}),
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ready", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/token", h.AuthHandler.Token)
			r.Post("/register", h.AuthHandler.Register)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware(h.jwtService, h.adminVerifier))
				r.Get("/me", h.AuthHandler.Me)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService, h.adminVerifier))

			r.Route("/agents/users", func(r chi.Router) {
				r.Post("/", h.AgentUserHandler.Create)
				r.Get("/", h.AgentUserHandler.List)
				r.Get("/id/{id}", h.AgentUserHandler.GetByID)
				r.Get("/{mobile}", h.AgentUserHandler.Get)
				r.Put("/{mobile}", h.AgentUserHandler.Update)
				r.Delete("/{mobile}", h.AgentUserHandler.Delete)
				r.Post("/{mobile}/credit", h.AgentUserHandler.Credit)
				r.Get("/{mobile}/credit/history", h.AgentUserHandler.History)
			})

			r.Route("/cms/users", func(r chi.Router) {
				r.Post("/", h.CMSUserHandler.Create)
				r.Get("/", h.CMSUserHandler.List)
				r.Get("/{mobile}", h.CMSUserHandler.Get)
				r.Put("/{mobile}", h.CMSUserHandler.Update)
				r.Delete("/{mobile}", h.CMSUserHandler.Delete)
			})

			r.Route("/consumables", func(r chi.Router) {
				r.Post("/", h.CatalogHandler.CreateConsumable)
				r.Get("/", h.CatalogHandler.ListConsumables)
				r.Get("/{id}", h.CatalogHandler.GetConsumable)
				r.Put("/{id}", h.CatalogHandler.UpdateConsumable)
				r.Delete("/{id}", h.CatalogHandler.DeleteConsumable)
				r.Post("/{id}/apply", h.CatalogHandler.ApplyConsumable)
			})

			r.Route("/purchasables", func(r chi.Router) {
				r.Post("/", h.CatalogHandler.CreatePurchasable)
				r.Get("/", h.CatalogHandler.ListPurchasables)
				r.Get("/{id}", h.CatalogHandler.GetPurchasable)
				r.Put("/{id}", h.CatalogHandler.UpdatePurchasable)
				r.Delete("/{id}", h.CatalogHandler.DeletePurchasable)
				r.Post("/{id}/apply", h.CatalogHandler.ApplyPurchasable)
			})

			r.Route("/system/events", func(r chi.Router) {
				r.Get("/", h.EventHandler.List)
				r.Get("/{id}", h.EventHandler.Get)
				r.Post("/{id}/refund", h.EventHandler.Refund)
			})
		})
	})

	return r
}

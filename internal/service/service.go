package service

import (
	"github.com/nexilab/agent-credit/internal/config"
	"github.com/nexilab/agent-credit/internal/pg"
	"github.com/nexilab/agent-credit/internal/repo"
	"github.com/nexilab/agent-credit/internal/service/agentuserservice"
	"github.com/nexilab/agent-credit/internal/service/authservice"
	"github.com/nexilab/agent-credit/internal/service/catalogservice"
	"github.com/nexilab/agent-credit/internal/service/cmsuserservice"
	"github.com/nexilab/agent-credit/internal/service/eventservice"
	"github.com/nexilab/agent-credit/internal/service/ledgerservice"
	pkgauth "github.com/nexilab/agent-credit/pkg/auth"
)

type Services struct {
	AuthService      *authservice.Service
	AgentUserService *agentuserservice.Service
	CMSUserService   *cmsuserservice.Service
	CatalogService   *catalogservice.Service
	LedgerService    *ledgerservice.Service
	EventService     *eventservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	hashService := pkgauth.NewHashService()
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	return &Services{
		AuthService:      authservice.New(repo.AdminUserRepo, hashService, jwtService),
		AgentUserService: agentuserservice.New(repo.AgentUserRepo),
		CMSUserService:   cmsuserservice.New(repo.CMSUserRepo),
		CatalogService:   catalogservice.New(repo.ConsumableRepo, repo.PurchasableRepo),
		LedgerService:    ledgerservice.New(repo.AgentUserRepo, repo.EventRepo, repo.ConsumableRepo, repo.PurchasableRepo, txManager, cfg.AllowOverdraft),
		EventService:     eventservice.New(repo.EventRepo, repo.AgentUserRepo),
	}
}

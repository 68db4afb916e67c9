package repo

import (
	"github.com/nexilab/agent-credit/internal/pg"
	adminuserrepo "github.com/nexilab/agent-credit/internal/repo/adminuser-repo"
	agentuserrepo "github.com/nexilab/agent-credit/internal/repo/agentuser-repo"
	cmsuserrepo "github.com/nexilab/agent-credit/internal/repo/cmsuser-repo"
	consumablerepo "github.com/nexilab/agent-credit/internal/repo/consumable-repo"
	eventrepo "github.com/nexilab/agent-credit/internal/repo/event-repo"
	purchasablerepo "github.com/nexilab/agent-credit/internal/repo/purchasable-repo"
)

type Repositories struct {
	AgentUserRepo   *agentuserrepo.Repository
	EventRepo       *eventrepo.Repository
	ConsumableRepo  *consumablerepo.Repository
	PurchasableRepo *purchasablerepo.Repository
	AdminUserRepo   *adminuserrepo.Repository
	CMSUserRepo     *cmsuserrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AgentUserRepo:   agentuserrepo.New(conn),
		EventRepo:       eventrepo.New(conn),
		ConsumableRepo:  consumablerepo.New(conn),
		PurchasableRepo: purchasablerepo.New(conn),
		AdminUserRepo:   adminuserrepo.New(conn),
		CMSUserRepo:     cmsuserrepo.New(conn),
	}
}

package application

import (
	"time"

	"github.com/linskybing/campus-helpdesk/internal/cache"
	"github.com/linskybing/campus-helpdesk/internal/repository"
)

// Deps carries the integrations the services need besides the repositories.
// Images and Storage stay nil when no object store is configured.
type Deps struct {
	Cache        cache.Cache
	Images       ImagePolicy
	Storage      BucketProber
	DB           Pinger
	SMTPAddr     string
	WebhookURL   string
	EmailDomain  string
	HierarchyTTL time.Duration
	StatusTTL    time.Duration
	RoleTTL      time.Duration
}

type Services struct {
	Status    *StatusService
	Hierarchy *HierarchyService
	Category  *CategoryService
	Spoc      *SpocService
	Intake    *IntakeService
	Ticket    *TicketService
	Workflow  *WorkflowService
	Identity  *IdentityService
	Student   *StudentService
	Campus    *CampusService
	Health    *HealthService
}

func New(repos *repository.Repos, deps Deps) *Services {
	if deps.Cache == nil {
		deps.Cache = cache.NewMemory()
	}
	statuses := NewStatusService(repos, deps.Cache, deps.StatusTTL)
	hierarchy := NewHierarchyService(repos, deps.Cache, deps.HierarchyTTL)
	spoc := NewSpocService(repos)
	identity := NewIdentityService(repos, deps.Cache, deps.RoleTTL)

	return &Services{
		Status:    statuses,
		Hierarchy: hierarchy,
		Category:  NewCategoryService(repos, hierarchy),
		Spoc:      spoc,
		Intake:    NewIntakeService(repos, hierarchy, statuses, spoc, deps.Images, deps.EmailDomain),
		Ticket:    NewTicketService(repos, statuses),
		Workflow:  NewWorkflowService(repos, statuses),
		Identity:  identity,
		Student:   NewStudentService(repos, identity),
		Campus:    NewCampusService(repos),
		Health:    NewHealthService(deps.DB, deps.Storage, deps.SMTPAddr, deps.WebhookURL),
	}
}

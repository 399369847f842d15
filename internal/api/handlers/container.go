package handlers

import (
	"github.com/linskybing/campus-helpdesk/internal/application"
)

type Handlers struct {
	Health   *HealthHandler
	Me       *MeHandler
	Category *CategoryHandler
	Status   *StatusHandler
	Ticket   *TicketHandler
	Student  *StudentHandler
	Campus   *CampusHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(svc.Health),
		Me:       NewMeHandler(svc.Identity, svc.Student),
		Category: NewCategoryHandler(svc.Hierarchy, svc.Category),
		Status:   NewStatusHandler(svc.Status),
		Ticket:   NewTicketHandler(svc.Intake, svc.Ticket, svc.Workflow),
		Student:  NewStudentHandler(svc.Student, svc.Identity),
		Campus:   NewCampusHandler(svc.Campus),
	}
}

package class

import (
	"context"

	"github.com/trezcool/shule/core"
)

var (
	ErrNotFound           = core.NewNotFoundError("Class")
	ErrAssignmentNotFound = core.NewNotFoundError("Assignment")
	ErrEventNotFound      = core.NewNotFoundError("Event")
)

type (
	Repository interface {
		CreateClass(c Class) (Class, error)
		QueryAllClasses() ([]Class, error)
		GetClassByID(id int) (Class, error)
		UpdateClass(id int, up UpdateClass) (Class, error)
		DeleteClass(id int) (Class, error)

		// AddStudent is idempotent: adding an id already on the roster is a no-op.
		AddStudent(classID, studentID int) (Class, error)
		// RemoveStudent is a no-op (not an error) when the id is absent.
		RemoveStudent(classID, studentID int) (Class, error)

		// Embedded sub-collection operations. Ids are assigned from the max
		// over the flattened union of every class's sub-collection.
		QueryAllAssignments() ([]FlatAssignment, error)
		QueryAssignmentsByClass(classID int) ([]FlatAssignment, error)
		GetAssignmentByID(id int) (FlatAssignment, error)
		CreateAssignment(a Assignment) (FlatAssignment, error)
		UpdateAssignment(id int, up UpdateAssignment) (FlatAssignment, error)
		DeleteAssignment(id int) (FlatAssignment, error)

		QueryAllEvents() ([]FlatEvent, error)
		GetEventByID(id int) (FlatEvent, error)
		CreateEvent(e Event) (FlatEvent, error)
		UpdateEvent(id int, up UpdateEvent) (FlatEvent, error)
		DeleteEvent(id int) (FlatEvent, error)
	}

	Service struct {
		repo  Repository
		delay core.Delayer
	}
)

func NewService(repo Repository, delay core.Delayer) *Service {
	return &Service{repo: repo, delay: delay}
}

func (svc *Service) GetAll(ctx context.Context) ([]Class, error) {
	if err := svc.delay.Wait(ctx, core.OpList); err != nil {
		return nil, err
	}
	return svc.repo.QueryAllClasses()
}

func (svc *Service) GetByID(ctx context.Context, id int) (Class, error) {
	if err := svc.delay.Wait(ctx, core.OpRead); err != nil {
		return Class{}, err
	}
	return svc.repo.GetClassByID(id)
}

func (svc *Service) Create(ctx context.Context, nc NewClass) (Class, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Class{}, err
	}
	return svc.repo.CreateClass(Class{
		Name:        nc.Name,
		Subject:     nc.Subject,
		Period:      nc.Period,
		Room:        nc.Room,
		StudentIDs:  []int{},
		Assignments: []Assignment{},
		Events:      []Event{},
	})
}

func (svc *Service) Update(ctx context.Context, id int, uc UpdateClass) (Class, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Class{}, err
	}
	return svc.repo.UpdateClass(id, uc)
}

func (svc *Service) Delete(ctx context.Context, id int) (Class, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Class{}, err
	}
	return svc.repo.DeleteClass(id)
}

// Roster

func (svc *Service) AddStudent(ctx context.Context, classID, studentID int) (Class, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Class{}, err
	}
	return svc.repo.AddStudent(classID, studentID)
}

func (svc *Service) RemoveStudent(ctx context.Context, classID, studentID int) (Class, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Class{}, err
	}
	return svc.repo.RemoveStudent(classID, studentID)
}

// Assignments (flattened projection over the embedded collections)

func (svc *Service) Assignments(ctx context.Context) ([]FlatAssignment, error) {
	if err := svc.delay.Wait(ctx, core.OpList); err != nil {
		return nil, err
	}
	return svc.repo.QueryAllAssignments()
}

func (svc *Service) AssignmentsByClass(ctx context.Context, classID int) ([]FlatAssignment, error) {
	if err := svc.delay.Wait(ctx, core.OpList); err != nil {
		return nil, err
	}
	return svc.repo.QueryAssignmentsByClass(classID)
}

func (svc *Service) AssignmentByID(ctx context.Context, id int) (FlatAssignment, error) {
	if err := svc.delay.Wait(ctx, core.OpRead); err != nil {
		return FlatAssignment{}, err
	}
	return svc.repo.GetAssignmentByID(id)
}

func (svc *Service) CreateAssignment(ctx context.Context, na NewAssignment) (FlatAssignment, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return FlatAssignment{}, err
	}
	return svc.repo.CreateAssignment(Assignment{
		ClassID:     na.ClassID,
		Title:       na.Title,
		Description: na.Description,
		DueDate:     na.DueDate,
		Type:        na.Type,
	})
}

func (svc *Service) UpdateAssignment(ctx context.Context, id int, ua UpdateAssignment) (FlatAssignment, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return FlatAssignment{}, err
	}
	return svc.repo.UpdateAssignment(id, ua)
}

func (svc *Service) DeleteAssignment(ctx context.Context, id int) (FlatAssignment, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return FlatAssignment{}, err
	}
	return svc.repo.DeleteAssignment(id)
}

// Events

func (svc *Service) Events(ctx context.Context) ([]FlatEvent, error) {
	if err := svc.delay.Wait(ctx, core.OpList); err != nil {
		return nil, err
	}
	return svc.repo.QueryAllEvents()
}

func (svc *Service) EventByID(ctx context.Context, id int) (FlatEvent, error) {
	if err := svc.delay.Wait(ctx, core.OpRead); err != nil {
		return FlatEvent{}, err
	}
	return svc.repo.GetEventByID(id)
}

func (svc *Service) CreateEvent(ctx context.Context, ne NewEvent) (FlatEvent, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return FlatEvent{}, err
	}
	return svc.repo.CreateEvent(Event{
		ClassID:     ne.ClassID,
		Title:       ne.Title,
		Description: ne.Description,
		StartDate:   ne.StartDate,
		EndDate:     ne.EndDate,
		Type:        ne.Type,
	})
}

func (svc *Service) UpdateEvent(ctx context.Context, id int, ue UpdateEvent) (FlatEvent, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return FlatEvent{}, err
	}
	return svc.repo.UpdateEvent(id, ue)
}

func (svc *Service) DeleteEvent(ctx context.Context, id int) (FlatEvent, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return FlatEvent{}, err
	}
	return svc.repo.DeleteEvent(id)
}

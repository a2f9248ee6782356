package student

import (
	"context"

	"github.com/trezcool/shule/core"
)

var ErrNotFound = core.NewNotFoundError("Student")

type (
	Repository interface {
		CreateStudent(s Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id int) (Student, error)
		// FilterStudents applies AND operation on available QueryFilter fields.
		FilterStudents(filter QueryFilter) ([]Student, error)
		UpdateStudent(id int, up UpdateStudent) (Student, error)
		DeleteStudent(id int) (Student, error)
	}

	// Service fronts the Student store. Every operation waits out its
	// class-specific simulated latency before touching the repository.
	Service struct {
		repo  Repository
		delay core.Delayer
	}
)

func NewService(repo Repository, delay core.Delayer) *Service {
	return &Service{repo: repo, delay: delay}
}

func (svc *Service) GetAll(ctx context.Context) ([]Student, error) {
	if err := svc.delay.Wait(ctx, core.OpList); err != nil {
		return nil, err
	}
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(ctx context.Context, id int) (Student, error) {
	if err := svc.delay.Wait(ctx, core.OpRead); err != nil {
		return Student{}, err
	}
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Student{}, err
	}
	return svc.repo.CreateStudent(Student{
		FirstName:      ns.FirstName,
		LastName:       ns.LastName,
		Email:          ns.Email,
		GradeLevel:     ns.GradeLevel,
		EnrollmentDate: ns.EnrollmentDate,
		ParentContact:  ns.ParentContact,
		Status:         ns.Status,
		PhotoURL:       ns.PhotoURL,
		Hobbies:        ns.Hobbies,
		Interests:      ns.Interests,
		Bio:            ns.Bio,
	})
}

func (svc *Service) Update(ctx context.Context, id int, us UpdateStudent) (Student, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Student{}, err
	}
	return svc.repo.UpdateStudent(id, us)
}

func (svc *Service) Delete(ctx context.Context, id int) (Student, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Student{}, err
	}
	return svc.repo.DeleteStudent(id)
}

// Search matches students whose first name, last name or email contains the
// query, case-insensitively.
func (svc *Service) Search(ctx context.Context, query string) ([]Student, error) {
	return svc.Filter(ctx, QueryFilter{Search: query})
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Student, error) {
	if err := svc.delay.Wait(ctx, core.OpList); err != nil {
		return nil, err
	}
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllStudents()
	}
	return svc.repo.FilterStudents(filter)
}

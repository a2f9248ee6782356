package grade

import (
	"context"

	"github.com/trezcool/shule/core"
)

var ErrNotFound = core.NewNotFoundError("Grade")

type (
	Repository interface {
		CreateGrade(g Grade) (Grade, error)
		QueryAllGrades() ([]Grade, error)
		GetGradeByID(id int) (Grade, error)
		QueryGradesByStudent(studentID int) ([]Grade, error)
		QueryGradesByClass(classID int) ([]Grade, error)
		UpdateGrade(id int, up UpdateGrade) (Grade, error)
		DeleteGrade(id int) (Grade, error)
	}

	Service struct {
		repo  Repository
		delay core.Delayer
	}
)

func NewService(repo Repository, delay core.Delayer) *Service {
	return &Service{repo: repo, delay: delay}
}

func (svc *Service) GetAll(ctx context.Context) ([]Grade, error) {
	if err := svc.delay.Wait(ctx, core.OpList); err != nil {
		return nil, err
	}
	return svc.repo.QueryAllGrades()
}

func (svc *Service) GetByID(ctx context.Context, id int) (Grade, error) {
	if err := svc.delay.Wait(ctx, core.OpRead); err != nil {
		return Grade{}, err
	}
	return svc.repo.GetGradeByID(id)
}

func (svc *Service) GetByStudent(ctx context.Context, studentID int) ([]Grade, error) {
	if err := svc.delay.Wait(ctx, core.OpRead); err != nil {
		return nil, err
	}
	return svc.repo.QueryGradesByStudent(studentID)
}

func (svc *Service) GetByClass(ctx context.Context, classID int) ([]Grade, error) {
	if err := svc.delay.Wait(ctx, core.OpRead); err != nil {
		return nil, err
	}
	return svc.repo.QueryGradesByClass(classID)
}

// Create records a grade; a missing date defaults to today.
func (svc *Service) Create(ctx context.Context, ng NewGrade) (Grade, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Grade{}, err
	}
	date := ng.Date
	if date == "" {
		date = core.Today()
	}
	return svc.repo.CreateGrade(Grade{
		StudentID:      ng.StudentID,
		ClassID:        ng.ClassID,
		AssignmentName: ng.AssignmentName,
		Score:          ng.Score,
		MaxScore:       ng.MaxScore,
		Date:           date,
	})
}

func (svc *Service) Update(ctx context.Context, id int, ug UpdateGrade) (Grade, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Grade{}, err
	}
	return svc.repo.UpdateGrade(id, ug)
}

func (svc *Service) Delete(ctx context.Context, id int) (Grade, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Grade{}, err
	}
	return svc.repo.DeleteGrade(id)
}

// CalculateAverage returns the student's average grade, optionally scoped to
// one class (classID 0 means unscoped). Zero matching records average to 0.
func (svc *Service) CalculateAverage(ctx context.Context, studentID, classID int) (int, error) {
	if err := svc.delay.Wait(ctx, core.OpRead); err != nil {
		return 0, err
	}
	grades, err := svc.repo.QueryGradesByStudent(studentID)
	if err != nil {
		return 0, err
	}
	if classID != 0 {
		scoped := grades[:0:0]
		for _, g := range grades {
			if g.ClassID == classID {
				scoped = append(scoped, g)
			}
		}
		grades = scoped
	}
	return Average(grades), nil
}

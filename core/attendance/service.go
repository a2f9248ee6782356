package attendance

import (
	"context"
	"math"

	"github.com/trezcool/shule/core"
)

var ErrNotFound = core.NewNotFoundError("Attendance record")

type (
	Repository interface {
		CreateAttendance(a Attendance) (Attendance, error)
		QueryAllAttendance() ([]Attendance, error)
		GetAttendanceByID(id int) (Attendance, error)
		QueryAttendanceByStudent(studentID int) ([]Attendance, error)
		QueryAttendanceByClass(classID int) ([]Attendance, error)
		QueryAttendanceByDate(date string) ([]Attendance, error)
		UpdateAttendance(id int, up UpdateAttendance) (Attendance, error)
		DeleteAttendance(id int) (Attendance, error)
		// BulkUpsert applies each record independently: update the record
		// matching (studentId, classId, date) or insert a new one. It never
		// aborts early; one record cannot roll back the others.
		BulkUpsert(records []UpsertRecord) ([]Attendance, error)
	}

	Service struct {
		repo  Repository
		delay core.Delayer
	}
)

func NewService(repo Repository, delay core.Delayer) *Service {
	return &Service{repo: repo, delay: delay}
}

func (svc *Service) GetAll(ctx context.Context) ([]Attendance, error) {
	if err := svc.delay.Wait(ctx, core.OpList); err != nil {
		return nil, err
	}
	return svc.repo.QueryAllAttendance()
}

func (svc *Service) GetByID(ctx context.Context, id int) (Attendance, error) {
	if err := svc.delay.Wait(ctx, core.OpRead); err != nil {
		return Attendance{}, err
	}
	return svc.repo.GetAttendanceByID(id)
}

func (svc *Service) GetByStudent(ctx context.Context, studentID int) ([]Attendance, error) {
	if err := svc.delay.Wait(ctx, core.OpRead); err != nil {
		return nil, err
	}
	return svc.repo.QueryAttendanceByStudent(studentID)
}

func (svc *Service) GetByClass(ctx context.Context, classID int) ([]Attendance, error) {
	if err := svc.delay.Wait(ctx, core.OpRead); err != nil {
		return nil, err
	}
	return svc.repo.QueryAttendanceByClass(classID)
}

func (svc *Service) GetByDate(ctx context.Context, date string) ([]Attendance, error) {
	if err := svc.delay.Wait(ctx, core.OpRead); err != nil {
		return nil, err
	}
	return svc.repo.QueryAttendanceByDate(date)
}

func (svc *Service) Create(ctx context.Context, na NewAttendance) (Attendance, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Attendance{}, err
	}
	return svc.repo.CreateAttendance(Attendance{
		StudentID: na.StudentID,
		ClassID:   na.ClassID,
		Date:      na.Date,
		Status:    na.Status,
		Notes:     na.Notes,
	})
}

func (svc *Service) Update(ctx context.Context, id int, ua UpdateAttendance) (Attendance, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Attendance{}, err
	}
	return svc.repo.UpdateAttendance(id, ua)
}

func (svc *Service) Delete(ctx context.Context, id int) (Attendance, error) {
	if err := svc.delay.Wait(ctx, core.OpWrite); err != nil {
		return Attendance{}, err
	}
	return svc.repo.DeleteAttendance(id)
}

func (svc *Service) BulkUpdate(ctx context.Context, records []UpsertRecord) ([]Attendance, error) {
	if err := svc.delay.Wait(ctx, core.OpBulkWrite); err != nil {
		return nil, err
	}
	return svc.repo.BulkUpsert(records)
}

// Rate returns the student's attendance rate as a rounded percentage of
// "present" records, optionally limited to the inclusive [start, end] date
// window. Zero matching records rate as 100: absence of data is full
// attendance, not zero.
func (svc *Service) Rate(ctx context.Context, studentID int, start, end string) (int, error) {
	if err := svc.delay.Wait(ctx, core.OpRead); err != nil {
		return 0, err
	}
	records, err := svc.repo.QueryAttendanceByStudent(studentID)
	if err != nil {
		return 0, err
	}
	if start != "" || end != "" {
		windowed := records[:0:0]
		for _, r := range records {
			if core.WithinDateRange(r.Date, start, end) {
				windowed = append(windowed, r)
			}
		}
		records = windowed
	}
	return Rate(records), nil
}

// Rate computes the present-percentage of the given records; no records is 100.
func Rate(records []Attendance) int {
	if len(records) == 0 {
		return 100
	}
	var present int
	for _, r := range records {
		if r.Status == StatusPresent {
			present++
		}
	}
	return int(math.Round(float64(present) / float64(len(records)) * 100))
}

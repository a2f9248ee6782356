package inmemdb

import (
	"github.com/trezcool/shule/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTable
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) query() []attendance.Attendance {
	records := make([]attendance.Attendance, len(repo.db.recs))
	copy(records, repo.db.recs)
	return records
}

func (repo *attendanceRepository) indexOf(id int) int {
	for i := range repo.db.recs {
		if repo.db.recs[i].ID == id {
			return i
		}
	}
	return -1
}

func (repo *attendanceRepository) nextID() int {
	var max int
	for i := range repo.db.recs {
		if repo.db.recs[i].ID > max {
			max = repo.db.recs[i].ID
		}
	}
	return max + 1
}

func (repo *attendanceRepository) CreateAttendance(a attendance.Attendance) (attendance.Attendance, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	a.ID = repo.nextID()
	repo.db.recs = append(repo.db.recs, a)
	return a, nil
}

func (repo *attendanceRepository) QueryAllAttendance() ([]attendance.Attendance, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *attendanceRepository) GetAttendanceByID(id int) (attendance.Attendance, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if i := repo.indexOf(id); i != -1 {
		return repo.db.recs[i], nil
	}
	return attendance.Attendance{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) QueryAttendanceByStudent(studentID int) ([]attendance.Attendance, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	records := []attendance.Attendance{}
	for _, a := range repo.db.recs {
		if a.StudentID == studentID {
			records = append(records, a)
		}
	}
	return records, nil
}

func (repo *attendanceRepository) QueryAttendanceByClass(classID int) ([]attendance.Attendance, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	records := []attendance.Attendance{}
	for _, a := range repo.db.recs {
		if a.ClassID == classID {
			records = append(records, a)
		}
	}
	return records, nil
}

func (repo *attendanceRepository) QueryAttendanceByDate(date string) ([]attendance.Attendance, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	records := []attendance.Attendance{}
	for _, a := range repo.db.recs {
		if a.Date == date {
			records = append(records, a)
		}
	}
	return records, nil
}

func (repo *attendanceRepository) UpdateAttendance(id int, up attendance.UpdateAttendance) (attendance.Attendance, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i := repo.indexOf(id)
	if i == -1 {
		return attendance.Attendance{}, attendance.ErrNotFound
	}

	orig := &repo.db.recs[i]
	if up.StudentID != nil {
		orig.StudentID = *up.StudentID
	}
	if up.ClassID != nil {
		orig.ClassID = *up.ClassID
	}
	if up.Date != nil {
		orig.Date = *up.Date
	}
	if up.Status != nil {
		orig.Status = *up.Status
	}
	if up.Notes != nil {
		orig.Notes = *up.Notes
	}
	return *orig, nil
}

func (repo *attendanceRepository) DeleteAttendance(id int) (attendance.Attendance, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i := repo.indexOf(id)
	if i == -1 {
		return attendance.Attendance{}, attendance.ErrNotFound
	}
	deleted := repo.db.recs[i]
	repo.db.recs = append(repo.db.recs[:i], repo.db.recs[i+1:]...)
	return deleted, nil
}

// BulkUpsert applies every record under one lock so the batch is atomic with
// respect to other mutations. Records are applied independently, in order;
// later entries with the same key overwrite earlier ones.
func (repo *attendanceRepository) BulkUpsert(records []attendance.UpsertRecord) ([]attendance.Attendance, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	upserted := make([]attendance.Attendance, 0, len(records))
	for _, rec := range records {
		i := repo.keyIndexOf(rec.StudentID, rec.ClassID, rec.Date)
		if i != -1 {
			orig := &repo.db.recs[i]
			orig.Status = rec.Status
			orig.Notes = rec.Notes
			upserted = append(upserted, *orig)
			continue
		}
		a := attendance.Attendance{
			ID:        repo.nextID(),
			StudentID: rec.StudentID,
			ClassID:   rec.ClassID,
			Date:      rec.Date,
			Status:    rec.Status,
			Notes:     rec.Notes,
		}
		repo.db.recs = append(repo.db.recs, a)
		upserted = append(upserted, a)
	}
	return upserted, nil
}

func (repo *attendanceRepository) keyIndexOf(studentID, classID int, date string) int {
	for i := range repo.db.recs {
		a := &repo.db.recs[i]
		if a.StudentID == studentID && a.ClassID == classID && a.Date == date {
			return i
		}
	}
	return -1
}

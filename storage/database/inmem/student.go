package inmemdb

import (
	"strings"

	"github.com/trezcool/shule/core/student"
)

type studentRepository struct {
	db *studentTable
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) query() []student.Student {
	students := make([]student.Student, len(repo.db.recs))
	copy(students, repo.db.recs)
	return students
}

func (repo *studentRepository) indexOf(id int) int {
	for i := range repo.db.recs {
		if repo.db.recs[i].ID == id {
			return i
		}
	}
	return -1
}

func (repo *studentRepository) nextID() int {
	var max int
	for i := range repo.db.recs {
		if repo.db.recs[i].ID > max {
			max = repo.db.recs[i].ID
		}
	}
	return max + 1
}

func (repo *studentRepository) CreateStudent(s student.Student) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	s.ID = repo.nextID()
	repo.db.recs = append(repo.db.recs, s)
	return s, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(id int) (student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if i := repo.indexOf(id); i != -1 {
		return repo.db.recs[i], nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) FilterStudents(filter student.QueryFilter) ([]student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	students := repo.query()

	// students with search keyword matching any FirstName, LastName or Email ?
	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		var filtered []student.Student
		for _, s := range students {
			if strings.Contains(strings.ToLower(s.FirstName), term) ||
				strings.Contains(strings.ToLower(s.LastName), term) ||
				strings.Contains(strings.ToLower(s.Email), term) {
				filtered = append(filtered, s)
			}
		}
		students = filtered
	}
	if students != nil && filter.Status != "" {
		var filtered []student.Student
		for _, s := range students {
			if s.Status == filter.Status {
				filtered = append(filtered, s)
			}
		}
		students = filtered
	}
	if students != nil && filter.GradeLevel != "" {
		var filtered []student.Student
		for _, s := range students {
			if s.GradeLevel == filter.GradeLevel {
				filtered = append(filtered, s)
			}
		}
		students = filtered
	}
	return students, nil
}

func (repo *studentRepository) UpdateStudent(id int, up student.UpdateStudent) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i := repo.indexOf(id)
	if i == -1 {
		return student.Student{}, student.ErrNotFound
	}

	// only save set fields; the id is immutable
	orig := &repo.db.recs[i]
	if up.FirstName != nil {
		orig.FirstName = *up.FirstName
	}
	if up.LastName != nil {
		orig.LastName = *up.LastName
	}
	if up.Email != nil {
		orig.Email = *up.Email
	}
	if up.GradeLevel != nil {
		orig.GradeLevel = *up.GradeLevel
	}
	if up.EnrollmentDate != nil {
		orig.EnrollmentDate = *up.EnrollmentDate
	}
	if up.ParentContact != nil {
		orig.ParentContact = *up.ParentContact
	}
	if up.Status != nil {
		orig.Status = *up.Status
	}
	if up.PhotoURL != nil {
		orig.PhotoURL = *up.PhotoURL
	}
	if up.Hobbies != nil {
		orig.Hobbies = *up.Hobbies
	}
	if up.Interests != nil {
		orig.Interests = *up.Interests
	}
	if up.Bio != nil {
		orig.Bio = *up.Bio
	}
	return *orig, nil
}

func (repo *studentRepository) DeleteStudent(id int) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i := repo.indexOf(id)
	if i == -1 {
		return student.Student{}, student.ErrNotFound
	}
	deleted := repo.db.recs[i]
	repo.db.recs = append(repo.db.recs[:i], repo.db.recs[i+1:]...)
	return deleted, nil
}

package inmemdb

import (
	"github.com/trezcool/shule/core/grade"
)

type gradeRepository struct {
	db *gradeTable
}

func NewGradeRepository(db *DB) grade.Repository {
	return &gradeRepository{db: db.grade}
}

func (repo *gradeRepository) query() []grade.Grade {
	grades := make([]grade.Grade, len(repo.db.recs))
	copy(grades, repo.db.recs)
	return grades
}

func (repo *gradeRepository) indexOf(id int) int {
	for i := range repo.db.recs {
		if repo.db.recs[i].ID == id {
			return i
		}
	}
	return -1
}

func (repo *gradeRepository) nextID() int {
	var max int
	for i := range repo.db.recs {
		if repo.db.recs[i].ID > max {
			max = repo.db.recs[i].ID
		}
	}
	return max + 1
}

func (repo *gradeRepository) CreateGrade(g grade.Grade) (grade.Grade, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	g.ID = repo.nextID()
	repo.db.recs = append(repo.db.recs, g)
	return g, nil
}

func (repo *gradeRepository) QueryAllGrades() ([]grade.Grade, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *gradeRepository) GetGradeByID(id int) (grade.Grade, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if i := repo.indexOf(id); i != -1 {
		return repo.db.recs[i], nil
	}
	return grade.Grade{}, grade.ErrNotFound
}

func (repo *gradeRepository) QueryGradesByStudent(studentID int) ([]grade.Grade, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	grades := []grade.Grade{}
	for _, g := range repo.db.recs {
		if g.StudentID == studentID {
			grades = append(grades, g)
		}
	}
	return grades, nil
}

func (repo *gradeRepository) QueryGradesByClass(classID int) ([]grade.Grade, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	grades := []grade.Grade{}
	for _, g := range repo.db.recs {
		if g.ClassID == classID {
			grades = append(grades, g)
		}
	}
	return grades, nil
}

func (repo *gradeRepository) UpdateGrade(id int, up grade.UpdateGrade) (grade.Grade, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i := repo.indexOf(id)
	if i == -1 {
		return grade.Grade{}, grade.ErrNotFound
	}

	orig := &repo.db.recs[i]
	if up.StudentID != nil {
		orig.StudentID = *up.StudentID
	}
	if up.ClassID != nil {
		orig.ClassID = *up.ClassID
	}
	if up.AssignmentName != nil {
		orig.AssignmentName = *up.AssignmentName
	}
	if up.Score != nil {
		orig.Score = *up.Score
	}
	if up.MaxScore != nil {
		orig.MaxScore = *up.MaxScore
	}
	if up.Date != nil {
		orig.Date = *up.Date
	}
	return *orig, nil
}

func (repo *gradeRepository) DeleteGrade(id int) (grade.Grade, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i := repo.indexOf(id)
	if i == -1 {
		return grade.Grade{}, grade.ErrNotFound
	}
	deleted := repo.db.recs[i]
	repo.db.recs = append(repo.db.recs[:i], repo.db.recs[i+1:]...)
	return deleted, nil
}

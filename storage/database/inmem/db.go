// Package inmemdb implements the entity repositories over plain in-memory
// slices. Collections keep insertion order, ids are assigned as max(existing)+1
// and every read hands out an independent copy. Each table is guarded by a
// single RWMutex so mutations stay atomic with respect to each other.
package inmemdb

import (
	"embed"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/student"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

type (
	DB struct {
		student    *studentTable
		class      *classTable
		grade      *gradeTable
		attendance *attendanceTable
	}

	studentTable struct {
		mutex sync.RWMutex
		recs  []student.Student
	}

	classTable struct {
		mutex sync.RWMutex
		recs  []class.Class
	}

	gradeTable struct {
		mutex sync.RWMutex
		recs  []grade.Grade
	}

	attendanceTable struct {
		mutex sync.RWMutex
		recs  []attendance.Attendance
	}
)

// Open returns an empty DB.
func Open() (*DB, error) {
	return &DB{
		student:    &studentTable{},
		class:      &classTable{},
		grade:      &gradeTable{},
		attendance: &attendanceTable{},
	}, nil
}

// OpenFixtures returns a DB seeded from the embedded JSON fixtures, one file
// per entity type. Mutations live in memory only and are lost on restart.
func OpenFixtures() (*DB, error) {
	db, _ := Open()
	if err := loadFixture("fixtures/students.json", &db.student.recs); err != nil {
		return nil, err
	}
	if err := loadFixture("fixtures/classes.json", &db.class.recs); err != nil {
		return nil, err
	}
	if err := loadFixture("fixtures/grades.json", &db.grade.recs); err != nil {
		return nil, err
	}
	if err := loadFixture("fixtures/attendance.json", &db.attendance.recs); err != nil {
		return nil, err
	}
	return db, nil
}

func loadFixture(name string, dst interface{}) error {
	data, err := fixturesFS.ReadFile(name)
	if err != nil {
		return errors.Wrapf(err, "reading fixture %s", name)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Wrapf(err, "parsing fixture %s", name)
	}
	return nil
}

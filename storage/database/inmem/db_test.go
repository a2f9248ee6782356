package inmemdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)

	students, err := NewStudentRepository(db).QueryAllStudents()
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestOpenFixtures(t *testing.T) {
	db, err := OpenFixtures()
	require.NoError(t, err)

	students, err := NewStudentRepository(db).QueryAllStudents()
	require.NoError(t, err)
	assert.Len(t, students, 6)
	assert.Equal(t, 1, students[0].ID)
	assert.Equal(t, "Amina", students[0].FirstName)

	classes, err := NewClassRepository(db).QueryAllClasses()
	require.NoError(t, err)
	require.Len(t, classes, 4)
	assert.Equal(t, "Algebra II", classes[0].Name)
	assert.NotEmpty(t, classes[0].StudentIDs)
	assert.NotEmpty(t, classes[0].Assignments)

	grades, err := NewGradeRepository(db).QueryAllGrades()
	require.NoError(t, err)
	assert.Len(t, grades, 12)

	records, err := NewAttendanceRepository(db).QueryAllAttendance()
	require.NoError(t, err)
	assert.Len(t, records, 16)
}

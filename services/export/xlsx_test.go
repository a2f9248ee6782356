package exportsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/shule/core/report"
	"github.com/trezcool/shule/core/student"
)

func cell(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, axis)
	require.NoError(t, err)
	return v
}

func TestOverview(t *testing.T) {
	f, err := Overview(report.Overview{
		TotalStudents:     6,
		ActiveStudents:    5,
		TotalClasses:      4,
		TotalGrades:       12,
		AverageGrade:      83,
		AttendanceRate:    88,
		GradeDistribution: map[string]int{"A": 3, "B": 5, "C": 2, "D": 1, "F": 1},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Overview"}, f.GetSheetList())
	assert.Equal(t, "Metric", cell(t, f, "Overview", "A1"))
	assert.Equal(t, "Total Students", cell(t, f, "Overview", "A2"))
	assert.Equal(t, "6", cell(t, f, "Overview", "B2"))
	assert.Equal(t, "Grades: A", cell(t, f, "Overview", "A8"))
	assert.Equal(t, "3", cell(t, f, "Overview", "B8"))
	assert.Equal(t, "Grades: F", cell(t, f, "Overview", "A12"))
}

func TestStudents(t *testing.T) {
	f, err := Students([]report.StudentSummary{
		{
			Student:                student.Student{ID: 1, FirstName: "Amina", LastName: "Okafor", GradeLevel: "10", Status: "active"},
			AverageGrade:           91,
			AttendanceRate:         95,
			TotalAssignments:       4,
			TotalAttendanceRecords: 8,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Amina", cell(t, f, "Students", "B2"))
	assert.Equal(t, "91", cell(t, f, "Students", "F2"))
	assert.Equal(t, "8", cell(t, f, "Students", "I2"))
}

func TestPerformance(t *testing.T) {
	f, err := Performance(report.Performance{
		TopStudents: []report.StudentSummary{
			{Student: student.Student{ID: 1, FirstName: "Amina", LastName: "Okafor"}, AverageGrade: 91, TotalAssignments: 4},
			{Student: student.Student{ID: 2, FirstName: "Daniel", LastName: "Mwangi"}, AverageGrade: 84, TotalAssignments: 3},
		},
		SubjectPerformance: map[string]report.SubjectStats{
			"Mathematics": {Average: 85, TotalGrades: 5},
		},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Top Students", "Subjects"}, f.GetSheetList())
	assert.Equal(t, "1", cell(t, f, "Top Students", "A2"))
	assert.Equal(t, "Amina", cell(t, f, "Top Students", "B2"))
	assert.Equal(t, "2", cell(t, f, "Top Students", "A3"))
	assert.Equal(t, "Mathematics", cell(t, f, "Subjects", "A2"))
	assert.Equal(t, "85", cell(t, f, "Subjects", "B2"))
}

func TestAttendance(t *testing.T) {
	f, err := Attendance(report.AttendanceReport{
		StudentRankings: []report.StudentAttendance{
			{Student: student.Student{ID: 1, FirstName: "Amina", LastName: "Okafor"}, AttendanceRate: 95, TotalRecords: 8, PresentDays: 7, LateDays: 1},
		},
		ClassRankings: []report.ClassAttendance{
			{ClassID: 1, Name: "Algebra II", Subject: "Mathematics", AttendanceRate: 88, TotalRecords: 16, PresentDays: 14, AbsentDays: 2},
		},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Students", "Classes"}, f.GetSheetList())
	assert.Equal(t, "95", cell(t, f, "Students", "D2"))
	assert.Equal(t, "Algebra II", cell(t, f, "Classes", "B2"))
	assert.Equal(t, "88", cell(t, f, "Classes", "D2"))
}

package report_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/report"
	"github.com/trezcool/shule/core/student"
	inmemdb "github.com/trezcool/shule/storage/database/inmem"
)

type fixture struct {
	studentSvc    *student.Service
	classSvc      *class.Service
	gradeSvc      *grade.Service
	attendanceSvc *attendance.Service
	reportSvc     *report.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := inmemdb.Open()
	require.NoError(t, err)

	f := &fixture{
		studentSvc:    student.NewService(inmemdb.NewStudentRepository(db), core.NoDelay),
		classSvc:      class.NewService(inmemdb.NewClassRepository(db), core.NoDelay),
		gradeSvc:      grade.NewService(inmemdb.NewGradeRepository(db), core.NoDelay),
		attendanceSvc: attendance.NewService(inmemdb.NewAttendanceRepository(db), core.NoDelay),
	}
	f.reportSvc = report.NewService(f.studentSvc, f.classSvc, f.gradeSvc, f.attendanceSvc)
	return f
}

func (f *fixture) student(t *testing.T, first, last, status string) student.Student {
	t.Helper()
	s, err := f.studentSvc.Create(context.Background(), student.NewStudent{
		FirstName: first,
		LastName:  last,
		Status:    status,
	})
	require.NoError(t, err)
	return s
}

func (f *fixture) class(t *testing.T, name, subject string) class.Class {
	t.Helper()
	c, err := f.classSvc.Create(context.Background(), class.NewClass{Name: name, Subject: subject})
	require.NoError(t, err)
	return c
}

func (f *fixture) grade(t *testing.T, studentID, classID int, score, max float64, date string) grade.Grade {
	t.Helper()
	g, err := f.gradeSvc.Create(context.Background(), grade.NewGrade{
		StudentID:      studentID,
		ClassID:        classID,
		AssignmentName: "Worksheet",
		Score:          score,
		MaxScore:       max,
		Date:           date,
	})
	require.NoError(t, err)
	return g
}

func (f *fixture) attendance(t *testing.T, studentID, classID int, date, status string) {
	t.Helper()
	_, err := f.attendanceSvc.Create(context.Background(), attendance.NewAttendance{
		StudentID: studentID,
		ClassID:   classID,
		Date:      date,
		Status:    status,
	})
	require.NoError(t, err)
}

func TestOverview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	amani := f.student(t, "Amani", "Kabeya", student.StatusActive)
	bintu := f.student(t, "Bintu", "Mwamba", student.StatusGraduated)
	math := f.class(t, "Algebra II", "Mathematics")

	f.grade(t, amani.ID, math.ID, 95, 100, "2024-01-10") // A
	f.grade(t, amani.ID, math.ID, 85, 100, "2024-01-12") // B
	f.grade(t, bintu.ID, math.ID, 55, 100, "2024-01-14") // F
	f.attendance(t, amani.ID, math.ID, "2024-01-10", attendance.StatusPresent)
	f.attendance(t, bintu.ID, math.ID, "2024-01-10", attendance.StatusAbsent)

	o, err := f.reportSvc.Overview(ctx, report.DateRange{})
	require.NoError(t, err)

	assert.Equal(t, 2, o.TotalStudents)
	assert.Equal(t, 1, o.ActiveStudents)
	assert.Equal(t, 1, o.TotalClasses)
	assert.Equal(t, 3, o.TotalGrades)
	assert.Equal(t, 78, o.AverageGrade) // (95+85+55)/3
	assert.Equal(t, 50, o.AttendanceRate)
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 0, "D": 0, "F": 1}, o.GradeDistribution)
}

func TestOverviewWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	amani := f.student(t, "Amani", "Kabeya", student.StatusActive)
	math := f.class(t, "Algebra II", "Mathematics")

	f.grade(t, amani.ID, math.ID, 95, 100, "2024-01-10")
	f.grade(t, amani.ID, math.ID, 55, 100, "2024-02-10")
	f.attendance(t, amani.ID, math.ID, "2024-01-10", attendance.StatusAbsent)
	f.attendance(t, amani.ID, math.ID, "2024-02-10", attendance.StatusPresent)

	o, err := f.reportSvc.Overview(ctx, report.DateRange{Start: "2024-02-01", End: "2024-02-28"})
	require.NoError(t, err)

	// the window narrows grades and attendance; students and classes stay whole
	assert.Equal(t, 1, o.TotalStudents)
	assert.Equal(t, 1, o.TotalGrades)
	assert.Equal(t, 55, o.AverageGrade)
	assert.Equal(t, 100, o.AttendanceRate)
}

func TestStudentSummaries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	amani := f.student(t, "Amani", "Kabeya", student.StatusActive)
	bintu := f.student(t, "Bintu", "Mwamba", student.StatusActive)
	math := f.class(t, "Algebra II", "Mathematics")

	f.grade(t, amani.ID, math.ID, 80, 100, "2024-01-10")
	f.grade(t, amani.ID, math.ID, 45, 50, "2024-01-12")
	f.attendance(t, amani.ID, math.ID, "2024-01-10", attendance.StatusPresent)
	f.attendance(t, amani.ID, math.ID, "2024-01-12", attendance.StatusAbsent)

	summaries, err := f.reportSvc.StudentSummaries(ctx, report.DateRange{})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, amani, summaries[0].Student)
	assert.Equal(t, 85, summaries[0].AverageGrade)
	assert.Equal(t, 50, summaries[0].AttendanceRate)
	assert.Equal(t, 2, summaries[0].TotalAssignments)
	assert.Equal(t, 2, summaries[0].TotalAttendanceRecords)

	// no data: average 0, full attendance
	assert.Equal(t, bintu, summaries[1].Student)
	assert.Equal(t, 0, summaries[1].AverageGrade)
	assert.Equal(t, 100, summaries[1].AttendanceRate)
}

func TestClassSummaries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	amani := f.student(t, "Amani", "Kabeya", student.StatusActive)
	math := f.class(t, "Algebra II", "Mathematics")

	_, err := f.classSvc.AddStudent(ctx, math.ID, amani.ID)
	require.NoError(t, err)
	// a dangling roster id does not count as enrolled
	_, err = f.classSvc.AddStudent(ctx, math.ID, 99)
	require.NoError(t, err)

	f.grade(t, amani.ID, math.ID, 90, 100, "2024-01-10")
	f.attendance(t, amani.ID, math.ID, "2024-01-10", attendance.StatusPresent)

	summaries, err := f.reportSvc.ClassSummaries(ctx, report.DateRange{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	assert.Equal(t, math.ID, summaries[0].ID)
	assert.Equal(t, 1, summaries[0].EnrolledCount)
	assert.Equal(t, 90, summaries[0].AverageGrade)
	assert.Equal(t, 100, summaries[0].AttendanceRate)
	assert.Equal(t, 1, summaries[0].TotalAssignments)
	assert.Equal(t, 1, summaries[0].TotalAttendanceRecords)
}

func TestPerformance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	math := f.class(t, "Algebra II", "Mathematics")
	bio := f.class(t, "Biology", "Science")
	f.class(t, "Choir", "Music") // no grades, no subject entry

	// 12 students with strictly decreasing averages
	for i := 0; i < 12; i++ {
		s := f.student(t, fmt.Sprintf("Student%02d", i), "Test", student.StatusActive)
		f.grade(t, s.ID, math.ID, float64(95-i), 100, "2024-01-10")
	}
	top := f.student(t, "Top", "Dog", student.StatusActive)
	f.grade(t, top.ID, bio.ID, 100, 100, "2024-01-10")

	p, err := f.reportSvc.Performance(ctx, report.DateRange{})
	require.NoError(t, err)

	// top 10 of 13, best first
	require.Len(t, p.TopStudents, 10)
	assert.Equal(t, "Top Dog", p.TopStudents[0].FullName())
	assert.Equal(t, 100, p.TopStudents[0].AverageGrade)
	for i := 1; i < len(p.TopStudents); i++ {
		assert.GreaterOrEqual(t, p.TopStudents[i-1].AverageGrade, p.TopStudents[i].AverageGrade)
	}

	require.Len(t, p.SubjectPerformance, 2)
	assert.Equal(t, report.SubjectStats{Average: 100, TotalGrades: 1}, p.SubjectPerformance["Science"])
	assert.Equal(t, 12, p.SubjectPerformance["Mathematics"].TotalGrades)
}

func TestAttendance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	amani := f.student(t, "Amani", "Kabeya", student.StatusActive)
	bintu := f.student(t, "Bintu", "Mwamba", student.StatusActive)
	math := f.class(t, "Algebra II", "Mathematics")

	f.attendance(t, amani.ID, math.ID, "2024-01-10", attendance.StatusAbsent)
	f.attendance(t, amani.ID, math.ID, "2024-01-11", attendance.StatusLate)
	f.attendance(t, bintu.ID, math.ID, "2024-01-10", attendance.StatusPresent)

	r, err := f.reportSvc.Attendance(ctx, report.DateRange{})
	require.NoError(t, err)

	// ranked by rate, best first
	require.Len(t, r.StudentRankings, 2)
	assert.Equal(t, bintu.ID, r.StudentRankings[0].ID)
	assert.Equal(t, 100, r.StudentRankings[0].AttendanceRate)
	assert.Equal(t, 1, r.StudentRankings[0].PresentDays)
	assert.Equal(t, amani.ID, r.StudentRankings[1].ID)
	assert.Equal(t, 0, r.StudentRankings[1].AttendanceRate)
	assert.Equal(t, 1, r.StudentRankings[1].AbsentDays)
	assert.Equal(t, 1, r.StudentRankings[1].LateDays)

	require.Len(t, r.ClassRankings, 1)
	assert.Equal(t, math.ID, r.ClassRankings[0].ClassID)
	assert.Equal(t, 33, r.ClassRankings[0].AttendanceRate)
	assert.Equal(t, 3, r.ClassRankings[0].TotalRecords)
}

func TestRecentActivity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	amani := f.student(t, "Amani", "Kabeya", student.StatusActive)
	math := f.class(t, "Algebra II", "Mathematics")

	f.grade(t, amani.ID, math.ID, 80, 100, "2024-01-10")
	f.grade(t, amani.ID, math.ID, 90, 100, "2024-01-20")
	f.grade(t, 99, 88, 45, 50, "2024-01-15") // dangling references

	activities, err := f.reportSvc.RecentActivity(ctx, 10)
	require.NoError(t, err)
	require.Len(t, activities, 3)

	// newest first
	assert.Equal(t, "2024-01-20", activities[0].Date)
	assert.Equal(t, "Amani Kabeya", activities[0].Student)
	assert.Equal(t, "Algebra II", activities[0].Class)
	assert.Equal(t, 90, activities[0].Percentage)

	assert.Equal(t, report.UnknownStudent, activities[1].Student)
	assert.Equal(t, report.UnknownClass, activities[1].Class)

	assert.Equal(t, "2024-01-10", activities[2].Date)

	// limit caps the feed
	activities, err = f.reportSvc.RecentActivity(ctx, 2)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "2024-01-20", activities[0].Date)
}

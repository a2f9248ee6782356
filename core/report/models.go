package report

import (
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/student"
)

// Sentinel labels for joins whose foreign-key target is missing. Stores never
// validate references, so aggregations degrade to these instead of failing.
const (
	UnknownStudent = "Unknown Student"
	UnknownClass   = "Unknown Class"
)

type (
	// DateRange is an inclusive [Start, End] calendar-date window applied to
	// grades and attendance before aggregating. An empty bound is unbounded.
	DateRange struct {
		Start string `query:"start"`
		End   string `query:"end"`
	}

	// Overview summarizes the whole school for the window.
	Overview struct {
		TotalStudents     int            `json:"totalStudents"`
		ActiveStudents    int            `json:"activeStudents"`
		TotalClasses      int            `json:"totalClasses"`
		TotalGrades       int            `json:"totalGrades"`
		AverageGrade      int            `json:"averageGrade"`
		AttendanceRate    int            `json:"attendanceRate"`
		GradeDistribution map[string]int `json:"gradeDistribution"` // letter -> count
	}

	// StudentSummary is one student joined to their grade and attendance aggregates.
	StudentSummary struct {
		student.Student
		AverageGrade           int `json:"averageGrade"`
		AttendanceRate         int `json:"attendanceRate"`
		TotalAssignments       int `json:"totalAssignments"`
		TotalAttendanceRecords int `json:"totalAttendanceRecords"`
	}

	// ClassSummary is one class joined to its aggregates.
	ClassSummary struct {
		class.Class
		EnrolledCount          int `json:"enrolledCount"`
		AverageGrade           int `json:"averageGrade"`
		AttendanceRate         int `json:"attendanceRate"`
		TotalAssignments       int `json:"totalAssignments"`
		TotalAttendanceRecords int `json:"totalAttendanceRecords"`
	}

	SubjectStats struct {
		Average     int `json:"average"`
		TotalGrades int `json:"totalGrades"`
	}

	// Performance ranks students by average grade and breaks averages down by subject.
	Performance struct {
		TopStudents        []StudentSummary        `json:"topStudents"`
		SubjectPerformance map[string]SubjectStats `json:"subjectPerformance"`
	}

	// StudentAttendance is one row of the attendance ranking.
	StudentAttendance struct {
		student.Student
		AttendanceRate int `json:"attendanceRate"`
		TotalRecords   int `json:"totalRecords"`
		PresentDays    int `json:"presentDays"`
		AbsentDays     int `json:"absentDays"`
		LateDays       int `json:"lateDays"`
	}

	ClassAttendance struct {
		ClassID        int    `json:"classId"`
		Name           string `json:"name"`
		Subject        string `json:"subject"`
		AttendanceRate int    `json:"attendanceRate"`
		TotalRecords   int    `json:"totalRecords"`
		PresentDays    int    `json:"presentDays"`
		AbsentDays     int    `json:"absentDays"`
	}

	AttendanceReport struct {
		StudentRankings []StudentAttendance `json:"studentRankings"`
		ClassRankings   []ClassAttendance   `json:"classRankings"`
	}

	// Activity is one recently graded piece of work joined to its student and
	// class names for the dashboard feed.
	Activity struct {
		GradeID        int    `json:"gradeId"`
		Student        string `json:"student"`
		Class          string `json:"class"`
		AssignmentName string `json:"assignmentName"`
		Percentage     int    `json:"percentage"`
		Date           string `json:"date"`
	}
)

func (r DateRange) Contains(date string) bool {
	return core.WithinDateRange(date, r.Start, r.End)
}

func (r DateRange) IsEmpty() bool {
	return r.Start == "" && r.End == ""
}

// Package report derives summary views by joining the student, class, grade
// and attendance stores. It only reads; all aggregates are computed on demand.
package report

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/student"
)

// TopStudentsLimit caps the performance ranking.
const TopStudentsLimit = 10

type (
	dataset struct {
		students   []student.Student
		classes    []class.Class
		grades     []grade.Grade
		attendance []attendance.Attendance
	}

	Service struct {
		studentSvc    *student.Service
		classSvc      *class.Service
		gradeSvc      *grade.Service
		attendanceSvc *attendance.Service
	}
)

func NewService(
	studentSvc *student.Service,
	classSvc *class.Service,
	gradeSvc *grade.Service,
	attendanceSvc *attendance.Service,
) *Service {
	return &Service{
		studentSvc:    studentSvc,
		classSvc:      classSvc,
		gradeSvc:      gradeSvc,
		attendanceSvc: attendanceSvc,
	}
}

// load fans the four collection reads out in parallel and waits for all of
// them; grades and attendance are narrowed to the window before aggregation.
func (svc *Service) load(ctx context.Context, window DateRange) (*dataset, error) {
	var ds dataset
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ds.students, err = svc.studentSvc.GetAll(ctx)
		return
	})
	g.Go(func() (err error) {
		ds.classes, err = svc.classSvc.GetAll(ctx)
		return
	})
	g.Go(func() (err error) {
		ds.grades, err = svc.gradeSvc.GetAll(ctx)
		return
	})
	g.Go(func() (err error) {
		ds.attendance, err = svc.attendanceSvc.GetAll(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !window.IsEmpty() {
		grades := ds.grades[:0:0]
		for _, gr := range ds.grades {
			if window.Contains(gr.Date) {
				grades = append(grades, gr)
			}
		}
		ds.grades = grades

		records := ds.attendance[:0:0]
		for _, r := range ds.attendance {
			if window.Contains(r.Date) {
				records = append(records, r)
			}
		}
		ds.attendance = records
	}
	return &ds, nil
}

func (svc *Service) Overview(ctx context.Context, window DateRange) (Overview, error) {
	ds, err := svc.load(ctx, window)
	if err != nil {
		return Overview{}, err
	}

	var active int
	for _, s := range ds.students {
		if s.Status == student.StatusActive {
			active++
		}
	}

	dist := map[string]int{"A": 0, "B": 0, "C": 0, "D": 0, "F": 0}
	for i := range ds.grades {
		dist[grade.Letter(ds.grades[i].Percentage())]++
	}

	o := Overview{
		TotalStudents:     len(ds.students),
		ActiveStudents:    active,
		TotalClasses:      len(ds.classes),
		TotalGrades:       len(ds.grades),
		AverageGrade:      grade.Average(ds.grades),
		AttendanceRate:    attendance.Rate(ds.attendance),
		GradeDistribution: dist,
	}
	return o, nil
}

func (svc *Service) StudentSummaries(ctx context.Context, window DateRange) ([]StudentSummary, error) {
	ds, err := svc.load(ctx, window)
	if err != nil {
		return nil, err
	}
	return studentSummaries(ds), nil
}

func (svc *Service) ClassSummaries(ctx context.Context, window DateRange) ([]ClassSummary, error) {
	ds, err := svc.load(ctx, window)
	if err != nil {
		return nil, err
	}

	summaries := make([]ClassSummary, 0, len(ds.classes))
	for _, c := range ds.classes {
		var classGrades []grade.Grade
		for _, g := range ds.grades {
			if g.ClassID == c.ID {
				classGrades = append(classGrades, g)
			}
		}
		var classAtt []attendance.Attendance
		for _, r := range ds.attendance {
			if r.ClassID == c.ID {
				classAtt = append(classAtt, r)
			}
		}
		// count only roster ids that resolve to an existing student
		var enrolled int
		for _, s := range ds.students {
			if c.HasStudent(s.ID) {
				enrolled++
			}
		}
		summaries = append(summaries, ClassSummary{
			Class:                  c,
			EnrolledCount:          enrolled,
			AverageGrade:           grade.Average(classGrades),
			AttendanceRate:         attendance.Rate(classAtt),
			TotalAssignments:       len(classGrades),
			TotalAttendanceRecords: len(classAtt),
		})
	}
	return summaries, nil
}

// Performance ranks all students by average grade (top 10) and averages each
// class's grades under its subject.
func (svc *Service) Performance(ctx context.Context, window DateRange) (Performance, error) {
	ds, err := svc.load(ctx, window)
	if err != nil {
		return Performance{}, err
	}

	ranked := studentSummaries(ds)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].AverageGrade > ranked[j].AverageGrade })
	if len(ranked) > TopStudentsLimit {
		ranked = ranked[:TopStudentsLimit]
	}

	subjects := make(map[string]SubjectStats)
	for _, c := range ds.classes {
		var classGrades []grade.Grade
		for _, g := range ds.grades {
			if g.ClassID == c.ID {
				classGrades = append(classGrades, g)
			}
		}
		if len(classGrades) == 0 {
			continue
		}
		subjects[c.Subject] = SubjectStats{
			Average:     grade.Average(classGrades),
			TotalGrades: len(classGrades),
		}
	}

	return Performance{TopStudents: ranked, SubjectPerformance: subjects}, nil
}

func (svc *Service) Attendance(ctx context.Context, window DateRange) (AttendanceReport, error) {
	ds, err := svc.load(ctx, window)
	if err != nil {
		return AttendanceReport{}, err
	}

	students := make([]StudentAttendance, 0, len(ds.students))
	for _, s := range ds.students {
		var records []attendance.Attendance
		for _, r := range ds.attendance {
			if r.StudentID == s.ID {
				records = append(records, r)
			}
		}
		row := StudentAttendance{
			Student:        s,
			AttendanceRate: attendance.Rate(records),
			TotalRecords:   len(records),
		}
		for _, r := range records {
			switch r.Status {
			case attendance.StatusPresent:
				row.PresentDays++
			case attendance.StatusAbsent:
				row.AbsentDays++
			case attendance.StatusLate:
				row.LateDays++
			}
		}
		students = append(students, row)
	}
	sort.SliceStable(students, func(i, j int) bool { return students[i].AttendanceRate > students[j].AttendanceRate })

	classes := make([]ClassAttendance, 0, len(ds.classes))
	for _, c := range ds.classes {
		var records []attendance.Attendance
		for _, r := range ds.attendance {
			if r.ClassID == c.ID {
				records = append(records, r)
			}
		}
		row := ClassAttendance{
			ClassID:        c.ID,
			Name:           c.Name,
			Subject:        c.Subject,
			AttendanceRate: attendance.Rate(records),
			TotalRecords:   len(records),
		}
		for _, r := range records {
			switch r.Status {
			case attendance.StatusPresent:
				row.PresentDays++
			case attendance.StatusAbsent:
				row.AbsentDays++
			}
		}
		classes = append(classes, row)
	}
	sort.SliceStable(classes, func(i, j int) bool { return classes[i].AttendanceRate > classes[j].AttendanceRate })

	return AttendanceReport{StudentRankings: students, ClassRankings: classes}, nil
}

// RecentActivity returns the latest graded work, newest first, joined to
// student and class names. Missing references degrade to the Unknown labels.
func (svc *Service) RecentActivity(ctx context.Context, limit int) ([]Activity, error) {
	ds, err := svc.load(ctx, DateRange{})
	if err != nil {
		return nil, err
	}

	studentsByID := make(map[int]student.Student, len(ds.students))
	for _, s := range ds.students {
		studentsByID[s.ID] = s
	}
	classesByID := make(map[int]class.Class, len(ds.classes))
	for _, c := range ds.classes {
		classesByID[c.ID] = c
	}

	grades := append([]grade.Grade(nil), ds.grades...)
	sort.SliceStable(grades, func(i, j int) bool { return grades[i].Date > grades[j].Date })
	if limit > 0 && len(grades) > limit {
		grades = grades[:limit]
	}

	activities := make([]Activity, 0, len(grades))
	for i := range grades {
		g := grades[i]
		studentName := UnknownStudent
		if s, ok := studentsByID[g.StudentID]; ok {
			studentName = s.FullName()
		}
		className := UnknownClass
		if c, ok := classesByID[g.ClassID]; ok {
			className = c.Name
		}
		activities = append(activities, Activity{
			GradeID:        g.ID,
			Student:        studentName,
			Class:          className,
			AssignmentName: g.AssignmentName,
			Percentage:     g.Percentage(),
			Date:           g.Date,
		})
	}
	return activities, nil
}

func studentSummaries(ds *dataset) []StudentSummary {
	summaries := make([]StudentSummary, 0, len(ds.students))
	for _, s := range ds.students {
		var studentGrades []grade.Grade
		for _, g := range ds.grades {
			if g.StudentID == s.ID {
				studentGrades = append(studentGrades, g)
			}
		}
		var records []attendance.Attendance
		for _, r := range ds.attendance {
			if r.StudentID == s.ID {
				records = append(records, r)
			}
		}
		summaries = append(summaries, StudentSummary{
			Student:                s,
			AverageGrade:           grade.Average(studentGrades),
			AttendanceRate:         attendance.Rate(records),
			TotalAssignments:       len(studentGrades),
			TotalAttendanceRecords: len(records),
		})
	}
	return summaries
}

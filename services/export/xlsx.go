// Package exportsvc renders report views to xlsx workbooks for download.
package exportsvc

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/shule/core/report"
)

const defaultSheet = "Sheet1"

func newWorkbook(sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, errors.Wrap(err, "naming sheet")
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "computing cell name")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "writing row %d", i+1)
		}
	}
	return nil
}

// Overview renders the overview report as a key/value sheet plus the
// letter-grade distribution.
func Overview(o report.Overview) (*excelize.File, error) {
	f, err := newWorkbook("Overview")
	if err != nil {
		return nil, err
	}
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Students", o.TotalStudents},
		{"Active Students", o.ActiveStudents},
		{"Total Classes", o.TotalClasses},
		{"Total Grades", o.TotalGrades},
		{"Average Grade", o.AverageGrade},
		{"Attendance Rate", o.AttendanceRate},
	}
	for _, letter := range []string{"A", "B", "C", "D", "F"} {
		rows = append(rows, []interface{}{fmt.Sprintf("Grades: %s", letter), o.GradeDistribution[letter]})
	}
	if err := writeRows(f, "Overview", rows); err != nil {
		return nil, err
	}
	return f, nil
}

func Students(summaries []report.StudentSummary) (*excelize.File, error) {
	f, err := newWorkbook("Students")
	if err != nil {
		return nil, err
	}
	rows := [][]interface{}{
		{"Id", "First Name", "Last Name", "Grade", "Status", "Average Grade", "Attendance Rate", "Assignments", "Attendance Records"},
	}
	for _, s := range summaries {
		rows = append(rows, []interface{}{
			s.ID, s.FirstName, s.LastName, s.GradeLevel, s.Status,
			s.AverageGrade, s.AttendanceRate, s.TotalAssignments, s.TotalAttendanceRecords,
		})
	}
	if err := writeRows(f, "Students", rows); err != nil {
		return nil, err
	}
	return f, nil
}

func Classes(summaries []report.ClassSummary) (*excelize.File, error) {
	f, err := newWorkbook("Classes")
	if err != nil {
		return nil, err
	}
	rows := [][]interface{}{
		{"Id", "Name", "Subject", "Period", "Room", "Enrolled", "Average Grade", "Attendance Rate"},
	}
	for _, c := range summaries {
		rows = append(rows, []interface{}{
			c.ID, c.Name, c.Subject, c.Period, c.Room,
			c.EnrolledCount, c.AverageGrade, c.AttendanceRate,
		})
	}
	if err := writeRows(f, "Classes", rows); err != nil {
		return nil, err
	}
	return f, nil
}

// Performance renders the top-student ranking and a per-subject sheet.
func Performance(p report.Performance) (*excelize.File, error) {
	f, err := newWorkbook("Top Students")
	if err != nil {
		return nil, err
	}
	rows := [][]interface{}{
		{"Rank", "First Name", "Last Name", "Average Grade", "Total Grades"},
	}
	for i, s := range p.TopStudents {
		rows = append(rows, []interface{}{i + 1, s.FirstName, s.LastName, s.AverageGrade, s.TotalAssignments})
	}
	if err := writeRows(f, "Top Students", rows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Subjects"); err != nil {
		return nil, errors.Wrap(err, "adding sheet")
	}
	subjectRows := [][]interface{}{{"Subject", "Average", "Total Grades"}}
	for subject, stats := range p.SubjectPerformance {
		subjectRows = append(subjectRows, []interface{}{subject, stats.Average, stats.TotalGrades})
	}
	if err := writeRows(f, "Subjects", subjectRows); err != nil {
		return nil, err
	}
	return f, nil
}

func Attendance(r report.AttendanceReport) (*excelize.File, error) {
	f, err := newWorkbook("Students")
	if err != nil {
		return nil, err
	}
	rows := [][]interface{}{
		{"Id", "First Name", "Last Name", "Attendance Rate", "Records", "Present", "Absent", "Late"},
	}
	for _, s := range r.StudentRankings {
		rows = append(rows, []interface{}{
			s.ID, s.FirstName, s.LastName, s.AttendanceRate,
			s.TotalRecords, s.PresentDays, s.AbsentDays, s.LateDays,
		})
	}
	if err := writeRows(f, "Students", rows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Classes"); err != nil {
		return nil, errors.Wrap(err, "adding sheet")
	}
	classRows := [][]interface{}{{"Id", "Name", "Subject", "Attendance Rate", "Records", "Present", "Absent"}}
	for _, c := range r.ClassRankings {
		classRows = append(classRows, []interface{}{
			c.ClassID, c.Name, c.Subject, c.AttendanceRate, c.TotalRecords, c.PresentDays, c.AbsentDays,
		})
	}
	if err := writeRows(f, "Classes", classRows); err != nil {
		return nil, err
	}
	return f, nil
}

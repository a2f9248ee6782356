package attendance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/attendance"
	inmemdb "github.com/trezcool/shule/storage/database/inmem"
)

func newService(t *testing.T) *attendance.Service {
	t.Helper()
	db, err := inmemdb.Open()
	require.NoError(t, err)
	return attendance.NewService(inmemdb.NewAttendanceRepository(db), core.NoDelay)
}

func record(t *testing.T, svc *attendance.Service, studentID, classID int, date, status string) attendance.Attendance {
	t.Helper()
	a, err := svc.Create(context.Background(), attendance.NewAttendance{
		StudentID: studentID,
		ClassID:   classID,
		Date:      date,
		Status:    status,
	})
	require.NoError(t, err)
	return a
}

func TestServiceCRUD(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	a1 := record(t, svc, 1, 1, "2024-01-15", attendance.StatusPresent)
	a2 := record(t, svc, 2, 1, "2024-01-15", attendance.StatusAbsent)
	a3 := record(t, svc, 1, 2, "2024-01-16", attendance.StatusLate)

	byStudent, err := svc.GetByStudent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []attendance.Attendance{a1, a3}, byStudent)

	byClass, err := svc.GetByClass(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []attendance.Attendance{a1, a2}, byClass)

	byDate, err := svc.GetByDate(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, []attendance.Attendance{a1, a2}, byDate)

	excused := attendance.StatusExcused
	got, err := svc.Update(ctx, a2.ID, attendance.UpdateAttendance{Status: &excused})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusExcused, got.Status)

	_, err = svc.Delete(ctx, a3.ID)
	require.NoError(t, err)
	_, err = svc.GetByID(ctx, a3.ID)
	assert.True(t, core.IsNotFound(err))
	assert.EqualError(t, err, "Attendance record not found")
}

func TestServiceBulkUpdate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	recs, err := svc.BulkUpdate(ctx, []attendance.UpsertRecord{
		{StudentID: 1, ClassID: 1, Date: "2024-01-15", Status: attendance.StatusPresent},
		{StudentID: 2, ClassID: 1, Date: "2024-01-15", Status: attendance.StatusAbsent},
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 1, recs[0].ID)
	assert.Equal(t, 2, recs[1].ID)

	// same (studentId, classId, date) key updates in place instead of inserting
	recs, err = svc.BulkUpdate(ctx, []attendance.UpsertRecord{
		{StudentID: 2, ClassID: 1, Date: "2024-01-15", Status: attendance.StatusLate, Notes: "bus broke down"},
		{StudentID: 3, ClassID: 1, Date: "2024-01-15", Status: attendance.StatusPresent},
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 2, recs[0].ID)
	assert.Equal(t, attendance.StatusLate, recs[0].Status)
	assert.Equal(t, "bus broke down", recs[0].Notes)
	assert.Equal(t, 3, recs[1].ID)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRate(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     int
	}{
		{name: "no records is full attendance", statuses: nil, want: 100},
		{name: "all present", statuses: []string{attendance.StatusPresent, attendance.StatusPresent}, want: 100},
		{
			name: "late and excused count against",
			statuses: []string{
				attendance.StatusPresent,
				attendance.StatusPresent,
				attendance.StatusAbsent,
				attendance.StatusLate,
			},
			want: 50,
		},
		{name: "rounded", statuses: []string{attendance.StatusPresent, attendance.StatusPresent, attendance.StatusAbsent}, want: 67},
		{name: "all absent", statuses: []string{attendance.StatusAbsent}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []attendance.Attendance
			for _, s := range tt.statuses {
				records = append(records, attendance.Attendance{Status: s})
			}
			assert.Equal(t, tt.want, attendance.Rate(records))
		})
	}
}

func TestServiceRateWindow(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	record(t, svc, 1, 1, "2024-01-10", attendance.StatusAbsent)
	record(t, svc, 1, 1, "2024-01-15", attendance.StatusPresent)
	record(t, svc, 1, 1, "2024-01-20", attendance.StatusPresent)
	record(t, svc, 2, 1, "2024-01-15", attendance.StatusAbsent) // other student

	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{name: "unbounded", want: 67},
		{name: "window excludes the absence", start: "2024-01-15", end: "2024-01-20", want: 100},
		{name: "window with the absence only", end: "2024-01-10", want: 0},
		{name: "empty window", start: "2024-02-01", want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Rate(ctx, 1, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

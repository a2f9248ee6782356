package class_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/class"
	inmemdb "github.com/trezcool/shule/storage/database/inmem"
)

func newService(t *testing.T) *class.Service {
	t.Helper()
	db, err := inmemdb.Open()
	require.NoError(t, err)
	return class.NewService(inmemdb.NewClassRepository(db), core.NoDelay)
}

func createClass(t *testing.T, svc *class.Service, name, subject string) class.Class {
	t.Helper()
	c, err := svc.Create(context.Background(), class.NewClass{Name: name, Subject: subject})
	require.NoError(t, err)
	return c
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestServiceCRUD(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	c1 := createClass(t, svc, "Algebra II", "Mathematics")
	assert.Equal(t, 1, c1.ID)
	assert.Equal(t, []int{}, c1.StudentIDs)
	assert.Equal(t, []class.Assignment{}, c1.Assignments)
	assert.Equal(t, []class.Event{}, c1.Events)

	got, err := svc.Update(ctx, c1.ID, class.UpdateClass{Room: strPtr("204")})
	require.NoError(t, err)
	assert.Equal(t, "204", got.Room)
	assert.Equal(t, "Algebra II", got.Name)

	got, err = svc.Delete(ctx, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, c1.ID, got.ID)

	_, err = svc.GetByID(ctx, c1.ID)
	assert.True(t, core.IsNotFound(err))
	assert.EqualError(t, err, "Class not found")
}

func TestServiceRoster(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	c := createClass(t, svc, "Algebra II", "Mathematics")

	got, err := svc.AddStudent(ctx, c.ID, 1)
	require.NoError(t, err)
	got, err = svc.AddStudent(ctx, c.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got.StudentIDs)

	// adding an enrolled student is a no-op
	got, err = svc.AddStudent(ctx, c.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got.StudentIDs)

	got, err = svc.RemoveStudent(ctx, c.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got.StudentIDs)

	// removing an absent student is a no-op
	got, err = svc.RemoveStudent(ctx, c.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got.StudentIDs)

	_, err = svc.AddStudent(ctx, 99, 1)
	assert.True(t, core.IsNotFound(err))
}

func TestServiceAssignments(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	math := createClass(t, svc, "Algebra II", "Mathematics")
	bio := createClass(t, svc, "Biology", "Science")

	a1, err := svc.CreateAssignment(ctx, class.NewAssignment{
		ClassID: math.ID,
		Title:   "Quadratic equations",
		DueDate: "2024-02-01",
		Type:    "homework",
	})
	require.NoError(t, err)
	a2, err := svc.CreateAssignment(ctx, class.NewAssignment{
		ClassID: bio.ID,
		Title:   "Cell structure lab",
		Type:    "lab",
	})
	require.NoError(t, err)

	// ids are unique across every class's assignments
	assert.Equal(t, 1, a1.ID)
	assert.Equal(t, 2, a2.ID)

	// flattened projections carry the owning class
	assert.Equal(t, "Algebra II", a1.ClassName)
	assert.Equal(t, "Mathematics", a1.ClassSubject)

	all, err := svc.Assignments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []class.FlatAssignment{a1, a2}, all)

	byClass, err := svc.AssignmentsByClass(ctx, bio.ID)
	require.NoError(t, err)
	assert.Equal(t, []class.FlatAssignment{a2}, byClass)

	// a classId change moves the assignment to its new class
	moved, err := svc.UpdateAssignment(ctx, a1.ID, class.UpdateAssignment{ClassID: intPtr(bio.ID)})
	require.NoError(t, err)
	assert.Equal(t, bio.ID, moved.ClassID)
	assert.Equal(t, "Biology", moved.ClassName)

	byClass, err = svc.AssignmentsByClass(ctx, math.ID)
	require.NoError(t, err)
	assert.Empty(t, byClass)

	// moving to an unknown class fails as a class lookup
	_, err = svc.UpdateAssignment(ctx, a2.ID, class.UpdateAssignment{ClassID: intPtr(99)})
	require.Error(t, err)
	assert.EqualError(t, err, "Class not found")

	deleted, err := svc.DeleteAssignment(ctx, a2.ID)
	require.NoError(t, err)
	assert.Equal(t, a2.ID, deleted.ID)

	_, err = svc.AssignmentByID(ctx, a2.ID)
	assert.True(t, core.IsNotFound(err))
	assert.EqualError(t, err, "Assignment not found")

	// the freed max id is handed out again
	a3, err := svc.CreateAssignment(ctx, class.NewAssignment{ClassID: bio.ID, Title: "Genetics quiz"})
	require.NoError(t, err)
	assert.Equal(t, 2, a3.ID)
}

func TestServiceEvents(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	math := createClass(t, svc, "Algebra II", "Mathematics")

	e1, err := svc.CreateEvent(ctx, class.NewEvent{
		ClassID:   math.ID,
		Title:     "Midterm exam",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
		Type:      "exam",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, e1.ID)
	assert.Equal(t, "Algebra II", e1.ClassName)

	got, err := svc.UpdateEvent(ctx, e1.ID, class.UpdateEvent{Title: strPtr("Midterm exam (rescheduled)")})
	require.NoError(t, err)
	assert.Equal(t, "Midterm exam (rescheduled)", got.Title)

	all, err := svc.Events(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.DeleteEvent(ctx, e1.ID)
	require.NoError(t, err)
	_, err = svc.EventByID(ctx, e1.ID)
	assert.True(t, core.IsNotFound(err))
	assert.EqualError(t, err, "Event not found")
}

func TestServiceReadsAreDeepCopies(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	c := createClass(t, svc, "Algebra II", "Mathematics")
	_, err := svc.AddStudent(ctx, c.ID, 1)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	got.StudentIDs[0] = 99

	fresh, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, fresh.StudentIDs)
}

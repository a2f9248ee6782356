package inmemdb

import (
	"github.com/trezcool/shule/core/class"
)

type classRepository struct {
	db *classTable
}

func NewClassRepository(db *DB) class.Repository {
	return &classRepository{db: db.class}
}

// cloneClass deep-copies a Class so callers cannot reach the table's slices.
func cloneClass(c class.Class) class.Class {
	c.StudentIDs = append([]int{}, c.StudentIDs...)
	c.Assignments = append([]class.Assignment{}, c.Assignments...)
	c.Events = append([]class.Event{}, c.Events...)
	return c
}

func (repo *classRepository) query() []class.Class {
	classes := make([]class.Class, 0, len(repo.db.recs))
	for i := range repo.db.recs {
		classes = append(classes, cloneClass(repo.db.recs[i]))
	}
	return classes
}

func (repo *classRepository) indexOf(id int) int {
	for i := range repo.db.recs {
		if repo.db.recs[i].ID == id {
			return i
		}
	}
	return -1
}

func (repo *classRepository) nextID() int {
	var max int
	for i := range repo.db.recs {
		if repo.db.recs[i].ID > max {
			max = repo.db.recs[i].ID
		}
	}
	return max + 1
}

func (repo *classRepository) CreateClass(c class.Class) (class.Class, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	c.ID = repo.nextID()
	if c.StudentIDs == nil {
		c.StudentIDs = []int{}
	}
	if c.Assignments == nil {
		c.Assignments = []class.Assignment{}
	}
	if c.Events == nil {
		c.Events = []class.Event{}
	}
	repo.db.recs = append(repo.db.recs, cloneClass(c))
	return c, nil
}

func (repo *classRepository) QueryAllClasses() ([]class.Class, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *classRepository) GetClassByID(id int) (class.Class, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if i := repo.indexOf(id); i != -1 {
		return cloneClass(repo.db.recs[i]), nil
	}
	return class.Class{}, class.ErrNotFound
}

func (repo *classRepository) UpdateClass(id int, up class.UpdateClass) (class.Class, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i := repo.indexOf(id)
	if i == -1 {
		return class.Class{}, class.ErrNotFound
	}

	orig := &repo.db.recs[i]
	if up.Name != nil {
		orig.Name = *up.Name
	}
	if up.Subject != nil {
		orig.Subject = *up.Subject
	}
	if up.Period != nil {
		orig.Period = *up.Period
	}
	if up.Room != nil {
		orig.Room = *up.Room
	}
	return cloneClass(*orig), nil
}

func (repo *classRepository) DeleteClass(id int) (class.Class, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i := repo.indexOf(id)
	if i == -1 {
		return class.Class{}, class.ErrNotFound
	}
	deleted := repo.db.recs[i]
	repo.db.recs = append(repo.db.recs[:i], repo.db.recs[i+1:]...)
	return deleted, nil
}

// Roster

func (repo *classRepository) AddStudent(classID, studentID int) (class.Class, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i := repo.indexOf(classID)
	if i == -1 {
		return class.Class{}, class.ErrNotFound
	}
	c := &repo.db.recs[i]
	if !c.HasStudent(studentID) {
		c.StudentIDs = append(c.StudentIDs, studentID)
	}
	return cloneClass(*c), nil
}

func (repo *classRepository) RemoveStudent(classID, studentID int) (class.Class, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i := repo.indexOf(classID)
	if i == -1 {
		return class.Class{}, class.ErrNotFound
	}
	c := &repo.db.recs[i]
	for j, sid := range c.StudentIDs {
		if sid == studentID {
			c.StudentIDs = append(c.StudentIDs[:j], c.StudentIDs[j+1:]...)
			break
		}
	}
	return cloneClass(*c), nil
}

// Assignments
//
// The embedded copies are the single source of truth; the flattened
// projection is derived on every read, annotated with the owning class.

func (repo *classRepository) flatAssignment(a class.Assignment, c *class.Class) class.FlatAssignment {
	return class.FlatAssignment{Assignment: a, ClassName: c.Name, ClassSubject: c.Subject}
}

// nextAssignmentID spans the union of every class's assignments.
func (repo *classRepository) nextAssignmentID() int {
	var max int
	for i := range repo.db.recs {
		for _, a := range repo.db.recs[i].Assignments {
			if a.ID > max {
				max = a.ID
			}
		}
	}
	return max + 1
}

// findAssignment returns the class index and assignment index for id.
func (repo *classRepository) findAssignment(id int) (int, int) {
	for i := range repo.db.recs {
		for j, a := range repo.db.recs[i].Assignments {
			if a.ID == id {
				return i, j
			}
		}
	}
	return -1, -1
}

func (repo *classRepository) QueryAllAssignments() ([]class.FlatAssignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	flat := []class.FlatAssignment{}
	for i := range repo.db.recs {
		c := &repo.db.recs[i]
		for _, a := range c.Assignments {
			flat = append(flat, repo.flatAssignment(a, c))
		}
	}
	return flat, nil
}

func (repo *classRepository) QueryAssignmentsByClass(classID int) ([]class.FlatAssignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	flat := []class.FlatAssignment{}
	if i := repo.indexOf(classID); i != -1 {
		c := &repo.db.recs[i]
		for _, a := range c.Assignments {
			flat = append(flat, repo.flatAssignment(a, c))
		}
	}
	return flat, nil
}

func (repo *classRepository) GetAssignmentByID(id int) (class.FlatAssignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if i, j := repo.findAssignment(id); i != -1 {
		c := &repo.db.recs[i]
		return repo.flatAssignment(c.Assignments[j], c), nil
	}
	return class.FlatAssignment{}, class.ErrAssignmentNotFound
}

func (repo *classRepository) CreateAssignment(a class.Assignment) (class.FlatAssignment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i := repo.indexOf(a.ClassID)
	if i == -1 {
		return class.FlatAssignment{}, class.ErrNotFound
	}
	a.ID = repo.nextAssignmentID()
	c := &repo.db.recs[i]
	c.Assignments = append(c.Assignments, a)
	return repo.flatAssignment(a, c), nil
}

func (repo *classRepository) UpdateAssignment(id int, up class.UpdateAssignment) (class.FlatAssignment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i, j := repo.findAssignment(id)
	if i == -1 {
		return class.FlatAssignment{}, class.ErrAssignmentNotFound
	}

	c := &repo.db.recs[i]
	a := c.Assignments[j]
	if up.Title != nil {
		a.Title = *up.Title
	}
	if up.Description != nil {
		a.Description = *up.Description
	}
	if up.DueDate != nil {
		a.DueDate = *up.DueDate
	}
	if up.Type != nil {
		a.Type = *up.Type
	}

	// a classId change moves the assignment to its new class
	if up.ClassID != nil && *up.ClassID != a.ClassID {
		ni := repo.indexOf(*up.ClassID)
		if ni == -1 {
			return class.FlatAssignment{}, class.ErrNotFound
		}
		a.ClassID = *up.ClassID
		c.Assignments = append(c.Assignments[:j], c.Assignments[j+1:]...)
		c = &repo.db.recs[ni]
		c.Assignments = append(c.Assignments, a)
	} else {
		c.Assignments[j] = a
	}
	return repo.flatAssignment(a, c), nil
}

func (repo *classRepository) DeleteAssignment(id int) (class.FlatAssignment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i, j := repo.findAssignment(id)
	if i == -1 {
		return class.FlatAssignment{}, class.ErrAssignmentNotFound
	}
	c := &repo.db.recs[i]
	deleted := c.Assignments[j]
	c.Assignments = append(c.Assignments[:j], c.Assignments[j+1:]...)
	return repo.flatAssignment(deleted, c), nil
}

// Events, same scheme as assignments.

func (repo *classRepository) flatEvent(e class.Event, c *class.Class) class.FlatEvent {
	return class.FlatEvent{Event: e, ClassName: c.Name, ClassSubject: c.Subject}
}

func (repo *classRepository) nextEventID() int {
	var max int
	for i := range repo.db.recs {
		for _, e := range repo.db.recs[i].Events {
			if e.ID > max {
				max = e.ID
			}
		}
	}
	return max + 1
}

func (repo *classRepository) findEvent(id int) (int, int) {
	for i := range repo.db.recs {
		for j, e := range repo.db.recs[i].Events {
			if e.ID == id {
				return i, j
			}
		}
	}
	return -1, -1
}

func (repo *classRepository) QueryAllEvents() ([]class.FlatEvent, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	flat := []class.FlatEvent{}
	for i := range repo.db.recs {
		c := &repo.db.recs[i]
		for _, e := range c.Events {
			flat = append(flat, repo.flatEvent(e, c))
		}
	}
	return flat, nil
}

func (repo *classRepository) GetEventByID(id int) (class.FlatEvent, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if i, j := repo.findEvent(id); i != -1 {
		c := &repo.db.recs[i]
		return repo.flatEvent(c.Events[j], c), nil
	}
	return class.FlatEvent{}, class.ErrEventNotFound
}

func (repo *classRepository) CreateEvent(e class.Event) (class.FlatEvent, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i := repo.indexOf(e.ClassID)
	if i == -1 {
		return class.FlatEvent{}, class.ErrNotFound
	}
	e.ID = repo.nextEventID()
	c := &repo.db.recs[i]
	c.Events = append(c.Events, e)
	return repo.flatEvent(e, c), nil
}

func (repo *classRepository) UpdateEvent(id int, up class.UpdateEvent) (class.FlatEvent, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i, j := repo.findEvent(id)
	if i == -1 {
		return class.FlatEvent{}, class.ErrEventNotFound
	}

	c := &repo.db.recs[i]
	e := c.Events[j]
	if up.Title != nil {
		e.Title = *up.Title
	}
	if up.Description != nil {
		e.Description = *up.Description
	}
	if up.StartDate != nil {
		e.StartDate = *up.StartDate
	}
	if up.EndDate != nil {
		e.EndDate = *up.EndDate
	}
	if up.Type != nil {
		e.Type = *up.Type
	}

	if up.ClassID != nil && *up.ClassID != e.ClassID {
		ni := repo.indexOf(*up.ClassID)
		if ni == -1 {
			return class.FlatEvent{}, class.ErrNotFound
		}
		e.ClassID = *up.ClassID
		c.Events = append(c.Events[:j], c.Events[j+1:]...)
		c = &repo.db.recs[ni]
		c.Events = append(c.Events, e)
	} else {
		c.Events[j] = e
	}
	return repo.flatEvent(e, c), nil
}

func (repo *classRepository) DeleteEvent(id int) (class.FlatEvent, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i, j := repo.findEvent(id)
	if i == -1 {
		return class.FlatEvent{}, class.ErrEventNotFound
	}
	c := &repo.db.recs[i]
	deleted := c.Events[j]
	c.Events = append(c.Events[:j], c.Events[j+1:]...)
	return repo.flatEvent(deleted, c), nil
}

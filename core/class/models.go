package class

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

type (
	// Assignment is embedded in a Class. Ids are unique across every class's
	// assignments so flattened projections can reference them unambiguously.
	Assignment struct {
		ID          int    `json:"Id"`
		ClassID     int    `json:"classId"`
		Title       string `json:"title"`
		Description string `json:"description"`
		DueDate     string `json:"dueDate"`
		Type        string `json:"type"`
	}

	// Event is embedded in a Class, same id scheme as Assignment.
	Event struct {
		ID          int    `json:"Id"`
		ClassID     int    `json:"classId"`
		Title       string `json:"title"`
		Description string `json:"description"`
		StartDate   string `json:"startDate"`
		EndDate     string `json:"endDate"`
		Type        string `json:"type"`
	}

	Class struct {
		ID          int          `json:"Id"`
		Name        string       `json:"name"`
		Subject     string       `json:"subject"`
		Period      string       `json:"period"`
		Room        string       `json:"room"`
		StudentIDs  []int        `json:"studentIds"`
		Assignments []Assignment `json:"assignments"`
		Events      []Event      `json:"events"`
	}

	// FlatAssignment is the flattened projection of an embedded Assignment,
	// annotated with its owning class. Derived on read; the embedded copy is
	// the single source of truth.
	FlatAssignment struct {
		Assignment
		ClassName    string `json:"className"`
		ClassSubject string `json:"classSubject"`
	}

	FlatEvent struct {
		Event
		ClassName    string `json:"className"`
		ClassSubject string `json:"classSubject"`
	}
)

func (c *Class) HasStudent(id int) bool {
	for _, sid := range c.StudentIDs {
		if sid == id {
			return true
		}
	}
	return false
}

// NewClass contains information needed to create a new Class.
// The roster and sub-collections start empty and are managed by dedicated operations.
type NewClass struct {
	Name    string `json:"name" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Period  string `json:"period"`
	Room    string `json:"room"`
}

func (nc *NewClass) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Subject = core.CleanString(nc.Subject)
	return validate.Struct(nc)
}

// UpdateClass patches a Class's own fields. Nil fields are left untouched.
type UpdateClass struct {
	Name    *string `json:"name"`
	Subject *string `json:"subject"`
	Period  *string `json:"period"`
	Room    *string `json:"room"`
}

func (uc *UpdateClass) Validate(validate *validator.Validate) error {
	if uc.Name != nil {
		*uc.Name = core.CleanString(*uc.Name)
	}
	if uc.Subject != nil {
		*uc.Subject = core.CleanString(*uc.Subject)
	}
	return validate.Struct(uc)
}

type NewAssignment struct {
	ClassID     int    `json:"classId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" validate:"omitempty,dateonly"`
	Type        string `json:"type"`
}

func (na *NewAssignment) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	return validate.Struct(na)
}

type UpdateAssignment struct {
	ClassID     *int    `json:"classId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate" validate:"omitempty,dateonly"`
	Type        *string `json:"type"`
}

func (ua *UpdateAssignment) Validate(validate *validator.Validate) error {
	if ua.Title != nil {
		*ua.Title = core.CleanString(*ua.Title)
	}
	return validate.Struct(ua)
}

type NewEvent struct {
	ClassID     int    `json:"classId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" validate:"omitempty,dateonly"`
	EndDate     string `json:"endDate" validate:"omitempty,dateonly"`
	Type        string `json:"type"`
}

func (ne *NewEvent) Validate(validate *validator.Validate) error {
	ne.Title = core.CleanString(ne.Title)
	return validate.Struct(ne)
}

type UpdateEvent struct {
	ClassID     *int    `json:"classId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate" validate:"omitempty,dateonly"`
	EndDate     *string `json:"endDate" validate:"omitempty,dateonly"`
	Type        *string `json:"type"`
}

func (ue *UpdateEvent) Validate(validate *validator.Validate) error {
	if ue.Title != nil {
		*ue.Title = core.CleanString(*ue.Title)
	}
	return validate.Struct(ue)
}

package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

// Statuses
const (
	StatusActive      = "active"
	StatusInactive    = "inactive"
	StatusGraduated   = "graduated"
	StatusTransferred = "transferred"
)

// Student is an enrolled (or formerly enrolled) pupil. Field names follow the
// fixture/export format; `Id` stays capitalized there for compatibility.
type Student struct {
	ID             int    `json:"Id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	GradeLevel     string `json:"grade"`
	EnrollmentDate string `json:"enrollmentDate"`
	ParentContact  string `json:"parentContact"`
	Status         string `json:"status"`
	PhotoURL       string `json:"photoUrl,omitempty"`
	Hobbies        string `json:"hobbies,omitempty"`
	Interests      string `json:"interests,omitempty"`
	Bio            string `json:"bio,omitempty"`
}

func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// NewStudent contains information needed to create a new Student.
// Validation happens here, at the caller boundary; the store accepts anything.
type NewStudent struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	GradeLevel     string `json:"grade" validate:"omitempty,gradelevel"`
	EnrollmentDate string `json:"enrollmentDate" validate:"omitempty,dateonly"`
	ParentContact  string `json:"parentContact"`
	Status         string `json:"status" validate:"omitempty,studentstatus"`
	PhotoURL       string `json:"photoUrl"`
	Hobbies        string `json:"hobbies"`
	Interests      string `json:"interests"`
	Bio            string `json:"bio"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing
// Student. Nil fields are left untouched; the id is immutable and not part of
// the patch.
type UpdateStudent struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email" validate:"omitempty,email"`
	GradeLevel     *string `json:"grade" validate:"omitempty,gradelevel"`
	EnrollmentDate *string `json:"enrollmentDate" validate:"omitempty,dateonly"`
	ParentContact  *string `json:"parentContact"`
	Status         *string `json:"status" validate:"omitempty,studentstatus"`
	PhotoURL       *string `json:"photoUrl"`
	Hobbies        *string `json:"hobbies"`
	Interests      *string `json:"interests"`
	Bio            *string `json:"bio"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	if us.FirstName != nil {
		*us.FirstName = core.CleanString(*us.FirstName)
	}
	if us.LastName != nil {
		*us.LastName = core.CleanString(*us.LastName)
	}
	if us.Email != nil {
		*us.Email = core.CleanString(*us.Email, true /* lower */)
	}
	return validate.Struct(us)
}

// QueryFilter applies an AND operation on its set fields.
// Search does a case-insensitive substring match on one of
// Student.FirstName, Student.LastName or Student.Email.
type QueryFilter struct {
	Search     string `query:"search"`
	Status     string `query:"status"`
	GradeLevel string `query:"grade"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Status == "" && qf.GradeLevel == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
	qf.GradeLevel = core.CleanString(qf.GradeLevel)
}

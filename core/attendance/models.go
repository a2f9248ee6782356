package attendance

import (
	"github.com/go-playground/validator/v10"
)

// Statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusExcused = "excused"
)

// Attendance is one student's attendance record for a class on a date.
// Only BulkUpsert treats (studentId, classId, date) as a key; plain Create
// happily inserts duplicates.
type Attendance struct {
	ID        int    `json:"Id"`
	StudentID int    `json:"studentId"`
	ClassID   int    `json:"classId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// NewAttendance contains information needed to create a new record.
type NewAttendance struct {
	StudentID int    `json:"studentId" validate:"required"`
	ClassID   int    `json:"classId" validate:"required"`
	Date      string `json:"date" validate:"required,dateonly"`
	Status    string `json:"status" validate:"required,attstatus"`
	Notes     string `json:"notes"`
}

func (na *NewAttendance) Validate(validate *validator.Validate) error {
	return validate.Struct(na)
}

// UpdateAttendance patches an existing record. Nil fields are left untouched.
type UpdateAttendance struct {
	StudentID *int    `json:"studentId"`
	ClassID   *int    `json:"classId"`
	Date      *string `json:"date" validate:"omitempty,dateonly"`
	Status    *string `json:"status" validate:"omitempty,attstatus"`
	Notes     *string `json:"notes"`
}

func (ua *UpdateAttendance) Validate(validate *validator.Validate) error {
	return validate.Struct(ua)
}

// UpsertRecord is one entry of a bulk upsert, keyed by (StudentID, ClassID, Date).
type UpsertRecord struct {
	StudentID int    `json:"studentId" validate:"required"`
	ClassID   int    `json:"classId" validate:"required"`
	Date      string `json:"date" validate:"required,dateonly"`
	Status    string `json:"status" validate:"required,attstatus"`
	Notes     string `json:"notes"`
}

func (ur *UpsertRecord) Validate(validate *validator.Validate) error {
	return validate.Struct(ur)
}

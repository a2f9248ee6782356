package grade

import (
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

// Letter-grade boundaries, applied to the rounded percentage.
const (
	minA = 90
	minB = 80
	minC = 70
	minD = 60
)

// Grade is one scored piece of work. The store does not check score against
// maxScore nor the studentId/classId references; that is the caller's job.
type Grade struct {
	ID             int     `json:"Id"`
	StudentID      int     `json:"studentId"`
	ClassID        int     `json:"classId"`
	AssignmentName string  `json:"assignmentName"`
	Score          float64 `json:"score"`
	MaxScore       float64 `json:"maxScore"`
	Date           string  `json:"date"`
}

// Percentage returns the rounded percent score for this record.
func (g *Grade) Percentage() int {
	return int(math.Round(g.percent()))
}

func (g *Grade) percent() float64 {
	if g.MaxScore <= 0 {
		return 0
	}
	return g.Score / g.MaxScore * 100
}

// Letter buckets a percentage: A >= 90, B [80,90), C [70,80), D [60,70), F < 60.
func Letter(percentage int) string {
	switch {
	case percentage >= minA:
		return "A"
	case percentage >= minB:
		return "B"
	case percentage >= minC:
		return "C"
	case percentage >= minD:
		return "D"
	default:
		return "F"
	}
}

// Average returns the arithmetic mean of the records' percentages (not
// total-score over total-maxScore), rounded. Zero records average to 0.
func Average(grades []Grade) int {
	if len(grades) == 0 {
		return 0
	}
	var total float64
	for i := range grades {
		total += grades[i].percent()
	}
	return int(math.Round(total / float64(len(grades))))
}

// NewGrade contains information needed to record a new Grade.
type NewGrade struct {
	StudentID      int     `json:"studentId" validate:"required"`
	ClassID        int     `json:"classId" validate:"required"`
	AssignmentName string  `json:"assignmentName" validate:"required"`
	Score          float64 `json:"score" validate:"gte=0"`
	MaxScore       float64 `json:"maxScore" validate:"required,gt=0"`
	Date           string  `json:"date" validate:"omitempty,dateonly"`
}

func (ng *NewGrade) Validate(validate *validator.Validate) error {
	ng.AssignmentName = core.CleanString(ng.AssignmentName)
	return validate.Struct(ng)
}

// UpdateGrade patches an existing Grade. Nil fields are left untouched.
type UpdateGrade struct {
	StudentID      *int     `json:"studentId"`
	ClassID        *int     `json:"classId"`
	AssignmentName *string  `json:"assignmentName"`
	Score          *float64 `json:"score" validate:"omitempty,gte=0"`
	MaxScore       *float64 `json:"maxScore" validate:"omitempty,gt=0"`
	Date           *string  `json:"date" validate:"omitempty,dateonly"`
}

func (ug *UpdateGrade) Validate(validate *validator.Validate) error {
	if ug.AssignmentName != nil {
		*ug.AssignmentName = core.CleanString(*ug.AssignmentName)
	}
	return validate.Struct(ug)
}

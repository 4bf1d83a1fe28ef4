package models

import "time"

// Student statuses tracked by the registry.
const (
	StudentStatusActive    = "active"
	StudentStatusLeave     = "leave"
	StudentStatusGraduated = "graduated"
	StudentStatusWithdrawn = "withdrawn"
)

// Student is the root record of the registry, keyed by the
// institution-assigned student identifier rather than a surrogate id.
// Nullable columns are pointers so that an explicit NULL can be stored
// and round-tripped distinctly from a zero value.
type Student struct {
	StudentID           string   `gorm:"column:student_id;primaryKey;size:32" json:"student_id"`
	FullName            string   `gorm:"column:full_name;size:255;not null" json:"full_name"`
	BirthDate           *string  `gorm:"column:birth_date" json:"birth_date"`
	Age                 *int     `gorm:"column:age" json:"age"`
	NationalID          *string  `gorm:"column:national_id" json:"national_id"`
	IDCardAddress       *string  `gorm:"column:id_card_address" json:"id_card_address"`
	CurrentAddress      *string  `gorm:"column:current_address" json:"current_address"`
	Phone               *string  `gorm:"column:phone" json:"phone"`
	Email               *string  `gorm:"column:email" json:"email"`
	UndergraduateFrom   *string  `gorm:"column:undergraduate_from" json:"undergraduate_from"`
	UndergraduateGPA    *float64 `gorm:"column:undergraduate_gpa" json:"undergraduate_gpa"`
	ProfessionalLicense *string  `gorm:"column:professional_license" json:"professional_license"`
	CurrentWorkplace    *string  `gorm:"column:current_workplace" json:"current_workplace"`
	Status              *string  `gorm:"column:status" json:"status"`
	MainAdvisor         *string  `gorm:"column:main_advisor" json:"main_advisor"`
	CoAdvisor           *string  `gorm:"column:co_advisor" json:"co_advisor"`
	ApprovalNumber      *string  `gorm:"column:approval_number" json:"approval_number"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	Thesis  *ThesisProgress    `gorm:"foreignKey:StudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Courses []CourseEnrollment `gorm:"foreignKey:StudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

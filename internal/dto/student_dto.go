package dto

import (
	"time"

	"github.com/waritk/gradtrack-api/internal/models"
)

// StudentCreateRequest carries the attribute set for creating a student. The
// caller supplies the primary key; everything beyond the name is optional.
type StudentCreateRequest struct {
	StudentID           string   `json:"student_id" validate:"required"`
	FullName            string   `json:"full_name" validate:"required"`
	BirthDate           *string  `json:"birth_date"`
	Age                 *int     `json:"age"`
	NationalID          *string  `json:"national_id"`
	IDCardAddress       *string  `json:"id_card_address"`
	CurrentAddress      *string  `json:"current_address"`
	Phone               *string  `json:"phone"`
	Email               *string  `json:"email"`
	UndergraduateFrom   *string  `json:"undergraduate_from"`
	UndergraduateGPA    *float64 `json:"undergraduate_gpa"`
	ProfessionalLicense *string  `json:"professional_license"`
	CurrentWorkplace    *string  `json:"current_workplace"`
	Status              *string  `json:"status"`
	MainAdvisor         *string  `json:"main_advisor"`
	CoAdvisor           *string  `json:"co_advisor"`
	ApprovalNumber      *string  `json:"approval_number"`
}

// Model converts the request into a student record.
func (r StudentCreateRequest) Model() models.Student {
	return models.Student{
		StudentID:           r.StudentID,
		FullName:            r.FullName,
		BirthDate:           r.BirthDate,
		Age:                 r.Age,
		NationalID:          r.NationalID,
		IDCardAddress:       r.IDCardAddress,
		CurrentAddress:      r.CurrentAddress,
		Phone:               r.Phone,
		Email:               r.Email,
		UndergraduateFrom:   r.UndergraduateFrom,
		UndergraduateGPA:    r.UndergraduateGPA,
		ProfessionalLicense: r.ProfessionalLicense,
		CurrentWorkplace:    r.CurrentWorkplace,
		Status:              r.Status,
		MainAdvisor:         r.MainAdvisor,
		CoAdvisor:           r.CoAdvisor,
		ApprovalNumber:      r.ApprovalNumber,
	}
}

// StudentWithProgress is the flat read model the UI consumes: every student
// column plus the thesis milestone columns, null when no progress row exists.
type StudentWithProgress struct {
	StudentID           string    `json:"student_id"`
	FullName            string    `json:"full_name"`
	BirthDate           *string   `json:"birth_date"`
	Age                 *int      `json:"age"`
	NationalID          *string   `json:"national_id"`
	IDCardAddress       *string   `json:"id_card_address"`
	CurrentAddress      *string   `json:"current_address"`
	Phone               *string   `json:"phone"`
	Email               *string   `json:"email"`
	UndergraduateFrom   *string   `json:"undergraduate_from"`
	UndergraduateGPA    *float64  `json:"undergraduate_gpa"`
	ProfessionalLicense *string   `json:"professional_license"`
	CurrentWorkplace    *string   `json:"current_workplace"`
	Status              *string   `json:"status"`
	MainAdvisor         *string   `json:"main_advisor"`
	CoAdvisor           *string   `json:"co_advisor"`
	ApprovalNumber      *string   `json:"approval_number"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	ProposalExamDate  *string `json:"proposal_exam_date"`
	ProposalStatus    *string `json:"proposal_status"`
	DefenseExamDate   *string `json:"defense_exam_date"`
	DefenseStatus     *string `json:"defense_status"`
	PublicationStatus *string `json:"publication_status"`
	GraduationNotice  *string `json:"graduation_notice"`
}

// NewStudentWithProgress flattens a student and its optional thesis record.
func NewStudentWithProgress(student models.Student) StudentWithProgress {
	out := StudentWithProgress{
		StudentID:           student.StudentID,
		FullName:            student.FullName,
		BirthDate:           student.BirthDate,
		Age:                 student.Age,
		NationalID:          student.NationalID,
		IDCardAddress:       student.IDCardAddress,
		CurrentAddress:      student.CurrentAddress,
		Phone:               student.Phone,
		Email:               student.Email,
		UndergraduateFrom:   student.UndergraduateFrom,
		UndergraduateGPA:    student.UndergraduateGPA,
		ProfessionalLicense: student.ProfessionalLicense,
		CurrentWorkplace:    student.CurrentWorkplace,
		Status:              student.Status,
		MainAdvisor:         student.MainAdvisor,
		CoAdvisor:           student.CoAdvisor,
		ApprovalNumber:      student.ApprovalNumber,
		CreatedAt:           student.CreatedAt,
		UpdatedAt:           student.UpdatedAt,
	}

	if thesis := student.Thesis; thesis != nil {
		out.ProposalExamDate = thesis.ProposalExamDate
		out.ProposalStatus = thesis.ProposalStatus
		out.DefenseExamDate = thesis.DefenseExamDate
		out.DefenseStatus = thesis.DefenseStatus
		out.PublicationStatus = thesis.PublicationStatus
		out.GraduationNotice = thesis.GraduationNotice
	}

	return out
}

package dto

import "github.com/waritk/gradtrack-api/internal/models"

// CourseCreateRequest carries the attribute set for enrolling a student in a
// course. The enrollment id is store-generated.
type CourseCreateRequest struct {
	StudentID  string  `json:"student_id" validate:"required"`
	CourseCode *string `json:"course_code"`
	CourseName *string `json:"course_name"`
	Grade      *string `json:"grade"`
	Semester   *string `json:"semester"`
	Year       *string `json:"year"`
}

// Model converts the request into an enrollment record.
func (r CourseCreateRequest) Model() models.CourseEnrollment {
	return models.CourseEnrollment{
		StudentID:  r.StudentID,
		CourseCode: r.CourseCode,
		CourseName: r.CourseName,
		Grade:      r.Grade,
		Semester:   r.Semester,
		Year:       r.Year,
	}
}

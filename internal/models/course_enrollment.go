package models

import "time"

// CourseEnrollment records one course taken by a student. Enrollments are
// created and deleted individually; there is no updated_at column, matching
// the original schema.
type CourseEnrollment struct {
	ID         uint      `gorm:"column:id;primaryKey" json:"id"`
	StudentID  string    `gorm:"column:student_id;size:32;not null;index" json:"student_id"`
	CourseCode *string   `gorm:"column:course_code" json:"course_code"`
	CourseName *string   `gorm:"column:course_name" json:"course_name"`
	Grade      *string   `gorm:"column:grade" json:"grade"`
	Semester   *string   `gorm:"column:semester" json:"semester"`
	Year       *string   `gorm:"column:year" json:"year"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

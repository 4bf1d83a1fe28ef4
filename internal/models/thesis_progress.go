package models

import "time"

// ThesisProgress holds the milestone record for a student's thesis.
// The unique index on student_id enforces the one-row-per-student rule
// at the store rather than relying on upsert discipline alone.
type ThesisProgress struct {
	ID                uint      `gorm:"column:id;primaryKey" json:"id"`
	StudentID         string    `gorm:"column:student_id;size:32;not null;uniqueIndex" json:"student_id"`
	ProposalExamDate  *string   `gorm:"column:proposal_exam_date" json:"proposal_exam_date"`
	ProposalStatus    *string   `gorm:"column:proposal_status" json:"proposal_status"`
	DefenseExamDate   *string   `gorm:"column:defense_exam_date" json:"defense_exam_date"`
	DefenseStatus     *string   `gorm:"column:defense_status" json:"defense_status"`
	PublicationStatus *string   `gorm:"column:publication_status" json:"publication_status"`
	GraduationNotice  *string   `gorm:"column:graduation_notice" json:"graduation_notice"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName keeps the historical table name used by the existing database files.
func (ThesisProgress) TableName() string {
	return "thesis_progress"
}

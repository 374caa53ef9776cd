package model

import (
	"time"
)

// Certificate is the immutable record that a user completed a course.
// It lives in its own table with a unique index on certificate_number so
// public verification is a point lookup, and a unique (user_id, course_id)
// pair so repeated issuance requests resolve to the same row.
//
// CourseName is a denormalized copy of the course title at issuance time:
// verification keeps working after the course is renamed or deleted.
// swagger:model Certificate
type Certificate struct {
	BaseModel
	CertificateNumber string    `gorm:"size:64;uniqueIndex;not null" json:"certificateNumber"`
	UserID            uint      `gorm:"uniqueIndex:idx_cert_user_course;index;not null" json:"userId"`
	CourseID          uint      `gorm:"uniqueIndex:idx_cert_user_course;not null" json:"courseId"`
	CourseName        string    `gorm:"size:200;not null" json:"courseName"`
	IssueDate         time.Time `gorm:"not null" json:"issueDate"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Certificate) TableName() string {
	return "certificates"
}

package model

import (
	"time"

	"gorm.io/datatypes"
)

// Enrollment links a user to a course with a progress percentage.
// (user_id, course_id) is unique: enrolling twice is a no-op.
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	UserID           uint           `gorm:"uniqueIndex:idx_user_course;not null" json:"userId"`
	CourseID         uint           `gorm:"uniqueIndex:idx_user_course;not null" json:"courseId"`
	Progress         int            `gorm:"default:0" json:"progress"` // 0..100, never decreases
	EnrolledAt       time.Time      `json:"enrollmentDate"`
	LastAccessed     time.Time      `json:"lastAccessed"`
	CompletedLessons int            `gorm:"default:0" json:"completedLessons"`
	CompletedModules int            `gorm:"default:0" json:"completedModules"`
	QuizResults      datatypes.JSON `json:"quizResults,omitempty"`

	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

func (e *Enrollment) Completed() bool {
	return e.Progress >= 100
}

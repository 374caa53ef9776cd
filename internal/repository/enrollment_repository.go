package repository

import (
	"eduflow_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) FindByUserAndCourse(userID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	return &enrollment, err
}

// FindByUser lists a user's enrollments with course info, most recently
// accessed first.
func (r *EnrollmentRepository) FindByUser(userID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.
		Preload("Course").
		Where("user_id = ?", userID).
		Order("last_accessed DESC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) Update(enrollment *model.Enrollment) error {
	return r.DB.Save(enrollment).Error
}

func (r *EnrollmentRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Enrollment{}).Count(&total).Error
	return total, err
}

func (r *EnrollmentRepository) CountCompleted() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("progress >= ?", 100).
		Count(&total).
		Error
	return total, err
}

package repository

import (
	"eduflow_backend/internal/model"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) Create(cert *model.Certificate) error {
	return r.DB.Create(cert).Error
}

// FindByNumber is the public verification lookup. certificate_number carries
// a unique index, so this is a point read.
func (r *CertificateRepository) FindByNumber(number string) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.
		Preload("User").
		Preload("Course").
		Where("certificate_number = ?", number).
		First(&cert).Error
	return &cert, err
}

func (r *CertificateRepository) FindByUserAndCourse(userID, courseID uint) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&cert).Error
	return &cert, err
}

func (r *CertificateRepository) FindByUser(userID uint) ([]model.Certificate, error) {
	var certs []model.Certificate
	err := r.DB.
		Where("user_id = ?", userID).
		Order("issue_date DESC").
		Find(&certs).Error
	return certs, err
}

// ListAll serves the admin view: paginated, optionally filtered by
// certificate number, holder name/email or course name.
func (r *CertificateRepository) ListAll(page, limit int, search string) ([]model.Certificate, int64, error) {
	var certs []model.Certificate
	var total int64

	query := r.DB.Model(&model.Certificate{}).Preload("User")

	if search != "" {
		term := "%" + search + "%"
		query = query.
			Joins("LEFT JOIN users ON users.id = certificates.user_id").
			Where("certificates.certificate_number LIKE ? OR certificates.course_name LIKE ? OR users.name LIKE ? OR users.email LIKE ?",
				term, term, term, term)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Offset(offset).Limit(limit).Order("certificates.issue_date DESC").Find(&certs).Error
	return certs, total, err
}

func (r *CertificateRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Certificate{}).Count(&total).Error
	return total, err
}

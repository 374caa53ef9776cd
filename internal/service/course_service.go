package service

import (
	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"eduflow_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo}
}

// Catalog lists published courses for the public catalog page.
func (s *CourseService) Catalog(page, limit int, search, category, level string) ([]model.Course, int64, error) {
	return s.CourseRepo.List(page, limit, repository.CourseFilter{
		Search:        search,
		Category:      category,
		Level:         level,
		PublishedOnly: true,
	})
}

// ListAll lists every course, published or not (admin view).
func (s *CourseService) ListAll(page, limit int, search string) ([]model.Course, int64, error) {
	return s.CourseRepo.List(page, limit, repository.CourseFilter{Search: search})
}

func (s *CourseService) GetByID(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByIDWithModules(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Create(course *model.Course) error {
	return s.CourseRepo.Create(course)
}

func (s *CourseService) Update(course *model.Course) error {
	existing, err := s.CourseRepo.FindByID(course.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}

	existing.Title = course.Title
	existing.Description = course.Description
	existing.Instructor = course.Instructor
	existing.Category = course.Category
	existing.Level = course.Level
	existing.CoverURL = course.CoverURL
	existing.Published = course.Published

	return s.CourseRepo.Update(existing)
}

// Delete removes a course. Certificates referencing it keep working through
// their denormalized course name.
func (s *CourseService) Delete(id uint) error {
	if _, err := s.CourseRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}
	return s.CourseRepo.Delete(id)
}

package service

import (
	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"eduflow_backend/internal/util"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
	}
}

// Enroll registers the user on a published course. Enrolling twice returns
// the existing record together with ErrAlreadyEnrolled.
func (s *EnrollmentService) Enroll(userID, courseID uint) (*model.Enrollment, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	if !course.Published {
		return nil, util.ErrCourseNotPublished
	}

	if existing, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID); err == nil {
		return existing, util.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	enrollment := &model.Enrollment{
		UserID:       userID,
		CourseID:     courseID,
		Progress:     0,
		EnrolledAt:   now,
		LastAccessed: now,
	}

	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		// unique (user_id, course_id) lost a race: return the winner
		if existing, findErr := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID); findErr == nil {
			return existing, util.ErrAlreadyEnrolled
		}
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) ListByUser(userID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.FindByUser(userID)
}

// ProgressUpdate carries a progress report from the client.
type ProgressUpdate struct {
	Progress         int            `json:"progress" binding:"min=0,max=100"`
	CompletedLessons int            `json:"completedLessons"`
	CompletedModules int            `json:"completedModules"`
	QuizResults      datatypes.JSON `json:"quizResults,omitempty"`
}

// UpdateProgress advances an enrollment. Progress is clamped to 0..100 and
// never decreases; a stale or replayed report simply leaves it where it is.
// last_accessed is bumped on every call.
func (s *EnrollmentService) UpdateProgress(userID, courseID uint, update ProgressUpdate) (*model.Enrollment, error) {
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}

	progress := update.Progress
	if progress > 100 {
		progress = 100
	}
	if progress > enrollment.Progress {
		enrollment.Progress = progress
	}
	if update.CompletedLessons > enrollment.CompletedLessons {
		enrollment.CompletedLessons = update.CompletedLessons
	}
	if update.CompletedModules > enrollment.CompletedModules {
		enrollment.CompletedModules = update.CompletedModules
	}
	if len(update.QuizResults) > 0 {
		enrollment.QuizResults = update.QuizResults
	}
	enrollment.LastAccessed = time.Now()

	if err := s.EnrollmentRepo.Update(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

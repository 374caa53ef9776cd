package service

import (
	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"time"
)

type DashboardService struct {
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	CertRepo       *repository.CertificateRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	certRepo *repository.CertificateRepository,
) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		CertRepo:       certRepo,
	}
}

type StudentDashboard struct {
	Enrollments      []model.Enrollment  `json:"enrollments"`
	CertificateCount int                 `json:"certificateCount"`
	Certificates     []model.Certificate `json:"certificates"`
	CoursesCompleted int                 `json:"coursesCompleted"`
	CoursesInFlight  int                 `json:"coursesInProgress"`
}

type AdminDashboard struct {
	TotalUsers        int64   `json:"totalUsers"`
	TotalCourses      int64   `json:"totalCourses"`
	TotalEnrollments  int64   `json:"totalEnrollments"`
	TotalCertificates int64   `json:"totalCertificates"`
	CompletionRate    float64 `json:"completionRate"`
	SignupsLast7Days  int64   `json:"signupsLast7Days"`
}

// GetStudentDashboard assembles the learner's home screen.
func (s *DashboardService) GetStudentDashboard(userID uint) (*StudentDashboard, error) {
	enrollments, err := s.EnrollmentRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	certs, err := s.CertRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	dashboard := &StudentDashboard{
		Enrollments:      enrollments,
		Certificates:     certs,
		CertificateCount: len(certs),
	}
	for _, e := range enrollments {
		if e.Completed() {
			dashboard.CoursesCompleted++
		} else {
			dashboard.CoursesInFlight++
		}
	}
	return dashboard, nil
}

// GetAdminDashboard aggregates platform-wide totals.
func (s *DashboardService) GetAdminDashboard() (*AdminDashboard, error) {
	users, err := s.UserRepo.Count()
	if err != nil {
		return nil, err
	}
	courses, err := s.CourseRepo.Count()
	if err != nil {
		return nil, err
	}
	enrollments, err := s.EnrollmentRepo.Count()
	if err != nil {
		return nil, err
	}
	completed, err := s.EnrollmentRepo.CountCompleted()
	if err != nil {
		return nil, err
	}
	certs, err := s.CertRepo.Count()
	if err != nil {
		return nil, err
	}
	signups, err := s.UserRepo.CountSignupsSince(time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	dashboard := &AdminDashboard{
		TotalUsers:        users,
		TotalCourses:      courses,
		TotalEnrollments:  enrollments,
		TotalCertificates: certs,
		SignupsLast7Days:  signups,
	}
	if enrollments > 0 {
		dashboard.CompletionRate = float64(completed) / float64(enrollments)
	}
	return dashboard, nil
}

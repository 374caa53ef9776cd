package service

import (
	"context"
	"crypto/rand"
	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"eduflow_backend/pkg/monitoring"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"eduflow_backend/internal/util"
)

const (
	certNumberPrefix = "CERT-"
	// 128 bits of randomness makes collisions negligible, but inserts still
	// retry against the unique index instead of assuming it away.
	certNumberRandomBytes = 16
	certNumberMaxRetries  = 3

	verifyCacheTTL = 10 * time.Minute
)

type CertificateService struct {
	CertRepo       *repository.CertificateRepository
	EnrollmentRepo *repository.EnrollmentRepository
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	rdb            *redis.Client
}

func NewCertificateService(
	certRepo *repository.CertificateRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	rdb *redis.Client,
) *CertificateService {
	return &CertificateService{
		CertRepo:       certRepo,
		EnrollmentRepo: enrollmentRepo,
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		rdb:            rdb,
	}
}

// VerificationResult is the public, display-safe projection of a certificate.
// swagger:model VerificationResult
type VerificationResult struct {
	Valid             bool      `json:"valid"`
	Message           string    `json:"message,omitempty"`
	CertificateNumber string    `json:"certificateNumber,omitempty"`
	HolderName        string    `json:"holderName,omitempty"`
	HolderEmail       string    `json:"holderEmail,omitempty"`
	CourseTitle       string    `json:"courseTitle,omitempty"`
	InstructorName    string    `json:"instructorName,omitempty"`
	IssueDate         time.Time `json:"issueDate"`
}

// GenerateCertificateNumber returns a fresh opaque identifier,
// CERT-<32 uppercase hex chars> from 128 random bits.
func GenerateCertificateNumber() (string, error) {
	buf := make([]byte, certNumberRandomBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return certNumberPrefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}

// IssueCertificate creates the immutable completion record for a user/course
// pair. The enrollment progress is re-read here; callers are not trusted to
// have checked it. Issuing twice returns the existing certificate: the bool
// reports whether the certificate already existed.
func (s *CertificateService) IssueCertificate(userID, courseID uint) (*model.Certificate, bool, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, util.ErrUserNotFound
		}
		return nil, false, err
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, util.ErrCourseNotFound
		}
		return nil, false, err
	}

	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(user.ID, course.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, util.ErrEnrollmentNotFound
		}
		return nil, false, err
	}
	if !enrollment.Completed() {
		return nil, false, util.ErrEnrollmentIncomplete
	}

	if existing, err := s.CertRepo.FindByUserAndCourse(user.ID, course.ID); err == nil {
		return existing, true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	var lastErr error
	for attempt := 0; attempt < certNumberMaxRetries; attempt++ {
		number, err := GenerateCertificateNumber()
		if err != nil {
			return nil, false, err
		}

		cert := &model.Certificate{
			CertificateNumber: number,
			UserID:            user.ID,
			CourseID:          course.ID,
			CourseName:        course.Title,
			IssueDate:         time.Now(),
		}

		if err := s.CertRepo.Create(cert); err != nil {
			// A duplicate on (user_id, course_id) means a concurrent request
			// won the race; hand back its row. Anything else duplicate-shaped
			// is a certificate_number collision, retried with a new number.
			if existing, findErr := s.CertRepo.FindByUserAndCourse(user.ID, course.ID); findErr == nil {
				return existing, true, nil
			}
			lastErr = err
			continue
		}

		monitoring.CertificatesIssued.Inc()
		return cert, false, nil
	}

	return nil, false, fmt.Errorf("issue certificate: retries exhausted: %w", lastErr)
}

// ListByUser returns the caller's certificates, newest first.
func (s *CertificateService) ListByUser(userID uint) ([]model.Certificate, error) {
	return s.CertRepo.FindByUser(userID)
}

// ListAll serves the admin view.
func (s *CertificateService) ListAll(page, limit int, search string) ([]model.Certificate, int64, error) {
	return s.CertRepo.ListAll(page, limit, search)
}

// Verify resolves a certificate number supplied by an anonymous caller. An
// unknown number is a normal negative result, never an error. Positive
// results are cached: certificates are immutable, so the cache cannot go
// stale (a course rename only changes the live-title resolution, and the
// short TTL bounds that staleness).
func (s *CertificateService) Verify(ctx context.Context, number string) (*VerificationResult, error) {
	if cached := s.cachedResult(ctx, number); cached != nil {
		monitoring.CertificateVerifications.WithLabelValues("valid").Inc()
		return cached, nil
	}

	cert, err := s.CertRepo.FindByNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			monitoring.CertificateVerifications.WithLabelValues("invalid").Inc()
			return &VerificationResult{
				Valid:   false,
				Message: "certificate not found",
			}, nil
		}
		return nil, err
	}

	result := &VerificationResult{
		Valid:             true,
		CertificateNumber: cert.CertificateNumber,
		IssueDate:         cert.IssueDate,
		CourseTitle:       cert.CourseName,
	}
	if cert.User != nil {
		result.HolderName = cert.User.Name
		result.HolderEmail = cert.User.Email
	}
	// Prefer the live course record; the denormalized name above covers a
	// deleted course.
	if cert.Course != nil {
		result.CourseTitle = cert.Course.Title
		result.InstructorName = cert.Course.Instructor
	}

	s.cacheResult(ctx, number, result)
	monitoring.CertificateVerifications.WithLabelValues("valid").Inc()
	return result, nil
}

func verifyCacheKey(number string) string {
	return "cert:verify:" + number
}

func (s *CertificateService) cachedResult(ctx context.Context, number string) *VerificationResult {
	if s.rdb == nil {
		return nil
	}
	data, err := s.rdb.Get(ctx, verifyCacheKey(number)).Bytes()
	if err != nil {
		return nil
	}
	var result VerificationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}
	return &result
}

func (s *CertificateService) cacheResult(ctx context.Context, number string, result *VerificationResult) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	s.rdb.Set(ctx, verifyCacheKey(number), data, verifyCacheTTL)
}

package service

import (
	"context"
	"eduflow_backend/internal/util"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCertificateNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number, err := GenerateCertificateNumber()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(number, "CERT-"))
		assert.Len(t, number, len("CERT-")+32)
		assert.Equal(t, strings.ToUpper(number), number)
		assert.False(t, seen[number], "duplicate number %s", number)
		seen[number] = true
	}
}

func TestIssueCertificate_RequiresCompletedEnrollment(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "u1", "u1@example.com")
	course := env.createCourse(t, "Go Basics", "Jane Doe")

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := env.certificate.IssueCertificate(9999, course.ID)
		assert.ErrorIs(t, err, util.ErrUserNotFound)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, _, err := env.certificate.IssueCertificate(user.ID, 9999)
		assert.ErrorIs(t, err, util.ErrCourseNotFound)
	})

	t.Run("not enrolled", func(t *testing.T) {
		_, _, err := env.certificate.IssueCertificate(user.ID, course.ID)
		assert.ErrorIs(t, err, util.ErrEnrollmentNotFound)
	})

	t.Run("incomplete enrollment", func(t *testing.T) {
		env.enrollWithProgress(t, user.ID, course.ID, 60)
		_, _, err := env.certificate.IssueCertificate(user.ID, course.ID)
		assert.ErrorIs(t, err, util.ErrEnrollmentIncomplete)
	})

	t.Run("completed enrollment", func(t *testing.T) {
		env.enrollWithProgress(t, user.ID, course.ID, 100)
		cert, existed, err := env.certificate.IssueCertificate(user.ID, course.ID)
		require.NoError(t, err)
		assert.False(t, existed)
		assert.True(t, strings.HasPrefix(cert.CertificateNumber, "CERT-"))
		assert.Equal(t, course.Title, cert.CourseName)
		assert.False(t, cert.IssueDate.IsZero())
	})
}

func TestIssueCertificate_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "u1", "u1@example.com")
	course := env.createCourse(t, "Go Basics", "Jane Doe")
	env.enrollWithProgress(t, user.ID, course.ID, 100)

	first, existed, err := env.certificate.IssueCertificate(user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, existed)

	second, existed, err := env.certificate.IssueCertificate(user.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CertificateNumber, second.CertificateNumber)

	// still exactly one row for the pair
	certs, err := env.certs.FindByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, certs, 1)
}

func TestIssueCertificate_NumbersUniqueAcrossUsers(t *testing.T) {
	env := newTestEnv(t)
	course := env.createCourse(t, "Go Basics", "Jane Doe")

	seen := make(map[string]bool)
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		user := env.createUser(t, email, email)
		env.enrollWithProgress(t, user.ID, course.ID, 100)

		cert, _, err := env.certificate.IssueCertificate(user.ID, course.ID)
		require.NoError(t, err)
		assert.False(t, seen[cert.CertificateNumber])
		seen[cert.CertificateNumber] = true
	}
}

func TestVerifyCertificate_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "u1", "u1@example.com")
	course := env.createCourse(t, "Advanced Patterns", "Jane Doe")
	env.enrollWithProgress(t, user.ID, course.ID, 100)

	cert, _, err := env.certificate.IssueCertificate(user.ID, course.ID)
	require.NoError(t, err)

	result, err := env.certificate.Verify(context.Background(), cert.CertificateNumber)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, cert.CertificateNumber, result.CertificateNumber)
	assert.Equal(t, "u1", result.HolderName)
	assert.Equal(t, "u1@example.com", result.HolderEmail)
	assert.Equal(t, "Advanced Patterns", result.CourseTitle)
	assert.Equal(t, "Jane Doe", result.InstructorName)
	assert.False(t, result.IssueDate.IsZero())
}

func TestVerifyCertificate_Unknown(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.certificate.Verify(context.Background(), "CERT-DOESNOTEXIST")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "certificate not found", result.Message)
	assert.Empty(t, result.HolderName)
}

func TestVerifyCertificate_SurvivesCourseDeletion(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "u1", "u1@example.com")
	course := env.createCourse(t, "Short-Lived Course", "Jane Doe")
	env.enrollWithProgress(t, user.ID, course.ID, 100)

	cert, _, err := env.certificate.IssueCertificate(user.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, env.courses.Delete(course.ID))

	result, err := env.certificate.Verify(context.Background(), cert.CertificateNumber)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	// live course is gone: the denormalized title answers instead
	assert.Equal(t, "Short-Lived Course", result.CourseTitle)
	assert.Empty(t, result.InstructorName)
}

func TestVerifyCertificate_SurvivesCourseRename(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "u1", "u1@example.com")
	course := env.createCourse(t, "Original Title", "Jane Doe")
	env.enrollWithProgress(t, user.ID, course.ID, 100)

	cert, _, err := env.certificate.IssueCertificate(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original Title", cert.CourseName)

	course.Title = "Renamed Title"
	require.NoError(t, env.courses.Update(course))

	result, err := env.certificate.Verify(context.Background(), cert.CertificateNumber)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	// the live record wins while the course still exists
	assert.Equal(t, "Renamed Title", result.CourseTitle)
}

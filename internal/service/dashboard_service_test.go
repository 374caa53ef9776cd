package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentDashboard(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "u1", "u1@example.com")
	done := env.createCourse(t, "Finished", "Jane Doe")
	active := env.createCourse(t, "Ongoing", "Jane Doe")

	env.enrollWithProgress(t, user.ID, done.ID, 100)
	env.enrollWithProgress(t, user.ID, active.ID, 30)
	_, _, err := env.certificate.IssueCertificate(user.ID, done.ID)
	require.NoError(t, err)

	dashboard, err := env.dashboard.GetStudentDashboard(user.ID)
	require.NoError(t, err)
	assert.Len(t, dashboard.Enrollments, 2)
	assert.Equal(t, 1, dashboard.CoursesCompleted)
	assert.Equal(t, 1, dashboard.CoursesInFlight)
	assert.Equal(t, 1, dashboard.CertificateCount)
}

func TestAdminDashboard(t *testing.T) {
	env := newTestEnv(t)
	course := env.createCourse(t, "Go Basics", "Jane Doe")

	a := env.createUser(t, "a", "a@example.com")
	b := env.createUser(t, "b", "b@example.com")
	env.enrollWithProgress(t, a.ID, course.ID, 100)
	env.enrollWithProgress(t, b.ID, course.ID, 20)
	_, _, err := env.certificate.IssueCertificate(a.ID, course.ID)
	require.NoError(t, err)

	dashboard, err := env.dashboard.GetAdminDashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(2), dashboard.TotalUsers)
	assert.Equal(t, int64(1), dashboard.TotalCourses)
	assert.Equal(t, int64(2), dashboard.TotalEnrollments)
	assert.Equal(t, int64(1), dashboard.TotalCertificates)
	assert.InDelta(t, 0.5, dashboard.CompletionRate, 0.001)
	assert.Equal(t, int64(2), dashboard.SignupsLast7Days)
}

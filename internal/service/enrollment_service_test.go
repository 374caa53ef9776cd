package service

import (
	"eduflow_backend/internal/model"
	"eduflow_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "u1", "u1@example.com")
	course := env.createCourse(t, "Go Basics", "Jane Doe")

	enrollment, err := env.enrollment.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, enrollment.Progress)
	assert.False(t, enrollment.EnrolledAt.IsZero())

	t.Run("duplicate returns existing", func(t *testing.T) {
		again, err := env.enrollment.Enroll(user.ID, course.ID)
		assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)
		require.NotNil(t, again)
		assert.Equal(t, enrollment.ID, again.ID)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := env.enrollment.Enroll(user.ID, 9999)
		assert.ErrorIs(t, err, util.ErrCourseNotFound)
	})

	t.Run("unpublished course", func(t *testing.T) {
		draft := &model.Course{Title: "Draft", Published: false}
		require.NoError(t, env.courses.Create(draft))
		_, err := env.enrollment.Enroll(user.ID, draft.ID)
		assert.ErrorIs(t, err, util.ErrCourseNotPublished)
	})
}

func TestUpdateProgress(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "u1", "u1@example.com")
	course := env.createCourse(t, "Go Basics", "Jane Doe")
	env.enrollWithProgress(t, user.ID, course.ID, 0)

	t.Run("not enrolled", func(t *testing.T) {
		_, err := env.enrollment.UpdateProgress(user.ID, 9999, ProgressUpdate{Progress: 10})
		assert.ErrorIs(t, err, util.ErrEnrollmentNotFound)
	})

	enrollment, err := env.enrollment.UpdateProgress(user.ID, course.ID, ProgressUpdate{
		Progress:         40,
		CompletedLessons: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 40, enrollment.Progress)
	assert.Equal(t, 4, enrollment.CompletedLessons)

	t.Run("never decreases", func(t *testing.T) {
		enrollment, err := env.enrollment.UpdateProgress(user.ID, course.ID, ProgressUpdate{Progress: 10})
		require.NoError(t, err)
		assert.Equal(t, 40, enrollment.Progress)
	})

	t.Run("clamped to 100", func(t *testing.T) {
		enrollment, err := env.enrollment.UpdateProgress(user.ID, course.ID, ProgressUpdate{Progress: 250})
		require.NoError(t, err)
		assert.Equal(t, 100, enrollment.Progress)
		assert.True(t, enrollment.Completed())
	})

	t.Run("bumps last accessed", func(t *testing.T) {
		before := time.Now().Add(-time.Second)
		enrollment, err := env.enrollment.UpdateProgress(user.ID, course.ID, ProgressUpdate{Progress: 100})
		require.NoError(t, err)
		assert.True(t, enrollment.LastAccessed.After(before))
	})
}

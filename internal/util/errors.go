package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrCourseNotFound       = errors.New("course not found")
	ErrCourseNotPublished   = errors.New("course not published")
	ErrEnrollmentNotFound   = errors.New("enrollment not found")
	ErrAlreadyEnrolled      = errors.New("already enrolled in this course")
	ErrEnrollmentIncomplete = errors.New("course not completed yet")
)

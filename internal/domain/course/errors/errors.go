package errors

import "errors"

var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrDatabaseOperation = errors.New("database operation failed")
)

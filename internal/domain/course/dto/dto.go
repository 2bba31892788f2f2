package dto

import (
	"time"

	"github.com/courseflow/course-service/internal/domain/course/entities"
)

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Preview     *string `json:"preview,omitempty"`
}

// UpdateCourseRequest is the payload for a partial course update.
type UpdateCourseRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Preview     *string `json:"preview,omitempty"`
}

// CreateLessonRequest is the payload for creating a lesson.
type CreateLessonRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Preview     *string `json:"preview,omitempty"`
	VideoURL    *string `json:"video_url,omitempty"`
	CourseID    int64   `json:"course"`
}

// UpdateLessonRequest is the payload for a partial lesson update.
type UpdateLessonRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Preview     *string `json:"preview,omitempty"`
	VideoURL    *string `json:"video_url,omitempty"`
}

// LessonResponse is the wire representation of a lesson.
type LessonResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Preview     *string `json:"preview"`
	VideoURL    *string `json:"video_url"`
	Course      int64   `json:"course"`
	Owner       *int64  `json:"owner"`
}

// CourseResponse is the wire representation of a course, embedding its
// lessons. IsSubscribed is only attached for non-moderator retrieval.
type CourseResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Preview      *string          `json:"preview"`
	Owner        *int64           `json:"owner"`
	UpdatedAt    *time.Time       `json:"updated_at"`
	LessonCount  int              `json:"lesson_count"`
	Lessons      []LessonResponse `json:"lessons"`
	IsSubscribed *bool            `json:"is_subscribed,omitempty"`
}

// NewLessonResponse maps a lesson entity to its wire form.
func NewLessonResponse(lesson *entities.Lesson) LessonResponse {
	return LessonResponse{
		ID:          lesson.ID,
		Name:        lesson.Name,
		Description: lesson.Description,
		Preview:     lesson.Preview,
		VideoURL:    lesson.VideoURL,
		Course:      lesson.CourseID,
		Owner:       lesson.OwnerID,
	}
}

// NewCourseResponse maps a course entity to its wire form.
func NewCourseResponse(course *entities.Course) CourseResponse {
	lessons := make([]LessonResponse, 0, len(course.Lessons))
	for i := range course.Lessons {
		lessons = append(lessons, NewLessonResponse(&course.Lessons[i]))
	}

	return CourseResponse{
		ID:          course.ID,
		Name:        course.Name,
		Description: course.Description,
		Preview:     course.Preview,
		Owner:       course.OwnerID,
		UpdatedAt:   course.UpdatedAt,
		LessonCount: len(lessons),
		Lessons:     lessons,
	}
}

package dto

// Job is one notification unit of work: tell one subscriber that one
// course changed. It travels over the task queue as JSON.
type Job struct {
	CourseName string `json:"course_name"`
	Email      string `json:"email"`
}

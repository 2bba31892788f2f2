package entities

import "time"

// Subscription links a user to a course they follow.
type Subscription struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_subscriptions_user_course" json:"user_id"`
	CourseID  int64     `gorm:"not null;uniqueIndex:idx_subscriptions_user_course" json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

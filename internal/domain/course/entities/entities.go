package entities

import "time"

// Course is a single course entry. UpdatedAt tracks the last notification
// cycle, not row modification time; it is nil until the first cycle fires.
type Course struct {
	ID          int64      `gorm:"primaryKey"`
	Name        string     `gorm:"size:100;not null"`
	Description string     `gorm:"not null"`
	Preview     *string    `gorm:"size:255"`
	OwnerID     *int64     `gorm:"index"`
	UpdatedAt   *time.Time `gorm:"column:updated_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	Lessons     []Lesson   `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

func (Course) TableName() string {
	return "courses"
}

// IsOwnedBy reports whether the course belongs to the given user.
func (c *Course) IsOwnedBy(userID int64) bool {
	return c.OwnerID != nil && *c.OwnerID == userID
}

// Lesson is a single lesson entry belonging to exactly one course.
type Lesson struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null"`
	Description string    `gorm:"not null"`
	Preview     *string   `gorm:"size:255"`
	VideoURL    *string   `gorm:"size:255"`
	CourseID    int64     `gorm:"not null;index"`
	OwnerID     *int64    `gorm:"index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// IsOwnedBy reports whether the lesson belongs to the given user.
func (l *Lesson) IsOwnedBy(userID int64) bool {
	return l.OwnerID != nil && *l.OwnerID == userID
}

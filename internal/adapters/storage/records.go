package storage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRecord is the storage representation of a user. Username uniqueness
// is enforced by the unique index rather than application-level checks.
type userRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"size:50;uniqueIndex;not null"`
	Email     *string   `gorm:"size:255"`
	Role      string    `gorm:"size:20;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userRecord) TableName() string {
	return "users"
}

// BeforeCreate assigns a fresh UUID when the caller did not provide one.
func (r *userRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// taskRecord is the storage representation of a task. The composite unique
// index on (assignee_id, title) is the backstop for the per-assignee title
// rule; unassigned tasks carry a NULL assignee_id and therefore never
// collide with each other.
type taskRecord struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Title       string      `gorm:"size:200;not null;uniqueIndex:idx_tasks_assignee_title"`
	Description *string
	Status      string      `gorm:"size:20;not null"`
	Priority    string      `gorm:"size:20"`
	DueDate     *time.Time
	AssigneeID  *uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_tasks_assignee_title"`
	Assignee    *userRecord `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (taskRecord) TableName() string {
	return "tasks"
}

// BeforeCreate assigns a fresh UUID when the caller did not provide one.
func (r *taskRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

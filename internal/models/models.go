package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Comment is one guestbook entry. Append-only: there is no update or
// delete path anywhere in the service.
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Author    string    `gorm:"not null" json:"author"`
	Message   string    `gorm:"not null" json:"message"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}

var ErrCommentFieldsRequired = errors.New("comment requires author and message")

// BeforeCreate enforces the required fields at the persistence boundary
// and defaults the timestamp to the time of insertion.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(c.Author) == "" || strings.TrimSpace(c.Message) == "" {
		return ErrCommentFieldsRequired
	}
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now()
	}
	return nil
}

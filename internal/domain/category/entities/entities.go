package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is shared reference data assigned to streams. Rows are either
// seeded (IsPredefined) or created on demand from a creator's free text.
// The unique slug index is the only serialization point for concurrent
// get-or-create calls.
type Category struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Slug         string    `gorm:"not null;uniqueIndex" json:"slug"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"imageUrl"`
	IsPredefined bool      `gorm:"not null;default:false" json:"isPredefined"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}

// BeforeCreate assigns an id when the caller did not set one
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

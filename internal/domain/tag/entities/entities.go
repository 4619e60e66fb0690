package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is shared reference data with the same get-or-create semantics as
// Category: the unique slug index resolves concurrent creation races.
type Tag struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Slug      string    `gorm:"not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// BeforeCreate assigns an id when the caller did not set one
func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// StreamTag links a stream to a tag. The full set for a stream is replaced
// on every tag update, never diffed.
type StreamTag struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	StreamID  string    `gorm:"not null;index:idx_stream_tag,unique" json:"streamId"`
	TagID     string    `gorm:"not null;index:idx_stream_tag,unique" json:"tagId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relations
	Tag Tag `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}

// TableName returns the table name for StreamTag
func (StreamTag) TableName() string {
	return "stream_tags"
}

// BeforeCreate assigns an id when the caller did not set one
func (st *StreamTag) BeforeCreate(tx *gorm.DB) error {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	return nil
}

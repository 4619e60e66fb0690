package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catentities "github.com/CodesofAkash/twitch-clone/internal/domain/category/entities"
	tagentities "github.com/CodesofAkash/twitch-clone/internal/domain/tag/entities"
)

// User is a creator/viewer account. Created at signup by the identity
// layer; this service only reads and never deletes users.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null;uniqueIndex" json:"username"`
	ImageURL  string    `json:"imageUrl"`
	Bio       string    `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	Stream *Stream `gorm:"foreignKey:UserID" json:"stream,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an id when the caller did not set one
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Stream is a user's single stream record. IsLive and ViewerCount are
// reported by the external media provider; ViewerCount is meaningless
// while the stream is offline and is reset to zero on stream end.
type Stream struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"not null;uniqueIndex" json:"userId"`
	Name            string    `gorm:"not null" json:"name"`
	ThumbnailURL    string    `json:"thumbnailUrl"`
	IsLive          bool      `gorm:"not null;default:false;index" json:"isLive"`
	ViewerCount     int       `gorm:"not null;default:0" json:"viewerCount"`
	PeakViewerCount int       `gorm:"not null;default:0" json:"peakViewerCount"`
	CategoryID      *string   `gorm:"index" json:"categoryId,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	User     User                   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Category *catentities.Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags     []tagentities.StreamTag `gorm:"foreignKey:StreamID" json:"tags,omitempty"`
}

// TableName returns the table name for Stream
func (Stream) TableName() string {
	return "streams"
}

// BeforeCreate assigns an id when the caller did not set one
func (s *Stream) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Follow is a directed follower relation. No self-follow, unique per pair.
type Follow struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	FollowerID  string    `gorm:"not null;index:idx_follower_following,unique" json:"followerId"`
	FollowingID string    `gorm:"not null;index:idx_follower_following,unique;index" json:"followingId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName returns the table name for Follow
func (Follow) TableName() string {
	return "follows"
}

// BeforeCreate assigns an id when the caller did not set one
func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// Block is a directed relation hiding the blocker's content from the
// blocked viewer. The reverse direction is intentionally not filtered.
type Block struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	BlockerID string    `gorm:"not null;index:idx_blocker_blocked,unique" json:"blockerId"`
	BlockedID string    `gorm:"not null;index:idx_blocker_blocked,unique;index" json:"blockedId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName returns the table name for Block
func (Block) TableName() string {
	return "blocks"
}

// BeforeCreate assigns an id when the caller did not set one
func (b *Block) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

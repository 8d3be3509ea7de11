package domain

import "time"

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name"`
	AvatarURL    string    `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// RefreshToken is an opaque rotated session token. Only the peppered
// hash is stored; reuse of an already rotated token revokes the whole
// family.
type RefreshToken struct {
	ID        int64      `gorm:"primaryKey"`
	UserID    int64      `gorm:"not null;index"`
	TokenHash string     `gorm:"uniqueIndex;not null"`
	JTI       string     `gorm:"column:jti;not null"`
	FamilyID  string     `gorm:"not null;index"`
	ExpiresAt time.Time  `gorm:"not null"`
	UsedAt    *time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

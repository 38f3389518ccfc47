package models

import (
	"time"
)

// OAuthToken records an access token issued to a machine client of the admin API
type OAuthToken struct {
	ID           uint      `gorm:"primaryKey"`
	ClientID     string    `gorm:"not null;index"`
	UserID       *string   `gorm:"index"` // owner of the client the token was issued to
	AccessToken  string    `gorm:"uniqueIndex;not null"`
	RefreshToken *string   `gorm:"index"`
	Scopes       string    `gorm:"size:255"`
	ExpiresAt    time.Time `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}

// Expired reports whether the token is past its expiry at now
func (t OAuthToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

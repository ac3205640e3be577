package domain

import "time"

// Member is the identity record for a registered reader. Email is the
// identity key and is matched case-sensitively. PasswordHash is only ever
// replaced, never read back out of this service.
type Member struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	PhoneNumber  string    `gorm:"size:20;not null" json:"phone_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

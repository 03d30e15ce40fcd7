package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	// LanguageTurkish is the default notification language.
	LanguageTurkish = "tr"
	// LanguageEnglish is the fallback notification language.
	LanguageEnglish = "en"
)

// User is an account. Owns all budgeting rows; identified by JWT.
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password  string         `json:"-" gorm:"size:255;not null"`
	Email     string         `json:"email" gorm:"size:100"`
	Language  string         `json:"language" gorm:"size:5;default:tr"` // tr/en, picks notification locale
	PushToken string         `json:"-" gorm:"size:255"`                 // Expo push token, empty = no device registered
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}

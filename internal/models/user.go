package models

import "time"

type User struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Email        string        `gorm:"uniqueIndex;not null;size:120" json:"email"`
	PasswordHash string        `gorm:"not null;size:128" json:"-"`
	Translations []Translation `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt    time.Time     `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:100;not null" json:"full_name"`
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:100" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`

	Bio      string `gorm:"size:255" json:"bio"`
	ImageUrl string `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

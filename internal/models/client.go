package models

import "time"

// Client entity. The store owns the record; consumers hold cached copies.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	Email     string    `gorm:"not null;uniqueIndex" json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

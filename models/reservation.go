package models

import "time"

// Reservation is a table booking submitted from the public site.
// DateHeure keeps the datetime-local string the form posts.
type Reservation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	DateHeure string    `json:"dateHeure" gorm:"not null"`
	Guests    int       `json:"guests"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

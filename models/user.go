package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"firstName"`
	LastName  string    `gorm:"not null" json:"lastName"`
	Birthdate time.Time `gorm:"not null" json:"-"` // stored at UTC midnight
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`

	// Present only so AutoMigrate emits the cascade constraint; a user's
	// trainings are always fetched by user_id, never through this slice.
	Trainings []Training `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

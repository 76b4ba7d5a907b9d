package services

import (
	"errors"
	"strings"
	"time"

	"github.com/TopolnickiD/CapWSB-FitnessTracker/config"
	"github.com/TopolnickiD/CapWSB-FitnessTracker/models"

	"gorm.io/gorm"
)

// CreateUser persists a new user. The store assigns the id, so an input
// that already carries one is rejected.
func CreateUser(user *models.User) error {
	if user.ID != 0 {
		return ErrUserAlreadyPersisted
	}
	return config.DB.Create(user).Error
}

// DeleteUser removes the user and, through the association, all of its
// trainings.
func DeleteUser(id uint) error {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return config.DB.Select("Trainings").Delete(&user).Error
}

// UpdateUser saves the given full record. The caller merges partial input
// beforehand.
func UpdateUser(user *models.User) error {
	var count int64
	if err := config.DB.Model(&models.User{}).Where("id = ?", user.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return config.DB.Save(user).Error
}

// GetUser returns the user with the given id, or nil if none exists.
// Absence is a valid outcome here, not an error.
func GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail returns the first user whose email contains the query,
// ignoring case. Substring matching (rather than exact) is deliberate and
// part of the API contract.
func GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	pattern := "%" + strings.ToLower(email) + "%"
	if err := config.DB.Where("lower(email) LIKE ?", pattern).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUsersOlderThan returns users born strictly before today minus the
// given number of years. Both sides of the comparison are UTC dates, so a
// user born exactly on the cutoff is excluded.
func GetUsersOlderThan(age int) ([]models.User, error) {
	now := time.Now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(-age, 0, 0)

	var users []models.User
	if err := config.DB.Where("birthdate < ?", cutoff).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func FindAllUsers() ([]models.User, error) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

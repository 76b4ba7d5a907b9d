package services

import (
	"errors"
	"time"

	"github.com/TopolnickiD/CapWSB-FitnessTracker/config"
	"github.com/TopolnickiD/CapWSB-FitnessTracker/models"

	"gorm.io/gorm"
)

func FindAllTrainings() ([]models.Training, error) {
	var trainings []models.Training
	if err := config.DB.Preload("User").Find(&trainings).Error; err != nil {
		return nil, err
	}
	return trainings, nil
}

func FindTrainingsByUserID(userID uint) ([]models.Training, error) {
	var trainings []models.Training
	if err := config.DB.Preload("User").Where("user_id = ?", userID).Find(&trainings).Error; err != nil {
		return nil, err
	}
	return trainings, nil
}

func FindTrainingsByStartTimeAfter(startTime time.Time) ([]models.Training, error) {
	var trainings []models.Training
	if err := config.DB.Preload("User").Where("start_time > ?", startTime).Find(&trainings).Error; err != nil {
		return nil, err
	}
	return trainings, nil
}

func FindTrainingsByActivityType(activityType models.ActivityType) ([]models.Training, error) {
	var trainings []models.Training
	if err := config.DB.Preload("User").Where("activity_type = ?", activityType).Find(&trainings).Error; err != nil {
		return nil, err
	}
	return trainings, nil
}

// CreateTraining persists the training as-is. Unlike user creation there is
// no id-presence check; the caller is expected to have resolved the owner.
func CreateTraining(training *models.Training) error {
	return config.DB.Create(training).Error
}

// UpdateTraining saves the given full record. The caller merges partial
// input beforehand.
func UpdateTraining(training *models.Training) error {
	return config.DB.Save(training).Error
}

// GetTrainingByID returns the training with the given id, or nil if none
// exists.
func GetTrainingByID(id uint) (*models.Training, error) {
	var training models.Training
	if err := config.DB.Preload("User").First(&training, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &training, nil
}

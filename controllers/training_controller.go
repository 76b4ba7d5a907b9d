package controllers

import (
	"net/http"
	"strconv"

	"github.com/TopolnickiD/CapWSB-FitnessTracker/models"
	"github.com/TopolnickiD/CapWSB-FitnessTracker/services"

	"github.com/gin-gonic/gin"
)

type TrainingDto struct {
	ID           uint                `json:"id"`
	StartTime    Timestamp           `json:"startTime"`
	EndTime      Timestamp           `json:"endTime"`
	ActivityType models.ActivityType `json:"activityType"`
	Distance     float64             `json:"distance"`
	AverageSpeed float64             `json:"averageSpeed"`
	User         TrainingUserDto     `json:"user"`
}

// TrainingUserDto is the owner projection embedded in training responses.
type TrainingUserDto struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type TrainingCreateInput struct {
	StartTime    Timestamp `json:"startTime"`
	EndTime      Timestamp `json:"endTime"`
	ActivityType string    `json:"activityType"`
	Distance     float64   `json:"distance"`
	AverageSpeed float64   `json:"averageSpeed"`
	UserID       uint      `json:"userId"`
}

// TrainingUpdateInput carries the partial-update fields. Pointer fields
// overwrite when present; distance and averageSpeed overwrite only when
// strictly positive, so an explicit 0 is ignored.
type TrainingUpdateInput struct {
	StartTime    *Timestamp `json:"startTime"`
	EndTime      *Timestamp `json:"endTime"`
	ActivityType *string    `json:"activityType"`
	Distance     float64    `json:"distance"`
	AverageSpeed float64    `json:"averageSpeed"`
	UserID       *uint      `json:"userId"`
}

func toTrainingDto(training *models.Training) TrainingDto {
	return TrainingDto{
		ID:           training.ID,
		StartTime:    Timestamp{training.StartTime},
		EndTime:      Timestamp{training.EndTime},
		ActivityType: training.ActivityType,
		Distance:     training.Distance,
		AverageSpeed: training.AverageSpeed,
		User: TrainingUserDto{
			ID:        training.User.ID,
			FirstName: training.User.FirstName,
			LastName:  training.User.LastName,
			Email:     training.User.Email,
		},
	}
}

func toTrainingDtos(trainings []models.Training) []TrainingDto {
	dtos := make([]TrainingDto, 0, len(trainings))
	for i := range trainings {
		dtos = append(dtos, toTrainingDto(&trainings[i]))
	}
	return dtos
}

func applyTrainingUpdate(input TrainingUpdateInput, training *models.Training) error {
	if input.StartTime != nil {
		training.StartTime = input.StartTime.Time
	}
	if input.EndTime != nil {
		training.EndTime = input.EndTime.Time
	}
	if input.ActivityType != nil {
		activityType, err := models.ParseActivityType(*input.ActivityType)
		if err != nil {
			return err
		}
		training.ActivityType = activityType
	}
	if input.Distance > 0 {
		training.Distance = input.Distance
	}
	if input.AverageSpeed > 0 {
		training.AverageSpeed = input.AverageSpeed
	}
	return nil
}

// GetAllTrainings handles GET /v1/trainings
func GetAllTrainings(c *gin.Context) {
	trainings, err := services.FindAllTrainings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toTrainingDtos(trainings))
}

// GetTrainingsByUserID handles GET /v1/trainings/users/:id
func GetTrainingsByUserID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	trainings, err := services.FindTrainingsByUserID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toTrainingDtos(trainings))
}

// GetTrainingsFinishedAfter handles GET /v1/trainings/finishAfter?date=
// A date that does not parse falls into the unclassified bucket and
// surfaces as 500.
func GetTrainingsFinishedAfter(c *gin.Context) {
	date, err := parseTimestamp(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	trainings, err := services.FindTrainingsByStartTimeAfter(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toTrainingDtos(trainings))
}

// GetTrainingsByActivityType handles GET /v1/trainings/activityType?activityType=
func GetTrainingsByActivityType(c *gin.Context) {
	activityType, err := models.ParseActivityType(c.Query("activityType"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trainings, err := services.FindTrainingsByActivityType(activityType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toTrainingDtos(trainings))
}

// AddTraining handles POST /v1/trainings. The referenced user must exist.
func AddTraining(c *gin.Context) {
	var input TrainingCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activityType, err := models.ParseActivityType(input.ActivityType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.GetUser(input.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	training := models.Training{
		UserID:       user.ID,
		StartTime:    input.StartTime.Time,
		EndTime:      input.EndTime.Time,
		ActivityType: activityType,
		Distance:     input.Distance,
		AverageSpeed: input.AverageSpeed,
	}

	if err := services.CreateTraining(&training); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	training.User = *user
	c.JSON(http.StatusCreated, toTrainingDto(&training))
}

// UpdateTraining handles PUT /v1/trainings/:id with partial-field
// semantics; an optional userId reassigns the owner.
func UpdateTraining(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid training id"})
		return
	}

	var input TrainingUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	training, err := services.GetTrainingByID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if training == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "training not found"})
		return
	}

	if input.UserID != nil {
		user, err := services.GetUser(*input.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		training.UserID = user.ID
		training.User = *user
	}

	if err := applyTrainingUpdate(input, training); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateTraining(training); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toTrainingDto(training))
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/TopolnickiD/CapWSB-FitnessTracker/models"
	"github.com/TopolnickiD/CapWSB-FitnessTracker/services"

	"github.com/gin-gonic/gin"
)

type UserDto struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Birthdate Date   `json:"birthdate"`
	Email     string `json:"email"`
}

// UserNameAndIDDto is the projection used by /nameAndId and the older-than
// listing; birthdate and email are intentionally dropped.
type UserNameAndIDDto struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type UserIDAndEmailDto struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type UserCreateInput struct {
	ID        *uint  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Birthdate Date   `json:"birthdate"`
	Email     string `json:"email"`
}

// UserUpdateInput carries the partial-update fields; only non-null fields
// overwrite the stored record.
type UserUpdateInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Birthdate *Date   `json:"birthdate"`
	Email     *string `json:"email"`
}

func toUserDto(user *models.User) UserDto {
	return UserDto{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Birthdate: Date{user.Birthdate},
		Email:     user.Email,
	}
}

func toUserNameAndIDDto(user *models.User) UserNameAndIDDto {
	return UserNameAndIDDto{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func toUserIDAndEmailDto(user *models.User) UserIDAndEmailDto {
	return UserIDAndEmailDto{
		ID:    user.ID,
		Email: user.Email,
	}
}

func applyUserUpdate(input UserUpdateInput, user *models.User) {
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Birthdate != nil {
		user.Birthdate = input.Birthdate.Time
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
}

// GetAllUsers handles GET /v1/users
func GetAllUsers(c *gin.Context) {
	users, err := services.FindAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dtos := make([]UserDto, 0, len(users))
	for i := range users {
		dtos = append(dtos, toUserDto(&users[i]))
	}
	c.JSON(http.StatusOK, dtos)
}

// GetAllUsersNameAndID handles GET /v1/users/nameAndId
func GetAllUsersNameAndID(c *gin.Context) {
	users, err := services.FindAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dtos := make([]UserNameAndIDDto, 0, len(users))
	for i := range users {
		dtos = append(dtos, toUserNameAndIDDto(&users[i]))
	}
	c.JSON(http.StatusOK, dtos)
}

// GetUserByID handles GET /v1/users/ids/:id
func GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := services.GetUser(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, toUserDto(user))
}

// GetUserByEmail handles GET /v1/users/emails/:email. The match is
// case-insensitive and by substring, not exact.
func GetUserByEmail(c *gin.Context) {
	user, err := services.GetUserByEmail(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, toUserIDAndEmailDto(user))
}

// DeleteUser handles DELETE /v1/users/:id. Deleting a user also deletes
// its trainings.
func DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := services.DeleteUser(uint(id)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// AddUser handles POST /v1/users. The store assigns the id; a body that
// already carries one is rejected.
func AddUser(c *gin.Context) {
	var input UserCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Birthdate: input.Birthdate.Time,
		Email:     input.Email,
	}
	if input.ID != nil {
		user.ID = *input.ID
	}

	if err := services.CreateUser(&user); err != nil {
		if errors.Is(err, services.ErrUserAlreadyPersisted) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toUserDto(&user))
}

// GetUsersOlderThan handles GET /v1/users/:age
func GetUsersOlderThan(c *gin.Context) {
	age, err := strconv.Atoi(c.Param("age"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid age"})
		return
	}

	users, err := services.GetUsersOlderThan(age)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dtos := make([]UserNameAndIDDto, 0, len(users))
	for i := range users {
		dtos = append(dtos, toUserNameAndIDDto(&users[i]))
	}
	c.JSON(http.StatusOK, dtos)
}

// UpdateUser handles PUT /v1/users/:id with partial-field semantics.
func UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var input UserUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.GetUser(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	applyUserUpdate(input, user)

	if err := services.UpdateUser(user); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toUserDto(user))
}

package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/TopolnickiD/CapWSB-FitnessTracker/models"
	"github.com/TopolnickiD/CapWSB-FitnessTracker/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, email string) models.User {
	user := models.User{
		FirstName: "Ann",
		LastName:  "Lee",
		Birthdate: time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		Email:     email,
	}
	require.NoError(t, services.CreateUser(&user))
	return user
}

func createTestTraining(t *testing.T, userID uint, start time.Time, activity models.ActivityType, distance float64) models.Training {
	training := models.Training{
		UserID:       userID,
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		ActivityType: activity,
		Distance:     distance,
		AverageSpeed: distance,
	}
	require.NoError(t, services.CreateTraining(&training))
	return training
}

func TestAddTrainingUnknownUser(t *testing.T) {
	router := setupRouter(t)

	resp := doRequest(router, http.MethodPost, "/v1/trainings",
		`{"startTime":"2024-01-15T10:30:00","endTime":"2024-01-15T11:30:00","activityType":"RUNNING","distance":10.5,"averageSpeed":10.5,"userId":99}`)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestAddTrainingRendersTimestampsAndUser(t *testing.T) {
	router := setupRouter(t)
	user := createTestUser(t, "a@b.com")

	body := fmt.Sprintf(
		`{"startTime":"2024-01-15T10:30","endTime":"2024-01-15T11:30:45","activityType":"running","distance":10.5,"averageSpeed":10.5,"userId":%d}`,
		user.ID)
	resp := doRequest(router, http.MethodPost, "/v1/trainings", body)
	require.Equal(t, http.StatusCreated, resp.Code)

	var created map[string]any
	decodeBody(t, resp, &created)
	assert.Greater(t, created["id"].(float64), float64(0))
	assert.Equal(t, "2024-01-15T10:30:00.000+00:00", created["startTime"])
	assert.Equal(t, "2024-01-15T11:30:45.000+00:00", created["endTime"])
	assert.Equal(t, "RUNNING", created["activityType"])

	owner := created["user"].(map[string]any)
	assert.Equal(t, float64(user.ID), owner["id"])
	assert.Equal(t, "Ann", owner["firstName"])
	assert.Equal(t, "a@b.com", owner["email"])
	assert.NotContains(t, owner, "birthdate")
}

func TestAddTrainingUnknownActivityType(t *testing.T) {
	router := setupRouter(t)
	user := createTestUser(t, "a@b.com")

	body := fmt.Sprintf(
		`{"startTime":"2024-01-15T10:30","endTime":"2024-01-15T11:30","activityType":"YOGA","distance":1,"averageSpeed":1,"userId":%d}`,
		user.ID)
	resp := doRequest(router, http.MethodPost, "/v1/trainings", body)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetTrainingsByUser(t *testing.T) {
	router := setupRouter(t)
	ann := createTestUser(t, "a@b.com")
	bob := createTestUser(t, "b@c.com")
	start := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	createTestTraining(t, ann.ID, start, models.ActivityRunning, 10)
	createTestTraining(t, bob.ID, start, models.ActivityTennis, 0)

	resp := doRequest(router, http.MethodGet, fmt.Sprintf("/v1/trainings/users/%d", ann.ID), "")
	require.Equal(t, http.StatusOK, resp.Code)

	var trainings []map[string]any
	decodeBody(t, resp, &trainings)
	require.Len(t, trainings, 1)
	assert.Equal(t, "RUNNING", trainings[0]["activityType"])
}

func TestGetTrainingsFinishAfter(t *testing.T) {
	router := setupRouter(t)
	user := createTestUser(t, "a@b.com")
	createTestTraining(t, user.ID, time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC), models.ActivityRunning, 10)
	createTestTraining(t, user.ID, time.Date(2024, time.March, 1, 11, 0, 0, 0, time.UTC), models.ActivityRunning, 10)

	resp := doRequest(router, http.MethodGet, "/v1/trainings/finishAfter?date=2024-03-01T10:00", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var trainings []map[string]any
	decodeBody(t, resp, &trainings)
	require.Len(t, trainings, 1)
	assert.Equal(t, "2024-03-01T11:00:00.000+00:00", trainings[0]["startTime"])
}

func TestGetTrainingsFinishAfterBadDate(t *testing.T) {
	router := setupRouter(t)

	resp := doRequest(router, http.MethodGet, "/v1/trainings/finishAfter?date=not-a-date", "")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestGetTrainingsByActivityType(t *testing.T) {
	router := setupRouter(t)
	user := createTestUser(t, "a@b.com")
	start := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	createTestTraining(t, user.ID, start, models.ActivityRunning, 10)
	createTestTraining(t, user.ID, start, models.ActivityCycling, 30)

	resp := doRequest(router, http.MethodGet, "/v1/trainings/activityType?activityType=CYCLING", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var trainings []map[string]any
	decodeBody(t, resp, &trainings)
	require.Len(t, trainings, 1)
	assert.Equal(t, "CYCLING", trainings[0]["activityType"])

	resp = doRequest(router, http.MethodGet, "/v1/trainings/activityType?activityType=YOGA", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateTrainingZeroDistanceIgnored(t *testing.T) {
	router := setupRouter(t)
	user := createTestUser(t, "a@b.com")
	training := createTestTraining(t, user.ID, time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), models.ActivityRunning, 10.5)

	resp := doRequest(router, http.MethodPut, fmt.Sprintf("/v1/trainings/%d", training.ID),
		`{"distance":0,"averageSpeed":0,"activityType":"WALKING"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var updated map[string]any
	decodeBody(t, resp, &updated)
	assert.Equal(t, 10.5, updated["distance"])
	assert.Equal(t, 10.5, updated["averageSpeed"])
	assert.Equal(t, "WALKING", updated["activityType"])

	got, err := services.GetTrainingByID(training.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 10.5, got.Distance)
	assert.Equal(t, models.ActivityWalking, got.ActivityType)
}

func TestUpdateTrainingReassignsOwner(t *testing.T) {
	router := setupRouter(t)
	ann := createTestUser(t, "a@b.com")
	bob := createTestUser(t, "b@c.com")
	training := createTestTraining(t, ann.ID, time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), models.ActivityRunning, 10)

	resp := doRequest(router, http.MethodPut, fmt.Sprintf("/v1/trainings/%d", training.ID),
		fmt.Sprintf(`{"userId":%d,"distance":12.5}`, bob.ID))
	require.Equal(t, http.StatusOK, resp.Code)

	var updated map[string]any
	decodeBody(t, resp, &updated)
	owner := updated["user"].(map[string]any)
	assert.Equal(t, float64(bob.ID), owner["id"])
	assert.Equal(t, 12.5, updated["distance"])
}

func TestUpdateTrainingMissing(t *testing.T) {
	router := setupRouter(t)

	resp := doRequest(router, http.MethodPut, "/v1/trainings/77", `{"distance":5}`)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateTrainingUnknownOwner(t *testing.T) {
	router := setupRouter(t)
	user := createTestUser(t, "a@b.com")
	training := createTestTraining(t, user.ID, time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), models.ActivityRunning, 10)

	resp := doRequest(router, http.MethodPut, fmt.Sprintf("/v1/trainings/%d", training.ID), `{"userId":99}`)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetAllTrainings(t *testing.T) {
	router := setupRouter(t)
	user := createTestUser(t, "a@b.com")
	createTestTraining(t, user.ID, time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), models.ActivityRunning, 10)

	resp := doRequest(router, http.MethodGet, "/v1/trainings", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var trainings []map[string]any
	decodeBody(t, resp, &trainings)
	require.Len(t, trainings, 1)
	owner := trainings[0]["user"].(map[string]any)
	assert.Equal(t, "a@b.com", owner["email"])
}

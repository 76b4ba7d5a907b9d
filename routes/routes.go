package routes

import (
	"github.com/TopolnickiD/CapWSB-FitnessTracker/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	v1 := r.Group("/v1")

	users := v1.Group("/users")
	{
		users.GET("", controllers.GetAllUsers)
		users.GET("/nameAndId", controllers.GetAllUsersNameAndID)
		users.GET("/ids/:id", controllers.GetUserByID)
		users.GET("/emails/:email", controllers.GetUserByEmail)
		users.GET("/:age", controllers.GetUsersOlderThan)
		users.POST("", controllers.AddUser)
		users.PUT("/:id", controllers.UpdateUser)
		users.DELETE("/:id", controllers.DeleteUser)
	}

	trainings := v1.Group("/trainings")
	{
		trainings.GET("", controllers.GetAllTrainings)
		trainings.GET("/users/:id", controllers.GetTrainingsByUserID)
		trainings.GET("/finishAfter", controllers.GetTrainingsFinishedAfter)
		trainings.GET("/activityType", controllers.GetTrainingsByActivityType)
		trainings.POST("", controllers.AddTraining)
		trainings.PUT("/:id", controllers.UpdateTraining)
	}

	return r
}

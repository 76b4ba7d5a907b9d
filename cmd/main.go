package main

import (
	"github.com/TopolnickiD/CapWSB-FitnessTracker/config"
	"github.com/TopolnickiD/CapWSB-FitnessTracker/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":8080")
}

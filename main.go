package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"comanda-api/config"
	"comanda-api/controllers"
	"comanda-api/routes"
	"comanda-api/seeders"
	"comanda-api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment as is")
	}

	// connect db
	config.ConnectDatabase()

	// init router
	r := gin.Default() // Logger & Recovery included

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// session store is built here and handed to its controller instead
	// of living as package state
	sessionStore := services.NewSessionStore(config.DB)
	prefs := controllers.NewPreferenceController(sessionStore)

	// routes
	routes.RegisterRoutes(r, prefs)

	// seed data
	seeders.Seed()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

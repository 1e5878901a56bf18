package main

import (
	"os"

	"github.com/Asabs18/Monopoly/app/controllers"
	"github.com/Asabs18/Monopoly/pkg/routes"
	"github.com/Asabs18/Monopoly/platform/logging"
	"github.com/Asabs18/Monopoly/platform/registry"
	socket "github.com/Asabs18/Monopoly/platform/sockets"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	logging.Init()

	games := registry.New()
	controllers.Games = games

	app := fiber.New()
	app.Use(cors.New())
	routes.GameRoutes(app)

	go socket.CreateSocketIOServer(games)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "4101"
	}
	logrus.WithField("port", port).Info("lobby api listening")
	if err := app.Listen(":" + port); err != nil {
		logrus.WithError(err).Fatal("lobby api stopped")
	}
}

package controllers

import (
	"github.com/Asabs18/Monopoly/app/models"
	"github.com/Asabs18/Monopoly/pkg"
	"github.com/Asabs18/Monopoly/platform/registry"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Games is the process-wide table of hosted games, shared with the socket
// gateway. Set from main before the app starts listening.
var Games *registry.Registry

func CreateGame(c *fiber.Ctx) error {
	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	entry := Games.Create(pkg.RandString(8), gameCreateDto.Name)
	logrus.WithFields(logrus.Fields{"game": entry.Id, "name": entry.Name}).Info("game created")

	return c.JSON(fiber.Map{"id": entry.Id})
}

func VerifyGame(c *fiber.Ctx) error {
	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if _, err := Games.Get(verifyGameDto.Code); err != nil {
		return c.JSON(fiber.Map{"status": false})
	}
	return c.JSON(fiber.Map{"status": true})
}

func GetAllAvailGames(c *fiber.Ctx) error {
	return c.JSON(Games.Available())
}

func FindAvailGame(c *fiber.Ctx) error {
	avail := Games.Available()
	if len(avail) == 0 {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(avail[0])
}

package board

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/Asabs18/Monopoly/app/models"
)

// AssetDir can be overridden with the BOARD_ASSETS env var so the process
// works regardless of cwd.
const AssetDir = "platform/board"

func assetPath(file string) string {
	if dir := os.Getenv("BOARD_ASSETS"); dir != "" {
		return filepath.Join(dir, file)
	}
	return filepath.Join(AssetDir, file)
}

func LoadProperties() ([]models.Property, error) {
	jsonFile, err := os.Open(assetPath("properties.json"))
	if err != nil {
		return nil, err
	}
	defer jsonFile.Close()

	byteValue, err := ioutil.ReadAll(jsonFile)
	if err != nil {
		return nil, err
	}

	var properties []models.Property
	if err := json.Unmarshal(byteValue, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func LoadCards() (models.CardFile, error) {
	var cards models.CardFile

	jsonFile, err := os.Open(assetPath("cards.json"))
	if err != nil {
		return cards, err
	}
	defer jsonFile.Close()

	byteValue, err := ioutil.ReadAll(jsonFile)
	if err != nil {
		return cards, err
	}

	if err := json.Unmarshal(byteValue, &cards); err != nil {
		return cards, err
	}
	return cards, nil
}

func GetByPos(pos int, properties *[]models.Property) (models.Property, error) { // O(N) time complexity
	for _, property := range *properties {
		if property.Position == pos {
			return property, nil
		}
	}
	return models.Property{}, errors.New("not found")
}

func GetByName(name string, properties *[]models.Property) (models.Property, error) { // O(N) time complexity
	for _, property := range *properties {
		if property.Name == name {
			return property, nil
		}
	}
	return models.Property{}, errors.New("not found")
}

package models

type Game struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type GameCreateDto struct {
	Name string `json:"name"`
}

type VerifyGameDto struct {
	Code string `json:"code"`
}

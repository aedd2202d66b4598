package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/bolaohub/bolao-api/cmd/app"
)

// @title           Bolao Contest API
// @description     Number-contest platform: users buy tickets of chosen numbers,
// @description     administrators publish draws, and the API computes the running
// @description     ranking and the prize split.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}

package main

import (
	"github.com/joho/godotenv"
	"github.com/pmoret/gaps-notify/internal/cli"
)

func main() {
	// Credentials may live in a .env file next to the binary; absence is fine.
	_ = godotenv.Load()

	cli.Execute()
}

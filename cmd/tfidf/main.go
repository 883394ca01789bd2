package main

import (
	"github.com/joho/godotenv"

	"tfidf/internal/cli"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	cli.Execute()
}

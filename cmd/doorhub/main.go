package main

import (
	"log"

	"github.com/pathforward/doorhub/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ doorhub failed to start: %v", err)
	}
}

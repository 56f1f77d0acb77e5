package main

import (
	"log"

	"github.com/MyelinBots/catmanager-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

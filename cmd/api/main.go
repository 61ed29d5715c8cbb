package main

import (
	"log"

	"tasktrio/cmd/api/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}

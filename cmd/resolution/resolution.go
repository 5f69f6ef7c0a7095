package main

import (
	"github.com/charmbracelet/log"

	"tableflip.dev/resolution/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}

package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/earlysvahn/ata/cmd/ata/commands"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	if err := commands.Execute(context.Background(), commands.NewRootCommand(version)); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/runtime/terminal"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cli := terminal.NewCLI(terminal.Options{
		DefaultDBPath: os.Getenv("EVENTDESIGN_DB"),
		Output:        os.Stdout,
		Logger:        logger,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

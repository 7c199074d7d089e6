package main

import (
	"fmt"
	"os"

	"github.com/kobzarvs/led/internal/app"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if err := app.New(args).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "led:", err)
		os.Exit(1)
	}
}

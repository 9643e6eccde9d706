package main

import (
	"fmt"
	"os"

	"shrinkit_go/internal/config"
	"shrinkit_go/internal/console"
	"shrinkit_go/pkg/logger"
)

func main() {
	cfg := config.Load()
	logg := logger.New("shrinkit", cfg.LogLevel)

	if err := console.New(os.Stdin, os.Stdout, logg).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("\nmain() completed.")
}

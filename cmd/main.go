package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	inky "github.com/inky-soup/update-display/pkg"
)

func main() {
	// Minimal logger until the run's flags are parsed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := inky.NewApp(os.Stdout, os.Stderr).Run(os.Args[1:]); err != nil {
		var exitErr *inky.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

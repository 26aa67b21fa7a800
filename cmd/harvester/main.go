package main

import (
	"errors"
	"os"

	"term_harvester/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, service.ErrPartialRun) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

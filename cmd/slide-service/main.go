package main

import (
	"os"

	"github.com/slideai/slideai-server/slideservice"
)

func main() {
	if err := slideservice.Run(); err != nil {
		os.Exit(1)
	}
}

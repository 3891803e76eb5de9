package main

import (
	"fmt"
	"os"

	"github.com/actionlens/actionlens/internal/actionlens"
)

func main() {
	if err := actionlens.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

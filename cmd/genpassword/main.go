package main

import (
	"os"

	"github.com/realgenekim/genpassword/cmd/genpassword/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

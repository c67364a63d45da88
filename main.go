package main

import (
	"os"

	"github.com/lamila/fundabuddy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/polytone/polytone-go/cmd/polytone/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/jroosing/awsrest/cmd/awsrest/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

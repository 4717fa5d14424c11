package main

import (
	"os"

	"wagecalc/cmd/wagecalc/commands"
)

func main() {
	os.Exit(commands.Run(os.Args[1:], os.Stdout, os.Stderr))
}

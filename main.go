package main

import (
	"os"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

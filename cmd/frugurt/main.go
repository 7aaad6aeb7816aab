package main

import (
	"os"

	"github.com/frugurt-lang/frugurt/cmd/frugurt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

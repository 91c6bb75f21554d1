package main

import (
	"os"

	"github.com/riskibarqy/statsapi-gateway/cmd/smoke/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/meeting-agent/internal/cli"
)

func main() {
	deps := &cli.Dependencies{}
	err := cli.NewRootCmd(deps).Execute()
	if closeErr := deps.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

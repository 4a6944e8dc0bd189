// Package main is the entry point for the k6viz application
package main

import (
	"github.com/ethpandaops/k6viz/cmd"
)

func main() {
	cmd.Execute()
}

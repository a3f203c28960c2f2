// Package main is the entry point for the bby CLI client.
package main

import (
	"github.com/bestbuyapis/bestbuy-go/cmd/bby/cmd"
)

func main() {
	cmd.Execute()
}

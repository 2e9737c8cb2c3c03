// Package main implements the intcalc CLI.
// It exposes divisor enumeration, factorial lookup and prime filtering with
// XML, JSON, YAML, msgpack or text output.
package main

import (
	"os"

	"github.com/l3aro/intcalc/cmd/intcalc/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdout, os.Stderr))
}

// Package main provides the hoard CLI.
package main

import "github.com/mesh-intelligence/hoard/internal/cli"

func main() {
	cli.Execute()
}
